// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestQIdentity(t *testing.T) {
	q := NewQI()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("identity quaternion got %+v", q)
	}
}

func TestSetAaQ(t *testing.T) {
	q := NewQ().SetAa(0, 0, 1, HalfPi)
	v := NewV3S(1, 0, 0)
	v.MultQ(v, q)
	want := NewV3S(0, 1, 0)
	if !v.Aeq(want) {
		t.Errorf("90 degree rotation about Z got %+v want %+v", v, want)
	}
}

func TestMultQ(t *testing.T) {
	a := NewQ().SetAa(0, 0, 1, HalfPi)
	b := NewQ().SetAa(0, 0, 1, HalfPi)
	q := NewQ().Mult(a, b)
	want := NewQ().SetAa(0, 0, 1, PI)
	if !q.Aeq(want) {
		t.Errorf("composed rotation got %+v want %+v", q, want)
	}
}

func TestUnitQ(t *testing.T) {
	q := &Q{1, 1, 1, 1}
	q.Unit()
	if !Aeq(q.Len(), 1) {
		t.Errorf("got length %v want 1", q.Len())
	}
}

func TestSetMRoundTrip(t *testing.T) {
	q := NewQ().SetAa(1, 1, 0, HalfPi).Unit()
	m := NewM3().SetQ(q)
	back := NewQ().SetM(m)
	// quaternion and its negation represent the same rotation.
	if !back.Aeq(q) {
		back.Neg()
	}
	if !back.Aeq(q) {
		t.Errorf("round trip through matrix got %+v want %+v", back, q)
	}
}
