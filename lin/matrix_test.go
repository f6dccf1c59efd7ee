// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestM3Identity(t *testing.T) {
	m := NewM3I()
	if m.Xx != 1 || m.Yy != 1 || m.Zz != 1 {
		t.Errorf("identity matrix got %+v", m)
	}
}

func TestM3MultIdentity(t *testing.T) {
	m, i, a := NewM3(), NewM3I(), &M3{Xx: 1, Xy: 2, Xz: 3, Yx: 4, Yy: 5, Yz: 6, Zx: 7, Zy: 8, Zz: 9}
	if !m.Mult(i, a).Eq(a) {
		t.Errorf("identity multiplication should be a no-op, got %+v want %+v", m, a)
	}
}

func TestM3Transpose(t *testing.T) {
	a := &M3{Xx: 1, Xy: 2, Xz: 3, Yx: 4, Yy: 5, Yz: 6, Zx: 7, Zy: 8, Zz: 9}
	m := NewM3().Transpose(a)
	want := &M3{Xx: 1, Xy: 4, Xz: 7, Yx: 2, Yy: 5, Yz: 8, Zx: 3, Zy: 6, Zz: 9}
	if !m.Eq(want) {
		t.Errorf("got %+v want %+v", m, want)
	}
}

func TestM3Inv(t *testing.T) {
	// a diagonal matrix is its own easiest inverse check.
	a := &M3{Xx: 2, Yy: 4, Zz: 8}
	m := NewM3().Inv(a)
	want := &M3{Xx: 0.5, Yy: 0.25, Zz: 0.125}
	if !m.Aeq(want) {
		t.Errorf("got %+v want %+v", m, want)
	}
	check := NewM3().Mult(a, m)
	if !check.Aeq(NewM3I()) {
		t.Errorf("a * inv(a) should be identity, got %+v", check)
	}
}

func TestM3SetQRotation(t *testing.T) {
	q := NewQ().SetAa(0, 0, 1, HalfPi)
	m := NewM3().SetQ(q)
	v := NewV3().MultMv(m, NewV3S(1, 0, 0))
	want := NewV3S(0, 1, 0)
	if !v.Aeq(want) {
		t.Errorf("got %+v want %+v", v, want)
	}
}

func TestM3SetSkewSymCrossEquivalence(t *testing.T) {
	a, b := NewV3S(1, 2, 3), NewV3S(-3, 0, 2)
	m := NewM3().SetSkewSym(a)
	got := NewV3().MultMv(m, b)
	want := NewV3().Cross(a, b)
	if !got.Aeq(want) {
		t.Errorf("skew-symmetric product got %+v want %+v", got, want)
	}
}

func TestM4SetTransformInverse(t *testing.T) {
	q := NewQ().SetAa(0, 1, 0, HalfPi)
	loc := NewV3S(1, 2, 3)
	fwd := NewM4().SetTransform(q, loc)
	inv := NewM4().SetInvTransform(q, loc)
	check := NewM4().Mult(fwd, inv)
	if !check.Aeq(NewM4I()) {
		t.Errorf("fwd * inv should be identity, got %+v", check)
	}
}
