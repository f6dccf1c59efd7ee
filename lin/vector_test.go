// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

// While the functions below are not complicated, they are foundational such
// that it is better to test each one of them than have the bugs discovered
// later from contact or integration code.

func TestSetV3(t *testing.T) {
	v, a := &V3{}, &V3{1, 2, 3}
	if !v.Set(a).Eq(a) {
		t.Errorf("%+v is not the same as %+v", v, a)
	}
}

func TestAddV3(t *testing.T) {
	v, a, b, want := &V3{}, &V3{1, 2, 3}, &V3{4, 5, 6}, &V3{5, 7, 9}
	if !v.Add(a, b).Eq(want) {
		t.Errorf("got %+v want %+v", v, want)
	}
}

func TestSubV3(t *testing.T) {
	v, a, b, want := &V3{}, &V3{4, 5, 6}, &V3{1, 2, 3}, &V3{3, 3, 3}
	if !v.Sub(a, b).Eq(want) {
		t.Errorf("got %+v want %+v", v, want)
	}
}

func TestScaleV3(t *testing.T) {
	v, a, want := &V3{}, &V3{1, 2, 3}, &V3{2, 4, 6}
	if !v.Scale(a, 2).Eq(want) {
		t.Errorf("got %+v want %+v", v, want)
	}
}

func TestDotV3(t *testing.T) {
	a, b := &V3{1, 0, 0}, &V3{0, 1, 0}
	if got := a.Dot(b); got != 0 {
		t.Errorf("got %v want 0", got)
	}
	if got := a.Dot(a); got != 1 {
		t.Errorf("got %v want 1", got)
	}
}

func TestCrossV3(t *testing.T) {
	v, x, y, want := &V3{}, &V3{1, 0, 0}, &V3{0, 1, 0}, &V3{0, 0, 1}
	if !v.Cross(x, y).Eq(want) {
		t.Errorf("got %+v want %+v", v, want)
	}
}

func TestLenV3(t *testing.T) {
	v := &V3{3, 4, 0}
	if got := v.Len(); !Aeq(got, 5) {
		t.Errorf("got %v want 5", got)
	}
}

func TestUnitV3(t *testing.T) {
	v := &V3{0, 0, 0}
	if v.Unit().Len() != 0 {
		t.Errorf("unit of a zero vector should stay zero")
	}
	v = &V3{5, 0, 0}
	if got := v.Unit().Len(); !Aeq(got, 1) {
		t.Errorf("got %v want 1", got)
	}
}

func TestPlaneV3(t *testing.T) {
	n, p, q := &V3{0, 0, 1}, &V3{}, &V3{}
	n.Plane(p, q)
	if !Aeq(p.Dot(n), 0) || !Aeq(q.Dot(n), 0) {
		t.Errorf("plane vectors %+v %+v are not perpendicular to %+v", p, q, n)
	}
	if !Aeq(p.Dot(q), 0) {
		t.Errorf("plane vectors %+v %+v are not perpendicular to each other", p, q)
	}
}

func TestMultQV3(t *testing.T) {
	v, a, q, want := &V3{}, &V3{1, 0, 0}, NewQI().SetAa(0, 0, 1, HalfPi), &V3{0, 1, 0}
	if !v.MultQ(a, q).Aeq(want) {
		t.Errorf("got %+v want %+v", v, want)
	}
}
