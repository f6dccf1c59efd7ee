// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"
	"testing"

	"github.com/gazed/rigid/lin"
)

func sphereBodyAt(x, y, z, radius float64) *Body {
	b := newBody(NewSphereShape(radius), 1, 1)
	b.xf.Loc.SetS(x, y, z)
	b.xf.Refresh()
	return b
}

func planeBodyAt(x, y, z float64) *Body {
	b := newBody(NewPlaneShape(), 0, 0)
	b.xf.Loc.SetS(x, y, z)
	b.xf.Refresh()
	b.refreshCaches()
	return b
}

func cuboidBodyAt(x, y, z, dx, dy, dz float64) *Body {
	b := newBody(NewCuboidShape(dx, dy, dz), 1, 1)
	b.xf.Loc.SetS(x, y, z)
	b.xf.Refresh()
	return b
}

func TestSphereSphereContact(t *testing.T) {
	a := sphereBodyAt(0, 0, 0, 1)
	b := sphereBodyAt(0, 1.999, 0, 1)
	contacts := sphereSphere(a, b, nil)
	if len(contacts) != 1 {
		t.Fatalf("got %v contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if !lin.Aeq(c.Penetration, 0.001) {
		t.Errorf("penetration got %v want 0.001", c.Penetration)
	}
	if !c.Normal.Aeq(lin.NewV3S(0, 1, 0)) {
		t.Errorf("normal got %+v want (0,1,0)", c.Normal)
	}
	if !c.Point.Aeq(lin.NewV3S(0, 0.9995, 0)) {
		t.Errorf("point got %+v want (0,0.9995,0)", c.Point)
	}
}

func TestPlaneSphereContact(t *testing.T) {
	plane := planeBodyAt(0, 0, 0)
	sphere := sphereBodyAt(0, 0.9995, 0, 1)
	contacts := planeSphere(plane, sphere, nil)
	if len(contacts) != 1 {
		t.Fatalf("got %v contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if !lin.Aeq(c.Penetration, 0.0005) {
		t.Errorf("penetration got %v want 0.0005", c.Penetration)
	}
	if !c.Normal.Aeq(lin.NewV3S(0, -1, 0)) {
		t.Errorf("normal got %+v want (0,-1,0)", c.Normal)
	}
	if !c.Point.Aeq(lin.NewV3S(0, 0, 0)) {
		t.Errorf("point got %+v want origin", c.Point)
	}
	if c.A != sphere.id || c.B != BodyNone {
		t.Errorf("expected A=sphere, B=none, got A=%v B=%v", c.A, c.B)
	}
}

func TestPlaneCuboidFourCorners(t *testing.T) {
	plane := planeBodyAt(0, 0, 0)
	cuboid := cuboidBodyAt(0, 1, 0, 3, 3, 4)
	contacts := planeCuboid(plane, cuboid, nil)
	if len(contacts) != 4 {
		t.Fatalf("got %v contacts, want 4", len(contacts))
	}
	for _, c := range contacts {
		if !lin.Aeq(c.Penetration, 2) {
			t.Errorf("penetration got %v want 2", c.Penetration)
		}
		if !c.Normal.Aeq(lin.NewV3S(0, -1, 0)) {
			t.Errorf("normal got %+v want (0,-1,0)", c.Normal)
		}
		if !lin.Aeq(c.Point.Y, -1) {
			t.Errorf("contact point Y got %v want -1", c.Point.Y)
		}
	}
}

func TestSphereSphereNoContactWhenApart(t *testing.T) {
	a := sphereBodyAt(0, 0, 0, 1)
	b := sphereBodyAt(0, 5, 0, 1)
	contacts := sphereSphere(a, b, nil)
	if len(contacts) != 0 {
		t.Errorf("expected no contacts, got %v", len(contacts))
	}
}

func TestCuboidCuboidFaceContact(t *testing.T) {
	a := cuboidBodyAt(0, 0, 0, 1, 1, 1)
	b := cuboidBodyAt(0, 1.5, 0, 1, 1, 1)
	contacts := cuboidCuboid(a, b, nil)
	if len(contacts) != 1 {
		t.Fatalf("got %v contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if !lin.Aeq(c.Penetration, 0.5) {
		t.Errorf("penetration got %v want 0.5", c.Penetration)
	}
	if c.Normal.Y <= 0 {
		t.Errorf("expected normal pointing from a toward b (+Y), got %+v", c.Normal)
	}
}

// TestCuboidCuboidRotatedFaceContact exercises the SAT path with a cuboid
// rotated 45 degrees about Z, so that its separating face normal is the
// column (not row) of its world rotation matrix. b's local X axis then
// points along u = (cos45, sin45, 0); b is placed along u so that b's
// rotated face, not either cuboid's world-axis face, is the axis of least
// overlap, forcing the contact to depend on a correctly extracted column.
func TestCuboidCuboidRotatedFaceContact(t *testing.T) {
	a := cuboidBodyAt(0, 0, 0, 1, 1, 1)

	u := lin.NewV3S(math.Sqrt2/2, math.Sqrt2/2, 0)
	const centerDist = 2.0
	b := cuboidBodyAt(u.X*centerDist, u.Y*centerDist, u.Z*centerDist, 1, 1, 1)
	b.xf.Rot.SetAa(0, 0, 1, math.Pi/4)
	b.xf.Refresh()

	contacts := cuboidCuboid(a, b, nil)
	if len(contacts) != 1 {
		t.Fatalf("got %v contacts, want 1", len(contacts))
	}
	c := contacts[0]

	wantPenetration := math.Sqrt2 - 1
	if !lin.Aeq(c.Penetration, wantPenetration) {
		t.Errorf("penetration got %v want %v", c.Penetration, wantPenetration)
	}
	if !c.Normal.Aeq(u) {
		t.Errorf("normal got %+v want %+v", c.Normal, u)
	}
}
