// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/gazed/rigid/lin"
)

func noDamping() Damping { return Damping{Linear: 1.0, Angular: 1.0} }
func noCutoff() Cutoffs  { return Cutoffs{LowVelocitySqr: 0, LowRotation: 1e-4} }

func TestIntegrateFallingSphere(t *testing.T) {
	b := newBody(NewSphereShape(1), 1, 1)
	b.xf.Loc.SetS(0, 10, 0)
	g := NewGravity(lin.NewV3S(0, -20, 0))

	dt := 1.0 / 60.0
	g.Apply(b)
	b.integrate(dt, noDamping(), noCutoff())

	wantVy := -20.0 / 60.0
	wantY := 10 - 20.0/3600.0
	if !lin.Aeq(b.linVel.Y, wantVy) {
		t.Errorf("velocity.Y got %v want %v", b.linVel.Y, wantVy)
	}
	if !lin.Aeq(b.xf.Loc.Y, wantY) {
		t.Errorf("position.Y got %v want %v", b.xf.Loc.Y, wantY)
	}
}

func TestIntegrateSkipsStaticBody(t *testing.T) {
	b := newBody(NewPlaneShape(), 0, 0)
	b.force.SetS(0, -1, 0)
	b.integrate(1.0/60.0, noDamping(), noCutoff())
	if !b.xf.Loc.AeqZ() {
		t.Errorf("static body moved: %+v", b.xf.Loc)
	}
}

func TestIntegrateLowVelocityCutoff(t *testing.T) {
	b := newBody(NewSphereShape(1), 1, 1)
	b.linVel.SetS(0.01, 0, 0)
	b.integrate(1.0/60.0, noDamping(), Cutoffs{LowVelocitySqr: 0.1, LowRotation: 1e-4})
	if !b.linVel.AeqZ() {
		t.Errorf("low velocity was not cut off: %+v", b.linVel)
	}
}

func TestIntegrateKeepsRotationNormalized(t *testing.T) {
	b := newBody(NewSphereShape(1), 1, 1)
	b.angVel.SetS(0, 3, 0)
	for i := 0; i < 10; i++ {
		b.integrate(1.0/60.0, noDamping(), noCutoff())
	}
	if !lin.Aeq(b.xf.Rot.Len(), 1) {
		t.Errorf("rotation quaternion not unit length: got len %v", b.xf.Rot.Len())
	}
}
