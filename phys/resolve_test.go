// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/gazed/rigid/lin"
)

func defaultResolveConfig() ResolveConfig {
	return ResolveConfig{Restitution: 1.0, LowRotation: 1e-4, AngularLimitFactor: 0.2}
}

func TestResolveSphereRestingOnPlane(t *testing.T) {
	plane := planeBodyAt(0, 0, 0)
	sphere := sphereBodyAt(0, 0.9995, 0, 1)

	contacts := planeSphere(plane, sphere, nil)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %v", len(contacts))
	}
	c := contacts[0]

	ok := resolveContact(&c, sphere, nil, defaultResolveConfig(), nil)
	if !ok {
		t.Fatalf("resolveContact reported failure")
	}
	if !lin.Aeq(sphere.xf.Loc.Y, 1.0) {
		t.Errorf("sphere.Loc.Y got %v want 1.0", sphere.xf.Loc.Y)
	}
	if !sphere.linVel.AeqZ() {
		t.Errorf("expected unchanged (zero) velocity, got %+v", sphere.linVel)
	}
}

func TestResolveSphereSpherePushesApart(t *testing.T) {
	a := sphereBodyAt(0, 0, 0, 1)
	b := sphereBodyAt(0, 1.999, 0, 1)

	contacts := sphereSphere(a, b, nil)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %v", len(contacts))
	}
	c := contacts[0]

	ok := resolveContact(&c, a, b, defaultResolveConfig(), nil)
	if !ok {
		t.Fatalf("resolveContact reported failure")
	}
	if a.xf.Loc.Y >= 0 {
		t.Errorf("expected body a to move down (away from b), got Y=%v", a.xf.Loc.Y)
	}
	if b.xf.Loc.Y <= 1.999 {
		t.Errorf("expected body b to move up (away from a), got Y=%v", b.xf.Loc.Y)
	}
	newDist := b.xf.Loc.Y - a.xf.Loc.Y
	if newDist <= 1.999 {
		t.Errorf("expected separation to increase, got new distance %v", newDist)
	}
}

func TestResolveSkipsNonPositiveDenominator(t *testing.T) {
	plane := planeBodyAt(0, 0, 0)
	c := Contact{A: plane.id, B: BodyNone, Penetration: 0.1}
	c.Normal.SetS(0, -1, 0)
	var diag Diagnostics
	ok := resolveContact(&c, plane, nil, defaultResolveConfig(), &diag)
	if ok {
		t.Errorf("expected resolveContact to report failure for a static body with zero inverse mass")
	}
	if diag.SkippedContacts != 1 {
		t.Errorf("diag.SkippedContacts got %v want 1", diag.SkippedContacts)
	}
}

func TestResolveClampsLargeAngularCorrection(t *testing.T) {
	a := cuboidBodyAt(0, 0, 0, 1, 1, 1)
	b := cuboidBodyAt(0, 1.5, 0, 1, 1, 1)

	contacts := cuboidCuboid(a, b, nil)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %v", len(contacts))
	}
	c := contacts[0]
	c.Penetration = 5.0 // exaggerated to force the angular-limit clamp.

	cfg := defaultResolveConfig()
	cfg.AngularLimitFactor = 1e-6
	var diag Diagnostics
	ok := resolveContact(&c, a, b, cfg, &diag)
	if !ok {
		t.Fatalf("resolveContact reported failure")
	}
	if diag.ClampedCorrections == 0 {
		t.Errorf("expected at least one clamped correction to be counted")
	}
}
