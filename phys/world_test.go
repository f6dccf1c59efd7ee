// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/gazed/rigid/lin"
)

func testBounds() AABB {
	return AABB{Center: lin.NewV3S(0, 0, 0), Extents: lin.NewV3S(50, 50, 50)}
}

func TestNewWorldAppliesOptions(t *testing.T) {
	w := NewWorld(testBounds(), Gravity(0, -3, 0), OctreeDepth(3), Restitution(0.5))
	if !lin.Aeq(w.cfg.gravity.Y, -3) {
		t.Errorf("gravity.Y got %v want -3", w.cfg.gravity.Y)
	}
	if w.cfg.octreeDepth != 3 {
		t.Errorf("octreeDepth got %v want 3", w.cfg.octreeDepth)
	}
	if !lin.Aeq(w.cfg.resolve.Restitution, 0.5) {
		t.Errorf("restitution got %v want 0.5", w.cfg.resolve.Restitution)
	}
}

func TestSpawnSphereRejectsInvalidInput(t *testing.T) {
	w := NewWorld(testBounds())
	if _, err := w.SpawnSphere(lin.NewV3(), 0, 1); err == nil {
		t.Errorf("expected error for zero radius")
	}
	if _, err := w.SpawnSphere(lin.NewV3(), 1, -1); err == nil {
		t.Errorf("expected error for negative mass")
	}
	if _, err := w.SpawnSphere(lin.NewV3(), 1, 1); err != nil {
		t.Errorf("unexpected error for valid input: %v", err)
	}
}

func TestAttachGeneratorUnknownID(t *testing.T) {
	w := NewWorld(testBounds())
	if err := w.AttachGenerator(ID(999), NewDrag(0.1, 0.1)); err == nil {
		t.Errorf("expected error for unknown body id")
	}
}

func TestStepAppliesGravityToFallingSphere(t *testing.T) {
	w := NewWorld(testBounds(), Gravity(0, -10, 0))
	id, err := w.SpawnSphere(lin.NewV3S(0, 10, 0), 1, 1)
	if err != nil {
		t.Fatalf("SpawnSphere: %v", err)
	}
	w.Step(0.1)
	b := w.Body(id)
	if b.LinearVelocity().Y >= 0 {
		t.Errorf("expected downward velocity after one step, got %v", b.LinearVelocity().Y)
	}
	if b.Transform().Loc.Y >= 10 {
		t.Errorf("expected sphere to have fallen, got Y=%v", b.Transform().Loc.Y)
	}
}

func TestStepSettlesSphereOnBoundaryPlane(t *testing.T) {
	w := NewWorld(testBounds(), Gravity(0, -10, 0))
	if _, err := w.SpawnBoundaryPlane(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 1, 0)); err != nil {
		t.Fatalf("SpawnBoundaryPlane: %v", err)
	}
	id, err := w.SpawnSphere(lin.NewV3S(0, 1.2, 0), 1, 1)
	if err != nil {
		t.Fatalf("SpawnSphere: %v", err)
	}
	for i := 0; i < 200; i++ {
		w.Step(1.0 / 60.0)
	}
	b := w.Body(id)
	if b.Transform().Loc.Y < 0.9 || b.Transform().Loc.Y > 1.1 {
		t.Errorf("expected sphere to settle near Y=1, got %v", b.Transform().Loc.Y)
	}
}

func TestStepDiagnosticsCountersNonNegative(t *testing.T) {
	w := NewWorld(testBounds())
	if _, err := w.SpawnBoundaryPlane(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 1, 0)); err != nil {
		t.Fatalf("SpawnBoundaryPlane: %v", err)
	}
	// A zero-mass "dynamic" sphere cannot occur through SpawnSphere (mass is
	// validated), so this exercises the ordinary resting case instead: the
	// diagnostics counters must at least be readable and never negative.
	if _, err := w.SpawnSphere(lin.NewV3S(0, 0.5, 0), 1, 1); err != nil {
		t.Fatalf("SpawnSphere: %v", err)
	}
	w.Step(1.0 / 60.0)
	if w.Diag.SkippedContacts < 0 || w.Diag.ClampedCorrections < 0 {
		t.Errorf("diagnostics counters should never be negative")
	}
}
