// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import "github.com/gazed/rigid/lin"

// Contact records a single point of contact found by narrow-phase. It is
// transient: produced during narrow-phase and consumed during resolution
// within the same step, never carried across frames.
type Contact struct {
	A, B ID // B is BodyNone when the other party is an immovable half-space.

	Normal      lin.V3 // unit, points from A toward B (or away from a plane surface).
	Penetration float64

	Point  lin.V3 // world-space contact point.
	OffsetA lin.V3 // Point - bodyA.Transform().Loc.
	OffsetB lin.V3 // Point - bodyB.Transform().Loc; unused when B == BodyNone.
}

// BodyNone is the sentinel identifier for "no second body" in a Contact
// generated against an immovable half-space.
const BodyNone ID = 0
