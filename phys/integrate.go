// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"

	"github.com/gazed/rigid/lin"
)

// Damping holds the per-second velocity damping factors applied every step.
type Damping struct {
	Linear  float64 // default 0.999
	Angular float64 // default 0.9
}

// Cutoffs holds the low-velocity and low-rotation thresholds used by the
// integrator and the interpenetration correction.
type Cutoffs struct {
	LowVelocitySqr float64 // default 0.1; below this |v|^2, v is zeroed.
	LowRotation    float64 // default 1e-4; below this, angular correction is skipped.
}

// integrate advances b's velocity, orientation and position by dt using
// semi-implicit Euler: velocity is updated from the current accumulators
// first, then position/orientation from the new velocity. Infinite-mass
// bodies are skipped entirely; their transform never changes here.
func (b *Body) integrate(dt float64, d Damping, c Cutoffs) {
	if b.IsStatic() {
		return
	}

	accel := lin.NewV3().Scale(b.force, b.invMass)
	b.linVel.Add(b.linVel, accel.Scale(accel, dt))

	angAccel := lin.NewV3().MultMv(b.invInertiaWorld, b.torque)
	b.angVel.Add(b.angVel, angAccel.Scale(angAccel, dt))

	linDamp := math.Pow(d.Linear, dt)
	angDamp := math.Pow(d.Angular, dt)
	b.linVel.Scale(b.linVel, linDamp)
	b.angVel.Scale(b.angVel, angDamp)

	q := b.xf.Rot
	aux := lin.NewQ().SetS(b.angVel.X, b.angVel.Y, b.angVel.Z, 0)
	dq := lin.NewQ().Mult(aux, q)
	q.X += 0.5 * dt * dq.X
	q.Y += 0.5 * dt * dq.Y
	q.Z += 0.5 * dt * dq.Z
	q.W += 0.5 * dt * dq.W
	q.Unit()

	b.xf.Loc.Add(b.xf.Loc, lin.NewV3().Scale(b.linVel, dt))

	if b.linVel.LenSqr() < c.LowVelocitySqr {
		b.linVel.SetS(0, 0, 0)
	}
}
