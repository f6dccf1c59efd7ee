// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"

	"github.com/gazed/rigid/lin"
)

// ResolveConfig holds the tunables the resolution stage needs beyond what
// is already cached on each body.
type ResolveConfig struct {
	Restitution       float64 // default 1.0
	LowRotation       float64 // default 1e-4
	AngularLimitFactor float64 // default 0.2
}

// contactBasis is the orthonormal frame built from a contact normal: n is
// the first axis, t1/t2 complete a right-handed basis. World vectors are
// projected into this frame by dotting with each axis; contact-space
// vectors are recovered by the corresponding linear combination.
type contactBasis struct {
	n, t1, t2 lin.V3
}

// buildContactBasis implements the spec's step 1: choose the global axis
// (X or Y) least aligned with n, Gram-Schmidt it against n, then cross for
// the third axis.
func buildContactBasis(n *lin.V3) contactBasis {
	var axis lin.V3
	if math.Abs(n.X) < math.Abs(n.Y) {
		axis = lin.V3{X: 1}
	} else {
		axis = lin.V3{Y: 1}
	}
	t1 := lin.NewV3().Scale(n, axis.Dot(n))
	t1.Sub(&axis, t1)
	t1.Unit()
	t2 := lin.NewV3().Cross(n, t1)
	return contactBasis{n: *n, t1: *t1, t2: *t2}
}

// angularInertiaAlongNormal computes ((Iw^-1 . (r x n)) x r) . n, the
// angular-inertia contribution shared by the impulse denominator and the
// interpenetration correction.
func angularInertiaAlongNormal(invInertiaWorld *lin.M3, r, n *lin.V3) float64 {
	rxn := lin.NewV3().Cross(r, n)
	iw := lin.NewV3().MultMv(invInertiaWorld, rxn)
	return lin.NewV3().Cross(iw, r).Dot(n)
}

// resolveContact applies the spec's two-stage resolution (impulse, then
// interpenetration correction) to a single contact. bodyA is always
// present; bodyB is nil when the contact is against an immovable plane.
// diag may be nil; when non-nil it accumulates skipped-contact and
// clamped-correction counts for host observability.
// Returns false if the contact had to be skipped per the spec's failure
// semantics (non-positive impulse denominator).
func resolveContact(c *Contact, bodyA, bodyB *Body, cfg ResolveConfig, diag *Diagnostics) bool {
	// Contacts are frictionless, so only the basis's normal axis (t1/t2
	// never consumed) is actually needed; it is still built explicitly to
	// keep the contact frame well defined for a future friction pass.
	cb := buildContactBasis(&c.Normal)
	n := &cb.n
	rA := &c.OffsetA
	angularA := angularInertiaAlongNormal(bodyA.invInertiaWorld, rA, n)
	denom := bodyA.invMass + angularA

	var rB lin.V3
	var angularB float64
	if bodyB != nil {
		rB = c.OffsetB
		angularB = angularInertiaAlongNormal(bodyB.invInertiaWorld, &rB, n)
		denom += bodyB.invMass + angularB
	}
	if denom <= 0 {
		if diag != nil {
			diag.SkippedContacts++
		}
		return false
	}

	velA := lin.NewV3().Cross(bodyA.angVel, rA)
	velA.Add(velA, bodyA.linVel)
	closing := velA.Dot(n)
	if bodyB != nil {
		velB := lin.NewV3().Cross(bodyB.angVel, &rB)
		velB.Add(velB, bodyB.linVel)
		closing -= velB.Dot(n)
	}

	dv := (1 + cfg.Restitution) * closing
	j := dv / denom
	if j < 0 {
		j = 0
	}

	applyImpulse(bodyA, rA, n, -j)
	if bodyB != nil {
		applyImpulse(bodyB, &rB, n, j)
	}

	linearA := bodyA.invMass
	total := linearA + angularA
	if bodyB != nil {
		total += bodyB.invMass + angularB
	}
	if total <= 0 {
		return true
	}
	T := 1 / total

	if applyCorrection(bodyA, rA, n, c.Penetration, linearA, angularA, T, -1, cfg) && diag != nil {
		diag.ClampedCorrections++
	}
	if bodyB != nil {
		if applyCorrection(bodyB, &rB, n, c.Penetration, bodyB.invMass, angularB, T, 1, cfg) && diag != nil {
			diag.ClampedCorrections++
		}
	}
	return true
}

// applyImpulse updates b's linear and angular velocity from a normal
// impulse of magnitude signedJ (already carrying the per-body sign: -j for
// the "A" role, +j for the "B" role) applied at offset r from centre.
func applyImpulse(b *Body, r, n *lin.V3, signedJ float64) {
	impulse := lin.NewV3().Scale(n, signedJ)
	dv := lin.NewV3().Scale(impulse, b.invMass)
	b.linVel.Add(b.linVel, dv)

	torqueImpulse := lin.NewV3().Cross(r, impulse)
	dw := lin.NewV3().MultMv(b.invInertiaWorld, torqueImpulse)
	b.angVel.Add(b.angVel, dw)
}

// applyCorrection distributes interpenetration correction to body b: sign
// is -1 for the "A" role (moves away along -n) and +1 for the "B" role
// (moves away along +n), matching the direction convention used by
// applyImpulse. Returns true if the angular correction hit its limit and
// had to transfer surplus into the linear term.
func applyCorrection(b *Body, r, n *lin.V3, penetration, linear, angular, T, sign float64, cfg ResolveConfig) bool {
	dl := penetration * linear * T
	da := penetration * angular * T

	rLen := r.Len()
	limit := cfg.AngularLimitFactor * rLen
	clamped := false
	if math.Abs(da) > limit {
		c := math.Copysign(limit, da)
		dl += math.Abs(da) - math.Abs(c)
		da = c
		clamped = true
	}

	b.xf.Loc.Add(b.xf.Loc, lin.NewV3().Scale(n, sign*dl))

	if math.Abs(angular) >= cfg.LowRotation {
		rxn := lin.NewV3().Cross(r, n)
		iw := lin.NewV3().MultMv(b.invInertiaWorld, rxn)
		iw.Scale(iw, sign*da/angular)

		q := b.xf.Rot
		aux := lin.NewQ().SetS(iw.X, iw.Y, iw.Z, 0)
		dq := lin.NewQ().Mult(q, aux)
		q.X += 0.5 * dq.X
		q.Y += 0.5 * dq.Y
		q.Z += 0.5 * dq.Z
		q.W += 0.5 * dq.W
		q.Unit()
	}
	return clamped
}
