// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import "github.com/gazed/rigid/lin"

// Generator contributes force and/or torque to a body's accumulators each
// frame. Generators run after the transform cache is current, so they may
// read a body's orientation (e.g. to rotate a body-local thrust vector).
type Generator interface {
	Apply(b *Body)
}

// GravityGenerator adds a constant world-space force of mass*G to the force
// accumulator. It contributes no torque.
type GravityGenerator struct {
	G *lin.V3
}

// NewGravity returns a GravityGenerator using the given world-space
// acceleration vector (commonly (0, -9.8, 0) or similar).
func NewGravity(g *lin.V3) *GravityGenerator { return &GravityGenerator{G: lin.NewV3().Set(g)} }

// Apply implements Generator.
func (g *GravityGenerator) Apply(b *Body) {
	if b.IsStatic() {
		return
	}
	f := lin.NewV3().Scale(g.G, b.mass)
	b.force.Add(b.force, f)
}

// Drag adds aerodynamic drag opposing the body's linear velocity:
// -(k1*|v| + k2*|v|^2) * unit(v). Contributes no torque.
type Drag struct {
	K1, K2 float64
}

// NewDrag returns a Drag generator with the given linear and quadratic
// coefficients.
func NewDrag(k1, k2 float64) *Drag { return &Drag{K1: k1, K2: k2} }

// Apply implements Generator.
func (d *Drag) Apply(b *Body) {
	if b.IsStatic() {
		return
	}
	speed := b.linVel.Len()
	if speed == 0 {
		return
	}
	dir := lin.NewV3().Set(b.linVel).Unit()
	mag := -(d.K1*speed + d.K2*speed*speed)
	f := dir.Scale(dir, mag)
	b.force.Add(b.force, f)
}

// Thrust stores a cumulative world-space force vector added to the body's
// force accumulator every frame until the host disengages it. Multiple
// independent axes of thrust may be engaged and disengaged at once by
// calling Engage/Disengage with different directions.
type Thrust struct {
	vec *lin.V3
}

// NewThrust returns a Thrust generator with no force engaged.
func NewThrust() *Thrust { return &Thrust{vec: lin.NewV3()} }

// Engage adds magnitude*unit(direction) to the stored thrust vector.
func (t *Thrust) Engage(direction *lin.V3, magnitude float64) {
	unit := lin.NewV3().Set(direction).Unit()
	t.vec.Add(t.vec, unit.Scale(unit, magnitude))
}

// Disengage subtracts magnitude*unit(direction) from the stored thrust
// vector, undoing a prior Engage call with the same parameters.
func (t *Thrust) Disengage(direction *lin.V3, magnitude float64) {
	unit := lin.NewV3().Set(direction).Unit()
	t.vec.Sub(t.vec, unit.Scale(unit, magnitude))
}

// Apply implements Generator.
func (t *Thrust) Apply(b *Body) {
	if b.IsStatic() {
		return
	}
	b.force.Add(b.force, t.vec)
}

// Rotator applies a constant couple (pure torque, zero net force) about a
// fixed body-local axis. It is implemented as two equal, opposite forces
// at two equal, opposite body-local positions so that the resulting
// moment is 2*(position x force), matching the general off-centre force
// accumulation path rather than writing directly to the torque accumulator.
type Rotator struct {
	p *lin.V3 // body-local application point, +axis side.
	f *lin.V3 // body-local force, applied at +p and negated at -p.
}

// NewRotator returns a Rotator producing a couple of the given magnitude
// about the given body-local axis (need not be unit length).
func NewRotator(axis *lin.V3, magnitude float64) *Rotator {
	n := lin.NewV3().Set(axis).Unit()
	p, q := lin.NewV3(), lin.NewV3()
	n.Plane(p, q)
	f := q.Scale(q, magnitude/2)
	return &Rotator{p: p, f: f}
}

// Apply implements Generator.
func (r *Rotator) Apply(b *Body) {
	if b.IsStatic() {
		return
	}
	negP := lin.NewV3().Neg(r.p)
	negF := lin.NewV3().Neg(r.f)
	b.AddForceAtBodyPoint(r.f, r.p)
	b.AddForceAtBodyPoint(negF, negP)
}
