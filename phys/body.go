// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"
	"sync"

	"github.com/gazed/rigid/lin"
)

// ID identifies a Body within a World's catalogue. Contacts and the octree
// hold IDs, never Body pointers, so that resolution always re-looks up
// current body state rather than risking a stale reference.
type ID uint32

var nextID uint32
var nextIDMu sync.Mutex

// allocID hands out monotonically increasing body identifiers across the
// process. A plain mutex-guarded counter is enough: body creation happens
// between frames, never inside the hot per-frame pipeline.
func allocID() ID {
	nextIDMu.Lock()
	defer nextIDMu.Unlock()
	nextID++
	return ID(nextID)
}

// Body is a simulated rigid object: one set of the attribute records the
// pipeline reads and writes each frame. The host never mutates these
// fields directly mid-frame; it spawns bodies through a World and mutates
// generator state (e.g. thrust) only between frames.
type Body struct {
	id ID

	shape Shape
	xf    *lin.T // translation + rotation, with cached forward/inverse matrices.

	invMass float64 // 0 means infinite mass (immovable).
	mass    float64 // only meaningful when invMass != 0.

	linVel *lin.V3
	angVel *lin.V3

	force  *lin.V3
	torque *lin.V3

	inertiaLocal    *lin.M3 // body-local inertia tensor.
	invInertiaLocal *lin.M3 // cached inverse of inertiaLocal.
	invInertiaWorld *lin.M3 // cached R * invInertiaLocal * R^-1, refreshed on cache-refresh.

	generators []Generator

	nodeIdx int // resident octree node index, -1 if not in the tree.
}

// ID returns the body's catalogue identifier.
func (b *Body) ID() ID { return b.id }

// Shape returns the body's collider.
func (b *Body) Shape() *Shape { return &b.shape }

// Transform returns the body's transform. Callers must not mutate it
// outside of the pipeline stage responsible for the change.
func (b *Body) Transform() *lin.T { return b.xf }

// InvMass returns the body's inverse mass; zero denotes infinite mass.
func (b *Body) InvMass() float64 { return b.invMass }

// IsStatic reports whether the body has infinite mass.
func (b *Body) IsStatic() bool { return b.invMass == 0 }

// LinearVelocity returns the body's linear velocity vector.
func (b *Body) LinearVelocity() *lin.V3 { return b.linVel }

// AngularVelocity returns the body's angular velocity vector.
func (b *Body) AngularVelocity() *lin.V3 { return b.angVel }

// InvInertiaWorld returns the cached world-space inverse inertia tensor.
func (b *Body) InvInertiaWorld() *lin.M3 { return b.invInertiaWorld }

// Attach adds a force/torque generator to the body. Generators run in
// attach order every frame until the body is destroyed.
func (b *Body) Attach(g Generator) { b.generators = append(b.generators, g) }

// applyGenerators runs every attached generator against the body's
// current state, accumulating into force/torque. Generators that rely on
// the transform assume the transform cache is already current.
func (b *Body) applyGenerators() {
	for _, g := range b.generators {
		g.Apply(b)
	}
}

// newBody allocates the common Body fields shared by all shape kinds.
func newBody(shape Shape, invMass, mass float64) *Body {
	b := &Body{
		id:              allocID(),
		shape:           shape,
		xf:              lin.NewT(),
		invMass:         invMass,
		mass:            mass,
		linVel:          lin.NewV3(),
		angVel:          lin.NewV3(),
		force:           lin.NewV3(),
		torque:          lin.NewV3(),
		inertiaLocal:    lin.NewM3(),
		invInertiaLocal: lin.NewM3(),
		invInertiaWorld: lin.NewM3(),
		nodeIdx:         -1,
	}
	if invMass != 0 {
		shape.Inertia(mass, b.inertiaLocal)
		b.invInertiaLocal.Inv(b.inertiaLocal)
	}
	b.xf.Refresh()
	b.refreshInertiaWorld()
	return b
}

// refreshInertiaWorld recomputes the world-space inverse inertia tensor
// as R * invInertiaLocal * R^T.
func (b *Body) refreshInertiaWorld() {
	if b.invMass == 0 {
		return
	}
	rot := lin.NewM3().SetM4(b.xf.Fwd)
	tmp := lin.NewM3().Mult(b.invInertiaLocal, lin.NewM3().Transpose(rot))
	b.invInertiaWorld.Mult(rot, tmp)
}

// refreshCaches re-derives every cached value that depends on this body's
// transform: the transform's forward/inverse matrices, the world-space
// inverse inertia tensor, and (for boundary planes) the plane's
// world-space normal. Must run after integration and before narrow-phase.
func (b *Body) refreshCaches() {
	b.xf.Refresh()
	b.refreshInertiaWorld()
	if b.shape.Kind == Plane {
		b.shape.refreshWorldNormal(b.xf.Rot)
	}
}

// worldOffset returns the world-space vector from the body's centre of
// mass to world point p (i.e. p - body.Loc), the "r" in r x n formulas.
func (b *Body) worldOffset(p *lin.V3, out *lin.V3) *lin.V3 {
	return out.Sub(p, b.xf.Loc)
}

// AddForceAtBodyPoint transforms a body-local force and a body-local
// application point to world coordinates and accumulates force on the
// force accumulator and (world_point - centre) x force on the torque
// accumulator. Used by generators (Rotator) that apply an off-centre
// force rather than a pure linear force.
func (b *Body) AddForceAtBodyPoint(localForce, localPoint *lin.V3) {
	worldForce := lin.NewV3().MultvQ(localForce, b.xf.Rot)
	worldPoint := lin.NewV3().AppT(b.xf, localPoint)
	b.force.Add(b.force, worldForce)

	r := lin.NewV3().Sub(worldPoint, b.xf.Loc)
	t := lin.NewV3().Cross(r, worldForce)
	b.torque.Add(b.torque, t)
}

// resetAccumulators zeroes the force and torque accumulators. Called once
// per frame after resolution, per the stage ordering.
func (b *Body) resetAccumulators() {
	b.force.SetS(0, 0, 0)
	b.torque.SetS(0, 0, 0)
}

// validMass reports whether mass is strictly positive, finite and normal.
func validMass(mass float64) bool {
	return mass >= 0x1p-1022 && !math.IsNaN(mass) && !math.IsInf(mass, 0) // 0x1p-1022: smallest normal float64.
}
