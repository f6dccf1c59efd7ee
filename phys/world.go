// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gazed/rigid/lin"
)

// quatBetween returns the shortest-arc rotation that takes unit vector from
// to unit vector to. Falls back to an arbitrary perpendicular axis for the
// degenerate 180-degree case, where cross(from, to) has no defined direction.
func quatBetween(from, to *lin.V3) *lin.Q {
	axis := lin.NewV3().Cross(from, to)
	sin := axis.Len()
	cos := from.Dot(to)
	if sin < 1e-9 {
		if cos > 0 {
			return lin.NewQI()
		}
		perp, other := lin.NewV3(), lin.NewV3()
		from.Plane(perp, other)
		return lin.NewQ().SetAa(perp.X, perp.Y, perp.Z, math.Pi)
	}
	angle := math.Atan2(sin, cos)
	return lin.NewQ().SetAa(axis.X, axis.Y, axis.Z, angle)
}

// World owns a body catalogue, a broad-phase octree, and the per-step
// pipeline that advances them together. Bodies are only ever mutated from
// within Step, or from a host call between Step calls; nothing here is
// safe for concurrent use from multiple goroutines against the same World.
type World struct {
	cfg Config

	bodies map[ID]*Body
	planes []ID // boundary planes never move and never enter the octree.

	tree *Octree

	gravity *GravityGenerator

	Diag Diagnostics

	pairs    []Pair
	contacts []Contact
	queried  []ID
}

// NewWorld creates an empty World with the given broad-phase world bounds
// and options. Options override configDefaults field by field.
func NewWorld(bounds AABB, opts ...Option) *World {
	cfg := configDefaults
	for _, opt := range opts {
		opt(&cfg)
	}
	w := &World{
		cfg:     cfg,
		bodies:  map[ID]*Body{},
		tree:    NewOctree(bounds, cfg.octreeDepth),
		gravity: NewGravity(&cfg.gravity),
	}
	return w
}

// SpawnSphere creates a dynamic sphere body at loc with the given radius
// and mass, attaches the world's gravity generator, and registers it in
// the broad-phase. Returns an error if mass or radius is not strictly
// positive and finite.
func (w *World) SpawnSphere(loc *lin.V3, radius, mass float64) (ID, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return BodyNone, fmt.Errorf("phys.SpawnSphere: radius must be positive and finite, got %v", radius)
	}
	if !validMass(mass) {
		return BodyNone, fmt.Errorf("phys.SpawnSphere: mass must be positive and finite, got %v", mass)
	}
	b := newBody(NewSphereShape(radius), 1/mass, mass)
	b.xf.Loc.Set(loc)
	b.xf.Refresh()
	b.refreshInertiaWorld()
	b.Attach(w.gravity)
	w.register(b)
	w.tree.Insert(b.id, b.xf.Loc, radius)
	return b.id, nil
}

// SpawnCuboid creates a dynamic cuboid body at loc with the given
// half-extents and mass, attaches the world's gravity generator, and
// registers it in the broad-phase.
func (w *World) SpawnCuboid(loc *lin.V3, dx, dy, dz, mass float64) (ID, error) {
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return BodyNone, fmt.Errorf("phys.SpawnCuboid: half-extents must be positive, got (%v, %v, %v)", dx, dy, dz)
	}
	if !validMass(mass) {
		return BodyNone, fmt.Errorf("phys.SpawnCuboid: mass must be positive and finite, got %v", mass)
	}
	shape := NewCuboidShape(dx, dy, dz)
	b := newBody(shape, 1/mass, mass)
	b.xf.Loc.Set(loc)
	b.xf.Refresh()
	b.refreshInertiaWorld()
	b.Attach(w.gravity)
	w.register(b)
	w.tree.Insert(b.id, b.xf.Loc, shape.BoundingRadius)
	return b.id, nil
}

// SpawnBoundaryPlane creates a static half-space boundary body with the
// given world-space point and unit outward normal. Boundary planes are
// infinite and never enter the broad-phase octree; they are tested against
// every dynamic body resident in the region the octree's QueryPlane
// reports for them.
func (w *World) SpawnBoundaryPlane(point, normal *lin.V3) (ID, error) {
	if normal.AeqZ() {
		return BodyNone, fmt.Errorf("phys.SpawnBoundaryPlane: normal must be non-zero")
	}
	b := newBody(NewPlaneShape(), 0, 0)
	rot := quatBetween(lin.NewV3S(0, 1, 0), lin.NewV3().Set(normal).Unit())
	b.xf.SetVQ(point, rot)
	b.xf.Refresh()
	b.shape.refreshWorldNormal(b.xf.Rot)
	w.register(b)
	w.planes = append(w.planes, b.id)
	return b.id, nil
}

// AttachGenerator attaches an additional force/torque generator to an
// already-spawned body, e.g. Drag, Thrust, or Rotator. Returns an error if
// id does not name a body in this World.
func (w *World) AttachGenerator(id ID, g Generator) error {
	b, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("phys.AttachGenerator: unknown body id %v", id)
	}
	b.Attach(g)
	return nil
}

// Body returns the body registered under id, or nil if none exists.
func (w *World) Body(id ID) *Body { return w.bodies[id] }

func (w *World) register(b *Body) {
	w.bodies[b.id] = b
}

// Step advances the simulation by dt seconds, running the full pipeline in
// the defined stage order: generators accumulate force/torque, integration
// updates velocity then position, caches refresh, the broad-phase updates
// and reports candidate pairs, narrow-phase builds contacts, resolution
// applies impulses then penetration correction, caches refresh a second
// time to reflect the correction, and accumulators reset for the next step.
func (w *World) Step(dt float64) {
	w.Diag.reset()

	for _, b := range w.bodies {
		if b.shape.Kind == Plane {
			continue
		}
		b.applyGenerators()
		b.integrate(dt, w.cfg.damping, w.cfg.cutoffs)
		b.refreshCaches()
		w.tree.Update(b.id, b.xf.Loc, boundingRadius(b))
	}

	w.pairs = w.tree.Pairs()
	w.contacts = w.contacts[:0]
	for _, p := range w.pairs {
		a, b := w.bodies[p.A], w.bodies[p.B]
		if a == nil || b == nil {
			slog.Error("phys.World.Step: octree reported pair with unknown body", "a", p.A, "b", p.B)
			continue
		}
		w.contacts = generatePairContacts(a, b, w.contacts)
	}

	for _, planeID := range w.planes {
		plane := w.bodies[planeID]
		w.queried = w.tree.QueryPlane(w.queried[:0], plane.xf.Loc, plane.shape.WorldNormal)
		for _, id := range w.queried {
			body := w.bodies[id]
			w.contacts = generatePairContacts(plane, body, w.contacts)
		}
	}

	for i := range w.contacts {
		c := &w.contacts[i]
		bodyA := w.bodies[c.A]
		var bodyB *Body
		if c.B != BodyNone {
			bodyB = w.bodies[c.B]
		}
		resolveContact(c, bodyA, bodyB, w.cfg.resolve, &w.Diag)
	}

	for _, b := range w.bodies {
		if b.shape.Kind == Plane {
			continue
		}
		b.refreshCaches()
		w.tree.Update(b.id, b.xf.Loc, boundingRadius(b))
		b.resetAccumulators()
	}
}

// boundingRadius returns the radius of the bounding sphere the octree
// should use for body b: the shape's own radius for a sphere, the cached
// diagonal half-length for a cuboid.
func boundingRadius(b *Body) float64 {
	if b.shape.Kind == Sphere {
		return b.shape.Radius
	}
	return b.shape.BoundingRadius
}
