// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command drop is a minimal, non-interactive host for the rigid package:
// it spawns a boundary plane and a batch of randomly sized spheres above
// it, steps the simulation for a fixed number of frames, and reports how
// many bodies have settled near rest. It performs no rendering and reads
// no input; it exists to exercise phys.World's pipeline end to end.
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gazed/rigid/lin"
	"github.com/gazed/rigid/phys"
)

const (
	ballCount     = 200
	minRadius     = 0.5
	maxRadius     = 0.75
	minDropHeight = 10.0
	maxDropHeight = 30.0
	spread        = 20.0
	frames        = 600
	dt            = 1.0 / 60.0
)

func main() {
	bounds := phys.AABB{Center: lin.NewV3S(0, 0, 0), Extents: lin.NewV3S(50, 50, 50)}
	w := phys.NewWorld(bounds, phys.Gravity(0, -9.8, 0), phys.OctreeDepth(6))

	if _, err := w.SpawnBoundaryPlane(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 1, 0)); err != nil {
		log.Fatalf("drop: spawn boundary plane: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	ids := make([]phys.ID, 0, ballCount)
	for i := 0; i < ballCount; i++ {
		radius := minRadius + rng.Float64()*(maxRadius-minRadius)
		mass := radius * radius * radius
		loc := lin.NewV3S(
			(rng.Float64()*2-1)*spread,
			radius+minDropHeight+rng.Float64()*(maxDropHeight-minDropHeight),
			(rng.Float64()*2-1)*spread,
		)
		id, err := w.SpawnSphere(loc, radius, mass)
		if err != nil {
			log.Fatalf("drop: spawn sphere %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	for frame := 0; frame < frames; frame++ {
		w.Step(dt)
	}

	settled := 0
	for _, id := range ids {
		b := w.Body(id)
		if b.LinearVelocity().AeqZ() {
			settled++
		}
	}
	fmt.Printf("drop: %d bodies, %d settled after %d frames (%d skipped contacts, %d clamped corrections)\n",
		ballCount, settled, frames, w.Diag.SkippedContacts, w.Diag.ClampedCorrections)
}
