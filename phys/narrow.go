// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"

	"github.com/gazed/rigid/lin"
)

// edgeParallelThreshold is the minimum squared length of a SAT edge-cross
// axis below which the axis is treated as degenerate (near-parallel edges)
// and skipped.
const edgeParallelThreshold = 1e-3

// generatePairContacts dispatches on the shape kinds of a and b and returns
// zero or more contacts. The pair is tried in both orders so that every
// shape combination only needs one concrete test.
func generatePairContacts(a, b *Body, out []Contact) []Contact {
	switch {
	case a.shape.Kind == Sphere && b.shape.Kind == Sphere:
		return sphereSphere(a, b, out)
	case a.shape.Kind == Plane && b.shape.Kind == Sphere:
		return planeSphere(a, b, out)
	case a.shape.Kind == Sphere && b.shape.Kind == Plane:
		return planeSphere(b, a, out)
	case a.shape.Kind == Sphere && b.shape.Kind == Cuboid:
		return sphereCuboid(a, b, out)
	case a.shape.Kind == Cuboid && b.shape.Kind == Sphere:
		return sphereCuboid(b, a, out)
	case a.shape.Kind == Plane && b.shape.Kind == Cuboid:
		return planeCuboid(a, b, out)
	case a.shape.Kind == Cuboid && b.shape.Kind == Plane:
		return planeCuboid(b, a, out)
	case a.shape.Kind == Cuboid && b.shape.Kind == Cuboid:
		return cuboidCuboid(a, b, out)
	}
	return out
}

// sphereSphere implements the spec's sphere-sphere analytic test. The
// normal is fixed to point along the midline from body a toward body b.
func sphereSphere(a, b *Body, out []Contact) []Contact {
	midline := lin.NewV3().Sub(b.xf.Loc, a.xf.Loc)
	d := midline.Len()
	s := a.shape.Radius + b.shape.Radius
	if d <= 0 || d >= s {
		return out
	}
	n := lin.NewV3().Scale(midline, 1/d)
	point := lin.NewV3().Add(a.xf.Loc, lin.NewV3().Scale(midline, 0.5))

	c := Contact{A: a.id, B: b.id, Penetration: s - d}
	c.Normal.Set(n)
	c.Point.Set(point)
	c.OffsetA.Sub(point, a.xf.Loc)
	c.OffsetB.Sub(point, b.xf.Loc)
	return append(out, c)
}

// planeSphere implements the spec's half-space-sphere test. plane must be
// the Plane-shaped body; sphere the Sphere-shaped body. The contact's A is
// always the sphere (the only movable party); B is BodyNone.
func planeSphere(plane, sphere *Body, out []Contact) []Contact {
	d := plane.shape.SignedDistance(plane.xf, sphere.xf.Loc)
	if d >= sphere.shape.Radius {
		return out
	}
	point := lin.NewV3()
	plane.shape.ClosestPoint(plane.xf, sphere.xf.Loc, point)
	n := lin.NewV3().Neg(plane.shape.WorldNormal)

	c := Contact{A: sphere.id, B: BodyNone, Penetration: sphere.shape.Radius - d}
	c.Normal.Set(n)
	c.Point.Set(point)
	c.OffsetA.Sub(point, sphere.xf.Loc)
	return append(out, c)
}

// sphereCuboid implements the spec's sphere-cuboid test. Contact A is
// always the cuboid, B the sphere; the normal points from the cuboid's
// surface toward the sphere centre.
func sphereCuboid(cuboid, sphere *Body, out []Contact) []Contact {
	p := lin.NewV3()
	cuboid.shape.ClosestPoint(cuboid.xf, sphere.xf.Loc, p)
	diff := lin.NewV3().Sub(sphere.xf.Loc, p)
	dist := diff.Len()
	if dist-sphere.shape.Radius > 0 {
		return out
	}
	var n *lin.V3
	if dist > 0 {
		n = lin.NewV3().Scale(diff, 1/dist)
	} else {
		n = lin.NewV3S(0, 1, 0)
	}

	c := Contact{A: cuboid.id, B: sphere.id, Penetration: math.Abs(sphere.shape.Radius - dist)}
	c.Normal.Set(n)
	c.Point.Set(p)
	c.OffsetA.Sub(p, cuboid.xf.Loc)
	c.OffsetB.Sub(p, sphere.xf.Loc)
	return append(out, c)
}

// planeCuboid implements the spec's half-space-cuboid test, emitting up to
// eight contacts (one per penetrating vertex). A is always the cuboid, B
// is BodyNone.
func planeCuboid(plane, cuboid *Body, out []Contact) []Contact {
	n := lin.NewV3().Neg(plane.shape.WorldNormal)
	var verts [8]lin.V3
	cuboid.shape.Vertices(cuboid.xf, verts[:])
	for i := range verts {
		v := &verts[i]
		d := plane.shape.SignedDistance(plane.xf, v)
		if d > 0 {
			continue
		}
		penetration := math.Abs(d)
		point := lin.NewV3().Scale(n, -0.5*penetration)
		point.Add(point, v)

		c := Contact{A: cuboid.id, B: BodyNone, Penetration: penetration}
		c.Normal.Set(n)
		c.Point.Set(point)
		c.OffsetA.Sub(point, cuboid.xf.Loc)
		out = append(out, c)
	}
	return out
}

// satAxis holds one of the 15 candidate separating axes together with the
// information needed to build a contact if it turns out to be the axis of
// minimum overlap.
type satAxis struct {
	axis    lin.V3
	overlap float64
	kind    int // 0-2: face of a; 3-5: face of b; 6-14: edge-edge.
	ia, ib  int // basis indices for edge-edge axes (a's axis ia, b's axis ib).
}

// cuboidCuboid implements the spec's Separating Axis Test for two cuboids,
// testing the 15 candidate axes (three face normals each, nine edge cross
// products) and building a single contact from the axis of least overlap.
func cuboidCuboid(a, b *Body, out []Contact) []Contact {
	rotA := lin.NewM3().SetM4(a.xf.Fwd)
	rotB := lin.NewM3().SetM4(b.xf.Fwd)
	basisA := [3]lin.V3{
		{X: rotA.Xx, Y: rotA.Yx, Z: rotA.Zx},
		{X: rotA.Xy, Y: rotA.Yy, Z: rotA.Zy},
		{X: rotA.Xz, Y: rotA.Yz, Z: rotA.Zz},
	}
	basisB := [3]lin.V3{
		{X: rotB.Xx, Y: rotB.Yx, Z: rotB.Zx},
		{X: rotB.Xy, Y: rotB.Yy, Z: rotB.Zy},
		{X: rotB.Xz, Y: rotB.Yz, Z: rotB.Zz},
	}
	d := lin.NewV3().Sub(b.xf.Loc, a.xf.Loc)

	best := satAxis{overlap: lin.Large}
	haveBest := false

	test := func(axis lin.V3, kind, ia, ib int) bool {
		axLen := axis.Len()
		if axLen < math.Sqrt(edgeParallelThreshold) {
			return true // degenerate edge-cross axis, skip (not a separation).
		}
		axis.Scale(&axis, 1/axLen)
		projA := a.shape.ProjectOntoAxis(&axis, rotA)
		projB := b.shape.ProjectOntoAxis(&axis, rotB)
		overlap := projA + projB - math.Abs(axis.Dot(d))
		if overlap < 0 {
			return false // separating axis found.
		}
		if overlap < best.overlap {
			best = satAxis{axis: axis, overlap: overlap, kind: kind, ia: ia, ib: ib}
			haveBest = true
		}
		return true
	}

	for i := 0; i < 3; i++ {
		if !test(basisA[i], i, i, -1) {
			return out
		}
	}
	for i := 0; i < 3; i++ {
		if !test(basisB[i], 3+i, -1, i) {
			return out
		}
	}
	kind := 6
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cross := lin.NewV3().Cross(&basisA[i], &basisB[j])
			if !test(*cross, kind, i, j) {
				return out
			}
			kind++
		}
	}
	if !haveBest {
		return out // programming error: no case selected; skip per spec failure semantics.
	}

	switch {
	case best.kind <= 2:
		return append(out, faceVertexContact(a, b, &basisB, &best, true))
	case best.kind <= 5:
		return append(out, faceVertexContact(a, b, &basisA, &best, false))
	default:
		return append(out, edgeEdgeContact(a, b, &basisA, &basisB, &best))
	}
}

// faceVertexContact builds the contact for SAT cases 0-5. faceOwnerIsA
// tells whether cuboid a or cuboid b owns the separating face; otherBasis
// is always the basis of the cuboid NOT owning the face, whose extreme
// vertex becomes the contact point. The stored normal always points from
// a toward b, regardless of which cuboid owns the face.
func faceVertexContact(a, b *Body, otherBasis *[3]lin.V3, best *satAxis, faceOwnerIsA bool) Contact {
	axis := lin.NewV3().Set(&best.axis)
	owner, other := a, b
	if !faceOwnerIsA {
		owner, other = b, a
	}
	d := lin.NewV3().Sub(other.xf.Loc, owner.xf.Loc)
	if axis.Dot(d) < 0 {
		axis.Neg(axis)
	}

	vertex := lin.NewV3().Set(other.xf.Loc)
	for i := 0; i < 3; i++ {
		sign := 1.0
		if otherBasis[i].Dot(axis) > 0 {
			sign = -1.0
		}
		v := lin.NewV3().Scale(&otherBasis[i], sign*extentOf(other, i))
		vertex.Add(vertex, v)
	}

	n := axis
	if !faceOwnerIsA {
		n = lin.NewV3().Neg(axis) // axis points b->a; canonical contact normal points a->b.
	}

	c := Contact{A: a.id, B: b.id, Penetration: best.overlap}
	c.Normal.Set(n)
	c.Point.Set(vertex)
	c.OffsetA.Sub(vertex, a.xf.Loc)
	c.OffsetB.Sub(vertex, b.xf.Loc)
	return c
}

// edgeEdgeContact builds the contact for SAT cases 6-14: normal is the
// cross-product axis flipped toward b, point is the midpoint of the
// shortest segment between the two involved edges.
func edgeEdgeContact(a, b *Body, basisA, basisB *[3]lin.V3, best *satAxis) Contact {
	n := lin.NewV3().Set(&best.axis)
	d := lin.NewV3().Sub(b.xf.Loc, a.xf.Loc)
	if n.Dot(d) < 0 {
		n.Neg(n)
	}

	pa := lin.NewV3().Set(a.xf.Loc)
	da := lin.NewV3().Set(&basisA[best.ia])
	for i := 0; i < 3; i++ {
		if i == best.ia {
			continue
		}
		sign := 1.0
		if basisA[i].Dot(n) > 0 {
			sign = -1.0
		}
		v := lin.NewV3().Scale(&basisA[i], sign*extentOf(a, i))
		pa.Add(pa, v)
	}

	pb := lin.NewV3().Set(b.xf.Loc)
	db := lin.NewV3().Set(&basisB[best.ib])
	for i := 0; i < 3; i++ {
		if i == best.ib {
			continue
		}
		sign := 1.0
		if basisB[i].Dot(n) > 0 {
			sign = -1.0
		}
		v := lin.NewV3().Scale(&basisB[i], sign*extentOf(b, i))
		pb.Add(pb, v)
	}

	point := closestPointBetweenLines(pa, da, pb, db)

	c := Contact{A: a.id, B: b.id, Penetration: best.overlap}
	c.Normal.Set(n)
	c.Point.Set(point)
	c.OffsetA.Sub(point, a.xf.Loc)
	c.OffsetB.Sub(point, b.xf.Loc)
	return c
}

// extentOf returns cuboid body bd's half-extent along local axis i (0=X,
// 1=Y, 2=Z).
func extentOf(bd *Body, i int) float64 {
	switch i {
	case 0:
		return bd.shape.Extents.X
	case 1:
		return bd.shape.Extents.Y
	default:
		return bd.shape.Extents.Z
	}
}

// closestPointBetweenLines returns the midpoint of the shortest segment
// between two skew lines (pa + s*da) and (pb + t*db), using the standard
// closed-form solution from the lines' Gram matrix.
func closestPointBetweenLines(pa, da, pb, db *lin.V3) *lin.V3 {
	r := lin.NewV3().Sub(pa, pb)
	a := da.Dot(da)
	e := db.Dot(db)
	f := db.Dot(r)
	c := da.Dot(r)
	bCoef := da.Dot(db)
	denom := a*e - bCoef*bCoef
	s, t := 0.0, 0.0
	if denom != 0 {
		s = (bCoef*f - c*e) / denom
	}
	t = (bCoef*s + f) / e

	closestA := lin.NewV3().Add(pa, lin.NewV3().Scale(da, s))
	closestB := lin.NewV3().Add(pb, lin.NewV3().Scale(db, t))
	mid := lin.NewV3().Add(closestA, closestB)
	mid.Scale(mid, 0.5)
	return mid
}
