// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"

	"github.com/gazed/rigid/lin"
)

// Kind enumerates the collider variants a Body may carry. Narrow-phase
// dispatch switches on Kind rather than downcasting a shape interface to
// a concrete type, since the set of shapes is closed and small.
type Kind int

const (
	Sphere Kind = iota
	Cuboid
	Plane
)

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Cuboid:
		return "cuboid"
	case Plane:
		return "plane"
	default:
		return "unknown"
	}
}

// Shape is a tagged-variant collider record. A Shape is always defined in
// body-local space; a Body's Transform positions it in world space. Only
// the fields matching Kind are meaningful.
type Shape struct {
	Kind Kind

	Radius float64 // Sphere: radius about the local origin.

	Extents        *lin.V3 // Cuboid: half-extents along local X, Y, Z.
	BoundingRadius float64 // Cuboid: cached length of Extents, used for octree insertion.

	LocalNormal *lin.V3 // Plane: fixed body-local normal, always +Y.
	WorldNormal *lin.V3 // Plane: cached world-space normal, refreshed at cache-refresh.
}

// NewSphereShape creates a sphere collider of the given radius.
func NewSphereShape(radius float64) Shape {
	return Shape{Kind: Sphere, Radius: radius}
}

// NewCuboidShape creates a cuboid collider from half-extents dx, dy, dz.
func NewCuboidShape(dx, dy, dz float64) Shape {
	extents := lin.NewV3S(dx, dy, dz)
	return Shape{Kind: Cuboid, Extents: extents, BoundingRadius: extents.Len()}
}

// NewPlaneShape creates a half-space boundary collider. Its local normal is
// fixed to +Y; the host orients the half-space by setting the body's
// transform rotation.
func NewPlaneShape() Shape {
	return Shape{Kind: Plane, LocalNormal: lin.NewV3S(0, 1, 0), WorldNormal: lin.NewV3S(0, 1, 0)}
}

// refreshWorldNormal recomputes the plane's cached world-space normal from
// the given rotation. Called only for Plane shapes during cache refresh.
func (s *Shape) refreshWorldNormal(rot *lin.Q) {
	s.WorldNormal.MultvQ(s.LocalNormal, rot)
}

// Inertia computes the body-local inertia tensor for the given mass,
// updating and returning it. Only meaningful for Sphere and Cuboid.
func (s *Shape) Inertia(mass float64, out *lin.M3) *lin.M3 {
	switch s.Kind {
	case Sphere:
		e := 0.4 * mass * s.Radius * s.Radius
		out.Xx, out.Yy, out.Zz = e, e, e
		out.Xy, out.Xz, out.Yx, out.Yz, out.Zx, out.Zy = 0, 0, 0, 0, 0, 0
		return out
	case Cuboid:
		dx2 := 4 * s.Extents.X * s.Extents.X
		dy2 := 4 * s.Extents.Y * s.Extents.Y
		dz2 := 4 * s.Extents.Z * s.Extents.Z
		out.Xx = mass / 12 * (dy2 + dz2)
		out.Yy = mass / 12 * (dx2 + dz2)
		out.Zz = mass / 12 * (dx2 + dy2)
		out.Xy, out.Xz, out.Yx, out.Yz, out.Zx, out.Zy = 0, 0, 0, 0, 0, 0
		return out
	default:
		out.Set(&lin.M3{})
		return out
	}
}

// ClosestPoint returns the point of the shape closest to target, both
// expressed in world coordinates. xf is the shape owner's transform. Sphere
// and Plane results lie on the surface; for a Cuboid a target inside the
// box is returned unchanged.
func (s *Shape) ClosestPoint(xf *lin.T, target *lin.V3, out *lin.V3) *lin.V3 {
	switch s.Kind {
	case Sphere:
		dir := lin.NewV3().Sub(target, xf.Loc)
		if dir.AeqZ() {
			dir.SetS(1, 0, 0)
		}
		dir.Unit().Scale(dir, s.Radius)
		out.Add(xf.Loc, dir)
		return out
	case Cuboid:
		lx, ly, lz := xf.InvS(target.X, target.Y, target.Z)
		lx = lin.Clamp(lx, -s.Extents.X, s.Extents.X)
		ly = lin.Clamp(ly, -s.Extents.Y, s.Extents.Y)
		lz = lin.Clamp(lz, -s.Extents.Z, s.Extents.Z)
		wx, wy, wz := xf.AppS(lx, ly, lz)
		out.SetS(wx, wy, wz)
		return out
	case Plane:
		lx, ly, lz := xf.InvS(target.X, target.Y, target.Z)
		n := s.LocalNormal
		t := n.X*lx + n.Y*ly + n.Z*lz
		rx, ry, rz := lx-t*n.X, ly-t*n.Y, lz-t*n.Z
		wx, wy, wz := xf.AppS(rx, ry, rz)
		out.SetS(wx, wy, wz)
		return out
	}
	return out
}

// SignedDistance returns the signed distance from the shape's surface to
// target (a world-space point), negative when target is inside/behind the
// shape. xf is the shape owner's transform. Only Sphere and Plane are
// handled; for a Cuboid it returns 0.
func (s *Shape) SignedDistance(xf *lin.T, target *lin.V3) float64 {
	switch s.Kind {
	case Sphere:
		return target.Dist(xf.Loc) - s.Radius
	case Plane:
		lx, ly, lz := xf.InvS(target.X, target.Y, target.Z)
		n := s.LocalNormal
		return n.X*lx + n.Y*ly + n.Z*lz
	}
	return 0
}

// ProjectOntoAxis returns Σᵢ extentsᵢ·|axis·basisᵢ|, the half-width of the
// cuboid's projection onto world axis, given the cuboid's world rotation
// matrix rot (the rotation sub-matrix of its transform's forward matrix).
// basisᵢ is column i of rot. Used by the Separating Axis Test.
func (s *Shape) ProjectOntoAxis(axis *lin.V3, rot *lin.M3) float64 {
	bx := lin.NewV3S(rot.Xx, rot.Yx, rot.Zx)
	by := lin.NewV3S(rot.Xy, rot.Yy, rot.Zy)
	bz := lin.NewV3S(rot.Xz, rot.Yz, rot.Zz)
	return s.Extents.X*math.Abs(axis.Dot(bx)) +
		s.Extents.Y*math.Abs(axis.Dot(by)) +
		s.Extents.Z*math.Abs(axis.Dot(bz))
}

// Vertices writes the cuboid's eight world-space vertices into out[0:8]
// (out must have length 8) using the given transform.
func (s *Shape) Vertices(xf *lin.T, out []lin.V3) {
	i := 0
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				wx, wy, wz := xf.AppS(sx*s.Extents.X, sy*s.Extents.Y, sz*s.Extents.Z)
				out[i].SetS(wx, wy, wz)
				i++
			}
		}
	}
}

// AABBOverlapsPlane reports whether an axis-aligned box of half-extents
// boxExtents centred at boxCentre intersects the half-space described by
// world-space plane normal n through planePoint.
func AABBOverlapsPlane(boxCentre, boxExtents, planePoint, n *lin.V3) bool {
	r := boxExtents.X*math.Abs(n.X) + boxExtents.Y*math.Abs(n.Y) + boxExtents.Z*math.Abs(n.Z)
	offset := lin.NewV3().Sub(boxCentre, planePoint)
	dist := offset.Dot(n)
	return dist <= r
}
