// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// T is a 3D rigid transform: rotation and translation, no scale or shear.
// T additionally caches the forward and inverse 4x4 matrix representation
// of the rotation+translation so that narrow-phase and inertia code can
// read a matrix without recomputing one every call. The cache is only
// valid between calls to Refresh; nothing else updates Fwd/Inv.
type T struct {
	Loc *V3 // Location (translation, origin).
	Rot *Q  // Rotation (direction, orientation).

	Fwd *M4 // cached forward matrix: local space -> world space.
	Inv *M4 // cached inverse matrix: world space -> local space.
}

// Eq (==) returns true if all elements of transform t have the same value as
// the corresponding element of transform a.
func (t *T) Eq(a *T) bool { return t.Rot.Eq(a.Rot) && t.Loc.Eq(a.Loc) }

// Aeq (~=) almost-equals returns true if all the elements in transform t have
// essentially the same value as the corresponding elements in transform a.
func (t *T) Aeq(a *T) bool { return t.Rot.Aeq(a.Rot) && t.Loc.Aeq(a.Loc) }

// Set (=, copy, clone) assigns all the elements values from transform a to
// transform t. The updated transform t is returned. The matrix cache is
// not refreshed; call Refresh afterwards if Fwd/Inv are needed.
func (t *T) Set(a *T) *T {
	t.Loc.Set(a.Loc)
	t.Rot.Set(a.Rot)
	return t
}

// SetI updates transform t to be the identity transform.
func (t *T) SetI() *T {
	t.Loc.SetS(0, 0, 0)
	t.Rot.Set(QI)
	return t
}

// SetVQ (=) sets the transform t based on the given quaternion rotation and
// translation location. The updated transform t is returned.
func (t *T) SetVQ(loc *V3, rot *Q) *T {
	t.Loc.Set(loc)
	t.Rot.Set(rot)
	return t
}

// App applies the transform's rotation then translation to vector v in
// place. The updated vector v is returned.
func (t *T) App(v *V3) *V3 {
	v.MultvQ(v, t.Rot)
	v.Add(v, t.Loc)
	return v
}

// AppS applies transform t, rotation then translation, to input scalar
// vector (x,y,z) returning the transformed scalar vector (vx,vy,vz).
func (t *T) AppS(x, y, z float64) (vx, vy, vz float64) {
	vx, vy, vz = MultSQ(x, y, z, t.Rot)
	return vx + t.Loc.X, vy + t.Loc.Y, vz + t.Loc.Z
}

// InvS applies the inverse of transform t, inverse translation then inverse
// rotation, to input vector (x,y,z) returning the transformed vector.
func (t *T) InvS(x, y, z float64) (vx, vy, vz float64) {
	vx, vy, vz = x-t.Loc.X, y-t.Loc.Y, z-t.Loc.Z
	ix, iy, iz := -t.Rot.X, -t.Rot.Y, -t.Rot.Z
	return multSQ(vx, vy, vz, ix, iy, iz, t.Rot.W)
}

// Refresh recomputes the cached forward and inverse matrices from the
// current Loc/Rot. This must be called at the defined stage boundary after
// Loc or Rot changes and before any code reads Fwd or Inv; nothing here
// refreshes the cache implicitly.
func (t *T) Refresh() *T {
	t.Fwd.SetTransform(t.Rot, t.Loc)
	t.Inv.SetInvTransform(t.Rot, t.Loc)
	return t
}

// Integrate updates transform t to be the linear integration of transform a
// with the given linear velocity linv, and angular velocity angv over the
// given amount of time dt. Transforms t and a must be distinct. The input
// vectors linv, angv are not changed. The updated transform t is returned.
// The matrix cache is not refreshed; callers refresh once per stage.
//
// Based on bullet physics: btTransformUtil::integrateTransform.
func (t *T) Integrate(a *T, linv, angv *V3, dt float64) *T {
	t.Loc.X = a.Loc.X + linv.X*dt
	t.Loc.Y = a.Loc.Y + linv.Y*dt
	t.Loc.Z = a.Loc.Z + linv.Z*dt

	// add interpolated angular velocity to current rotation. See:
	//    "Practical Parameterization of Rotations Using the Exponential Map",
	//    F. Sebastian Grassia
	angularMotionLimit := 0.5 * HalfPi
	angLen := angv.Len()
	if angLen*dt > angularMotionLimit {
		angLen = angularMotionLimit / dt
	}
	fac := 0.0
	if angLen < 0.001 {
		fac = 0.5*dt - dt*dt*dt*0.020833333333*angLen*angLen
	} else {
		fac = math.Sin(0.5*angLen*dt) / angLen
	}

	rx, ry, rz, rw := a.Rot.X, a.Rot.Y, a.Rot.Z, a.Rot.W
	sx, sy, sz, sw := angv.X*fac, angv.Y*fac, angv.Z*fac, math.Cos(angLen*dt*0.5)
	t.Rot.X = rw*sx + rx*sw - ry*sz + rz*sy
	t.Rot.Y = rw*sy + rx*sz + ry*sw - rz*sx
	t.Rot.Z = rw*sz - rx*sy + ry*sx + rz*sw
	t.Rot.W = rw*sw - rx*sx - ry*sy - rz*sz
	t.Rot.Unit()
	return t
}

// ============================================================================
// convenience functions for allocating transforms. Nothing else should allocate.

// NewT creates and returns a transform at the origin with no rotation and
// identity cached matrices.
func NewT() *T {
	return &T{Loc: &V3{}, Rot: &Q{W: 1}, Fwd: NewM4I(), Inv: NewM4I()}
}
