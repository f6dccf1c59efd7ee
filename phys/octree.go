// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"math"

	"github.com/gazed/rigid/lin"
)

// AABB is an axis-aligned bounding box described by its centre and
// half-extents along each axis.
type AABB struct {
	Center  *lin.V3
	Extents *lin.V3
}

// Pair identifies two bodies whose bounding spheres are close enough that
// narrow-phase should test them for contact.
type Pair struct {
	A, B ID
}

// octNode is one node of the preallocated arena. Children are referenced by
// index into the owning Octree's nodes slice; children[0] == -1 marks a
// leaf (depth == the tree's max depth) since only leaves have no children.
type octNode struct {
	center   lin.V3
	extents  lin.V3
	bodies   []ID
	children [8]int32
}

// Octree is a depth-bounded arena octree used for broad-phase culling. The
// full tree is built once at construction time to a fixed depth over a
// fixed world volume; insertion, removal and queries never allocate nodes.
type Octree struct {
	nodes    []octNode
	maxDepth int
	resident map[ID]int32 // body -> resident node index, for O(1) removal.
}

// NewOctree builds a full octree of the given depth over the given world
// bounds. Every interior node is populated with all eight children down to
// maxDepth; there is no lazy subdivision.
func NewOctree(bounds AABB, maxDepth int) *Octree {
	o := &Octree{maxDepth: maxDepth, resident: map[ID]int32{}}
	o.build(*bounds.Center, *bounds.Extents, 0)
	return o
}

func (o *Octree) build(center, extents lin.V3, depth int) int32 {
	idx := int32(len(o.nodes))
	o.nodes = append(o.nodes, octNode{center: center, extents: extents, children: [8]int32{-1, -1, -1, -1, -1, -1, -1, -1}})
	if depth >= o.maxDepth {
		return idx
	}
	half := lin.V3{X: extents.X * 0.5, Y: extents.Y * 0.5, Z: extents.Z * 0.5}
	for oct := 0; oct < 8; oct++ {
		sx, sy, sz := octantSign(oct)
		childCenter := lin.V3{X: center.X + sx*half.X, Y: center.Y + sy*half.Y, Z: center.Z + sz*half.Z}
		childIdx := o.build(childCenter, half, depth+1)
		o.nodes[idx].children[oct] = childIdx
	}
	return idx
}

// octantSign returns the sign tuple for octant index oct, encoded as
// (-,-,-)=0, (+,-,-)=1, (-,+,-)=2, (+,+,-)=3, (-,-,+)=4, (+,-,+)=5,
// (-,+,+)=6, (+,+,+)=7.
func octantSign(oct int) (sx, sy, sz float64) {
	sx, sy, sz = -1, -1, -1
	if oct&1 != 0 {
		sx = 1
	}
	if oct&2 != 0 {
		sy = 1
	}
	if oct&4 != 0 {
		sz = 1
	}
	return sx, sy, sz
}

func octantOf(dx, dy, dz float64) int {
	oct := 0
	if dx > 0 {
		oct |= 1
	}
	if dy > 0 {
		oct |= 2
	}
	if dz > 0 {
		oct |= 4
	}
	return oct
}

// Insert places body id, with the given world-space bounding-sphere centre
// and radius, at the deepest node that fully contains the sphere. The
// sphere straddles a node's subdivision planes (and must stop there) when
// the smallest absolute componentwise offset from the node centre is no
// greater than the radius.
func (o *Octree) Insert(id ID, center *lin.V3, radius float64) {
	idx := int32(0)
	depth := 0
	for {
		node := &o.nodes[idx]
		dx := center.X - node.center.X
		dy := center.Y - node.center.Y
		dz := center.Z - node.center.Z
		straddles := math.Min(math.Abs(dx), math.Min(math.Abs(dy), math.Abs(dz))) <= radius
		if straddles || depth >= o.maxDepth {
			node.bodies = append(node.bodies, id)
			o.resident[id] = idx
			return
		}
		idx = node.children[octantOf(dx, dy, dz)]
		depth++
	}
}

// Remove takes body id out of its resident node's body set in O(1) via the
// resident map. It is a no-op if id is not currently resident.
func (o *Octree) Remove(id ID) {
	idx, ok := o.resident[id]
	if !ok {
		return
	}
	node := &o.nodes[idx]
	for i, b := range node.bodies {
		if b == id {
			node.bodies[i] = node.bodies[len(node.bodies)-1]
			node.bodies = node.bodies[:len(node.bodies)-1]
			break
		}
	}
	delete(o.resident, id)
}

// Update moves a body to its correct node after it has moved: remove then
// reinsert, since the tree has no incremental relocation.
func (o *Octree) Update(id ID, center *lin.V3, radius float64) {
	o.Remove(id)
	o.Insert(id, center, radius)
}

// QueryPlane appends to out the identifiers of every body resident in a
// node whose bounding box straddles or lies on the negative side of the
// half-space described by planePoint and the unit normal n.
func (o *Octree) QueryPlane(out []ID, planePoint, n *lin.V3) []ID {
	return o.queryPlaneNode(0, out, planePoint, n)
}

func (o *Octree) queryPlaneNode(idx int32, out []ID, planePoint, n *lin.V3) []ID {
	node := &o.nodes[idx]
	if !AABBOverlapsPlane(&node.center, &node.extents, planePoint, n) {
		return out
	}
	out = append(out, node.bodies...)
	if node.children[0] == -1 {
		return out
	}
	for _, c := range node.children {
		out = o.queryPlaneNode(c, out, planePoint, n)
	}
	return out
}

// Pairs returns every candidate collision pair: a depth-first traversal
// pairs each body in a node with every body at that node and every
// ancestor node along its branch, since a body at depth k can only collide
// with bodies at the same or shallower depth on that branch.
func (o *Octree) Pairs() []Pair {
	var out []Pair
	ancestors := make([]ID, 0, o.maxDepth*4)
	return o.pairsNode(0, ancestors, out)
}

func (o *Octree) pairsNode(idx int32, ancestors []ID, out []Pair) []Pair {
	node := &o.nodes[idx]
	for i := 0; i < len(node.bodies); i++ {
		a := node.bodies[i]
		for j := i + 1; j < len(node.bodies); j++ {
			out = append(out, Pair{a, node.bodies[j]})
		}
		for _, anc := range ancestors {
			out = append(out, Pair{anc, a})
		}
	}
	if node.children[0] == -1 {
		return out
	}
	base := len(ancestors)
	ancestors = append(ancestors, node.bodies...)
	for _, c := range node.children {
		out = o.pairsNode(c, ancestors, out)
	}
	ancestors = ancestors[:base]
	return out
}
