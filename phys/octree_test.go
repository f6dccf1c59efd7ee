// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/gazed/rigid/lin"
)

func cubeBounds() AABB {
	return AABB{Center: lin.NewV3S(50, 50, 50), Extents: lin.NewV3S(50, 50, 50)}
}

func TestInsertAtRootWhenStraddlingImmediately(t *testing.T) {
	o := NewOctree(cubeBounds(), 5)
	o.Insert(1, lin.NewV3S(50, 50, 50), 1)
	if idx, ok := o.resident[1]; !ok || idx != 0 {
		t.Errorf("expected body resident at root, got idx %v ok %v", idx, ok)
	}
}

func TestInsertDescendsToLeafForTightSphere(t *testing.T) {
	o := NewOctree(cubeBounds(), 5)
	o.Insert(1, lin.NewV3S(1, 1, 1), 0.01)
	idx, ok := o.resident[1]
	if !ok {
		t.Fatalf("body not resident anywhere")
	}
	node := o.nodes[idx]
	if node.children[0] != -1 {
		t.Errorf("expected a leaf node, got an interior node")
	}
	if !lin.Aeq(node.extents.X, 1.5625) {
		t.Errorf("expected leaf extent 1.5625, got %v", node.extents.X)
	}
}

func TestInsertStopsShallowerWhenStraddling(t *testing.T) {
	o := NewOctree(cubeBounds(), 5)
	o.Insert(1, lin.NewV3S(1, 1, 1), 30)
	idx, ok := o.resident[1]
	if !ok {
		t.Fatalf("body not resident anywhere")
	}
	node := o.nodes[idx]
	if node.children[0] == -1 {
		t.Errorf("expected an interior node, got a leaf")
	}
	if !lin.Aeq(node.center.X, 25) || !lin.Aeq(node.extents.X, 25) {
		t.Errorf("expected depth-1 node (center 25, extent 25), got center %v extent %v", node.center.X, node.extents.X)
	}
}

func TestRemoveThenInsertRelocates(t *testing.T) {
	o := NewOctree(cubeBounds(), 5)
	o.Insert(1, lin.NewV3S(1, 1, 1), 0.01)
	firstIdx := o.resident[1]
	o.Update(1, lin.NewV3S(99, 99, 99), 0.01)
	secondIdx, ok := o.resident[1]
	if !ok {
		t.Fatalf("body not resident after update")
	}
	if firstIdx == secondIdx {
		t.Errorf("expected body to relocate to a different node")
	}
	if len(o.nodes[firstIdx].bodies) != 0 {
		t.Errorf("expected old node to be emptied, got %v", o.nodes[firstIdx].bodies)
	}
}

func TestPairsExcludesSelfAndCapturesAncestry(t *testing.T) {
	o := NewOctree(cubeBounds(), 5)
	o.Insert(1, lin.NewV3S(1, 1, 1), 30)  // stops at depth 1 (ancestor of 2,3).
	o.Insert(2, lin.NewV3S(1, 1, 1), 0.01) // descends to a leaf under 1's node.
	o.Insert(3, lin.NewV3S(1, 1, 1), 0.01) // same leaf as 2.

	pairs := o.Pairs()
	want := map[Pair]bool{{1, 2}: true, {1, 3}: true, {2, 3}: true}
	if len(pairs) != len(want) {
		t.Fatalf("got %v pairs, want %v: %+v", len(pairs), len(want), pairs)
	}
	for _, p := range pairs {
		if !want[p] {
			t.Errorf("unexpected pair %+v", p)
		}
	}
}

func TestQueryPlaneCollectsStraddlingAndNegativeSide(t *testing.T) {
	o := NewOctree(cubeBounds(), 2)
	o.Insert(1, lin.NewV3S(10, 10, 10), 0.01) // deep in the negative-Y half of a plane through y=50.
	o.Insert(2, lin.NewV3S(10, 90, 10), 0.01) // deep in the positive-Y half, should be excluded.

	planePoint := lin.NewV3S(0, 50, 0)
	normal := lin.NewV3S(0, 1, 0)
	hits := o.QueryPlane(nil, planePoint, normal)

	found1, found2 := false, false
	for _, id := range hits {
		if id == 1 {
			found1 = true
		}
		if id == 2 {
			found2 = true
		}
	}
	if !found1 {
		t.Errorf("expected body 1 (negative side) in query results")
	}
	if found2 {
		t.Errorf("did not expect body 2 (positive side) in query results")
	}
}
