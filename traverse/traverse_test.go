// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import (
	"testing"

	"github.com/solidgeom/engine/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnion(arena *astnode.Arena, radii ...float64) *astnode.Node {
	root := arena.New(astnode.KindCsgUnion, astnode.Location{})
	for _, r := range radii {
		leaf := arena.New(astnode.KindLeaf, astnode.Location{})
		leaf.SetParam("r", r)
		root.AddChild(leaf)
	}
	return root
}

func TestFingerprintStableAcrossCalls(t *testing.T) {
	arena := astnode.NewArena()
	root := buildUnion(arena, 1, 2)
	tree := NewTree(arena)
	a := tree.Fingerprint(root)
	b := tree.Fingerprint(root)
	assert.Equal(t, a, b)
}

func TestFingerprintDependsOnParams(t *testing.T) {
	arena1 := astnode.NewArena()
	arena2 := astnode.NewArena()
	r1 := buildUnion(arena1, 1, 2)
	r2 := buildUnion(arena2, 1, 3)

	f1 := NewTree(arena1).Fingerprint(r1)
	f2 := NewTree(arena2).Fingerprint(r2)
	assert.NotEqual(t, f1, f2)
}

func TestFingerprintOrderMattersForNonCommutativeDifference(t *testing.T) {
	arena1 := astnode.NewArena()
	diff1 := arena1.New(astnode.KindCsgDifference, astnode.Location{})
	a1 := arena1.New(astnode.KindLeaf, astnode.Location{})
	a1.SetParam("label", "a")
	b1 := arena1.New(astnode.KindLeaf, astnode.Location{})
	b1.SetParam("label", "b")
	diff1.AddChild(a1)
	diff1.AddChild(b1)

	arena2 := astnode.NewArena()
	diff2 := arena2.New(astnode.KindCsgDifference, astnode.Location{})
	b2 := arena2.New(astnode.KindLeaf, astnode.Location{})
	b2.SetParam("label", "b")
	a2 := arena2.New(astnode.KindLeaf, astnode.Location{})
	a2.SetParam("label", "a")
	diff2.AddChild(b2)
	diff2.AddChild(a2)

	f1 := NewTree(arena1).Fingerprint(diff1)
	f2 := NewTree(arena2).Fingerprint(diff2)
	assert.NotEqual(t, f1, f2)
}

func TestFingerprintOrderIndependentForUnion(t *testing.T) {
	arena1 := astnode.NewArena()
	u1 := arena1.New(astnode.KindCsgUnion, astnode.Location{})
	a1 := arena1.New(astnode.KindLeaf, astnode.Location{})
	a1.SetParam("label", "a")
	b1 := arena1.New(astnode.KindLeaf, astnode.Location{})
	b1.SetParam("label", "b")
	u1.AddChild(a1)
	u1.AddChild(b1)

	arena2 := astnode.NewArena()
	u2 := arena2.New(astnode.KindCsgUnion, astnode.Location{})
	b2 := arena2.New(astnode.KindLeaf, astnode.Location{})
	b2.SetParam("label", "b")
	a2 := arena2.New(astnode.KindLeaf, astnode.Location{})
	a2.SetParam("label", "a")
	u2.AddChild(b2)
	u2.AddChild(a2)

	f1 := NewTree(arena1).Fingerprint(u1)
	f2 := NewTree(arena2).Fingerprint(u2)
	assert.Equal(t, f1, f2)
}

func TestFingerprintOrderIndependentForIntersection(t *testing.T) {
	arena1 := astnode.NewArena()
	i1 := arena1.New(astnode.KindCsgIntersection, astnode.Location{})
	a1 := arena1.New(astnode.KindLeaf, astnode.Location{})
	a1.SetParam("label", "a")
	b1 := arena1.New(astnode.KindLeaf, astnode.Location{})
	b1.SetParam("label", "b")
	i1.AddChild(a1)
	i1.AddChild(b1)

	arena2 := astnode.NewArena()
	i2 := arena2.New(astnode.KindCsgIntersection, astnode.Location{})
	b2 := arena2.New(astnode.KindLeaf, astnode.Location{})
	b2.SetParam("label", "b")
	a2 := arena2.New(astnode.KindLeaf, astnode.Location{})
	a2.SetParam("label", "a")
	i2.AddChild(b2)
	i2.AddChild(a2)

	f1 := NewTree(arena1).Fingerprint(i1)
	f2 := NewTree(arena2).Fingerprint(i2)
	assert.Equal(t, f1, f2)
}

func TestInvalidateForcesRecompute(t *testing.T) {
	arena := astnode.NewArena()
	root := buildUnion(arena, 1)
	tree := NewTree(arena)
	before := tree.Fingerprint(root)

	root.Children[0].SetParam("r", 99.0)
	tree.Invalidate(root)
	after := tree.Fingerprint(root)
	assert.NotEqual(t, before, after)
}

type recordingVisitor struct {
	events []string
}

func (r *recordingVisitor) Visit(state State, n *astnode.Node) Response {
	tag := "pre"
	if state == Postfix {
		tag = "post"
	}
	r.events = append(r.events, tag)
	return Continue
}

func TestWalkVisitsPreAndPostForEachNode(t *testing.T) {
	arena := astnode.NewArena()
	root := buildUnion(arena, 1, 2)
	rv := &recordingVisitor{}
	resp := Walk(root, rv, nil)
	assert.Equal(t, Continue, resp)
	// root pre, (leaf pre, leaf post)*2, root post
	assert.Equal(t, []string{"pre", "pre", "post", "pre", "post", "post"}, rv.events)
}

type pruneAt struct{ target *astnode.Node }

func (p *pruneAt) Visit(state State, n *astnode.Node) Response {
	if state == Prefix && n == p.target {
		return Prune
	}
	return Continue
}

func TestWalkPruneSkipsChildren(t *testing.T) {
	arena := astnode.NewArena()
	root := buildUnion(arena, 1, 2)
	resp := Walk(root, &pruneAt{target: root}, nil)
	assert.Equal(t, Continue, resp)
}

type alwaysCancelled struct{}

func (alwaysCancelled) Cancelled() bool { return true }

func TestWalkAbortsOnCancellation(t *testing.T) {
	arena := astnode.NewArena()
	root := buildUnion(arena, 1, 2)
	resp := Walk(root, VisitorFunc(func(State, *astnode.Node) Response { return Continue }), alwaysCancelled{})
	assert.Equal(t, Abort, resp)
}

func TestWalkAbortStopsDescentIntoRemainingChildren(t *testing.T) {
	arena := astnode.NewArena()
	root := buildUnion(arena, 1, 2, 3)
	visited := 0
	v := VisitorFunc(func(state State, n *astnode.Node) Response {
		if state == Prefix && n != root {
			visited++
			if visited == 1 {
				return Abort
			}
		}
		return Continue
	})
	resp := Walk(root, v, nil)
	assert.Equal(t, Abort, resp)
	assert.Equal(t, 1, visited)
}

func TestPrefixAndPostfixAreDistinctConstants(t *testing.T) {
	require.NotEqual(t, Prefix, Postfix)
}
