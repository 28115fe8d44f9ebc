// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"testing"

	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/cache"
	"github.com/solidgeom/engine/csgtree"
	"github.com/solidgeom/engine/diag"
	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/math32"
	"github.com/solidgeom/engine/traverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeAt returns a unit cube PolySet (6 quad faces, 8 vertices) with its
// minimum corner at origin.
func cubeAt(origin math32.Vector3) *geometry.PolySet {
	o := origin
	v := func(dx, dy, dz float32) math32.Vector3 { return math32.Vec3(o.X+dx, o.Y+dy, o.Z+dz) }
	p := geometry.NewPolySet()
	p.Vertices = []math32.Vector3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0),
		v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1),
	}
	p.Faces = []geometry.Face{
		{0, 1, 2, 3}, {4, 7, 6, 5},
		{0, 4, 5, 1}, {1, 5, 6, 2},
		{2, 6, 7, 3}, {3, 7, 4, 0},
	}
	return p
}

func leafNode(arena *astnode.Arena, g geometry.Geometry) *astnode.Node {
	n := arena.New(astnode.KindLeaf, astnode.Location{})
	n.SetParam("geometry", geometry.Geometry(g))
	return n
}

func newTestEvaluator() *Evaluator {
	arena := astnode.NewArena()
	_ = arena
	return NewEvaluator(&testKernel{}, cache.NewGeometryCache(), cache.NewExactCache(), nil, diag.NewLog(), DefaultConfig())
}

func TestScenarioDisjointFastUnion(t *testing.T) {
	arena := astnode.NewArena()
	a := leafNode(arena, cubeAt(math32.Vec3(0, 0, 0)))
	b := leafNode(arena, cubeAt(math32.Vec3(10, 0, 0)))
	root := arena.New(astnode.KindCsgUnion, astnode.Location{})
	root.AddChild(a)
	root.AddChild(b)

	e := newTestEvaluator()
	g, err := e.Evaluate(root, nil)
	require.NoError(t, err)
	require.NotNil(t, g)

	p, ok := g.(*geometry.PolySet)
	require.True(t, ok)
	assert.Equal(t, 16, len(p.Vertices))
	assert.Equal(t, 12, p.NumFacets()) // 6 quad faces per cube, 12 total
	assert.Equal(t, 0, e.KernelUnionCalls, "fast path must not invoke the kernel")

	bb := p.BoundingBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(11, 1, 1), bb.Max)
}

func TestScenarioOverlappingUnionUsesKernel(t *testing.T) {
	arena := astnode.NewArena()
	a := leafNode(arena, cubeAt(math32.Vec3(0, 0, 0)))
	b := leafNode(arena, cubeAt(math32.Vec3(0.5, 0, 0)))
	root := arena.New(astnode.KindCsgUnion, astnode.Location{})
	root.AddChild(a)
	root.AddChild(b)

	e := newTestEvaluator()
	g, err := e.Evaluate(root, nil)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 1, e.KernelUnionCalls, "overlapping operands must fall back to the kernel")

	bb := g.BoundingBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(1.5, 1, 1), bb.Max)
}

func TestScenarioPruningIntersectionWithDisjointAABBs(t *testing.T) {
	a := csgtree.NewLeaf(nil, *math32.NewMatrix4(), csgtree.RGBA{}, "a", 0,
		math32.NewBox3(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1)))
	b := csgtree.NewLeaf(nil, *math32.NewMatrix4(), csgtree.RGBA{}, "b", 0,
		math32.NewBox3(math32.Vec3(10, 0, 0), math32.Vec3(11, 1, 1)))

	n := csgtree.CreateNode(csgtree.Intersection, a, b, 0)
	assert.True(t, n.IsEmpty())

	products := csgtree.NewImporter().Import(n)
	assert.Equal(t, 0, products.NumProducts())
}

func TestCacheHitSkipsRecomputation(t *testing.T) {
	arena := astnode.NewArena()
	leaf := leafNode(arena, cubeAt(math32.Vec3(0, 0, 0)))
	tree := traverse.NewTree(arena)

	gc := cache.NewGeometryCache()
	e := NewEvaluator(&testKernel{}, gc, cache.NewExactCache(), tree, diag.NewLog(), DefaultConfig())

	g1, err := e.Evaluate(leaf, nil)
	require.NoError(t, err)
	require.NotNil(t, g1)

	fp := tree.Fingerprint(leaf)
	assert.True(t, gc.Contains(fp))

	g2, err := e.Evaluate(leaf, nil)
	require.NoError(t, err)
	assert.Equal(t, g1.NumFacets(), g2.NumFacets())
}

func TestDifferenceWithDisjointSubtrahendKeepsMinuend(t *testing.T) {
	arena := astnode.NewArena()
	a := leafNode(arena, cubeAt(math32.Vec3(0, 0, 0)))
	b := leafNode(arena, cubeAt(math32.Vec3(10, 0, 0)))
	root := arena.New(astnode.KindCsgDifference, astnode.Location{})
	root.AddChild(a)
	root.AddChild(b)

	e := newTestEvaluator()
	g, err := e.Evaluate(root, nil)
	require.NoError(t, err)
	// disjoint subtrahend should not affect the minuend
	assert.Equal(t, 8, len(g.(*geometry.PolySet).Vertices))
}
