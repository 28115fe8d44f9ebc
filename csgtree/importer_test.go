// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csgtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportUnionYieldsTwoProducts(t *testing.T) {
	a := leaf("a", box(0, 1))
	b := leaf("b", box(2, 3))
	n := CreateNode(Union, a, b, 0)

	ps := NewImporter().Import(n)
	assert.Equal(t, 2, ps.NumProducts())
}

func TestImportDifferenceYieldsSubtractionFragment(t *testing.T) {
	a := leaf("a", box(0, 2))
	b := leaf("b", box(1, 3))
	n := CreateNode(Difference, a, b, 0)

	ps := NewImporter().Import(n)
	require.Len(t, ps.Products, 1)
	frags := ps.Products[0].Fragments
	require.Len(t, frags, 2)
	assert.Equal(t, Primary, frags[0].Op)
	assert.Equal(t, Subtraction, frags[1].Op)
	assert.Equal(t, "a", frags[0].Leaf.Label)
	assert.Equal(t, "b", frags[1].Leaf.Label)
}

func TestImportIntersectionCrossMultipliesUnionOperands(t *testing.T) {
	a := leaf("a", box(0, 1))
	b := leaf("b", box(0, 1))
	left := CreateNode(Union, a, b, 0)
	c := leaf("c", box(0, 1))

	n := CreateNode(Intersection, left, c, 0)
	ps := NewImporter().Import(n)
	assert.Equal(t, 2, ps.NumProducts())
	for _, p := range ps.Products {
		require.Len(t, p.Fragments, 2)
		assert.Equal(t, Intersect, p.Fragments[1].Op)
		assert.Equal(t, "c", p.Fragments[1].Leaf.Label)
	}
}

func TestImportEmptyRootYieldsNoProducts(t *testing.T) {
	ps := NewImporter().Import(EmptyLeaf())
	assert.Equal(t, 0, ps.NumProducts())
}

func TestProductsBBoxExcludesSubtractionFragments(t *testing.T) {
	a := leaf("a", box(0, 2))
	b := leaf("b", box(1, 9))
	n := CreateNode(Difference, a, b, 0)
	ps := NewImporter().Import(n)
	bb := ps.BBox()
	assert.Equal(t, float32(0), bb.Min.X)
	assert.Equal(t, float32(2), bb.Max.X)
}
