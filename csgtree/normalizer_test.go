// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csgtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDistributesIntersectionOverUnion(t *testing.T) {
	a := leaf("a", box(0, 2))
	b := leaf("b", box(0, 2))
	c := leaf("c", box(0, 2))

	union := CreateNode(Union, a, b, 0)
	n := CreateNode(Intersection, union, c, 0)

	out, err := NewNormalizer(0).Normalize(n)
	require.NoError(t, err)
	require.NotNil(t, out.Operation)
	assert.Equal(t, Union, out.Operation.Op)
	assert.Equal(t, Intersection, out.Operation.Left.Operation.Op)
	assert.Equal(t, Intersection, out.Operation.Right.Operation.Op)
}

func TestNormalizeRespectsLeafBudget(t *testing.T) {
	var n *Node = leaf("base", box(0, 1))
	for i := 0; i < 5; i++ {
		n = CreateNode(Union, n, leaf("x", box(float32(i), float32(i)+1)), 0)
	}
	_, err := NewNormalizer(3).Normalize(n)
	require.Error(t, err)
	var budgetErr *ErrBudgetExceeded
	assert.ErrorAs(t, err, &budgetErr)
}

func TestNormalizeLeavesUnionUntouched(t *testing.T) {
	a := leaf("a", box(0, 1))
	b := leaf("b", box(2, 3))
	n := CreateNode(Union, a, b, 0)

	out, err := NewNormalizer(0).Normalize(n)
	require.NoError(t, err)
	assert.Equal(t, Union, out.Operation.Op)
}
