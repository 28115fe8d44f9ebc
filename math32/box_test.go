// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3UnionEmpty(t *testing.T) {
	a := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	b := NewEmptyBox3()
	assert.Equal(t, a, a.Union(b))
	assert.Equal(t, a, b.Union(a))
}

func TestBox3Intersect(t *testing.T) {
	a := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	b := NewBox3(Vec3(10, 0, 0), Vec3(11, 1, 1))
	assert.True(t, a.Intersect(b).IsEmpty())
	assert.True(t, a.Intersects(a))
	assert.False(t, a.Intersects(b))
}

func TestBox3IntersectsOverlap(t *testing.T) {
	a := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	b := NewBox3(Vec3(0.5, 0, 0), Vec3(1.5, 1, 1))
	assert.True(t, a.Intersects(b))
	got := a.Intersect(b)
	assert.False(t, got.IsEmpty())
	assert.Equal(t, Vec3(0.5, 0, 0), got.Min)
	assert.Equal(t, Vec3(1, 1, 1), got.Max)
}

func TestBox3MulMatrix4Translate(t *testing.T) {
	a := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	m := NewMatrix4().Translate(Vec3(10, 0, 0))
	got := a.MulMatrix4(m)
	assert.Equal(t, Vec3(10, 0, 0), got.Min)
	assert.Equal(t, Vec3(11, 1, 1), got.Max)
}
