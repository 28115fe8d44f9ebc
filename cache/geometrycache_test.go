// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"testing"

	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/math32"
	"github.com/stretchr/testify/assert"
)

func TestAcceptsGeometryRoutesPolySetToGeometryCache(t *testing.T) {
	p := geometry.NewPolySet()
	assert.True(t, AcceptsGeometry(p))
	assert.False(t, AcceptsExact(p))
}

func TestAcceptsExactRoutesNefToExactCache(t *testing.T) {
	n := geometry.NewNef3(nil, math32.NewEmptyBox3(), 12, false)
	assert.False(t, AcceptsGeometry(n))
	assert.True(t, AcceptsExact(n))
}

func TestExactCacheRejectsNonExactKind(t *testing.T) {
	ec := NewExactCache()
	p := geometry.NewPolySet()
	p.Vertices = []math32.Vector3{{}, {}, {}}
	p.Faces = []geometry.Face{{0, 1, 2}}
	ok := ec.Insert("fp1", p, "")
	assert.False(t, ok)
	assert.False(t, ec.Contains("fp1"))
}

func TestGeometryCacheRoundTrip(t *testing.T) {
	gc := NewGeometryCache()
	p := geometry.NewPolySet()
	p.Vertices = []math32.Vector3{{}, {}, {}}
	p.Faces = []geometry.Face{{0, 1, 2}}
	ok := gc.Insert("fp1", p, "1 warning")
	assert.True(t, ok)
	e, found := gc.Get("fp1")
	assert.True(t, found)
	assert.Equal(t, "1 warning", e.Message)
	assert.Same(t, p, e.Geom)
}
