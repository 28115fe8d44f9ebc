// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"github.com/solidgeom/engine/math32"
	"github.com/stretchr/testify/assert"
)

func cube(origin math32.Vector3, side float32) *PolySet {
	p := NewPolySet()
	for _, dx := range []float32{0, side} {
		for _, dy := range []float32{0, side} {
			for _, dz := range []float32{0, side} {
				p.Vertices = append(p.Vertices, origin.Add(math32.Vec3(dx, dy, dz)))
			}
		}
	}
	// 6 faces, 2 triangles each — kept as quads here for the bbox/facet
	// tests, triangulation is a kernel concern.
	p.Faces = []Face{{0, 1, 3, 2}, {4, 5, 7, 6}, {0, 1, 5, 4}, {2, 3, 7, 6}, {0, 2, 6, 4}, {1, 3, 7, 5}}
	return p
}

func TestPolySetBoundingBox(t *testing.T) {
	p := cube(math32.Vec3(0, 0, 0), 1)
	b := p.BoundingBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), b.Min)
	assert.Equal(t, math32.Vec3(1, 1, 1), b.Max)
}

func TestPolySetAppendConcatenates(t *testing.T) {
	a := cube(math32.Vec3(0, 0, 0), 1)
	b := cube(math32.Vec3(10, 0, 0), 1)
	a.Append(b)
	assert.Len(t, a.Vertices, 16)
	assert.Len(t, a.Faces, 12)
	bb := a.BoundingBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(11, 1, 1), bb.Max)
}

func TestGeometryListFlattenIdempotent(t *testing.T) {
	inner := &GeometryList{Items: []Item{{Geom: cube(math32.Vec3(0, 0, 0), 1)}}}
	outer := &GeometryList{Items: []Item{{Geom: inner}, {Geom: cube(math32.Vec3(2, 0, 0), 1)}}}
	flat := outer.Flatten()
	assert.Len(t, flat.Items, 2)
	flat2 := flat.Flatten()
	assert.Equal(t, flat, flat2)
}

func TestGeometryListDimensionDominant(t *testing.T) {
	g := &GeometryList{Items: []Item{
		{Geom: NewPolygon2d()},
		{Geom: cube(math32.Vec3(0, 0, 0), 1)},
	}}
	assert.Equal(t, 3, g.Dimension())
}

func TestNullKernelReportsFailure(t *testing.T) {
	var k Kernel = NullKernel{}
	_, err := k.Union3D(nil)
	assert.Error(t, err)
	var kerr *KernelError
	assert.ErrorAs(t, err, &kerr)
}
