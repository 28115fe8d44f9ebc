// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/solidgeom/engine/math32"
)

// Face is one polygon face as indices into a PolySet's Vertices.
type Face []int

// PolySet is a 3D triangle/polygon soup: an inexact, fast mesh
// representation.
type PolySet struct {
	Vertices []math32.Vector3
	Faces    []Face
	// Convex, when true, lets CsgOpNode{MINKOWSKI} skip convex
	// decomposition.
	Convex bool
}

// NewPolySet returns an empty PolySet.
func NewPolySet() *PolySet { return &PolySet{} }

// Kind implements Geometry.
func (p *PolySet) Kind() Kind { return KindPolySet }

// MemSize implements Geometry: 3 floats/vertex + index ints, roughly the
// resident cost a Vector3-backed vertex buffer would occupy.
func (p *PolySet) MemSize() int {
	size := len(p.Vertices) * 3 * 4
	for _, f := range p.Faces {
		size += len(f) * 8
	}
	return size
}

// BoundingBox implements Geometry.
func (p *PolySet) BoundingBox() math32.Box3 {
	b := math32.NewEmptyBox3()
	for _, v := range p.Vertices {
		b.ExpandByPoint(v)
	}
	return b
}

// Dump implements Geometry.
func (p *PolySet) Dump() string {
	return fmt.Sprintf("PolySet{verts=%d, faces=%d}\n%s", len(p.Vertices), len(p.Faces), spew.Sdump(p.Faces))
}

// Dimension implements Geometry.
func (p *PolySet) Dimension() int { return 3 }

// IsEmpty implements Geometry.
func (p *PolySet) IsEmpty() bool { return len(p.Faces) == 0 }

// Copy implements Geometry.
func (p *PolySet) Copy() Geometry {
	out := &PolySet{
		Vertices: append([]math32.Vector3(nil), p.Vertices...),
		Faces:    make([]Face, len(p.Faces)),
		Convex:   p.Convex,
	}
	for i, f := range p.Faces {
		out.Faces[i] = append(Face(nil), f...)
	}
	return out
}

// NumFacets implements Geometry.
func (p *PolySet) NumFacets() int { return len(p.Faces) }

// Transform implements Transformable.
func (p *PolySet) Transform(m *math32.Matrix4) Geometry {
	out := p.Copy().(*PolySet)
	for i, v := range out.Vertices {
		out.Vertices[i] = v.MulMatrix4(m)
	}
	return out
}

// Resize implements Resizable:
// newSize gives the target extent on each axis; where autoSize[axis] is
// true and newSize[axis] == 0, that axis scales by the same factor as
// the first axis with an explicit target, preserving aspect ratio.
func (p *PolySet) Resize(newSize math32.Vector3, autoSize [3]bool) Geometry {
	bb := p.BoundingBox()
	cur := bb.Size()
	factor := [3]float32{1, 1, 1}
	target := [3]float32{newSize.X, newSize.Y, newSize.Z}
	curArr := [3]float32{cur.X, cur.Y, cur.Z}

	uniform := float32(1)
	haveUniform := false
	for axis := 0; axis < 3; axis++ {
		if target[axis] != 0 && curArr[axis] != 0 {
			factor[axis] = target[axis] / curArr[axis]
			if !haveUniform {
				uniform = factor[axis]
				haveUniform = true
			}
		}
	}
	if haveUniform {
		for axis := 0; axis < 3; axis++ {
			if autoSize[axis] && target[axis] == 0 {
				factor[axis] = uniform
			}
		}
	}

	out := p.Copy().(*PolySet)
	center := bb.Center()
	for i, v := range out.Vertices {
		out.Vertices[i] = math32.Vector3{
			X: center.X + (v.X-center.X)*factor[0],
			Y: center.Y + (v.Y-center.Y)*factor[1],
			Z: center.Z + (v.Z-center.Z)*factor[2],
		}
	}
	return out
}

var _ Resizable = (*PolySet)(nil)

// Append concatenates o's vertices/faces onto p (index-adjusted),
// used by the fast disjoint-union concatenation path.
func (p *PolySet) Append(o *PolySet) {
	base := len(p.Vertices)
	p.Vertices = append(p.Vertices, o.Vertices...)
	for _, f := range o.Faces {
		nf := make(Face, len(f))
		for i, idx := range f {
			nf[i] = idx + base
		}
		p.Faces = append(p.Faces, nf)
	}
}
