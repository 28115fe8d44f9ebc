// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"

	"github.com/solidgeom/engine/math32"
)

// Outline is one closed 2D loop, labeled as a positive contour or a hole.
type Outline struct {
	Points []math32.Vector2
	IsHole bool
}

// Polygon2d is a set of closed outlines. The evaluator's 2D CsgOpNode
// operators return and consume this type; no polygon clipping is done in
// this module: 2D union concatenates outlines, and 2D intersection,
// difference and hull warn and return an empty Polygon2d.
type Polygon2d struct {
	Outlines []Outline
}

// NewPolygon2d returns an empty Polygon2d.
func NewPolygon2d() *Polygon2d { return &Polygon2d{} }

// Kind implements Geometry.
func (p *Polygon2d) Kind() Kind { return KindPolygon2D }

// MemSize implements Geometry.
func (p *Polygon2d) MemSize() int {
	size := 0
	for _, o := range p.Outlines {
		size += len(o.Points) * 2 * 4
	}
	return size
}

// BoundingBox implements Geometry (Z is always [0,0]).
func (p *Polygon2d) BoundingBox() math32.Box3 {
	b2 := math32.NewEmptyBox2()
	for _, o := range p.Outlines {
		for _, pt := range o.Points {
			b2.ExpandByPoint(pt)
		}
	}
	return math32.Box3{
		Min: math32.Vec3(b2.Min.X, b2.Min.Y, 0),
		Max: math32.Vec3(b2.Max.X, b2.Max.Y, 0),
	}
}

// Dump implements Geometry.
func (p *Polygon2d) Dump() string {
	return fmt.Sprintf("Polygon2d{outlines=%d}", len(p.Outlines))
}

// Dimension implements Geometry.
func (p *Polygon2d) Dimension() int { return 2 }

// IsEmpty implements Geometry.
func (p *Polygon2d) IsEmpty() bool { return len(p.Outlines) == 0 }

// Copy implements Geometry.
func (p *Polygon2d) Copy() Geometry {
	out := &Polygon2d{Outlines: make([]Outline, len(p.Outlines))}
	for i, o := range p.Outlines {
		out.Outlines[i] = Outline{Points: append([]math32.Vector2(nil), o.Points...), IsHole: o.IsHole}
	}
	return out
}

// NumFacets implements Geometry, counting outlines as the 2D analogue of
// facets.
func (p *Polygon2d) NumFacets() int { return len(p.Outlines) }

// Transform implements Transformable, projecting the 3D matrix's XY block
// onto each 2D point (rotate_extrude/linear_extrude feed a 2D profile
// through an otherwise-3D transform chain in some callers).
func (p *Polygon2d) Transform(m *math32.Matrix4) Geometry {
	out := p.Copy().(*Polygon2d)
	for oi, o := range out.Outlines {
		for i, pt := range o.Points {
			v3 := math32.Vec3(pt.X, pt.Y, 0).MulMatrix4(m)
			out.Outlines[oi].Points[i] = math32.Vec2(v3.X, v3.Y)
		}
	}
	return out
}
