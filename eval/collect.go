// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/diag"
	"github.com/solidgeom/engine/geometry"
)

// collect3D implements collect_children_3D: keeps 3D
// children, tessellates 2D children into a flat zero-height solid so
// they can still participate, and drops anything else (with a warning).
// Empty children are silently dropped.
func (e *Evaluator) collect3D(loc astnode.Location, children []geometry.Geometry) []geometry.Geometry {
	out := make([]geometry.Geometry, 0, len(children))
	for _, g := range children {
		if g == nil || g.IsEmpty() {
			continue
		}
		switch g.Dimension() {
		case 3:
			out = append(out, g)
		case 2:
			out = append(out, tessellate(g))
		default:
			e.warn(diag.DimensionMismatch, loc, "discarding non-3D, non-2D child in 3D context")
		}
	}
	return out
}

// collect2D implements collect_children_2D: keeps 2D children, discards
// others with a warning.
func (e *Evaluator) collect2D(loc astnode.Location, children []geometry.Geometry) []geometry.Geometry {
	out := make([]geometry.Geometry, 0, len(children))
	for _, g := range children {
		if g == nil || g.IsEmpty() {
			continue
		}
		if g.Dimension() != 2 {
			e.warn(diag.DimensionMismatch, loc, "discarding non-2D child in 2D context")
			continue
		}
		out = append(out, g)
	}
	return out
}

// collect1D implements collect_children_1D for polyline nodes: no
// dimension conversion is defined for 1D, so non-1D children are simply
// dropped with a warning.
func (e *Evaluator) collect1D(loc astnode.Location, children []geometry.Geometry) []geometry.Geometry {
	out := make([]geometry.Geometry, 0, len(children))
	for _, g := range children {
		if g == nil || g.IsEmpty() {
			continue
		}
		if g.Dimension() != 1 {
			e.warn(diag.DimensionMismatch, loc, "discarding non-1D child in 1D context")
			continue
		}
		out = append(out, g)
	}
	return out
}

// tessellate converts a 2D Polygon2d into a degenerate zero-height
// PolySet so it can be concatenated alongside genuine 3D operands.
// Each outline becomes a coplanar face at z=0.
func tessellate(g geometry.Geometry) geometry.Geometry {
	poly, ok := g.(*geometry.Polygon2d)
	if !ok {
		return g
	}
	out := geometry.NewPolySet()
	for _, o := range poly.Outlines {
		if len(o.Points) < 3 {
			continue
		}
		base := len(out.Vertices)
		face := make(geometry.Face, len(o.Points))
		for i, p := range o.Points {
			out.Vertices = append(out.Vertices, mustVec3(p))
			face[i] = base + i
		}
		out.Faces = append(out.Faces, face)
	}
	return out
}
