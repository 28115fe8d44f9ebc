// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry defines the Geometry capability set and its
// variants, plus the Kernel interface the exact-arithmetic mesh engine
// must satisfy. The rest of the evaluator never depends on a concrete
// kernel implementation or its internal number types, only this
// interface.
package geometry

import "github.com/solidgeom/engine/math32"

// Kind discriminates Geometry variants.
type Kind uint8

const (
	KindPolySet Kind = iota
	KindPolygon2D
	KindNef
	KindFastPoly
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindPolySet:
		return "PolySet"
	case KindPolygon2D:
		return "Polygon2d"
	case KindNef:
		return "Nef3"
	case KindFastPoly:
		return "FastPoly"
	case KindList:
		return "GeometryList"
	default:
		return "?"
	}
}

// Geometry is the capability set every variant implements. Values are
// passed by the interface value (a pointer underneath) and treated as
// read-only by convention — no method here mutates the receiver's
// visible contents except Transform, which returns a new Geometry
// rather than mutating in place.
type Geometry interface {
	// Kind identifies the concrete variant, used by the caches to route
	// storage.
	Kind() Kind
	// MemSize estimates the geometry's resident byte cost — this is the
	// Cache entry cost.
	MemSize() int
	// BoundingBox returns the geometry's axis-aligned bounds in local
	// coordinates.
	BoundingBox() math32.Box3
	// Dump returns a human-readable debug string.
	Dump() string
	// Dimension returns 0, 1, 2, or 3.
	Dimension() int
	// IsEmpty reports whether the geometry has no facets/outlines.
	IsEmpty() bool
	// Copy returns a deep copy.
	Copy() Geometry
	// NumFacets returns the facet/triangle/outline count, used for
	// assertions about an operator's observable call count.
	NumFacets() int
}

// Transformable is implemented by variants that support an affine
// transform. GeometryList and Nef3 do not implement it, so it is a
// separate, narrower interface rather than a method every Geometry must
// implement; the evaluator's transform operator returns a geometry that
// lacks it unchanged.
type Transformable interface {
	Geometry
	Transform(m *math32.Matrix4) Geometry
}

// Resizable is implemented by variants that support RESIZE.
type Resizable interface {
	Geometry
	Resize(newSize math32.Vector3, autoSize [3]bool) Geometry
}
