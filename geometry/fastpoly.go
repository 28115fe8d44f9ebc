// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"

	"github.com/solidgeom/engine/math32"
)

// FastPoly is a manifold-fast mesh with an exact-Nef fallback. The
// evaluator's fast-union path returns a plain *PolySet, not a FastPoly;
// NewFastPoly wraps a PolySet for callers that construct one directly.
// Kernel operations that cannot be expressed on the fast
// representation fall back to Fallback, which is lazily populated by the
// evaluator only when actually needed.
type FastPoly struct {
	Fast     *PolySet
	Fallback *Nef3 // nil until a caller needs the exact fallback
}

// NewFastPoly wraps a validated manifold PolySet.
func NewFastPoly(fast *PolySet) *FastPoly { return &FastPoly{Fast: fast} }

// Kind implements Geometry. FastPoly is admitted to ExactCache
// alongside Nef3 because its Fallback, once populated, is
// exact — but even before that it is treated as an exact-capable variant
// so a later caller requesting prefer_nef does not force a redundant
// kernel union.
func (f *FastPoly) Kind() Kind { return KindFastPoly }

// MemSize implements Geometry.
func (f *FastPoly) MemSize() int {
	size := 0
	if f.Fast != nil {
		size += f.Fast.MemSize()
	}
	if f.Fallback != nil {
		size += f.Fallback.MemSize()
	}
	return size
}

// BoundingBox implements Geometry.
func (f *FastPoly) BoundingBox() math32.Box3 {
	if f.Fast != nil {
		return f.Fast.BoundingBox()
	}
	return f.Fallback.BoundingBox()
}

// Dump implements Geometry.
func (f *FastPoly) Dump() string {
	return fmt.Sprintf("FastPoly{fast=%t, fallback=%t}", f.Fast != nil, f.Fallback != nil)
}

// Dimension implements Geometry.
func (f *FastPoly) Dimension() int { return 3 }

// IsEmpty implements Geometry.
func (f *FastPoly) IsEmpty() bool {
	if f.Fast != nil {
		return f.Fast.IsEmpty()
	}
	return f.Fallback == nil || f.Fallback.IsEmpty()
}

// Copy implements Geometry.
func (f *FastPoly) Copy() Geometry {
	out := &FastPoly{}
	if f.Fast != nil {
		out.Fast = f.Fast.Copy().(*PolySet)
	}
	if f.Fallback != nil {
		out.Fallback = f.Fallback.Copy().(*Nef3)
	}
	return out
}

// NumFacets implements Geometry.
func (f *FastPoly) NumFacets() int {
	if f.Fast != nil {
		return f.Fast.NumFacets()
	}
	return f.Fallback.NumFacets()
}

// Transform implements Transformable.
func (f *FastPoly) Transform(m *math32.Matrix4) Geometry {
	out := f.Copy().(*FastPoly)
	if out.Fast != nil {
		out.Fast = out.Fast.Transform(m).(*PolySet)
	}
	return out
}
