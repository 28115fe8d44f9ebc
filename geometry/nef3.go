// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"

	"github.com/solidgeom/engine/math32"
)

// Nef3 is an exact 3D boundary representation supporting closed Boolean
// algebra. The core never looks inside a Nef3's Handle — that is the
// exact kernel's private number type — it only calls Kernel methods
// that accept and return Nef3 values.
type Nef3 struct {
	// Handle is an opaque reference into the exact kernel's own object
	// store; the core treats it as an untyped token.
	Handle any
	bbox   math32.Box3
	facets int
	empty  bool
}

// NewNef3 wraps a kernel handle. bbox and facets are supplied by the
// kernel at construction time since the core cannot compute them itself
// without decoding the exact number type.
func NewNef3(handle any, bbox math32.Box3, facets int, empty bool) *Nef3 {
	return &Nef3{Handle: handle, bbox: bbox, facets: facets, empty: empty}
}

// Kind implements Geometry.
func (n *Nef3) Kind() Kind { return KindNef }

// MemSize implements Geometry. Exact kernels carry a much higher
// per-facet overhead than a PolySet's plain floats; this estimate is
// deliberately conservative so ExactCache evicts sooner than
// GeometryCache for the same facet count.
func (n *Nef3) MemSize() int { return n.facets * 96 }

// BoundingBox implements Geometry.
func (n *Nef3) BoundingBox() math32.Box3 { return n.bbox }

// Dump implements Geometry.
func (n *Nef3) Dump() string {
	return fmt.Sprintf("Nef3{facets=%d, empty=%t}", n.facets, n.empty)
}

// Dimension implements Geometry.
func (n *Nef3) Dimension() int { return 3 }

// IsEmpty implements Geometry.
func (n *Nef3) IsEmpty() bool { return n.empty }

// Copy implements Geometry. The kernel handle itself is assumed
// immutable/reference-counted by the kernel, so Copy shares it rather
// than deep-copying the underlying mesh.
func (n *Nef3) Copy() Geometry {
	c := *n
	return &c
}

// NumFacets implements Geometry.
func (n *Nef3) NumFacets() int { return n.facets }
