// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"

	"github.com/solidgeom/engine/math32"
)

// NodeRef loosely identifies which AST node (by arena index) produced
// one item in a GeometryList, without this package depending on
// astnode — it is an opaque int supplied by the caller.
type NodeRef int

// Item is one (node_ref, geometry) pair in a GeometryList.
type Item struct {
	Node NodeRef
	Geom Geometry
}

// GeometryList composes a flat sequence of (node_ref, geom) pairs. The
// evaluator does not build one itself; when a GeometryList reaches an
// operator as a child, the operator expands it into its members.
type GeometryList struct {
	Items []Item
}

// NewGeometryList returns an empty GeometryList.
func NewGeometryList() *GeometryList { return &GeometryList{} }

// Flatten returns a new GeometryList with any nested GeometryList items
// expanded in place — flattening is idempotent.
func (g *GeometryList) Flatten() *GeometryList {
	out := &GeometryList{}
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, it := range items {
			if nested, ok := it.Geom.(*GeometryList); ok {
				walk(nested.Items)
				continue
			}
			out.Items = append(out.Items, it)
		}
	}
	walk(g.Items)
	return out
}

// Kind implements Geometry.
func (g *GeometryList) Kind() Kind { return KindList }

// MemSize implements Geometry.
func (g *GeometryList) MemSize() int {
	size := 0
	for _, it := range g.Items {
		size += it.Geom.MemSize()
	}
	return size
}

// BoundingBox implements Geometry.
func (g *GeometryList) BoundingBox() math32.Box3 {
	b := math32.NewEmptyBox3()
	for _, it := range g.Items {
		b = b.Union(it.Geom.BoundingBox())
	}
	return b
}

// Dump implements Geometry.
func (g *GeometryList) Dump() string {
	return fmt.Sprintf("GeometryList{n=%d}", len(g.Items))
}

// Dimension implements Geometry: the dominant (max) dimension among
// non-empty items, or 0 if empty.
func (g *GeometryList) Dimension() int {
	dim := 0
	for _, it := range g.Items {
		if it.Geom.IsEmpty() {
			continue
		}
		if d := it.Geom.Dimension(); d > dim {
			dim = d
		}
	}
	return dim
}

// IsEmpty implements Geometry.
func (g *GeometryList) IsEmpty() bool {
	for _, it := range g.Items {
		if !it.Geom.IsEmpty() {
			return false
		}
	}
	return true
}

// Copy implements Geometry.
func (g *GeometryList) Copy() Geometry {
	out := &GeometryList{Items: make([]Item, len(g.Items))}
	for i, it := range g.Items {
		out.Items[i] = Item{Node: it.Node, Geom: it.Geom.Copy()}
	}
	return out
}

// NumFacets implements Geometry.
func (g *GeometryList) NumFacets() int {
	n := 0
	for _, it := range g.Items {
		n += it.Geom.NumFacets()
	}
	return n
}
