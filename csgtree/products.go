// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csgtree

import "github.com/solidgeom/engine/math32"

// ProductOp tags one term within a CSGProduct: a "cut it open into an
// outline + holes" pattern generalized to the three roles a
// sum-of-products term can play relative to its chain.
type ProductOp uint8

const (
	Primary ProductOp = iota
	Addition
	Subtraction
	Intersect
)

// ProductFragment is one positive or negative leaf participating in a
// CSGProduct, paired with the role it plays in the chain.
type ProductFragment struct {
	Leaf *Leaf
	Op   ProductOp
}

// Product is one term of the normalized sum.
type Product struct {
	Fragments []ProductFragment
}

// BBox returns the bounding box of the product's fragments other than
// Subtraction ones (Primary, Addition and Intersect fragments).
func (p *Product) BBox() math32.Box3 {
	bb := math32.NewEmptyBox3()
	for _, f := range p.Fragments {
		if f.Op == Subtraction {
			continue
		}
		bb = bb.Union(f.Leaf.BBox)
	}
	return bb
}

// Products is a sum of Product terms: the renderer-ready, fully
// distributed form of a CSGNode tree.
type Products struct {
	Products []*Product
}

// Append adds p to the sum.
func (ps *Products) Append(p *Product) { ps.Products = append(ps.Products, p) }

// BBox returns the union of every term's bounding box.
func (ps *Products) BBox() math32.Box3 {
	bb := math32.NewEmptyBox3()
	for _, p := range ps.Products {
		bb = bb.Union(p.BBox())
	}
	return bb
}

// NumProducts returns the number of terms in the sum.
func (ps *Products) NumProducts() int { return len(ps.Products) }
