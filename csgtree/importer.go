// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csgtree

// BBoxMode names a bounding-box mode for an Importer. Import does not
// read it: both modes produce the same Products, whose boxes are computed
// on demand by Product.BBox and Products.BBox.
type BBoxMode uint8

const (
	Incremental BBoxMode = iota
	Deferred
)

// Importer distributes a CSGNode tree into CSGProducts: a sum of
// products, each a primary leaf together with the leaves to subtract or
// intersect from it. This is the "multiply out" step
// that follows tree normalization.
type Importer struct {
	Mode BBoxMode
}

// NewImporter returns an Importer using the Incremental bbox mode.
func NewImporter() *Importer { return &Importer{Mode: Incremental} }

// Import converts root into a Products sum. A nil or empty root yields an
// empty Products.
func (imp *Importer) Import(root *Node) *Products {
	out := &Products{}
	if root == nil || root.IsEmpty() {
		return out
	}
	imp.importNode(root, out, Primary)
	return out
}

// importNode recursively distributes root, appending completed products
// to out. role carries how this subtree's leaves should be tagged once
// they land in a product (Primary for a freestanding union term,
// Subtraction/Intersect for the right-hand operand of a Difference/
// Intersection chain that hasn't yet been flattened into its own
// product).
func (imp *Importer) importNode(n *Node, out *Products, role ProductOp) {
	if n == nil || n.IsEmpty() {
		return
	}
	if n.Leaf != nil {
		out.Append(&Product{Fragments: []ProductFragment{{Leaf: n.Leaf, Op: role}}})
		return
	}

	op := n.Operation
	switch op.Op {
	case Union:
		// a union of two subtrees distributes into independent products
		imp.importNode(op.Left, out, Primary)
		imp.importNode(op.Right, out, Primary)

	case Intersection:
		left := imp.flatten(op.Left)
		right := imp.flatten(op.Right)
		for _, lp := range left {
			for _, rp := range right {
				out.Append(mergeProducts(lp, rp, Intersect))
			}
		}

	case Difference:
		left := imp.flatten(op.Left)
		right := imp.flatten(op.Right)
		for _, lp := range left {
			merged := *lp
			for _, rp := range right {
				merged = *mergeProducts(&merged, rp, Subtraction)
			}
			out.Append(&merged)
		}
	}
}

// flatten distributes n into a standalone Products list without
// appending to a shared accumulator; used to materialize both operands
// of an Intersection/Difference before cross-multiplying them.
func (imp *Importer) flatten(n *Node) []*Product {
	tmp := &Products{}
	imp.importNode(n, tmp, Primary)
	if len(tmp.Products) == 0 && n != nil && !n.IsEmpty() {
		// importNode yields at least one product for every non-empty
		// subtree, so this branch is defensive: a non-empty subtree with
		// no products is treated like an empty one.
		return nil
	}
	return tmp.Products
}

// mergeProducts concatenates a's fragments with b's, retagging b's
// fragments with role (Subtraction or Intersect) so the product records
// which operation removed or bounded them.
func mergeProducts(a, b *Product, role ProductOp) *Product {
	merged := &Product{Fragments: make([]ProductFragment, 0, len(a.Fragments)+len(b.Fragments))}
	merged.Fragments = append(merged.Fragments, a.Fragments...)
	for _, f := range b.Fragments {
		tag := role
		if f.Op == Subtraction || f.Op == Intersect {
			tag = f.Op // a nested negative term keeps its own role
		}
		merged.Fragments = append(merged.Fragments, ProductFragment{Leaf: f.Leaf, Op: tag})
	}
	return merged
}
