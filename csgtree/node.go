// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csgtree implements the CSG Node algebra:
// CSGLeaf and CSGOperation, tree construction with empty-set absorption
// and bbox propagation, sum-of-products normalization, and the preview
// CSGProducts a renderer consumes.
package csgtree

import "github.com/solidgeom/engine/math32"

// Op identifies a binary CSG operator.
type Op uint8

const (
	Union Op = iota
	Intersection
	Difference
)

// Flags accumulate up the tree: CreateNode gives an operation the OR of
// its operands' flags and its own extra flags. Flags are not pushed down:
// a leaf keeps only its own flags, and Importer does not OR an
// operation's flags into the leaves it imports.
type Flags uint8

const (
	Background Flags = 1 << iota
	Highlight
)

// EmptyLabel is the sentinel label an empty-set CSGLeaf carries.
const EmptyLabel = "empty()"

// Node is the sum type over CSGLeaf and CSGOperation. Only one of Leaf
// or Operation is non-nil.
type Node struct {
	Leaf      *Leaf
	Operation *Operation
}

// IsEmpty reports whether n is the canonical empty-set leaf.
func (n *Node) IsEmpty() bool {
	return n != nil && n.Leaf != nil && n.Leaf.PolySet == nil && n.Leaf.Label == EmptyLabel
}

// BBox returns n's bounding box (empty-set Box3 for a nil/empty node).
func (n *Node) BBox() math32.Box3 {
	if n == nil {
		return math32.NewEmptyBox3()
	}
	if n.Leaf != nil {
		return n.Leaf.BBox
	}
	return n.Operation.BBox
}

// NodeFlags returns n's accumulated flags.
func (n *Node) NodeFlags() Flags {
	if n == nil {
		return 0
	}
	if n.Leaf != nil {
		return n.Leaf.Flags
	}
	return n.Operation.Flags
}

// Leaf is a bounded geometry+transform CSG leaf. An empty
// set is represented by PolySet == nil with Label == EmptyLabel.
type Leaf struct {
	PolySet any // *geometry.PolySet; kept as any to avoid an import cycle with eval
	Matrix  math32.Matrix4
	Color   RGBA
	Label   string
	Index   int32
	BBox    math32.Box3
	Flags   Flags
}

// RGBA is a simple 0..1 color-by-value representation rather than a
// packed uint32.
type RGBA struct{ R, G, B, A float32 }

// EmptyLeaf returns the canonical empty-set node.
func EmptyLeaf() *Node {
	return &Node{Leaf: &Leaf{Label: EmptyLabel, BBox: math32.NewEmptyBox3()}}
}

// NewLeaf wraps a geometry payload into a non-empty CSGLeaf node.
func NewLeaf(polySet any, matrix math32.Matrix4, color RGBA, label string, index int32, bbox math32.Box3) *Node {
	return &Node{Leaf: &Leaf{
		PolySet: polySet, Matrix: matrix, Color: color, Label: label, Index: index, BBox: bbox,
	}}
}

// Operation is a binary CSG node.
type Operation struct {
	Op          Op
	Left, Right *Node
	BBox        math32.Box3
	Flags       Flags
}

// CreateNode applies the standard CSG construction rule: empty-set
// absorption, then bbox computation and pruning. It never returns a tree
// containing a reference to an empty subtree,
// and the accumulated flags are the OR of both operands' flags plus any
// additionally supplied by the caller (e.g. %background()/#highlight()
// module flags at this node).
func CreateNode(op Op, left, right *Node, extra Flags) *Node {
	leftEmpty := left == nil || left.IsEmpty()
	rightEmpty := right == nil || right.IsEmpty()

	flags := extra | left.NodeFlags() | right.NodeFlags()

	switch {
	case leftEmpty && rightEmpty:
		return withFlags(EmptyLeaf(), flags)
	case leftEmpty:
		// Union: the empty operand drops out, right survives.
		// Intersection/Difference: anything combined with empty on the
		// left is empty (there is nothing left to intersect with, and
		// nothing left to subtract right from).
		switch op {
		case Union:
			return withFlags(right, flags)
		default:
			return withFlags(EmptyLeaf(), flags)
		}
	case rightEmpty:
		// Union/Difference: the empty operand drops out, left survives
		// (subtracting nothing leaves the minuend untouched).
		// Intersection: intersecting with empty is empty.
		switch op {
		case Union, Difference:
			return withFlags(left, flags)
		default:
			return withFlags(EmptyLeaf(), flags)
		}
	}

	switch op {
	case Union:
		return &Node{Operation: &Operation{
			Op: op, Left: left, Right: right,
			BBox: left.BBox().Union(right.BBox()), Flags: flags,
		}}
	case Intersection:
		bb := left.BBox().Intersect(right.BBox())
		if bb.IsEmpty() {
			return withFlags(EmptyLeaf(), flags)
		}
		return &Node{Operation: &Operation{Op: op, Left: left, Right: right, BBox: bb, Flags: flags}}
	case Difference:
		bb := left.BBox().Intersect(right.BBox())
		if bb.IsEmpty() {
			// the subtrahend cannot affect the minuend
			return withFlags(left, flags)
		}
		return &Node{Operation: &Operation{Op: op, Left: left, Right: right, BBox: left.BBox(), Flags: flags}}
	default:
		panic("csgtree: unknown op")
	}
}

// withFlags returns n with its flags OR'd with extra, copying the node
// (never mutating a shared subtree in place, since Node values may be
// referenced from multiple places in the tree being built).
func withFlags(n *Node, extra Flags) *Node {
	if n == nil {
		return nil
	}
	if n.Leaf != nil {
		l := *n.Leaf
		l.Flags |= extra
		return &Node{Leaf: &l}
	}
	o := *n.Operation
	o.Flags |= extra
	return &Node{Operation: &o}
}

// Release iteratively tears down n's subtree to avoid a stack overflow
// on long chains of shared CSG nodes: children are
// moved into a work list and released in a loop rather than recursively.
func Release(root *Node) {
	if root == nil {
		return
	}
	work := []*Node{root}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		if n == nil || n.Operation == nil {
			continue
		}
		work = append(work, n.Operation.Left, n.Operation.Right)
		n.Operation.Left, n.Operation.Right = nil, nil
	}
}
