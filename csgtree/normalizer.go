// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csgtree

// Normalizer rewrites a CSGNode tree into disjunctive-normal-ish form —
// pushing Intersection/Difference down through Union so the tree is
// sum-of-products-shaped before Importer flattens it — while counting
// leaves against an element-count budget.
// Exceeding the budget aborts normalization and returns the tree
// unmodified rather than continuing to expand it unbounded.
type Normalizer struct {
	// Limit caps the number of leaves of the input tree that rewrite
	// visits; 0 means unbounded. Leaves that distribute duplicates into
	// the output are not counted, so the normalized tree may hold more
	// leaves than Limit.
	Limit int

	count int
}

// NewNormalizer returns a Normalizer with the given leaf-count budget.
func NewNormalizer(limit int) *Normalizer { return &Normalizer{Limit: limit} }

// ErrBudgetExceeded is returned by Normalize when rewriting would exceed
// the configured Limit.
type ErrBudgetExceeded struct{ Limit int }

func (e *ErrBudgetExceeded) Error() string {
	return "csgtree: normalized tree exceeds element budget"
}

// Normalize returns a tree equivalent to root with Intersection and
// Difference operators pushed toward the leaves (distributing over
// Union). If n.Limit is exceeded it returns root unchanged together with
// an *ErrBudgetExceeded error.
func (n *Normalizer) Normalize(root *Node) (*Node, error) {
	n.count = 0
	out, err := n.rewrite(root)
	if err != nil {
		return root, err
	}
	return out, nil
}

func (n *Normalizer) rewrite(node *Node) (*Node, error) {
	if node == nil || node.IsEmpty() {
		return node, nil
	}
	if node.Leaf != nil {
		n.count++
		if n.Limit > 0 && n.count > n.Limit {
			return nil, &ErrBudgetExceeded{Limit: n.Limit}
		}
		return node, nil
	}

	op := node.Operation
	left, err := n.rewrite(op.Left)
	if err != nil {
		return nil, err
	}
	right, err := n.rewrite(op.Right)
	if err != nil {
		return nil, err
	}

	switch op.Op {
	case Union:
		return CreateNode(Union, left, right, op.Flags), nil
	case Intersection:
		return n.distribute(Intersection, left, right, op.Flags)
	case Difference:
		return n.distribute(Difference, left, right, op.Flags)
	}
	return node, nil
}

// distribute pushes an Intersection/Difference operator through a Union
// operand: (a ∪ b) ∩ c  ==  (a ∩ c) ∪ (b ∩ c), and symmetrically for the
// right operand and for Difference.
func (n *Normalizer) distribute(op Op, left, right *Node, flags Flags) (*Node, error) {
	if left != nil && left.Operation != nil && left.Operation.Op == Union {
		a, err := n.distribute(op, left.Operation.Left, right, flags)
		if err != nil {
			return nil, err
		}
		b, err := n.distribute(op, left.Operation.Right, right, flags)
		if err != nil {
			return nil, err
		}
		return CreateNode(Union, a, b, flags), nil
	}
	if op == Intersection && right != nil && right.Operation != nil && right.Operation.Op == Union {
		a, err := n.distribute(op, left, right.Operation.Left, flags)
		if err != nil {
			return nil, err
		}
		b, err := n.distribute(op, left, right.Operation.Right, flags)
		if err != nil {
			return nil, err
		}
		return CreateNode(Union, a, b, flags), nil
	}
	return CreateNode(op, left, right, flags), nil
}
