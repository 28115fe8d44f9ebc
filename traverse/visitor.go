// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import "github.com/solidgeom/engine/astnode"

// State distinguishes the pre-order and post-order visits of a node;
// each node is visited exactly twice in the post-order-dominant DFS walk.
type State uint8

const (
	Prefix State = iota
	Postfix
)

// Response is the three-state control-flow result of a visit, replacing
// exception-based unwinding.
type Response uint8

const (
	Continue Response = iota
	Prune
	Abort
)

// Visitor defines, for each node, the action to take at a given State.
// Implementations pattern-match on node.Kind rather than relying on
// polymorphic dispatch.
type Visitor interface {
	Visit(state State, node *astnode.Node) Response
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(state State, node *astnode.Node) Response

func (f VisitorFunc) Visit(state State, node *astnode.Node) Response { return f(state, node) }

// Cancellable is polled at every suspension point: once per
// pre-visit and once per post-visit. A host event loop sets this flag to
// request cancellation; Walk observes it and returns Abort.
type Cancellable interface {
	Cancelled() bool
}

// Walk performs a post-order-dominant DFS traversal of root: each node
// is visited pre-order, then (unless pruned or aborted) its children
// are walked in order, then the node is visited post-order. cancel may
// be nil.
func Walk(root *astnode.Node, v Visitor, cancel Cancellable) Response {
	if root == nil {
		return Continue
	}
	if cancel != nil && cancel.Cancelled() {
		return Abort
	}

	switch v.Visit(Prefix, root) {
	case Abort:
		return Abort
	case Prune:
		return v.Visit(Postfix, root)
	}

	for _, child := range root.Children {
		if Walk(child, v, cancel) == Abort {
			return Abort
		}
	}

	if cancel != nil && cancel.Cancelled() {
		return Abort
	}
	return v.Visit(Postfix, root)
}
