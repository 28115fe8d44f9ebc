// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astnode defines the AST node shape the parser is assumed to produce: nodes with a
// Location, an Expression tree, and an AssignmentList, organized as an
// ordered tree of owned children plus a non-owning back-reference to the
// originating module instantiation.
package astnode

// Location is a source position, provided by the parser.
type Location struct {
	File   string
	Line   int
	Column int
}

// String implements fmt.Stringer.
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return l.File + ":" + itoa(l.Line) + ":" + itoa(l.Column)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Kind discriminates node variants.
type Kind uint8

const (
	KindRoot Kind = iota
	KindGroup
	KindLeaf
	KindTransform
	KindCsgUnion
	KindCsgIntersection
	KindCsgDifference
	KindCsgMinkowski
	KindCsgHull
	KindCsgFill
	KindCsgResize
	KindLinearExtrude
	KindRotateExtrude
	KindProjection
	KindOffset
	KindText
	KindRender
	KindCgaladv
)

// Arena owns every Node created for one parse tree and hands out stable
// process-local indices. Module-reference back-references are indices
// into this same arena: a non-owning, weak handle, never a pointer kept
// in the ownership graph.
type Arena struct {
	nodes []*Node
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// New allocates a Node of the given kind, owned by a, and returns it.
func (a *Arena) New(kind Kind, loc Location) *Node {
	n := &Node{
		index: len(a.nodes),
		Kind:  kind,
		Loc:   loc,
		arena: a,
	}
	a.nodes = append(a.nodes, n)
	return n
}

// NodeByIndex returns the node with the given arena index, or nil if out
// of range.
func (a *Arena) NodeByIndex(i int) *Node {
	if i < 0 || i >= len(a.nodes) {
		return nil
	}
	return a.nodes[i]
}

// Len returns the number of nodes allocated in a.
func (a *Arena) Len() int { return len(a.nodes) }

// ModuleRef is a non-owning, weak back-reference to the ModuleInstantiation
// that produced a node: relation-and-lookup only.
type ModuleRef struct {
	arena *Arena
	index int
	valid bool
}

// Resolve returns the referenced Node, or nil if the reference was never
// set or the arena has since been discarded.
func (r ModuleRef) Resolve() *Node {
	if !r.valid || r.arena == nil {
		return nil
	}
	return r.arena.NodeByIndex(r.index)
}

// Node is one AST node: an ordered list of owned children, a Location, an
// optional ModuleInstantiation back-reference, and a Kind discriminant.
// Parameters specific to a Kind (transform matrix, CSG op, extrusion
// height, ...) are carried in the Params field as opaque key/value pairs
// evaluated by the caller; this package only owns tree shape and identity.
type Node struct {
	index    int
	arena    *Arena
	Kind     Kind
	Loc      Location
	Module   ModuleRef
	Children []*Node
	Params   map[string]any
}

// Index returns n's stable process-local arena index.
func (n *Node) Index() int { return n.index }

// AddChild appends child to n's owned children list.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// SetModuleRef records a non-owning back-reference from n to the
// instantiation node that produced it.
func (n *Node) SetModuleRef(inst *Node) {
	if inst == nil {
		n.Module = ModuleRef{}
		return
	}
	n.Module = ModuleRef{arena: inst.arena, index: inst.index, valid: true}
}

// Param returns n.Params[key] and whether it was present.
func (n *Node) Param(key string) (any, bool) {
	if n.Params == nil {
		return nil, false
	}
	v, ok := n.Params[key]
	return v, ok
}

// SetParam sets n.Params[key] = val, initializing the map if needed.
func (n *Node) SetParam(key string, val any) {
	if n.Params == nil {
		n.Params = map[string]any{}
	}
	n.Params[key] = val
}
