// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse implements the node-tree traversal contract: a deterministic fingerprint map used as the cache key
// for every subtree, and the visitor scaffolding the geometry and CSG
// evaluators drive over it.
package traverse

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"

	"github.com/solidgeom/engine/astnode"
)

// Tree maps an AST node's stable index to its canonical fingerprint
// string, computed once and memoized. Nodes with
// identical fingerprints are guaranteed to produce identical geometry.
type Tree struct {
	arena *astnode.Arena
	fp    map[int]string
}

// NewTree returns a Tree backed by arena, with an empty fingerprint
// cache.
func NewTree(arena *astnode.Arena) *Tree {
	return &Tree{arena: arena, fp: map[int]string{}}
}

// Fingerprint returns the canonical fingerprint of the subtree rooted at
// n, computing and memoizing it on first access.
func (t *Tree) Fingerprint(n *astnode.Node) string {
	if n == nil {
		return "nil"
	}
	if s, ok := t.fp[n.Index()]; ok {
		return s
	}
	s := t.dump(n)
	sum := sha256.Sum256([]byte(s))
	digest := hex.EncodeToString(sum[:])
	t.fp[n.Index()] = digest
	return digest
}

// Invalidate drops the memoized fingerprint for n, forcing recomputation
// on next access (used when a parameter Apply rebinds an assignment feeding
// into n's subtree).
func (t *Tree) Invalidate(n *astnode.Node) {
	if n != nil {
		delete(t.fp, n.Index())
	}
}

// dump produces a deterministic textual serialization of n's subtree,
// including every parameter that affects geometry: kind, sorted
// parameter key/value pairs, and each child's own dump. Order matters
// for non-commutative operators; for commutative ones (union,
// intersection, and the implicit unions formed by root/group nodes)
// the child dumps are sorted lexically so permuting children never
// changes the fingerprint.
func (t *Tree) dump(n *astnode.Node) string {
	out := fmt.Sprintf("(%d", n.Kind)

	keys := make([]string, 0, len(n.Params))
	for k := range n.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, _ := n.Param(k)
		out += " " + k + "=" + formatParam(v)
	}

	children := make([]string, len(n.Children))
	for i, c := range n.Children {
		children[i] = t.dump(c)
	}
	if commutative(n.Kind) {
		sort.Strings(children)
	}
	for _, c := range children {
		out += " " + c
	}
	out += ")"
	return out
}

// commutative reports whether kind's children may be freely permuted
// without changing the resulting geometry.
func commutative(kind astnode.Kind) bool {
	switch kind {
	case astnode.KindRoot, astnode.KindGroup, astnode.KindCsgUnion, astnode.KindCsgIntersection:
		return true
	default:
		return false
	}
}

func formatParam(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
