// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval implements the Geometry Evaluator: a
// visitor-driven traversal that lowers an AST node tree into concrete
// Geometry, memoized per subtree fingerprint, with a fast path for
// disjoint 3D unions.
package eval

import (
	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/cache"
	"github.com/solidgeom/engine/diag"
	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/traverse"
)

// Config holds the host-tunable feature switches exposed on the CLI
// plus the evaluator's internal resource budgets.
type Config struct {
	// TrustManifold skips the post-concatenation manifoldness check in
	// the fast-union path (--enable=trust-manifold).
	TrustManifold bool
	// FastCSG enables the PMP corefinement path for manifold inputs
	// (--enable=fast-csg). The core records the flag and threads it to
	// the kernel; the corefinement algorithm itself lives in the
	// external kernel collaborator.
	FastCSG bool
	// OptimisticFastUnion skips the closed-polyhedron validation after
	// concatenation.
	OptimisticFastUnion bool
	// PairTestBudget bounds the disjointness clusterer's per-element
	// pair tests.
	PairTestBudget int
	// QuantizeGrid is the fixed-precision grid used to quantize
	// concatenated vertices before the closed-polyhedron check.
	QuantizeGrid float32
}

// DefaultConfig returns the evaluator's default tuning.
func DefaultConfig() Config {
	return Config{PairTestBudget: 100, QuantizeGrid: 1e-5}
}

// Evaluator produces Geometry for AST node trees. It is owned by an
// explicit session rather than reached through a global singleton.
type Evaluator struct {
	Kernel     geometry.Kernel
	GeomCache  *cache.GeometryCache
	ExactCache *cache.ExactCache
	Tree       *traverse.Tree
	Log        *diag.Log
	Config     Config

	// KernelUnionCalls counts invocations of Kernel.Union3D, the
	// observable counter the disjoint/overlapping union tests assert against.
	KernelUnionCalls int

	visited map[int]geometry.Geometry
}

// NewEvaluator wires an Evaluator from its collaborators. Any of
// geomCache/exactCache may be nil (caching is then skipped silently).
func NewEvaluator(kernel geometry.Kernel, geomCache *cache.GeometryCache, exactCache *cache.ExactCache, tree *traverse.Tree, log *diag.Log, cfg Config) *Evaluator {
	if cfg.PairTestBudget == 0 {
		cfg.PairTestBudget = DefaultConfig().PairTestBudget
	}
	return &Evaluator{
		Kernel: kernel, GeomCache: geomCache, ExactCache: exactCache,
		Tree: tree, Log: log, Config: cfg,
	}
}

// Cancel, when non-nil, is polled at every suspension point.
type Cancel interface {
	Cancelled() bool
}

// Evaluate lowers root into a Geometry, memoizing each subtree on its
// fingerprint. A non-nil error means a fatal condition (ParseError,
// AssertionFailed, Recursion, LoopCnt) aborted the traversal; the caller
// sees no result.
func (e *Evaluator) Evaluate(root *astnode.Node, cancel Cancel) (geometry.Geometry, error) {
	e.visited = map[int]geometry.Geometry{}
	v := &evalVisitor{e: e}
	resp := traverse.Walk(root, v, cancel)
	if resp == traverse.Abort {
		if v.fatal != nil {
			return nil, v.fatal
		}
		return nil, nil
	}
	if root == nil {
		return nil, nil
	}
	return e.visited[root.Index()], nil
}

// evalVisitor adapts Evaluator to traverse.Visitor. The Postfix branch
// does the real work once a node's children are already resolved in
// e.visited.
type evalVisitor struct {
	e     *Evaluator
	fatal error
}

func (v *evalVisitor) Visit(state traverse.State, n *astnode.Node) traverse.Response {
	e := v.e
	if state == traverse.Prefix {
		if g, ok := e.smartCacheGet(n); ok {
			e.visited[n.Index()] = g
			return traverse.Prune
		}
		return traverse.Continue
	}

	// Postfix: if already populated by a cache hit during Prefix, there
	// is nothing further to do.
	if _, ok := e.visited[n.Index()]; ok {
		return traverse.Continue
	}

	children := make([]geometry.Geometry, 0, len(n.Children))
	for _, c := range n.Children {
		if g, ok := e.visited[c.Index()]; ok && g != nil {
			children = append(children, g)
		}
	}

	g, err := e.lower(n, children)
	if err != nil {
		if msg, ok := err.(diag.Message); ok && msg.Kind.Fatal() {
			v.fatal = err
			return traverse.Abort
		}
		// non-fatal: already logged by lower(); fall through with
		// whatever (possibly empty) geometry it returned.
	}
	e.visited[n.Index()] = g
	e.smartCacheInsert(n, g)
	return traverse.Continue
}

// smartCacheGet looks up n's fingerprint in whichever cache its kind
// would route to; it tries the exact cache first when the node is
// tagged RenderNode (prefer_nef), otherwise either.
func (e *Evaluator) smartCacheGet(n *astnode.Node) (geometry.Geometry, bool) {
	if e.Tree == nil {
		return nil, false
	}
	fp := e.Tree.Fingerprint(n)
	preferNef := n.Kind == astnode.KindRender
	if preferNef && e.ExactCache != nil {
		if entry, ok := e.ExactCache.Get(fp); ok {
			return entry.Geom, true
		}
	}
	if e.GeomCache != nil {
		if entry, ok := e.GeomCache.Get(fp); ok {
			return entry.Geom, true
		}
	}
	if e.ExactCache != nil {
		if entry, ok := e.ExactCache.Get(fp); ok {
			return entry.Geom, true
		}
	}
	return nil, false
}

// smartCacheInsert stores g in whichever cache its Kind routes to.
func (e *Evaluator) smartCacheInsert(n *astnode.Node, g geometry.Geometry) {
	if g == nil || e.Tree == nil {
		return
	}
	fp := e.Tree.Fingerprint(n)
	if e.ExactCache != nil && cache.AcceptsExact(g) {
		e.ExactCache.Insert(fp, g, "")
		return
	}
	if e.GeomCache != nil && cache.AcceptsGeometry(g) {
		e.GeomCache.Insert(fp, g, "")
	}
}

// warn emits a non-fatal diagnostic and returns its (always nil, unless
// hardwarnings promotes it) error.
func (e *Evaluator) warn(kind diag.Kind, loc astnode.Location, text string) error {
	if e.Log == nil {
		return nil
	}
	return e.Log.Emit(diag.Message{Group: diag.Warning, Kind: kind, Text: text, Loc: &loc})
}

// emptyGeometry is the canonical empty-set 3D result for a kernel
// failure.
func emptyGeometry() geometry.Geometry { return geometry.NewPolySet() }

// emptyGeometry2D is the canonical empty 2D result.
func emptyGeometry2D() geometry.Geometry { return geometry.NewPolygon2d() }
