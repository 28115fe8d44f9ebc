// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine assembles one evaluation session: the geometry and
// exact-arithmetic caches, the kernel, the fingerprint tree, the
// message log, and the evaluator built over them, as an explicit,
// constructible struct a host can create one or many of rather than
// reaching through global state.
package engine

import (
	"fmt"

	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/cache"
	"github.com/solidgeom/engine/cache/diskstore"
	"github.com/solidgeom/engine/diag"
	"github.com/solidgeom/engine/engine/config"
	"github.com/solidgeom/engine/eval"
	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/param"
	"github.com/solidgeom/engine/traverse"
)

// Session owns one evaluation context: the kernel, caches, log, and
// evaluator that would otherwise be process-wide global state, gathered
// into a value a host constructs, configures, and discards explicitly.
type Session struct {
	Config config.Config

	Kernel      geometry.Kernel
	GeomCache   *cache.GeometryCache
	ExactCache  *cache.ExactCache
	Disk        *diskstore.Store // nil unless WithDiskStore is used
	Log         *diag.Log
	Tree        *traverse.Tree
	Evaluator   *eval.Evaluator
	ParamSets   *param.ParameterSets
	Assignments astnode.AssignmentList
	Schema      []param.Parameter
}

// Option configures a Session at construction time.
type Option func(*Session) error

// WithKernel overrides the default NullKernel (which fails every
// operation except TriangulateFaces) with a real exact-arithmetic
// collaborator.
func WithKernel(k geometry.Kernel) Option {
	return func(s *Session) error { s.Kernel = k; return nil }
}

// WithDiskStore opens a local disk cache mirror rooted at root and
// attaches it to the session.
func WithDiskStore(root string) Option {
	return func(s *Session) error {
		store, err := diskstore.Open(root)
		if err != nil {
			return fmt.Errorf("engine: open disk store: %w", err)
		}
		s.Disk = store
		return nil
	}
}

// WithParameterSets attaches a previously loaded parameter-set
// document to the session, for later ApplySet calls.
func WithParameterSets(sets *param.ParameterSets) Option {
	return func(s *Session) error { s.ParamSets = sets; return nil }
}

// New constructs a Session for the given AST arena and configuration,
// applying opts in order. The arena's fingerprint tree, caches, and
// evaluator are built fresh; the default Kernel is geometry.NullKernel,
// which fails every call except TriangulateFaces until WithKernel
// supplies a real one.
func New(arena *astnode.Arena, cfg config.Config, opts ...Option) (*Session, error) {
	s := &Session{
		Config:     cfg,
		Kernel:     geometry.NullKernel{},
		GeomCache:  cache.NewGeometryCache(),
		ExactCache: cache.NewExactCache(),
		Log:        diag.NewLog(),
		Tree:       traverse.NewTree(arena),
	}
	s.Log.HardWarnings = cfg.HardWarnings
	s.GeomCache.SetMaxCost(cfg.GeometryCacheBudget)
	s.ExactCache.SetMaxCost(cfg.ExactCacheBudget)

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	evalCfg := eval.DefaultConfig()
	evalCfg.TrustManifold = cfg.TrustManifold
	evalCfg.FastCSG = cfg.FastCSG
	evalCfg.OptimisticFastUnion = cfg.OptimisticFastUnion
	evalCfg.PairTestBudget = cfg.PairTestBudget
	evalCfg.QuantizeGrid = cfg.QuantizeGrid
	s.Evaluator = eval.NewEvaluator(s.Kernel, s.GeomCache, s.ExactCache, s.Tree, s.Log, evalCfg)

	return s, nil
}

// Evaluate runs the session's evaluator over root.
func (s *Session) Evaluate(root *astnode.Node) (geometry.Geometry, error) {
	return s.Evaluator.Evaluate(root, nil)
}

// LoadParameterSchema extracts the parameter schema from assignments
// and remembers both for later ApplyNamedSet calls.
func (s *Session) LoadParameterSchema(assignments astnode.AssignmentList) {
	s.Assignments = assignments
	s.Schema = param.Extract(assignments)
}

// ApplyNamedSet rebinds the session's tracked assignments to the
// values in the named parameter set. Callers must
// re-walk and re-evaluate the affected subtree's nodes afterward; any
// node whose Params were derived from a rebound assignment needs its
// memoized fingerprint invalidated via Tree.Invalidate before the next
// Evaluate picks up the new value.
func (s *Session) ApplyNamedSet(name string) error {
	if s.ParamSets == nil {
		return fmt.Errorf("engine: no parameter sets loaded")
	}
	set, ok := s.ParamSets.Sets.ValueByKeyTry(name)
	if !ok {
		return fmt.Errorf("engine: no parameter set named %q", name)
	}
	param.ApplySet(s.Assignments, s.Schema, set)
	return nil
}

// Close releases resources the session opened (currently only the
// optional disk store).
func (s *Session) Close() error {
	if s.Disk != nil {
		return s.Disk.Close()
	}
	return nil
}
