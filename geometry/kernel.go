// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import "github.com/solidgeom/engine/math32"

// KernelError reports that an exact-arithmetic kernel operation failed
// its internal preconditions.
type KernelError struct {
	Op     string
	Reason string
}

func (e *KernelError) Error() string { return "kernel: " + e.Op + ": " + e.Reason }

// Kernel is the operator interface the exact-arithmetic mesh engine
// must satisfy. The evaluator holds one of these per Session, never a
// package-level singleton, and never inspects the Geometry values it
// receives beyond the capability set in geometry.go.
type Kernel interface {
	Union3D(operands []Geometry) (Geometry, error)
	Intersection3D(operands []Geometry) (Geometry, error)
	Difference3D(minuend Geometry, subtrahends []Geometry) (Geometry, error)
	Minkowski3D(operands []Geometry) (Geometry, error)
	Hull3D(points []math32.Vector3) (Geometry, error)
	ConvexDecompose(g Geometry) ([]Geometry, error)
	TriangulateFaces(g Geometry) (Geometry, error)
	IsManifold(g Geometry) (bool, error)
	PolySetFromNef(g Geometry) (*PolySet, error)
}

// NullKernel is a no-op Kernel implementation for tests and for
// evaluating subtrees that never reach a kernel call (e.g. pure-2D
// scenes). Every operation except TriangulateFaces (which returns its
// input unchanged) fails, which the evaluator translates into a warning
// and an empty result — exactly the behavior wanted when no real kernel
// is wired in.
type NullKernel struct{}

func (NullKernel) fail(op string) error { return &KernelError{Op: op, Reason: "no kernel configured"} }

func (k NullKernel) Union3D([]Geometry) (Geometry, error)                { return nil, k.fail("union") }
func (k NullKernel) Intersection3D([]Geometry) (Geometry, error)         { return nil, k.fail("intersection") }
func (k NullKernel) Difference3D(Geometry, []Geometry) (Geometry, error) { return nil, k.fail("difference") }
func (k NullKernel) Minkowski3D([]Geometry) (Geometry, error)            { return nil, k.fail("minkowski") }
func (k NullKernel) Hull3D([]math32.Vector3) (Geometry, error)           { return nil, k.fail("hull") }
func (k NullKernel) ConvexDecompose(Geometry) ([]Geometry, error)        { return nil, k.fail("convex_decompose") }
func (k NullKernel) TriangulateFaces(g Geometry) (Geometry, error)       { return g, nil }
func (k NullKernel) IsManifold(Geometry) (bool, error)                   { return false, k.fail("is_manifold") }
func (k NullKernel) PolySetFromNef(Geometry) (*PolySet, error)           { return nil, k.fail("polyset_from_nef") }

var _ Kernel = NullKernel{}
