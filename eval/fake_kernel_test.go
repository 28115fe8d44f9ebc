// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import "github.com/solidgeom/engine/geometry"

// testKernel wraps geometry.NullKernel but implements Union3D with a
// trivial concatenation, so tests that exercise the exact-kernel
// fallback path don't need a real
// exact-arithmetic engine. Evaluator.KernelUnionCalls is the "observable
// counter" scenarios 1/2 assert against, not a counter on this fake.
type testKernel struct {
	geometry.NullKernel
}

func (k *testKernel) Union3D(operands []geometry.Geometry) (geometry.Geometry, error) {
	out := geometry.NewPolySet()
	for _, g := range operands {
		if p, ok := g.(*geometry.PolySet); ok {
			out.Append(p)
		}
	}
	return out, nil
}

// Difference3D is a placeholder adequate only for disjoint operands in
// tests: it returns the minuend unchanged, which is correct exactly
// when no subtrahend overlaps it.
func (k *testKernel) Difference3D(minuend geometry.Geometry, subtrahends []geometry.Geometry) (geometry.Geometry, error) {
	return minuend, nil
}
