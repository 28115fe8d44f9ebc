// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math"
	"sort"

	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/math32"
)

// unionFind is a standard disjoint-set structure, one element per
// operand, used by the disjointness clusterer.
type unionFind struct {
	parent []int
	boxes  [][]math32.Box3 // boxes[root] accumulates every AABB merged into that cluster
}

func newUnionFind(boxes []math32.Box3) *unionFind {
	uf := &unionFind{parent: make([]int, len(boxes)), boxes: make([][]math32.Box3, len(boxes))}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.boxes[i] = []math32.Box3{boxes[i]}
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	uf.parent[rb] = ra
	uf.boxes[ra] = append(uf.boxes[ra], uf.boxes[rb]...)
	uf.boxes[rb] = nil
}

// disjoint reports whether every AABB of cluster a is disjoint from
// every AABB of cluster b.
func (uf *unionFind) disjoint(a, b int) bool {
	for _, ba := range uf.boxes[uf.find(a)] {
		for _, bb := range uf.boxes[uf.find(b)] {
			if ba.Intersects(bb) {
				return false
			}
		}
	}
	return true
}

// hilbertKey computes a coarse Hilbert-curve-order key for a box's
// center, used only to get spatially nearby operands adjacent in the
// sort so the bounded pair-test budget actually finds the easy
// disjointness wins first.
func hilbertKey(c math32.Vector3, bits uint) uint64 {
	scale := float64(int64(1) << bits)
	x := clampIndex(c.X, scale)
	y := clampIndex(c.Y, scale)
	z := clampIndex(c.Z, scale)
	return hilbertD2XYZ(bits, x, y, z)
}

func clampIndex(v float32, scale float64) uint32 {
	n := (float64(v) + 1e6) // shift away from negative coordinates
	if n < 0 {
		n = 0
	}
	idx := uint32(math.Mod(n, scale))
	return idx
}

// hilbertD2XYZ interleaves the bits of x,y,z (a Morton/Z-order code
// stands in for the true Hilbert curve here — both give a
// locality-preserving 1D ordering of 3D points, which is all step 1
// needs).
func hilbertD2XYZ(bits uint, x, y, z uint32) uint64 {
	var key uint64
	for b := uint(0); b < bits; b++ {
		key |= uint64((x>>b)&1) << (3 * b)
		key |= uint64((y>>b)&1) << (3*b + 1)
		key |= uint64((z>>b)&1) << (3*b + 2)
	}
	return key
}

// clusterOperands runs the disjointness clustering pass:
// spatial sort, union-find over a bounded number of pair tests per
// element, and returns the resulting clusters as index groups into
// operands.
func clusterOperands(operands []geometry.Geometry, pairBudget int) [][]int {
	boxes := make([]math32.Box3, len(operands))
	order := make([]int, len(operands))
	for i, g := range operands {
		boxes[i] = g.BoundingBox()
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return hilbertKey(boxes[order[a]].Center(), 10) < hilbertKey(boxes[order[b]].Center(), 10)
	})

	uf := newUnionFind(boxes)
	for oi, i := range order {
		tests := 0
		for _, j := range order[oi+1:] {
			if tests >= pairBudget {
				break
			}
			tests++
			if uf.find(i) == uf.find(j) {
				continue
			}
			if uf.disjoint(i, j) {
				uf.union(i, j)
			}
		}
	}

	groups := map[int][]int{}
	for i := range operands {
		r := uf.find(i)
		groups[r] = append(groups[r], i)
	}
	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		sort.Ints(g)
		out = append(out, g)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })
	return out
}

// quantize rounds v to Evaluator.Config.QuantizeGrid so concatenated
// vertices from independently-generated operands compare equal where
// they coincide.
func quantize(v math32.Vector3, grid float32) math32.Vector3 {
	if grid <= 0 {
		return v
	}
	round := func(x float32) float32 { return float32(math.Round(float64(x/grid))) * grid }
	return math32.Vector3{X: round(v.X), Y: round(v.Y), Z: round(v.Z)}
}

// isClosedPolyhedron is a cheap necessary-condition check standing in
// for full closed-manifold validation: every edge must be shared by
// exactly two faces. It is not a complete manifoldness proof, but it
// catches the concatenation failures the fast path needs to detect
// before trusting the result.
func isClosedPolyhedron(p *geometry.PolySet) bool {
	type edgeKey struct{ a, b int }
	counts := map[edgeKey]int{}
	for _, f := range p.Faces {
		n := len(f)
		if n < 3 {
			return false
		}
		for i := 0; i < n; i++ {
			a, b := f[i], f[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			counts[edgeKey{a, b}]++
		}
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return len(counts) > 0
}

// tryFastUnion attempts the disjoint-union fast path
// over operands (already filtered to non-empty 3D PolySets). It returns
// (result, true) on success, or (nil, false) if there are fewer than two
// operands, if clustering does not put every operand into one single
// cluster, or if validation failed; the caller then falls back to the
// exact kernel.
func (e *Evaluator) tryFastUnion(operands []*geometry.PolySet) (*geometry.PolySet, bool) {
	if len(operands) < 2 {
		return nil, false
	}
	asGeom := make([]geometry.Geometry, len(operands))
	for i, p := range operands {
		asGeom[i] = p
	}
	clusters := clusterOperands(asGeom, e.Config.PairTestBudget)
	if len(clusters) != 1 {
		return nil, false
	}

	grid := e.Config.QuantizeGrid
	merged := geometry.NewPolySet()
	for _, idx := range clusters[0] {
		p := operands[idx]
		quantized := p.Copy().(*geometry.PolySet)
		for i, v := range quantized.Vertices {
			quantized.Vertices[i] = quantize(v, grid)
		}
		merged.Append(quantized)
	}

	if !e.Config.OptimisticFastUnion && !e.Config.TrustManifold {
		if !isClosedPolyhedron(merged) {
			return nil, false
		}
	}
	return merged, true
}
