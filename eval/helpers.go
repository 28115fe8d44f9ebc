// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/math32"
)

func mustVec3(p math32.Vector2) math32.Vector3 { return math32.Vec3(p.X, p.Y, 0) }

// paramAny unwraps astnode.Node.Param's (value, ok) pair into a plain
// any, for terse type-asserting call sites in the operator table.
func paramAny(n *astnode.Node, key string) any {
	v, _ := n.Param(key)
	return v
}

// dominantDimension returns the highest dimension among non-empty
// geometries, or 0 if all are empty.
func dominantDimension(geoms []geometry.Geometry) int {
	dim := 0
	for _, g := range geoms {
		if g == nil || g.IsEmpty() {
			continue
		}
		if d := g.Dimension(); d > dim {
			dim = d
		}
	}
	return dim
}
