// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "math"

// Box2 is an axis-aligned 2D bounding box defined by its minimum and
// maximum corners.
type Box2 struct {
	Min, Max Vector2
}

// NewBox2 returns a Box2 with the given min/max corners.
func NewBox2(min, max Vector2) Box2 { return Box2{Min: min, Max: max} }

// NewEmptyBox2 returns a Box2 set to the empty state (min > max).
func NewEmptyBox2() Box2 {
	b := Box2{}
	b.SetEmpty()
	return b
}

// SetEmpty sets b to the canonical empty box (+/-Inf corners).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(float32(math.Inf(1)))
	b.Max.SetScalar(float32(math.Inf(-1)))
}

// IsEmpty reports whether b has max < min on any axis.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByPoint grows b, if necessary, to contain p.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// SetFromPoints sets b to the bounding box of pts.
func (b *Box2) SetFromPoints(pts []Vector2) {
	b.SetEmpty()
	for _, p := range pts {
		b.ExpandByPoint(p)
	}
}

// Union returns the smallest box containing both b and o.
func (b Box2) Union(o Box2) Box2 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box2{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersect returns the box-intersection of b and o. The result is empty
// if b and o do not overlap.
func (b Box2) Intersect(o Box2) Box2 {
	r := Box2{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
	return r
}

// Intersects reports whether b and o overlap on every axis.
func (b Box2) Intersects(o Box2) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y)
}

// Size returns the extent of b along each axis.
func (b Box2) Size() Vector2 { return b.Max.Sub(b.Min) }

// Box3 is an axis-aligned 3D bounding box defined by its minimum and
// maximum corners. This is the AABB carried by CSGLeaf/CSGOperation and by every Geometry implementation's BoundingBox method.
type Box3 struct {
	Min, Max Vector3
}

// NewBox3 returns a Box3 with the given min/max corners.
func NewBox3(min, max Vector3) Box3 { return Box3{Min: min, Max: max} }

// NewEmptyBox3 returns a Box3 set to the empty state.
func NewEmptyBox3() Box3 {
	b := Box3{}
	b.SetEmpty()
	return b
}

// SetEmpty sets b to the canonical empty box (+/-Inf corners).
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(float32(math.Inf(1)))
	b.Max.SetScalar(float32(math.Inf(-1)))
}

// IsEmpty reports whether b has max < min on any axis.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Set sets b's min/max corners; nil pointers map to +/-Inf, mirroring the
// teacher's Box2.Set semantics for a "partially specified" box.
func (b *Box3) Set(min, max *Vector3) {
	if min != nil {
		b.Min = *min
	} else {
		b.Min.SetScalar(float32(math.Inf(1)))
	}
	if max != nil {
		b.Max = *max
	} else {
		b.Max.SetScalar(float32(math.Inf(-1)))
	}
}

// ExpandByPoint grows b, if necessary, to contain p.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// SetFromPoints sets b to the bounding box of pts.
func (b *Box3) SetFromPoints(pts []Vector3) {
	b.SetEmpty()
	for _, p := range pts {
		b.ExpandByPoint(p)
	}
}

// Union returns the smallest box containing both b and o. Used for
// CSGOperation{Op: UNION}.bbox.
func (b Box3) Union(o Box3) Box3 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box3{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersect returns the box-intersection of b and o, used for
// CSGOperation{Op: INTERSECTION}.bbox. The result is empty (IsEmpty()
// true) if b and o do not overlap on every axis.
func (b Box3) Intersect(o Box3) Box3 {
	return Box3{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

// Intersects reports whether b and o overlap on every axis, without
// constructing the intersection box. This is the fast-path disjointness
// test used by the fast-union clusterer.
func (b Box3) Intersects(o Box3) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z)
}

// Size returns the extent of b along each axis.
func (b Box3) Size() Vector3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of b.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// MulMatrix4 returns the bounding box of b transformed by m: the eight
// corners of b are transformed and a new box is fit around the results.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	corners := [8]Vector3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	out := NewEmptyBox3()
	for _, c := range corners {
		out.ExpandByPoint(c.MulMatrix4(m))
	}
	return out
}

// MulQuat returns the bounding box of b rotated in place by q around the
// origin, kept for transform composition parity with MulMatrix4.
func (b Box3) MulQuat(q Quat) Box3 {
	m := NewMatrix4().SetRotationFromQuat(q)
	return b.MulMatrix4(m)
}
