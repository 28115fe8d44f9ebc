// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the vector, matrix, and bounding-box primitives
// used throughout the geometry and CSG packages: Vector3{X,Y,Z},
// Box3{Min,Max}, and a column-major Matrix4, rather than a
// general-purpose linear-algebra library, since the engine only ever
// needs affine transforms and axis-aligned bounds.
package math32

import "math"

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float32
}

// Vec2 returns a new Vector2 with the given components.
func Vec2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Vector2Scalar returns a Vector2 with both components set to s.
func Vector2Scalar(s float32) Vector2 { return Vector2{X: s, Y: s} }

// Set sets the components of v.
func (v *Vector2) Set(x, y float32) { v.X, v.Y = x, y }

// SetScalar sets both components of v to s.
func (v *Vector2) SetScalar(s float32) { v.X, v.Y = s, s }

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference of v and o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Min returns the component-wise minimum of v and o.
func (v Vector2) Min(o Vector2) Vector2 {
	return Vector2{X: minf(v.X, o.X), Y: minf(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector2) Max(o Vector2) Vector2 {
	return Vector2{X: maxf(v.X, o.X), Y: maxf(v.Y, o.Y)}
}

// Vector3 is a 3D point or direction.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new Vector3 with the given components.
func Vec3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Vector3Scalar returns a Vector3 with all components set to s.
func Vector3Scalar(s float32) Vector3 { return Vector3{X: s, Y: s, Z: s} }

// Vector3FromVector4 drops the W component of a Vector4.
func Vector3FromVector4(v Vector4) Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }

// Set sets the components of v.
func (v *Vector3) Set(x, y, z float32) { v.X, v.Y, v.Z = x, y, z }

// SetScalar sets all components of v to s.
func (v *Vector3) SetScalar(s float32) { v.X, v.Y, v.Z = s, s, s }

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference of v and o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{minf(v.X, o.X), minf(v.Y, o.Y), minf(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{maxf(v.X, o.X), maxf(v.Y, o.Y), maxf(v.Z, o.Z)}
}

// MulMatrix4 transforms v as a point (w=1) by m.
func (v Vector3) MulMatrix4(m *Matrix4) Vector3 {
	x, y, z := v.X, v.Y, v.Z
	return Vector3{
		X: m[0]*x + m[4]*y + m[8]*z + m[12],
		Y: m[1]*x + m[5]*y + m[9]*z + m[13],
		Z: m[2]*x + m[6]*y + m[10]*z + m[14],
	}
}

// Vector3i is an integer-valued 3D vector. The fast-union quantization in
// eval does not use it; it snaps float Vector3 values to a grid instead.
type Vector3i struct {
	X, Y, Z int32
}

// Vec3i returns a new Vector3i with the given components.
func Vec3i(x, y, z int32) Vector3i { return Vector3i{X: x, Y: y, Z: z} }

// SetFromVector3i sets v from an integer vector.
func (v *Vector3) SetFromVector3i(o Vector3i) {
	v.X, v.Y, v.Z = float32(o.X), float32(o.Y), float32(o.Z)
}

// Vector4 is a homogeneous 3D point/quaternion-shaped 4-vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vec4 returns a new Vector4 with the given components.
func Vec4(x, y, z, w float32) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// Quat is a unit quaternion used for rotate() composition.
type Quat struct {
	X, Y, Z, W float32
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
