// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "math"

// Matrix4 is a 4x4 affine transform stored in column-major order
// (translation lives in elements 12,13,14). A transform node accumulates
// a chain of translate/rotate/scale/multmatrix calls into a single
// Matrix4 before visiting its child.
type Matrix4 [16]float32

// NewMatrix4 returns the identity matrix.
func NewMatrix4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity resets m to the identity transform.
func (m *Matrix4) SetIdentity() *Matrix4 {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return m
}

// MulMatrices sets m = a * b and returns m.
func (m *Matrix4) MulMatrices(a, b *Matrix4) *Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	*m = r
	return m
}

// Mul returns m * o as a new matrix, leaving both operands unmodified.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	r.MulMatrices(&m, &o)
	return r
}

// SetTranslation sets m to a pure translation by v.
func (m *Matrix4) SetTranslation(v Vector3) *Matrix4 {
	m.SetIdentity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// SetScale sets m to a pure per-axis scale.
func (m *Matrix4) SetScale(v Vector3) *Matrix4 {
	m.SetIdentity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// SetRotationZ sets m to a rotation of angle radians around +Z.
func (m *Matrix4) SetRotationZ(angle float32) *Matrix4 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	m.SetIdentity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// SetRotationFromQuat sets m's upper-left 3x3 rotation block from q,
// preserving the identity translation/scale otherwise.
func (m *Matrix4) SetRotationFromQuat(q Quat) *Matrix4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m.SetIdentity()
	m[0], m[4], m[8] = 1-(yy+zz), xy-wz, xz+wy
	m[1], m[5], m[9] = xy+wz, 1-(xx+zz), yz-wx
	m[2], m[6], m[10] = xz-wy, yz+wx, 1-(xx+yy)
	return m
}

// Translate post-multiplies m by a translation, the way TransformNode
// accumulates a chain of `translate([..]) rotate([..]) child();` calls.
func (m *Matrix4) Translate(v Vector3) *Matrix4 {
	var t Matrix4
	t.SetTranslation(v)
	return m.MulMatrices(m, &t)
}

// Scale post-multiplies m by a per-axis scale.
func (m *Matrix4) Scale(v Vector3) *Matrix4 {
	var s Matrix4
	s.SetScale(v)
	return m.MulMatrices(m, &s)
}
