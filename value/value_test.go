// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualNaN(t *testing.T) {
	nan := Number(math.NaN())
	assert.False(t, Equal(nan, nan))
}

func TestEqualStructural(t *testing.T) {
	a := Vector([]Value{Number(1), Number(2)})
	b := Vector([]Value{Number(1), Number(2)})
	assert.True(t, Equal(a, b))
}

func TestUndefinedPropagates(t *testing.T) {
	assert.True(t, Add(Undef, Number(1)).IsUndef())
	assert.True(t, Mul(Number(1), Undef).IsUndef())
}

func TestAddVector(t *testing.T) {
	a := Vector([]Value{Number(1), Number(2)})
	b := Vector([]Value{Number(10), Number(20)})
	got := Add(a, b)
	elems, ok := got.AsVector()
	assert.True(t, ok)
	assert.Len(t, elems, 2)
	n0, _ := elems[0].AsNumber()
	n1, _ := elems[1].AsNumber()
	assert.Equal(t, 11.0, n0)
	assert.Equal(t, 22.0, n1)
}

func TestStringLengthGraphemeAware(t *testing.T) {
	v := String("a\U0001F468\U0000200D\U0001F469\U0000200D\U0001F467b") // a + family emoji ZWJ sequence + b
	// the ZWJ sequence counts as a single grapheme cluster
	assert.Equal(t, 3, v.StringLength())
	// cached: second call must return the same memoized value
	assert.Equal(t, 3, v.StringLength())
}

func TestContextLookupChain(t *testing.T) {
	root := NewContext()
	root.Bind("$fn", Number(0))
	root.Bind("x", Number(1))
	child := root.Child()
	child.Bind("x", Number(2))

	assert.Equal(t, 2.0, mustNum(t, child.Lookup("x")))
	assert.Equal(t, 1.0, mustNum(t, root.Lookup("x")))
	assert.Equal(t, 0.0, mustNum(t, child.Lookup("$fn")))
	assert.True(t, child.Lookup("missing").IsUndef())
	assert.True(t, IsSpecial("$fn"))
	assert.False(t, IsSpecial("x"))
}

func mustNum(t *testing.T, v Value) float64 {
	t.Helper()
	n, ok := v.AsNumber()
	assert.True(t, ok)
	return n
}
