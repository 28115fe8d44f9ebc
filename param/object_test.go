// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberParameterClampOnImport(t *testing.T) {
	min, max := 0.0, 10.0
	p := NewNumberParameter("r", "radius", "", 5, &min, &max, nil)

	raw, err := json.Marshal(42.0)
	require.NoError(t, err)

	v, ok := p.Import(raw)
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	enc, err := p.Encode(v)
	require.NoError(t, err)
	assert.JSONEq(t, "10", string(enc))
}

func TestStringParameterTruncatesOnImport(t *testing.T) {
	n := 3
	p := NewStringParameter("label", "", "", "abc", &n)
	raw, _ := json.Marshal("abcdef")
	v, ok := p.Import(raw)
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestVectorParameterRejectsWrongArity(t *testing.T) {
	p := NewVectorParameter("size", "", "", []float64{1, 2, 3}, 3, nil, nil, nil)
	raw, _ := json.Marshal("[1, 2]")
	_, ok := p.Import(raw)
	assert.False(t, ok)
}

func TestVectorParameterRoundTrip(t *testing.T) {
	p := NewVectorParameter("size", "", "", []float64{1, 2, 3}, 3, nil, nil, nil)
	enc, err := p.Encode([]float64{4, 5, 6})
	require.NoError(t, err)
	v, ok := p.Import(enc)
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5, 6}, v)
}

func TestEnumParameterRejectsUnknownValue(t *testing.T) {
	p := NewEnumParameter("mode", "", "", []EnumItem{{"a", 1.0}, {"b", 2.0}}, 1.0)
	raw, _ := json.Marshal(3.0)
	_, ok := p.Import(raw)
	assert.False(t, ok)
}

func TestEnumParameterInsertsMissingDefault(t *testing.T) {
	p := NewEnumParameter("mode", "", "", []EnumItem{{"b", 2.0}}, 1.0)
	assert.Equal(t, 0, p.DefaultIndex)
	assert.Equal(t, 1.0, p.Default())
}

func TestHiddenGroupSuppressesExposure(t *testing.T) {
	p := NewBoolParameter("internal", "", hiddenGroup, true)
	assert.True(t, p.Hidden())
}
