// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"testing"

	"github.com/solidgeom/engine/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(v any) astnode.Expr { return astnode.Literal{Value: v} }

func TestExtractSkipsUnannotatedAssignments(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{Name: "x", Expr: lit(1.0)}}
	assert.Empty(t, Extract(as))
}

func TestExtractBoolParameter(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{
		Name: "enabled",
		Expr: lit(true),
		Annotations: []astnode.Annotation{
			{Name: "Parameter"},
			{Name: "Description", Payload: "turn it on"},
		},
	}}
	schema := Extract(as)
	require.Len(t, schema, 1)
	assert.Equal(t, KindBool, schema[0].Kind())
	assert.Equal(t, "turn it on", schema[0].Description())
}

func TestExtractNumberRangeParameter(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{
		Name:        "r",
		Expr:        lit(5.0),
		Annotations: []astnode.Annotation{{Name: "Parameter", Payload: "[0:1:10]"}},
	}}
	schema := Extract(as)
	require.Len(t, schema, 1)
	np, ok := schema[0].(*NumberParameter)
	require.True(t, ok)
	require.NotNil(t, np.Min)
	require.NotNil(t, np.Max)
	require.NotNil(t, np.Step)
	assert.Equal(t, 0.0, *np.Min)
	assert.Equal(t, 10.0, *np.Max)
	assert.Equal(t, 1.0, *np.Step)
}

func TestExtractNumberMaxOnlyParameter(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{
		Name:        "n",
		Expr:        lit(2.0),
		Annotations: []astnode.Annotation{{Name: "Parameter", Payload: "[100]"}},
	}}
	schema := Extract(as)
	require.Len(t, schema, 1)
	np := schema[0].(*NumberParameter)
	assert.Nil(t, np.Min)
	require.NotNil(t, np.Max)
	assert.Equal(t, 100.0, *np.Max)
}

func TestExtractEnumFromValueList(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{
		Name:        "mode",
		Expr:        lit(1.0),
		Annotations: []astnode.Annotation{{Name: "Parameter", Payload: "[1:one,2:two,3:three]"}},
	}}
	schema := Extract(as)
	require.Len(t, schema, 1)
	ep := schema[0].(*EnumParameter)
	assert.Len(t, ep.Items, 3)
	assert.Equal(t, "one", ep.Items[0].Key)
}

func TestExtractVectorParameter(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{
		Name:        "size",
		Expr:        lit([]float64{1, 1, 1}),
		Annotations: []astnode.Annotation{{Name: "Parameter", Payload: "[0:0.5:10]"}},
	}}
	schema := Extract(as)
	require.Len(t, schema, 1)
	vp := schema[0].(*VectorParameter)
	assert.Equal(t, 3, vp.Dim)
	require.NotNil(t, vp.Step)
	assert.Equal(t, 0.5, *vp.Step)
}

func TestExtractHiddenGroup(t *testing.T) {
	as := astnode.AssignmentList{&astnode.Assignment{
		Name: "secret",
		Expr: lit(1.0),
		Annotations: []astnode.Annotation{
			{Name: "Parameter"},
			{Name: "Group", Payload: "Hidden"},
		},
	}}
	schema := Extract(as)
	assert.Empty(t, schema)
	assert.True(t, extractOne(as[0]).Hidden())
}
