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

func TestApplyRebindsMatchingAssignments(t *testing.T) {
	as := astnode.AssignmentList{
		&astnode.Assignment{Name: "r", Expr: lit(5.0)},
		{Name: "label", Expr: lit("box")},
	}
	Apply(as, map[string]any{"r": 9.0})

	rv, err := as[0].Expr.Eval()
	require.NoError(t, err)
	assert.Equal(t, 9.0, rv)

	lv, err := as[1].Expr.Eval()
	require.NoError(t, err)
	assert.Equal(t, "box", lv, "unmatched assignments are left untouched")
}

func TestApplySetUsesSchemaImport(t *testing.T) {
	min, max := 0.0, 10.0
	schema := []Parameter{NewNumberParameter("r", "", "", 5, &min, &max, nil)}
	set, err := Encode("preset", schema, map[string]any{"r": 42.0})
	require.NoError(t, err)

	as := astnode.AssignmentList{&astnode.Assignment{Name: "r", Expr: lit(5.0)}}
	ApplySet(as, schema, set)

	v, err := as[0].Expr.Eval()
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "import clamp must apply before rebinding")
}

func TestExtractThenApplyRoundTripsSchema(t *testing.T) {
	as := astnode.AssignmentList{{
		Name:        "r",
		Expr:        lit(5.0),
		Annotations: []astnode.Annotation{{Name: "Parameter", Payload: "[0:1:10]"}},
	}}
	schema := Extract(as)
	require.Len(t, schema, 1)

	Apply(as, map[string]any{"r": 8.0})
	schema2 := Extract(as)
	require.Len(t, schema2, 1)
	assert.Equal(t, schema[0].Name(), schema2[0].Name())
}
