// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaIndicesStable(t *testing.T) {
	a := NewArena()
	root := a.New(KindRoot, Location{File: "x.scad", Line: 1})
	child := a.New(KindLeaf, Location{File: "x.scad", Line: 2})
	root.AddChild(child)

	assert.Equal(t, 0, root.Index())
	assert.Equal(t, 1, child.Index())
	assert.Same(t, child, a.NodeByIndex(1))
	assert.Equal(t, 2, a.Len())
}

func TestModuleRefIsWeak(t *testing.T) {
	a := NewArena()
	inst := a.New(KindLeaf, Location{})
	leaf := a.New(KindLeaf, Location{})
	leaf.SetModuleRef(inst)

	assert.Same(t, inst, leaf.Module.Resolve())

	leaf.SetModuleRef(nil)
	assert.Nil(t, leaf.Module.Resolve())
}

func TestAssignmentListByNameLastWins(t *testing.T) {
	l := AssignmentList{
		{Name: "r", Expr: Literal{Value: 1.0}},
		{Name: "r", Expr: Literal{Value: 2.0}},
	}
	a := l.ByName("r")
	v, _ := a.Expr.Eval()
	assert.Equal(t, 2.0, v)
	assert.Nil(t, l.ByName("missing"))
}

func TestAssignmentRebind(t *testing.T) {
	a := &Assignment{Name: "r", Expr: Literal{Value: 5.0}}
	a.Rebind(10.0)
	v, err := a.Expr.Eval()
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v)
}
