// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import "github.com/solidgeom/engine/astnode"

// Apply walks assignments and, for every parameter whose name matches
// an assignment, rebinds that assignment's expression to a literal
// carrying the parameter's current value from bindings
// (astnode.Assignment.Rebind). This is the only sanctioned mutation of
// the source tree's top-level assignments: it never
// touches any other part of the parsed expression tree, only the
// literal a customized assignment evaluates to.
func Apply(assignments astnode.AssignmentList, bindings map[string]any) {
	if len(bindings) == 0 {
		return
	}
	for _, a := range assignments {
		if v, ok := bindings[a.Name]; ok {
			a.Rebind(v)
		}
	}
}

// ApplySet is a convenience wrapper combining Import and Apply: it
// decodes set against schema and rebinds every matching assignment in
// one step.
func ApplySet(assignments astnode.AssignmentList, schema []Parameter, set *ParameterSet) {
	Apply(assignments, Import(set, schema))
}
