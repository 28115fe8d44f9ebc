// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astnode

// Annotation is a `@Name(payload...)` tag attached to a top-level
// assignment, e.g. `@Parameter`, `@Description("...")`, `@Group("...")`
//. The expression evaluator (external collaborator)
// has already reduced the payload to Value-shaped data by the time the
// core sees it; here it is kept as a raw string for the param package to
// parse, since only param needs to interpret it.
type Annotation struct {
	Name    string
	Payload string
}

// Assignment is one `name = expr;` at the top level of a source file.
// Expr is an opaque handle into the scripting runtime's expression tree
//; the core never
// interprets it directly, only replaces it wholesale via Rebind.
type Assignment struct {
	Name        string
	Loc         Location
	Expr        Expr
	Annotations []Annotation
}

// Expr is the opaque expression handle type. A concrete parser
// implementation supplies its own type satisfying this interface; the
// core only ever calls Eval (to read a default value) or receives a
// literal-replacement Expr back from param.Apply.
type Expr interface {
	// Eval evaluates the expression with no bindings beyond its own
	// lexical closure, used to read a parameter's declared default.
	Eval() (any, error)
}

// Literal is a trivial Expr that evaluates to a fixed value — this is
// what param.Apply rebinds an Assignment's Expr to.
type Literal struct{ Value any }

// Eval returns l.Value unconditionally.
func (l Literal) Eval() (any, error) { return l.Value, nil }

// AssignmentList is the ordered set of top-level assignments in a
// source file. Order is preserved because later assignments may
// shadow earlier ones with the same name (last one wins on lookup by
// name, but extraction in param.Extract walks in source order).
type AssignmentList []*Assignment

// ByName returns the last assignment with the given name, or nil.
func (l AssignmentList) ByName(name string) *Assignment {
	var found *Assignment
	for _, a := range l {
		if a.Name == name {
			found = a
		}
	}
	return found
}

// Rebind replaces a's Expr with a literal wrapping val. This is called
// only from param.Apply.
func (a *Assignment) Rebind(val any) {
	a.Expr = Literal{Value: val}
}
