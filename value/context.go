// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strings"

// Context is a lexical frame: a read-only variable scope chained to an
// optional parent. $-prefixed names (e.g. $fn, $fa, $fs, $children) are
// "special" variables — they are inherited down the frame chain unless a
// child frame explicitly shadows them, exactly like any other binding,
// but IsSpecial lets callers (e.g. the evaluator deciding whether a
// module call changed facet-count hints) distinguish them quickly.
type Context struct {
	parent *Context
	vars   map[string]Value
}

// NewContext returns a root context with no parent.
func NewContext() *Context {
	return &Context{vars: map[string]Value{}}
}

// Child returns a new context whose lookups fall back to c.
func (c *Context) Child() *Context {
	return &Context{parent: c, vars: map[string]Value{}}
}

// Bind sets name to val in this frame only — it never reaches into a
// parent frame, preserving read-only semantics for enclosing scopes.
func (c *Context) Bind(name string, val Value) {
	c.vars[name] = val
}

// Lookup resolves name in this frame, then each ancestor in turn,
// returning Undef if no frame binds it.
func (c *Context) Lookup(name string) Value {
	for f := c; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v
		}
	}
	return Undef
}

// IsSpecial reports whether name is a $-prefixed special variable.
func IsSpecial(name string) bool {
	return strings.HasPrefix(name, "$")
}

// Names returns the variable names bound directly in this frame (not
// ancestors), in no particular order.
func (c *Context) Names() []string {
	out := make([]string, 0, len(c.vars))
	for k := range c.vars {
		out = append(out, k)
	}
	return out
}
