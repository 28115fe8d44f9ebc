// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the tagged dynamic value type and lexical
// frames the expression evaluator produces and the core consumes when reading node
// parameters (sizes, angles, $fn, annotation payloads, ...).
package value

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"
)

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindBool
	KindNumber
	KindString
	KindVector
	KindRange
	KindFunction
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindRange:
		return "range"
	case KindFunction:
		return "function"
	case KindObject:
		return "object"
	default:
		return "undef"
	}
}

// Range is the [begin:step:end] form.
type Range struct {
	Begin, Step, End float64
}

// Function is a tagged callable; the evaluator never inspects its body,
// only passes it along (it is an opaque handle onto the scripting
// runtime's closure).
type Function struct {
	Name string
	Call func(args []Value) (Value, error)
}

// Value is a tagged union over {Undefined, Bool, Number, String, Vector,
// Range, Function, Object}. Values are immutable after construction:
// every operator that would "mutate" a vector or string returns a new
// Value. The zero Value is KindUndefined.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	vec    []Value // shared by reference; never mutated in place
	rng    Range
	fn     *Function
	obj    map[string]Value
	glen   int  // cached grapheme length for KindString, -1 until computed
	glenOK bool
}

// Undef is the canonical undefined value.
var Undef = Value{kind: KindUndefined}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// String returns a string Value. Grapheme length is computed lazily on
// first call to (Value).StringLength, not here.
func String(s string) Value { return Value{kind: KindString, str: s, glen: -1} }

// Vector returns a vector Value. elems is retained by reference; callers
// must not mutate it afterward — construct a fresh slice for each new
// vector, immutable once constructed.
func Vector(elems []Value) Value { return Value{kind: KindVector, vec: elems} }

// MakeRange returns a range Value.
func MakeRange(begin, step, end float64) Value {
	return Value{kind: KindRange, rng: Range{Begin: begin, Step: step, End: end}}
}

// MakeFunction returns a function Value wrapping fn.
func MakeFunction(fn *Function) Value { return Value{kind: KindFunction, fn: fn} }

// Object returns an object Value. fields is retained by reference.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// Kind returns v's variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsUndef reports whether v is the undefined value.
func (v Value) IsUndef() bool { return v.kind == KindUndefined }

// AsBool returns v's boolean payload and whether v is KindBool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns v's numeric payload and whether v is KindNumber.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns v's string payload and whether v is KindString.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsVector returns v's element slice and whether v is KindVector.
func (v Value) AsVector() ([]Value, bool) { return v.vec, v.kind == KindVector }

// AsRange returns v's range payload and whether v is KindRange.
func (v Value) AsRange() (Range, bool) { return v.rng, v.kind == KindRange }

// StringLength returns the Unicode grapheme-cluster count of a KindString
// value, computed lazily and memoized on first access. It
// returns 0 for any other Kind.
func (v *Value) StringLength() int {
	if v.kind != KindString {
		return 0
	}
	if !v.glenOK {
		v.glen = uniseg.GraphemeClusterCount(v.str)
		v.glenOK = true
	}
	return v.glen
}

// Equal implements structural equality. NaN never equals NaN, even
// itself.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		if math.IsNaN(a.num) || math.IsNaN(b.num) {
			return false
		}
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindVector:
		if len(a.vec) != len(b.vec) {
			return false
		}
		for i := range a.vec {
			if !Equal(a.vec[i], b.vec[i]) {
				return false
			}
		}
		return true
	case KindRange:
		return a.rng == b.rng
	case KindFunction:
		return a.fn == b.fn
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Add implements numeric/vector addition; any Undefined operand
// propagates Undefined.
func Add(a, b Value) Value {
	if a.kind == KindUndefined || b.kind == KindUndefined {
		return Undef
	}
	if a.kind == KindNumber && b.kind == KindNumber {
		return Number(a.num + b.num)
	}
	if a.kind == KindVector && b.kind == KindVector && len(a.vec) == len(b.vec) {
		out := make([]Value, len(a.vec))
		for i := range a.vec {
			out[i] = Add(a.vec[i], b.vec[i])
		}
		return Vector(out)
	}
	return Undef
}

// Mul implements numeric scalar/vector multiplication; Undefined
// propagates as in Add.
func Mul(a, b Value) Value {
	if a.kind == KindUndefined || b.kind == KindUndefined {
		return Undef
	}
	if a.kind == KindNumber && b.kind == KindNumber {
		return Number(a.num * b.num)
	}
	if a.kind == KindVector && b.kind == KindNumber {
		out := make([]Value, len(a.vec))
		for i, e := range a.vec {
			out[i] = Mul(e, b)
		}
		return Vector(out)
	}
	if a.kind == KindNumber && b.kind == KindVector {
		return Mul(b, a)
	}
	return Undef
}

// String implements fmt.Stringer for debug printing.
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undef"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindVector:
		return fmt.Sprintf("%v", v.vec)
	case KindRange:
		return fmt.Sprintf("[%g:%g:%g]", v.rng.Begin, v.rng.Step, v.rng.End)
	case KindFunction:
		name := "<anon>"
		if v.fn != nil {
			name = v.fn.Name
		}
		return "function " + name
	case KindObject:
		return fmt.Sprintf("%v", v.obj)
	default:
		return "?"
	}
}
