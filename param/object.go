// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the ParameterObject variants.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindVector
	KindEnum
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
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// hiddenGroup is the sentinel group name that suppresses a parameter
// from the schema.
const hiddenGroup = "Hidden"

// Parameter is a typed descriptor extracted from one annotated
// top-level assignment, capable of encoding and importing its own
// value.
type Parameter interface {
	Name() string
	Description() string
	Group() string
	Hidden() bool
	Kind() Kind

	// Encode marshals value (which must be of the type this parameter
	// produces from Import) to its on-wire JSON representation.
	Encode(value any) (json.RawMessage, error)

	// Import unmarshals raw and applies this parameter's validation
	// rule (clamp, truncate, or reject) for this kind.
	// ok is false only when raw must be rejected outright (malformed
	// vector, unmatched enum value); clamping and truncation always
	// succeed.
	Import(raw json.RawMessage) (value any, ok bool)
}

// base holds the fields common to every ParameterObject variant.
type base struct {
	name string
	desc string
	grp  string
}

func (b base) Name() string        { return b.name }
func (b base) Description() string { return b.desc }
func (b base) Group() string       { return b.grp }
func (b base) Hidden() bool        { return b.grp == hiddenGroup }

// BoolParameter is a checkbox-style parameter with no range.
type BoolParameter struct {
	base
	Default bool
}

// NewBoolParameter returns a BoolParameter.
func NewBoolParameter(name, desc, group string, def bool) *BoolParameter {
	return &BoolParameter{base: base{name, desc, group}, Default: def}
}

func (p *BoolParameter) Kind() Kind { return KindBool }

func (p *BoolParameter) Encode(value any) (json.RawMessage, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("param: BoolParameter %q: value %v is not a bool", p.name, value)
	}
	return json.Marshal(b)
}

func (p *BoolParameter) Import(raw json.RawMessage) (any, bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return p.Default, true
	}
	return b, true
}

// NumberParameter is a scalar numeric parameter with optional bounds
// and step.
type NumberParameter struct {
	base
	Default  float64
	Min, Max *float64
	Step     *float64
}

// NewNumberParameter returns a NumberParameter.
func NewNumberParameter(name, desc, group string, def float64, min, max, step *float64) *NumberParameter {
	return &NumberParameter{base: base{name, desc, group}, Default: def, Min: min, Max: max, Step: step}
}

func (p *NumberParameter) Kind() Kind { return KindNumber }

// clamp applies the declared bounds. A NumberParameter with a max but
// no min clamps the lower side to zero.
func (p *NumberParameter) clamp(v float64) float64 {
	lo := 0.0
	if p.Min != nil {
		lo = *p.Min
	}
	if v < lo {
		v = lo
	}
	if p.Max != nil && v > *p.Max {
		v = *p.Max
	}
	return v
}

func (p *NumberParameter) Encode(value any) (json.RawMessage, error) {
	f, err := toFloat(value)
	if err != nil {
		return nil, fmt.Errorf("param: NumberParameter %q: %w", p.name, err)
	}
	return json.Marshal(p.clamp(f))
}

func (p *NumberParameter) Import(raw json.RawMessage) (any, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return p.Default, true
	}
	return p.clamp(f), true
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("value %v is not numeric", value)
	}
}

// StringParameter is a free-text parameter with an optional maximum
// length, truncated (not rejected) on import.
type StringParameter struct {
	base
	Default string
	MaxLen  *int
}

// NewStringParameter returns a StringParameter.
func NewStringParameter(name, desc, group, def string, maxLen *int) *StringParameter {
	return &StringParameter{base: base{name, desc, group}, Default: def, MaxLen: maxLen}
}

func (p *StringParameter) Kind() Kind { return KindString }

func (p *StringParameter) truncate(s string) string {
	if p.MaxLen != nil && len(s) > *p.MaxLen {
		return s[:*p.MaxLen]
	}
	return s
}

func (p *StringParameter) Encode(value any) (json.RawMessage, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("param: StringParameter %q: value %v is not a string", p.name, value)
	}
	return json.Marshal(p.truncate(s))
}

func (p *StringParameter) Import(raw json.RawMessage) (any, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return p.Default, true
	}
	return p.truncate(s), true
}

// VectorParameter is a fixed-arity (1..=4) numeric vector parameter,
// encoded as the JSON string `"[v1, v2, ...]"`. A
// malformed token or wrong arity rejects the import outright.
type VectorParameter struct {
	base
	Default  []float64
	Dim      int
	Min, Max *float64
	Step     *float64
}

// NewVectorParameter returns a VectorParameter.
func NewVectorParameter(name, desc, group string, def []float64, dim int, min, max, step *float64) *VectorParameter {
	return &VectorParameter{base: base{name, desc, group}, Default: def, Dim: dim, Min: min, Max: max, Step: step}
}

func (p *VectorParameter) Kind() Kind { return KindVector }

func (p *VectorParameter) clampOne(v float64) float64 {
	lo := 0.0
	if p.Min != nil {
		lo = *p.Min
	}
	if v < lo {
		v = lo
	}
	if p.Max != nil && v > *p.Max {
		v = *p.Max
	}
	return v
}

func (p *VectorParameter) Encode(value any) (json.RawMessage, error) {
	vec, ok := value.([]float64)
	if !ok || len(vec) != p.Dim {
		return nil, fmt.Errorf("param: VectorParameter %q: value %v is not a %d-vector", p.name, value, p.Dim)
	}
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = strconv.FormatFloat(p.clampOne(v), 'g', -1, 64)
	}
	return json.Marshal("[" + strings.Join(parts, ", ") + "]")
}

func (p *VectorParameter) Import(raw json.RawMessage) (any, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil, false
	}
	toks := strings.Split(s, ",")
	if len(toks) != p.Dim {
		return nil, false
	}
	out := make([]float64, p.Dim)
	for i, t := range toks {
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, false
		}
		out[i] = p.clampOne(f)
	}
	return out, true
}

// EnumItem is one (key, value) choice of an EnumParameter.
type EnumItem struct {
	Key   string
	Value any
}

// EnumParameter offers a closed set of labeled choices. Import must match one item's value exactly, or is
// rejected.
type EnumParameter struct {
	base
	Items        []EnumItem
	DefaultIndex int
}

// NewEnumParameter returns an EnumParameter. If def is not already
// present among items, it is inserted as the first item.
func NewEnumParameter(name, desc, group string, items []EnumItem, def any) *EnumParameter {
	idx := -1
	for i, it := range items {
		if it.Value == def {
			idx = i
			break
		}
	}
	if idx < 0 {
		items = append([]EnumItem{{Key: fmt.Sprintf("%v", def), Value: def}}, items...)
		idx = 0
	}
	return &EnumParameter{base: base{name, desc, group}, Items: items, DefaultIndex: idx}
}

func (p *EnumParameter) Kind() Kind { return KindEnum }

func (p *EnumParameter) Default() any {
	if p.DefaultIndex < 0 || p.DefaultIndex >= len(p.Items) {
		return nil
	}
	return p.Items[p.DefaultIndex].Value
}

func (p *EnumParameter) Encode(value any) (json.RawMessage, error) {
	for _, it := range p.Items {
		if it.Value == value {
			return json.Marshal(it.Value)
		}
	}
	return nil, fmt.Errorf("param: EnumParameter %q: value %v matches no item", p.name, value)
}

func (p *EnumParameter) Import(raw json.RawMessage) (any, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	for _, it := range p.Items {
		enc, err := json.Marshal(it.Value)
		if err != nil {
			continue
		}
		var norm any
		_ = json.Unmarshal(enc, &norm)
		if fmt.Sprintf("%v", norm) == fmt.Sprintf("%v", v) {
			return it.Value, true
		}
	}
	return nil, false
}
