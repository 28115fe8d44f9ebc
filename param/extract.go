// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"strconv"
	"strings"

	"github.com/solidgeom/engine/astnode"
)

// annotation returns the payload of the named annotation on a, and
// whether it was present.
func annotation(a *astnode.Assignment, name string) (string, bool) {
	for _, ann := range a.Annotations {
		if ann.Name == name {
			return ann.Payload, true
		}
	}
	return "", false
}

// hasParameter reports whether a carries the `Parameter` annotation
// that marks it as customizer-exposed.
func hasParameter(a *astnode.Assignment) bool {
	_, ok := annotation(a, "Parameter")
	return ok
}

// Extract walks assignments and returns one Parameter per assignment
// carrying a `Parameter` annotation, in source order.
// Assignments without the annotation are skipped, and so are those
// whose `Group` is "Hidden".
func Extract(assignments astnode.AssignmentList) []Parameter {
	var out []Parameter
	for _, a := range assignments {
		if !hasParameter(a) {
			continue
		}
		if p := extractOne(a); p != nil && !p.Hidden() {
			out = append(out, p)
		}
	}
	return out
}

func extractOne(a *astnode.Assignment) Parameter {
	desc, _ := annotation(a, "Description")
	group, _ := annotation(a, "Group")
	payload, _ := annotation(a, "Parameter")

	if a.Expr == nil {
		return nil
	}
	def, err := a.Expr.Eval()
	if err != nil {
		return nil
	}

	switch def := def.(type) {
	case bool:
		return NewBoolParameter(a.Name, desc, group, def)
	case float64:
		return extractNumberLike(a.Name, desc, group, def, payload)
	case string:
		return extractStringLike(a.Name, desc, group, def, payload)
	case []float64:
		if len(def) < 1 || len(def) > 4 {
			return nil
		}
		min, max, step := parseRange(payload)
		return NewVectorParameter(a.Name, desc, group, def, len(def), min, max, step)
	default:
		return nil
	}
}

// extractNumberLike dispatches a numeric default to NumberParameter
// (range/max-only/step forms) or EnumParameter (a bracketed list of
// values).
func extractNumberLike(name, desc, group string, def float64, payload string) Parameter {
	if items, ok := parseEnumList(payload); ok {
		return NewEnumParameter(name, desc, group, items, def)
	}
	min, max, step := parseRange(payload)
	if min == nil && max == nil && step == nil {
		if f, ok := parseScalar(payload); ok {
			step = &f
		}
	}
	return NewNumberParameter(name, desc, group, def, min, max, step)
}

func extractStringLike(name, desc, group, def, payload string) Parameter {
	if items, ok := parseEnumList(payload); ok {
		return NewEnumParameter(name, desc, group, items, def)
	}
	if f, ok := parseScalar(payload); ok {
		n := int(f)
		return NewStringParameter(name, desc, group, def, &n)
	}
	return NewStringParameter(name, desc, group, def, nil)
}

// parseRange parses a `[min:step:max]`, `[min:max]`, or `[max_only]`
// bracketed annotation payload. Returns all-nil if payload isn't a
// bracketed numeric range.
func parseRange(payload string) (min, max, step *float64) {
	inner, ok := bracketed(payload)
	if !ok {
		return nil, nil, nil
	}
	parts := strings.Split(inner, ":")
	nums := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, nil, nil
		}
		nums = append(nums, f)
	}
	switch len(nums) {
	case 1:
		m := nums[0]
		return nil, &m, nil
	case 2:
		lo, hi := nums[0], nums[1]
		return &lo, &hi, nil
	case 3:
		lo, st, hi := nums[0], nums[1], nums[2]
		return &lo, &hi, &st
	default:
		return nil, nil, nil
	}
}

// parseScalar parses a bare numeric payload (no brackets), used for a
// scalar step (NumberParameter) or a scalar max length
// (StringParameter).
func parseScalar(payload string) (float64, bool) {
	s := strings.TrimSpace(payload)
	if s == "" || strings.HasPrefix(s, "[") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseEnumList parses a bracketed, comma-separated list of either
// bare values or `value:label` pairs into EnumItems.
func parseEnumList(payload string) ([]EnumItem, bool) {
	inner, ok := bracketed(payload)
	if !ok {
		return nil, false
	}
	hasComma := strings.Contains(inner, ",")
	hasColon := strings.Contains(inner, ":")
	if !hasComma && !hasColon {
		// a bare single number, e.g. "[100]": a max-only range, not a
		// one-item enum.
		return nil, false
	}
	if hasColon && !hasComma {
		// a lone "min:step:max" or "min:max" numeric range, not a list.
		parts := strings.Split(inner, ":")
		if len(parts) <= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err == nil {
				return nil, false
			}
		}
	}
	toks := strings.Split(inner, ",")
	items := make([]EnumItem, 0, len(toks))
	for _, t := range toks {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if i := strings.Index(t, ":"); i >= 0 {
			key := strings.TrimSpace(t[:i])
			label := strings.TrimSpace(t[i+1:])
			items = append(items, EnumItem{Key: label, Value: enumValue(key)})
		} else {
			items = append(items, EnumItem{Key: t, Value: enumValue(t)})
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func enumValue(tok string) any {
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return strings.Trim(tok, `"`)
}

func bracketed(payload string) (string, bool) {
	s := strings.TrimSpace(payload)
	if len(s) < 2 || !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	return s[1 : len(s)-1], true
}
