// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"encoding/json"
	"fmt"

	"cogentcore.org/core/base/ordmap"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
)

// fileFormatVersion is the version this package writes; Unmarshal
// rejects files whose major version is greater than its major version.
var fileFormatVersion = semver.MustParse("1.0.0")

// ParameterSet is a name→encoded-value map for one named customizer
// profile.
type ParameterSet struct {
	Name   string
	Values map[string]json.RawMessage
}

// NewParameterSet returns an empty, named ParameterSet.
func NewParameterSet(name string) *ParameterSet {
	return &ParameterSet{Name: name, Values: map[string]json.RawMessage{}}
}

// ParameterSets is an ordered collection of named ParameterSets,
// persisted as JSON.
type ParameterSets struct {
	Sets *ordmap.Map[string, *ParameterSet]
}

// NewParameterSets returns an empty ParameterSets collection.
func NewParameterSets() *ParameterSets {
	return &ParameterSets{Sets: ordmap.New[string, *ParameterSet]()}
}

// fileDoc is the on-disk JSON shape of a parameter-set document.
type fileDoc struct {
	FileFormatVersion string                                `json:"fileFormatVersion"`
	ParameterSets     map[string]map[string]json.RawMessage `json:"parameterSets"`
}

// Marshal serializes ps to the on-disk JSON format. The sets are written
// as one JSON object, which encoding/json emits in sorted key order, so
// the insertion order of ps.Sets is not kept; set membership and values
// round-trip through Unmarshal.
func (ps *ParameterSets) Marshal() ([]byte, error) {
	doc := fileDoc{
		FileFormatVersion: fileFormatVersion.String(),
		ParameterSets:     map[string]map[string]json.RawMessage{},
	}
	for _, kv := range ps.Sets.Order {
		doc.ParameterSets[kv.Key] = kv.Value.Values
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal decodes raw into a new ParameterSets, rejecting files whose
// fileFormatVersion has a greater major version than fileFormatVersion.
// A file without a fileFormatVersion is accepted.
func Unmarshal(raw []byte) (*ParameterSets, error) {
	var doc fileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("param: malformed parameter-set file: %w", err)
	}
	if doc.FileFormatVersion != "" {
		v, err := semver.NewVersion(doc.FileFormatVersion)
		if err != nil {
			return nil, fmt.Errorf("param: unparseable fileFormatVersion %q: %w", doc.FileFormatVersion, err)
		}
		if v.Major() > fileFormatVersion.Major() {
			return nil, fmt.Errorf("param: file format version %s is newer than the supported %s", v, fileFormatVersion)
		}
	}
	ps := NewParameterSets()
	for name, values := range doc.ParameterSets {
		ps.Sets.Add(name, &ParameterSet{Name: name, Values: values})
	}
	return ps, nil
}

// Clone returns a deep copy of ps, so callers can edit a working copy
// without perturbing a cached or shared ParameterSets.
func (ps *ParameterSets) Clone() (*ParameterSets, error) {
	out := NewParameterSets()
	for _, kv := range ps.Sets.Order {
		cloned := &ParameterSet{}
		if err := copier.CopyWithOption(cloned, kv.Value, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("param: clone set %q: %w", kv.Key, err)
		}
		out.Sets.Add(kv.Key, cloned)
	}
	return out, nil
}

// Encode builds a ParameterSet named name by encoding every value in
// values (keyed by parameter name) through its matching Parameter's
// Encode. A value with no matching parameter in schema is skipped.
func Encode(name string, schema []Parameter, values map[string]any) (*ParameterSet, error) {
	byName := indexByName(schema)
	set := NewParameterSet(name)
	for pname, v := range values {
		p, ok := byName[pname]
		if !ok {
			continue
		}
		raw, err := p.Encode(v)
		if err != nil {
			return nil, err
		}
		set.Values[pname] = raw
	}
	return set, nil
}

// Import decodes set against schema, returning a plain name→value map
// with every NumberParameter clamped, StringParameter truncated, and
// any VectorParameter/EnumParameter entry that fails validation
// dropped rather than surfaced.
func Import(set *ParameterSet, schema []Parameter) map[string]any {
	out := make(map[string]any, len(set.Values))
	byName := indexByName(schema)
	for pname, raw := range set.Values {
		p, ok := byName[pname]
		if !ok {
			continue
		}
		v, ok := p.Import(raw)
		if !ok {
			continue
		}
		out[pname] = v
	}
	return out
}

// CleanSets drops, from every set in ps, entries referring to
// parameters no longer present in schema, and entries whose encoded
// value cannot be imported into its parameter's current type.
func CleanSets(ps *ParameterSets, schema []Parameter) {
	byName := indexByName(schema)
	for _, kv := range ps.Sets.Order {
		set := kv.Value
		for pname, raw := range set.Values {
			p, ok := byName[pname]
			if !ok {
				delete(set.Values, pname)
				continue
			}
			if _, ok := p.Import(raw); !ok {
				delete(set.Values, pname)
			}
		}
	}
}

func indexByName(schema []Parameter) map[string]Parameter {
	m := make(map[string]Parameter, len(schema))
	for _, p := range schema {
		m[p.Name()] = p
	}
	return m
}
