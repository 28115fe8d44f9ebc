// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the host-level engine configuration (feature
// flags, cache budgets, parameter-set file) from TOML, the format the
// rest of this module's configuration surfaces already use.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk shape of a session's settings file.
type Config struct {
	// TrustManifold skips the kernel's IsManifold re-check when a
	// PolySet is already known-closed.
	TrustManifold bool `toml:"trust_manifold"`

	// FastCSG enables the disjoint fast-union path before falling
	// back to the exact kernel.
	FastCSG bool `toml:"fast_csg"`

	// OptimisticFastUnion skips the closed-polyhedron validation pass
	// when FastCSG is set, trading correctness under malformed input
	// for throughput.
	OptimisticFastUnion bool `toml:"optimistic_fast_union"`

	// PairTestBudget bounds the fast-union clusterer's per-element
	// pairwise disjointness tests.
	PairTestBudget int `toml:"pair_test_budget"`

	// QuantizeGrid is the vertex-snapping grid size used before
	// manifoldness checks.
	QuantizeGrid float32 `toml:"quantize_grid"`

	// GeometryCacheBudget and ExactCacheBudget are the byte budgets
	// enforced on insert by the two process-wide caches.
	GeometryCacheBudget int `toml:"geometry_cache_budget"`
	ExactCacheBudget    int `toml:"exact_cache_budget"`

	// HardWarnings promotes every warning to a fatal error.
	HardWarnings bool `toml:"hard_warnings"`

	// ParameterSetFile is the path to a persisted param.ParameterSets
	// document, if one should be loaded at startup.
	ParameterSetFile string `toml:"parameter_set_file"`

	// ElementBudget bounds the CSG normalizer's element count.
	ElementBudget int `toml:"element_budget"`
}

// Default returns the configuration a fresh session starts with.
func Default() Config {
	return Config{
		FastCSG:             true,
		PairTestBudget:      100,
		QuantizeGrid:        1e-5,
		GeometryCacheBudget: 64 << 20,
		ExactCacheBudget:    64 << 20,
		ElementBudget:       100000,
	}
}

// Load reads and decodes a TOML config file at path, starting from
// Default() so an incomplete file only overrides what it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save encodes cfg as TOML and writes it to path.
func Save(cfg Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
