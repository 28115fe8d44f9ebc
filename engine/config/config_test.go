// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")

	cfg := Default()
	cfg.TrustManifold = true
	cfg.PairTestBudget = 42

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.TrustManifold)
	assert.Equal(t, 42, loaded.PairTestBudget)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFilePreservesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.toml")
	require.NoError(t, writeFile(path, "trust_manifold = true\n"))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.TrustManifold)
	// fields absent from the written file fall back to Default()'s
	// values, since Load starts from Default() before unmarshaling
	// the file's keys over it.
	assert.Equal(t, 100, loaded.PairTestBudget)
}
