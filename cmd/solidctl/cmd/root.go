// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements solidctl's cobra command tree.
package cmd

import (
	"github.com/solidgeom/engine/engine/config"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	enableFlags  []string
	parameterSet string
)

var rootCmd = &cobra.Command{
	Use:   "solidctl",
	Short: "solidctl drives one solid-modeling evaluation session",
	Long: `solidctl evaluates built-in demonstration geometry trees
(it has no source-file parser), with feature toggles and disk cache
maintenance subcommands.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a solidctl.toml configuration file")
	rootCmd.PersistentFlags().StringSliceVar(&enableFlags, "enable", nil, "feature flags to turn on: trust-manifold, fast-csg, optimistic-fast-union, hardwarnings")
	rootCmd.PersistentFlags().StringVar(&parameterSet, "parameter-set", "", "name of a parameter set (accepted, but not read by any subcommand)")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(cacheCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig builds the session configuration from --config (if
// given) layered with --enable flags, which always win.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
	}
	for _, f := range enableFlags {
		switch f {
		case "trust-manifold":
			cfg.TrustManifold = true
		case "fast-csg":
			cfg.FastCSG = true
		case "optimistic-fast-union":
			cfg.OptimisticFastUnion = true
		case "hardwarnings":
			cfg.HardWarnings = true
		}
	}
	return cfg, nil
}
