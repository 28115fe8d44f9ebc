// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/solidgeom/engine/param"
	"github.com/spf13/cobra"
)

var paramSetCmd = &cobra.Command{
	Use:   "paramset",
	Short: "list the named parameter sets in a parameter-set JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		sets, err := param.Unmarshal(raw)
		if err != nil {
			return err
		}
		out := c.OutOrStdout()
		for _, kv := range sets.Sets.Order {
			fmt.Fprintf(out, "%s (%d parameters)\n", kv.Key, len(kv.Value.Values))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paramSetCmd)
}
