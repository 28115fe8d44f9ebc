// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/solidgeom/engine/cache/diskstore"
	"github.com/spf13/cobra"
)

var cacheDir string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "inspect or clear the local disk cache",
}

var cacheStatCmd = &cobra.Command{
	Use:   "stat",
	Short: "print the disk cache root directory",
	RunE: func(c *cobra.Command, args []string) error {
		root := cacheDir
		if root == "" {
			var err error
			root, err = diskstore.DefaultRoot()
			if err != nil {
				return err
			}
		}
		store, err := diskstore.Open(root)
		if err != nil {
			return err
		}
		defer store.Close()
		fmt.Fprintf(c.OutOrStdout(), "root: %s\n", store.Root())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "print how to clear the disk cache (deletes nothing)",
	RunE: func(c *cobra.Command, args []string) error {
		fmt.Fprintln(c.OutOrStdout(), "clearing the disk cache requires removing its root directory manually; solidctl does not delete directories on its own")
		return nil
	},
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheDir, "dir", "", "disk cache root (defaults to the platform cache directory)")
	cacheCmd.AddCommand(cacheStatCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
