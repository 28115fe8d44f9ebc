// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solidctl is the host CLI surface over one evaluation
// session: feature toggles, parameter-set selection, and
// cache inspection/maintenance.
package main

import (
	"fmt"
	"os"

	"github.com/solidgeom/engine/cmd/solidctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
