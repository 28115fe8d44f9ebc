// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/engine"
	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/math32"
	"github.com/spf13/cobra"
)

var demoScenario string

func init() {
	evalCmd.Flags().StringVar(&demoScenario, "demo", "disjoint-union", "built-in geometry tree to evaluate: disjoint-union, overlapping-union, difference")
}

// evalCmd evaluates a built-in demonstration tree, since this core has
// no parser front-end of its own: the trees exercised here are the same shape
// as the evaluator's scenario tests.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "evaluate a built-in demonstration geometry tree",
	Long: `eval builds one of a handful of fixed demonstration trees
and runs it through a session's evaluator, printing the resulting
vertex/facet counts, bounding box, and kernel call count. It stands in
for evaluating a parsed source file, since parsing is outside this
core's scope.`,
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		arena := astnode.NewArena()
		root, err := buildDemoTree(arena, demoScenario)
		if err != nil {
			return err
		}

		s, err := engine.New(arena, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		g, err := s.Evaluate(root)
		if err != nil {
			return err
		}
		printResult(c, g, s)
		return nil
	},
}

func printResult(c *cobra.Command, g geometry.Geometry, s *engine.Session) {
	out := c.OutOrStdout()
	fmt.Fprintf(out, "dimension: %d\n", g.Dimension())
	if p, ok := g.(*geometry.PolySet); ok {
		bb := p.BoundingBox()
		fmt.Fprintf(out, "vertices: %d\n", len(p.Vertices))
		fmt.Fprintf(out, "facets: %d\n", p.NumFacets())
		fmt.Fprintf(out, "bbox: [%v, %v]\n", bb.Min, bb.Max)
	}
	fmt.Fprintf(out, "kernel union calls: %d\n", s.Evaluator.KernelUnionCalls)
	for _, m := range s.Log.Messages() {
		fmt.Fprintf(out, "%s: %s\n", m.Group, m.Text)
	}
}

func buildDemoTree(arena *astnode.Arena, scenario string) (*astnode.Node, error) {
	leaf := func(g geometry.Geometry) *astnode.Node {
		n := arena.New(astnode.KindLeaf, astnode.Location{})
		n.SetParam("geometry", g)
		return n
	}

	switch scenario {
	case "disjoint-union", "overlapping-union":
		offset := float32(10)
		if scenario == "overlapping-union" {
			offset = 0.5
		}
		a := leaf(cube(math32.Vec3(0, 0, 0)))
		b := leaf(cube(math32.Vec3(offset, 0, 0)))
		root := arena.New(astnode.KindCsgUnion, astnode.Location{})
		root.AddChild(a)
		root.AddChild(b)
		return root, nil
	case "difference":
		a := leaf(cube(math32.Vec3(0, 0, 0)))
		b := leaf(cube(math32.Vec3(0.5, 0, 0)))
		root := arena.New(astnode.KindCsgDifference, astnode.Location{})
		root.AddChild(a)
		root.AddChild(b)
		return root, nil
	default:
		return nil, fmt.Errorf("solidctl: unknown demo scenario %q", scenario)
	}
}

func cube(origin math32.Vector3) *geometry.PolySet {
	v := func(dx, dy, dz float32) math32.Vector3 {
		return math32.Vec3(origin.X+dx, origin.Y+dy, origin.Z+dz)
	}
	p := geometry.NewPolySet()
	p.Vertices = []math32.Vector3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0),
		v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1),
	}
	p.Faces = []geometry.Face{
		{0, 1, 2, 3}, {4, 7, 6, 5},
		{0, 4, 5, 1}, {1, 5, 6, 2},
		{2, 6, 7, 3}, {3, 7, 4, 0},
	}
	return p
}
