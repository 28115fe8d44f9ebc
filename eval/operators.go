// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math"

	"github.com/solidgeom/engine/astnode"
	"github.com/solidgeom/engine/diag"
	"github.com/solidgeom/engine/geometry"
	"github.com/solidgeom/engine/math32"
)

// lower dispatches n to its operator.
// children holds the already-evaluated, non-nil geometries of n's
// AST children; empty geometries are kept, so each operator sees them.
func (e *Evaluator) lower(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	switch n.Kind {
	case astnode.KindRoot, astnode.KindGroup:
		return e.opUnion(n.Loc, children)

	case astnode.KindLeaf:
		return e.opLeaf(n)

	case astnode.KindTransform:
		return e.opTransform(n, children)

	case astnode.KindCsgUnion:
		return e.opUnion(n.Loc, children)

	case astnode.KindCsgIntersection:
		return e.opIntersection(n.Loc, children)

	case astnode.KindCsgDifference:
		return e.opDifference(n.Loc, children)

	case astnode.KindCsgMinkowski:
		return e.opMinkowski(n.Loc, children)

	case astnode.KindCsgHull:
		return e.opHull(n.Loc, children)

	case astnode.KindCsgFill:
		return e.opFill(n.Loc, children)

	case astnode.KindCsgResize:
		return e.opResize(n, children)

	case astnode.KindLinearExtrude:
		return e.opLinearExtrude(n, children)

	case astnode.KindRotateExtrude:
		return e.opRotateExtrude(n, children)

	case astnode.KindProjection:
		return e.opProjection(n, children)

	case astnode.KindOffset:
		return e.opOffset(n, children)

	case astnode.KindText:
		return e.opText(n)

	case astnode.KindRender:
		return e.opRender(n, children)

	case astnode.KindCgaladv:
		return e.opCgaladv(n, children)

	default:
		return emptyGeometry(), nil
	}
}

// opLeaf materializes a leaf's geometry. The concrete shape generator
// (cube/sphere/cylinder/polyhedron/etc.) is an external collaborator
// that stashes its result in Params["geometry"]; a leaf without one
// evaluates to an empty 3D solid.
func (e *Evaluator) opLeaf(n *astnode.Node) (geometry.Geometry, error) {
	if g, ok := paramAny(n, "geometry").(geometry.Geometry); ok && g != nil {
		return g, nil
	}
	return emptyGeometry(), nil
}

// opTransform applies Params["matrix"] to n's single child, or to the
// union of its children if there is more than one.
func (e *Evaluator) opTransform(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	m, _ := paramAny(n, "matrix").(*math32.Matrix4)
	if m == nil {
		m = math32.NewMatrix4()
	}
	var src geometry.Geometry
	switch len(children) {
	case 0:
		return emptyGeometry(), nil
	case 1:
		src = children[0]
	default:
		u, err := e.opUnion(n.Loc, children)
		if err != nil {
			return u, err
		}
		src = u
	}
	if t, ok := src.(geometry.Transformable); ok {
		return t.Transform(m), nil
	}
	return src, nil
}

// opUnion implements CsgOpNode{UNION} / GroupNode / RootNode: flatten
// into a GeometryList then reduce. 3D operands try the disjoint
// fast-union path before falling back to the exact kernel; 2D operands
// go straight to the kernel-equivalent placeholder.
func (e *Evaluator) opUnion(loc astnode.Location, children []geometry.Geometry) (geometry.Geometry, error) {
	flat := flattenList(children)
	dim := dominantDimension(flat)

	switch dim {
	case 3:
		ops := e.collect3D(loc, flat)
		if len(ops) == 0 {
			return emptyGeometry(), nil
		}
		if len(ops) == 1 {
			return ops[0], nil
		}
		polys := make([]*geometry.PolySet, 0, len(ops))
		allPoly := true
		for _, g := range ops {
			p, ok := g.(*geometry.PolySet)
			if !ok {
				allPoly = false
				break
			}
			polys = append(polys, p)
		}
		if allPoly {
			if merged, ok := e.tryFastUnion(polys); ok {
				return merged, nil
			}
		}
		e.KernelUnionCalls++
		g, err := e.Kernel.Union3D(ops)
		if err != nil {
			e.warn(diag.KernelFailure, loc, "3D union failed: "+err.Error())
			return emptyGeometry(), nil
		}
		return g, nil

	case 2:
		ops := e.collect2D(loc, flat)
		return union2D(ops), nil

	default:
		return emptyGeometry(), nil
	}
}

// flattenList collapses any GeometryList operands into their members.
func flattenList(geoms []geometry.Geometry) []geometry.Geometry {
	out := make([]geometry.Geometry, 0, len(geoms))
	for _, g := range geoms {
		if l, ok := g.(*geometry.GeometryList); ok {
			out = append(out, flattenList(itemGeoms(l))...)
			continue
		}
		out = append(out, g)
	}
	return out
}

func itemGeoms(l *geometry.GeometryList) []geometry.Geometry {
	out := make([]geometry.Geometry, len(l.Items))
	for i, it := range l.Items {
		out[i] = it.Geom
	}
	return out
}

// union2D concatenates outlines from every operand. This core has no 2D
// polygon-clipping engine of its own (an external collaborator owns
// exact 2D boolean ops); concatenation is the correct result only when
// operands do not overlap — a documented limitation rather than
// silently producing wrong geometry for overlapping 2D shapes.
func union2D(ops []geometry.Geometry) geometry.Geometry {
	out := geometry.NewPolygon2d()
	for _, g := range ops {
		p, ok := g.(*geometry.Polygon2d)
		if !ok {
			continue
		}
		out.Outlines = append(out.Outlines, p.Outlines...)
	}
	return out
}

// opIntersection implements CsgOpNode{INTERSECTION}: fold with
// intersection; any empty child collapses the result to empty.
func (e *Evaluator) opIntersection(loc astnode.Location, children []geometry.Geometry) (geometry.Geometry, error) {
	flat := flattenList(children)
	if len(flat) == 0 {
		return emptyGeometry(), nil
	}
	dim := dominantDimension(flat)
	if dim == 3 {
		ops := e.collect3D(loc, flat)
		if len(ops) < len(flat) || len(ops) == 0 {
			return emptyGeometry(), nil
		}
		if len(ops) == 1 {
			return ops[0], nil
		}
		g, err := e.Kernel.Intersection3D(ops)
		if err != nil {
			e.warn(diag.KernelFailure, loc, "3D intersection failed: "+err.Error())
			return emptyGeometry(), nil
		}
		return g, nil
	}
	// 2D intersection has no concatenation-based approximation; without
	// a clipping engine, report empty rather than a wrong answer.
	e.warn(diag.KernelFailure, loc, "2D intersection requires an external clipping engine")
	return emptyGeometry2D(), nil
}

// opDifference implements CsgOpNode{DIFFERENCE}: first child minus the
// union of the remainder.
func (e *Evaluator) opDifference(loc astnode.Location, children []geometry.Geometry) (geometry.Geometry, error) {
	flat := flattenList(children)
	if len(flat) == 0 {
		return emptyGeometry(), nil
	}
	minuend := flat[0]
	rest := flat[1:]
	if len(rest) == 0 {
		return minuend, nil
	}
	if minuend.Dimension() == 3 {
		subtrahends := e.collect3D(loc, rest)
		if len(subtrahends) == 0 {
			return minuend, nil
		}
		g, err := e.Kernel.Difference3D(minuend, subtrahends)
		if err != nil {
			e.warn(diag.KernelFailure, loc, "3D difference failed: "+err.Error())
			return emptyGeometry(), nil
		}
		return g, nil
	}
	e.warn(diag.KernelFailure, loc, "2D difference requires an external clipping engine")
	return emptyGeometry2D(), nil
}

// opMinkowski implements CsgOpNode{MINKOWSKI}: pairwise Minkowski sum;
// non-convex operands are decomposed first.
func (e *Evaluator) opMinkowski(loc astnode.Location, children []geometry.Geometry) (geometry.Geometry, error) {
	flat := e.collect3D(loc, flattenList(children))
	if len(flat) == 0 {
		return emptyGeometry(), nil
	}
	var parts []geometry.Geometry
	for _, g := range flat {
		p, ok := g.(*geometry.PolySet)
		if ok && !p.Convex {
			decomposed, err := e.Kernel.ConvexDecompose(g)
			if err != nil {
				e.warn(diag.KernelFailure, loc, "convex decomposition failed: "+err.Error())
				return emptyGeometry(), nil
			}
			parts = append(parts, decomposed...)
			continue
		}
		parts = append(parts, g)
	}
	g, err := e.Kernel.Minkowski3D(parts)
	if err != nil {
		e.warn(diag.KernelFailure, loc, "minkowski sum failed: "+err.Error())
		return emptyGeometry(), nil
	}
	return g, nil
}

// opHull implements CsgOpNode{HULL}: 3D convex hull of the union of
// child vertices. 2D hull is not supported by the Kernel interface
// and is reported as a warning.
func (e *Evaluator) opHull(loc astnode.Location, children []geometry.Geometry) (geometry.Geometry, error) {
	flat := flattenList(children)
	dim := dominantDimension(flat)
	if dim == 2 {
		e.warn(diag.KernelFailure, loc, "2D hull requires an external clipping engine")
		return emptyGeometry2D(), nil
	}
	var pts []math32.Vector3
	for _, g := range e.collect3D(loc, flat) {
		if p, ok := g.(*geometry.PolySet); ok {
			pts = append(pts, p.Vertices...)
		}
	}
	if len(pts) == 0 {
		return emptyGeometry(), nil
	}
	g, err := e.Kernel.Hull3D(pts)
	if err != nil {
		e.warn(diag.KernelFailure, loc, "hull failed: "+err.Error())
		return emptyGeometry(), nil
	}
	return g, nil
}

// opFill implements CsgOpNode{FILL}: 2D only, drops hole outlines from
// the union of children.
func (e *Evaluator) opFill(loc astnode.Location, children []geometry.Geometry) (geometry.Geometry, error) {
	ops := e.collect2D(loc, flattenList(children))
	merged := union2D(ops).(*geometry.Polygon2d)
	out := geometry.NewPolygon2d()
	for _, o := range merged.Outlines {
		if !o.IsHole {
			out.Outlines = append(out.Outlines, o)
		}
	}
	return out, nil
}

// opResize implements CsgOpNode{RESIZE}.
func (e *Evaluator) opResize(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	if len(children) == 0 {
		return emptyGeometry(), nil
	}
	newSize, _ := paramAny(n, "new_size").(math32.Vector3)
	autoSize, _ := paramAny(n, "autosize").([3]bool)

	flat := flattenList(children)
	var src geometry.Geometry = flat[0]
	if len(flat) > 1 {
		u, err := e.opUnion(n.Loc, flat)
		if err != nil {
			return u, err
		}
		src = u
	}
	if r, ok := src.(geometry.Resizable); ok {
		return r.Resize(newSize, autoSize), nil
	}
	return src, nil
}

// opLinearExtrude implements LinearExtrudeNode: extrude a 2D profile
// along +Z with height/twist/scale/slices/centered parameters.
func (e *Evaluator) opLinearExtrude(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	profiles := e.collect2D(n.Loc, flattenList(children))
	if len(profiles) == 0 {
		return emptyGeometry(), nil
	}
	profile := union2D(profiles).(*geometry.Polygon2d)

	height, _ := paramAny(n, "height").(float64)
	if height == 0 {
		height = 1
	}
	twist, _ := paramAny(n, "twist").(float64)
	scale, _ := paramAny(n, "scale").(float64)
	if scale == 0 {
		scale = 1
	}
	slices, _ := paramAny(n, "slices").(int)
	if slices < 1 {
		slices = 1
	}
	centered, _ := paramAny(n, "center").(bool)

	z0 := float32(0)
	if centered {
		z0 = float32(-height / 2)
	}

	out := geometry.NewPolySet()
	for _, o := range profile.Outlines {
		n := len(o.Points)
		if n < 3 {
			continue
		}
		layerVerts := make([][]int, slices+1)
		for layer := 0; layer <= slices; layer++ {
			t := float64(layer) / float64(slices)
			z := z0 + float32(t*height)
			ang := float32(t * twist * math.Pi / 180)
			s := float32(1 + t*(scale-1))
			c, si := float32(math.Cos(float64(ang))), float32(math.Sin(float64(ang)))

			base := len(out.Vertices)
			idx := make([]int, n)
			for i, p := range o.Points {
				x := (p.X*c - p.Y*si) * s
				y := (p.X*si + p.Y*c) * s
				out.Vertices = append(out.Vertices, math32.Vec3(x, y, z))
				idx[i] = base + i
			}
			layerVerts[layer] = idx
		}
		for layer := 0; layer < slices; layer++ {
			bottom, top := layerVerts[layer], layerVerts[layer+1]
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				out.Faces = append(out.Faces, geometry.Face{bottom[i], bottom[j], top[j], top[i]})
			}
		}
		out.Faces = append(out.Faces, reverseFace(layerVerts[0]))
		out.Faces = append(out.Faces, layerVerts[slices])
	}
	return out, nil
}

func reverseFace(idx []int) geometry.Face {
	out := make(geometry.Face, len(idx))
	for i, v := range idx {
		out[len(idx)-1-i] = v
	}
	return out
}

// opRotateExtrude implements RotateExtrudeNode: revolve a 2D profile
// around the Y axis by `angle` degrees, in `$fn`-derived segments.
func (e *Evaluator) opRotateExtrude(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	profiles := e.collect2D(n.Loc, flattenList(children))
	if len(profiles) == 0 {
		return emptyGeometry(), nil
	}
	profile := union2D(profiles).(*geometry.Polygon2d)

	angle, _ := paramAny(n, "angle").(float64)
	if angle == 0 {
		angle = 360
	}
	segments, _ := paramAny(n, "segments").(int)
	if segments < 3 {
		segments = 32
	}

	out := geometry.NewPolySet()
	for _, o := range profile.Outlines {
		n := len(o.Points)
		if n < 3 {
			continue
		}
		rings := make([][]int, segments+1)
		for s := 0; s <= segments; s++ {
			t := float64(s) / float64(segments)
			ang := float32(t * angle * math.Pi / 180)
			c, si := float32(math.Cos(float64(ang))), float32(math.Sin(float64(ang)))
			base := len(out.Vertices)
			idx := make([]int, n)
			for i, p := range o.Points {
				x := p.X * c
				z := p.X * si
				out.Vertices = append(out.Vertices, math32.Vec3(x, p.Y, z))
				idx[i] = base + i
			}
			rings[s] = idx
		}
		for s := 0; s < segments; s++ {
			a, b := rings[s], rings[s+1]
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				out.Faces = append(out.Faces, geometry.Face{a[i], a[j], b[j], b[i]})
			}
		}
	}
	return out, nil
}

// opProjection implements ProjectionNode: orthogonal projection of a 3D
// child to 2D. cut=true slices at z=0 instead of projecting all
// vertices.
func (e *Evaluator) opProjection(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	solids := e.collect3D(n.Loc, flattenList(children))
	if len(solids) == 0 {
		return emptyGeometry2D(), nil
	}
	cut, _ := paramAny(n, "cut").(bool)
	out := geometry.NewPolygon2d()
	for _, g := range solids {
		p, ok := g.(*geometry.PolySet)
		if !ok {
			continue
		}
		for _, f := range p.Faces {
			pts := make([]math32.Vector2, 0, len(f))
			for _, idx := range f {
				v := p.Vertices[idx]
				if cut && math.Abs(float64(v.Z)) > 1e-6 {
					continue
				}
				pts = append(pts, math32.Vec2(v.X, v.Y))
			}
			if len(pts) >= 3 {
				out.Outlines = append(out.Outlines, geometry.Outline{Points: pts})
			}
		}
	}
	return out, nil
}

// opOffset implements OffsetNode: grows or shrinks each outline's
// points radially from the outline's centroid by delta/r. This is a
// simplified approximation — true mitered/rounded offset is owned by an
// external 2D clipping engine — but it is
// deterministic and round-trips a convex outline correctly.
func (e *Evaluator) opOffset(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	profiles := e.collect2D(n.Loc, flattenList(children))
	if len(profiles) == 0 {
		return emptyGeometry2D(), nil
	}
	profile := union2D(profiles).(*geometry.Polygon2d)

	r, hasR := paramAny(n, "r").(float64)
	delta, _ := paramAny(n, "delta").(float64)
	amount := delta
	if hasR {
		amount = r
	}

	out := geometry.NewPolygon2d()
	for _, o := range profile.Outlines {
		centroid := centroidOf(o.Points)
		pts := make([]math32.Vector2, len(o.Points))
		for i, p := range o.Points {
			dir := p.Sub(centroid)
			length := float32(math.Hypot(float64(dir.X), float64(dir.Y)))
			if length == 0 {
				pts[i] = p
				continue
			}
			scaled := 1 + float32(amount)/length
			pts[i] = math32.Vec2(centroid.X+dir.X*scaled, centroid.Y+dir.Y*scaled)
		}
		out.Outlines = append(out.Outlines, geometry.Outline{Points: pts, IsHole: o.IsHole})
	}
	return out, nil
}

func centroidOf(pts []math32.Vector2) math32.Vector2 {
	var c math32.Vector2
	for _, p := range pts {
		c = c.Add(p)
	}
	if len(pts) > 0 {
		c = c.MulScalar(1 / float32(len(pts)))
	}
	return c
}

// opText implements TextNode: shape production is delegated to an
// external font-rendering collaborator; a node
// without Params["geometry"] pre-populated by that collaborator warns
// and evaluates to empty.
func (e *Evaluator) opText(n *astnode.Node) (geometry.Geometry, error) {
	if g, ok := paramAny(n, "geometry").(geometry.Geometry); ok && g != nil {
		return g, nil
	}
	e.warn(diag.KernelFailure, n.Loc, "text: no font rendering result available")
	return emptyGeometry2D(), nil
}

// opRender implements RenderNode: a caching-preference barrier that
// forces the node's fingerprint to prefer the exact cache (handled in
// smartCacheGet by n.Kind == KindRender) without otherwise altering the
// already-evaluated child geometry.
func (e *Evaluator) opRender(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	if len(children) == 0 {
		return emptyGeometry(), nil
	}
	return e.opUnion(n.Loc, children)
}

// opCgaladv implements CgaladvNode: advanced kernel operations that
// need direct exact-kernel hints rather than the generic operator
// lowering above. Params["cgal_op"] selects resize or minkowski;
// anything else is an unsupported-operation warning.
func (e *Evaluator) opCgaladv(n *astnode.Node, children []geometry.Geometry) (geometry.Geometry, error) {
	switch op, _ := paramAny(n, "cgal_op").(string); op {
	case "resize":
		return e.opResize(n, children)
	case "minkowski":
		return e.opMinkowski(n.Loc, children)
	default:
		e.warn(diag.KernelFailure, n.Loc, "unsupported cgaladv operation")
		return emptyGeometry(), nil
	}
}
