// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import "github.com/solidgeom/engine/geometry"

// Entry is one cache-resident (Geometry, warning message) pair.
type Entry struct {
	Geom    geometry.Geometry
	Message string
}

const defaultBudget = 100 << 20 // 100 MiB default for both caches.

// GeometryCache stores PolySet and Polygon2d entries keyed by the
// fingerprint string. It is not a global singleton — each
// engine.Session owns one.
type GeometryCache struct {
	c *Cache[string, Entry]
}

// NewGeometryCache returns a GeometryCache with the default 100 MiB
// budget.
func NewGeometryCache() *GeometryCache {
	return &GeometryCache{c: New[string, Entry](defaultBudget)}
}

// Insert stores g under fingerprint, costed by g.MemSize(). Returns
// false (and drops g) if MemSize() exceeds the cache's budget.
func (gc *GeometryCache) Insert(fingerprint string, g geometry.Geometry, message string) bool {
	return gc.c.Insert(fingerprint, Entry{Geom: g, Message: message}, g.MemSize())
}

// Get returns the cached entry for fingerprint, touching it to MRU.
func (gc *GeometryCache) Get(fingerprint string) (Entry, bool) { return gc.c.Get(fingerprint) }

// Contains reports presence without affecting LRU order.
func (gc *GeometryCache) Contains(fingerprint string) bool { return gc.c.Contains(fingerprint) }

// Remove evicts fingerprint unconditionally.
func (gc *GeometryCache) Remove(fingerprint string) bool { return gc.c.Remove(fingerprint) }

// Clear empties the cache.
func (gc *GeometryCache) Clear() { gc.c.Clear() }

// SetMaxCost changes the byte budget.
func (gc *GeometryCache) SetMaxCost(n int) { gc.c.SetMaxCost(n) }

// TotalCost returns the current resident byte cost.
func (gc *GeometryCache) TotalCost() int { return gc.c.TotalCost() }

// AcceptsGeometry reports whether g's kind belongs in GeometryCache
// rather than ExactCache.
func AcceptsGeometry(g geometry.Geometry) bool {
	switch g.Kind() {
	case geometry.KindPolySet, geometry.KindPolygon2D, geometry.KindList:
		return true
	default:
		return false
	}
}

// ExactCache stores exact Nef polyhedra (and manifold-fast geometries
// with an exact fallback) keyed by fingerprint. Renamed from the
// the exact kernel's native Nef-polyhedron cache.
type ExactCache struct {
	c *Cache[string, Entry]
}

// NewExactCache returns an ExactCache with the default 100 MiB budget.
func NewExactCache() *ExactCache {
	return &ExactCache{c: New[string, Entry](defaultBudget)}
}

// AcceptsExact reports whether g's kind belongs in ExactCache: only
// exact (Nef) or exact-hybrid (FastPoly) kinds are admitted, per
// everything else should be redirected to GeometryCache.
func AcceptsExact(g geometry.Geometry) bool {
	switch g.Kind() {
	case geometry.KindNef, geometry.KindFastPoly:
		return true
	default:
		return false
	}
}

// Insert stores g under fingerprint if AcceptsExact(g); otherwise it
// returns false without storing anything (callers should redirect to
// GeometryCache instead).
func (ec *ExactCache) Insert(fingerprint string, g geometry.Geometry, message string) bool {
	if !AcceptsExact(g) {
		return false
	}
	return ec.c.Insert(fingerprint, Entry{Geom: g, Message: message}, g.MemSize())
}

// Get returns the cached entry for fingerprint, touching it to MRU.
func (ec *ExactCache) Get(fingerprint string) (Entry, bool) { return ec.c.Get(fingerprint) }

// Contains reports presence without affecting LRU order.
func (ec *ExactCache) Contains(fingerprint string) bool { return ec.c.Contains(fingerprint) }

// Remove evicts fingerprint unconditionally.
func (ec *ExactCache) Remove(fingerprint string) bool { return ec.c.Remove(fingerprint) }

// Clear empties the cache.
func (ec *ExactCache) Clear() { ec.c.Clear() }

// SetMaxCost changes the byte budget.
func (ec *ExactCache) SetMaxCost(n int) { ec.c.SetMaxCost(n) }

// TotalCost returns the current resident byte cost.
func (ec *ExactCache) TotalCost() int { return ec.c.TotalCost() }
