// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements the cost-bounded LRU cache and
// the two process-wide caches built on it: GeometryCache
// and ExactCache.
//
// The LRU itself is an intrusive index-based doubly linked list over a
// hash map: a slice of slots plus a key→index map, with explicit
// prev/next slot indices so MRU/LRU moves are O(1) without the
// slice-shuffling a plain ordered map's delete-by-index would require.
package cache

const noIndex = -1

type slot[K comparable, V any] struct {
	key        K
	value      V
	cost       int
	prev, next int
	inUse      bool
}

// Cache is a generic cost-bounded LRU store. The zero value is not
// usable; construct with New.
type Cache[K comparable, V any] struct {
	maxCost   int
	totalCost int
	index     map[K]int
	slots     []slot[K, V]
	free      []int
	head      int // MRU
	tail      int // LRU
}

// New returns an empty Cache with the given total cost ceiling.
func New[K comparable, V any](maxCost int) *Cache[K, V] {
	return &Cache[K, V]{
		maxCost: maxCost,
		index:   map[K]int{},
		head:    noIndex,
		tail:    noIndex,
	}
}

// Len returns the number of entries currently resident.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// TotalCost returns the sum of costs of all resident entries.
func (c *Cache[K, V]) TotalCost() int { return c.totalCost }

// MaxCost returns the configured cost ceiling.
func (c *Cache[K, V]) MaxCost() int { return c.maxCost }

func (c *Cache[K, V]) unlink(i int) {
	s := &c.slots[i]
	if s.prev != noIndex {
		c.slots[s.prev].next = s.next
	} else {
		c.head = s.next
	}
	if s.next != noIndex {
		c.slots[s.next].prev = s.prev
	} else {
		c.tail = s.prev
	}
	s.prev, s.next = noIndex, noIndex
}

func (c *Cache[K, V]) pushFront(i int) {
	s := &c.slots[i]
	s.prev = noIndex
	s.next = c.head
	if c.head != noIndex {
		c.slots[c.head].prev = i
	}
	c.head = i
	if c.tail == noIndex {
		c.tail = i
	}
}

func (c *Cache[K, V]) touch(i int) {
	if c.head == i {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}

func (c *Cache[K, V]) allocSlot() int {
	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		return i
	}
	c.slots = append(c.slots, slot[K, V]{})
	return len(c.slots) - 1
}

func (c *Cache[K, V]) evictOne() {
	i := c.tail
	if i == noIndex {
		return
	}
	s := &c.slots[i]
	c.totalCost -= s.cost
	delete(c.index, s.key)
	c.unlink(i)
	var zero slot[K, V]
	*s = zero
	c.free = append(c.free, i)
}

// trim evicts from the LRU tail until total cost fits within target.
func (c *Cache[K, V]) trim(target int) {
	for c.totalCost > target && c.tail != noIndex {
		c.evictOne()
	}
}

// Insert stores value under key with the given cost, evicting LRU
// entries as needed to stay within MaxCost. If cost exceeds MaxCost, the
// value is rejected (dropped) and Insert returns false — no error, per
// This cache's failure semantics never return an error. Inserting an existing key removes
// the old entry first (its cost is released) then re-inserts at MRU.
func (c *Cache[K, V]) Insert(key K, value V, cost int) bool {
	if cost > c.maxCost {
		return false
	}
	if i, ok := c.index[key]; ok {
		c.totalCost -= c.slots[i].cost
		c.unlink(i)
		delete(c.index, key)
		c.free = append(c.free, i)
	}
	c.trim(c.maxCost - cost)

	i := c.allocSlot()
	c.slots[i] = slot[K, V]{key: key, value: value, cost: cost, inUse: true}
	c.pushFront(i)
	c.index[key] = i
	c.totalCost += cost
	return true
}

// Get returns the value for key and moves it to the MRU position if
// present ("touch"). The second return is false if key is absent.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(i)
	return c.slots[i].value, true
}

// Contains reports whether key is present, without affecting LRU order.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Remove evicts key unconditionally, returning whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.totalCost -= c.slots[i].cost
	c.unlink(i)
	delete(c.index, key)
	var zero slot[K, V]
	c.slots[i] = zero
	c.free = append(c.free, i)
	return true
}

// Take removes key and returns its value, if present.
func (c *Cache[K, V]) Take(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	v := c.slots[i].value
	c.Remove(key)
	return v, true
}

// Clear empties the cache entirely.
func (c *Cache[K, V]) Clear() {
	c.index = map[K]int{}
	c.slots = nil
	c.free = nil
	c.head, c.tail = noIndex, noIndex
	c.totalCost = 0
}

// SetMaxCost changes the cost ceiling, trimming immediately if the new
// ceiling is lower than the current total cost.
func (c *Cache[K, V]) SetMaxCost(n int) {
	c.maxCost = n
	c.trim(n)
}
