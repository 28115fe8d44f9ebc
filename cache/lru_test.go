// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLRUEvictionScenario exercises the budget-exceeded eviction path directly.
func TestLRUEvictionScenario(t *testing.T) {
	c := New[string, int](100)
	assert.True(t, c.Insert("a", 1, 60))
	assert.True(t, c.Insert("b", 2, 30))
	_, ok := c.Get("a")
	assert.True(t, ok)
	assert.True(t, c.Insert("c", 3, 30))

	assert.False(t, c.Contains("b"))
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("c"))
	assert.Equal(t, 90, c.TotalCost())
}

func TestInsertRejectsOverBudget(t *testing.T) {
	c := New[string, int](10)
	assert.False(t, c.Insert("a", 1, 11))
	assert.False(t, c.Contains("a"))
	assert.Equal(t, 0, c.TotalCost())
}

func TestRoundTrip(t *testing.T) {
	c := New[string, string](100)
	assert.True(t, c.Insert("k", "v", 5))
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCostBoundInvariantRandomSequence(t *testing.T) {
	c := New[int, int](50)
	costs := []int{10, 20, 15, 5, 30, 8, 12, 40, 1, 2}
	for i, cost := range costs {
		c.Insert(i, i, cost)
		assert.LessOrEqual(t, c.TotalCost(), c.MaxCost())
	}
}

func TestReinsertExistingKeyReplacesCost(t *testing.T) {
	c := New[string, int](100)
	c.Insert("a", 1, 50)
	c.Insert("a", 2, 10)
	assert.Equal(t, 10, c.TotalCost())
	v, _ := c.Get("a")
	assert.Equal(t, 2, v)
}

func TestTakeRemoves(t *testing.T) {
	c := New[string, int](100)
	c.Insert("a", 1, 10)
	v, ok := c.Take("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, c.Contains("a"))
}

func TestSetMaxCostTrims(t *testing.T) {
	c := New[string, int](100)
	c.Insert("a", 1, 40)
	c.Insert("b", 2, 40)
	c.SetMaxCost(50)
	assert.LessOrEqual(t, c.TotalCost(), 50)
	assert.True(t, c.Contains("b"))
	assert.False(t, c.Contains("a"))
}

func TestClear(t *testing.T) {
	c := New[string, int](100)
	c.Insert("a", 1, 10)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.TotalCost())
}
