// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avl"
)

// the fixed scenario: {50, 30, 70, 20, 40}
func TestScenarioOrderStatistics(t *testing.T) {

	tree := avl.NewFromSlice(avl.Compare[int], []int{50, 30, 70, 20, 40})

	inOrder := []int{}
	tree.InOrder(func(v int) {
		inOrder = append(inOrder, v)
	})
	assert.Equal(t, []int{20, 30, 40, 50, 70}, inOrder, "in-order sequence")

	assert.Equal(t, 2, tree.Rank(30), "rank of 30")

	first := tree.KthSmallest(1)
	require.NotNil(t, first, "1st smallest missing")
	assert.Equal(t, 20, first.Value(), "1st smallest")

	assert.Equal(t, 3, tree.CountRange(25, 55), "count of [25,55]")
}

func TestRankKthConsistency(t *testing.T) {

	values := []int{88, 12, 45, 3, 97, 60, 31, 74, 7, 52, 19, 66, 41, 85, 28}
	tree := avl.NewFromSlice(avl.Compare[int], values)

	require.Equal(t, len(values), tree.Count())

	for k := 1; k <= tree.Count(); k += 1 {
		node := tree.KthSmallest(k)
		require.NotNil(t, node, "k-th smallest: k = %d", k)
		assert.Equal(t, k, tree.Rank(node.Value()), "rank(kthSmallest(%d))", k)
	}

	for _, v := range values {
		r := tree.Rank(v)
		require.NotZero(t, r, "rank of present value: %d", v)
		node := tree.KthSmallest(r)
		require.NotNil(t, node)
		assert.Equal(t, v, node.Value(), "kthSmallest(rank(%d))", v)
	}
}

func TestRankAbsent(t *testing.T) {

	tree := avl.NewFromSlice(avl.Compare[int], []int{10, 20, 30})

	assert.Zero(t, tree.Rank(5), "rank below all elements")
	assert.Zero(t, tree.Rank(15), "rank between elements")
	assert.Zero(t, tree.Rank(99), "rank above all elements")

	empty := avl.New(avl.Compare[int])
	assert.Zero(t, empty.Rank(1), "rank on empty tree")
}

// out-of-range k is an absent result, never a fault
func TestKthOutOfRange(t *testing.T) {

	tree := avl.NewFromSlice(avl.Compare[int], []int{10, 20, 30})

	assert.Nil(t, tree.KthSmallest(0))
	assert.Nil(t, tree.KthSmallest(-1))
	assert.Nil(t, tree.KthSmallest(4))
	assert.Nil(t, tree.KthLargest(0))
	assert.Nil(t, tree.KthLargest(4))

	assert.Nil(t, tree.Get(-1))
	assert.Nil(t, tree.Get(3))

	empty := avl.New(avl.Compare[int])
	assert.Nil(t, empty.KthSmallest(1))
	assert.Nil(t, empty.KthLargest(1))
}

func TestKthLargest(t *testing.T) {

	values := []int{5, 1, 9, 3, 7}
	tree := avl.NewFromSlice(avl.Compare[int], values)

	sorted := append([]int{}, values...)
	sort.Ints(sorted)

	n := tree.Count()
	for k := 1; k <= n; k += 1 {
		node := tree.KthLargest(k)
		require.NotNil(t, node, "k-th largest: k = %d", k)
		assert.Equal(t, sorted[n-k], node.Value(), "k-th largest: k = %d", k)
	}
}

// counting and enumeration must agree for every queried range
func TestCountRangeMatchesRangeQuery(t *testing.T) {

	values := []int{15, 3, 42, 27, 8, 36, 50, 21, 12, 45, 30, 6, 18, 39, 24}
	tree := avl.NewFromSlice(avl.Compare[int], values)

	ranges := []struct {
		low  int
		high int
	}{
		{0, 60},   // everything
		{10, 30},  // interior
		{3, 3},    // single element, both bounds equal
		{4, 5},    // empty interior gap
		{-10, -1}, // entirely below
		{51, 99},  // entirely above
		{15, 15},  // bounds on a stored element
	}

	for _, r := range ranges {
		visited := []int{}
		tree.RangeQuery(r.low, r.high, func(v int) {
			visited = append(visited, v)
		})

		assert.Equal(t, len(visited), tree.CountRange(r.low, r.high),
			"count vs enumeration for [%d,%d]", r.low, r.high)

		for i, v := range visited {
			assert.GreaterOrEqual(t, v, r.low, "visited value below range")
			assert.LessOrEqual(t, v, r.high, "visited value above range")
			if i > 0 {
				assert.Less(t, visited[i-1], v, "not in ascending order")
			}
		}
	}

	// inverted bounds: empty result
	assert.Zero(t, tree.CountRange(30, 10), "inverted bounds count")
	tree.RangeQuery(30, 10, func(v int) {
		t.Fatalf("inverted bounds visited: %d", v)
	})
}

// both ends of the range are inclusive
func TestRangeBoundsInclusive(t *testing.T) {

	tree := avl.NewFromSlice(avl.Compare[int], []int{10, 20, 30, 40, 50})

	assert.Equal(t, 3, tree.CountRange(20, 40))

	visited := []int{}
	tree.RangeQuery(20, 40, func(v int) {
		visited = append(visited, v)
	})
	assert.Equal(t, []int{20, 30, 40}, visited)
}

// size accuracy across interleaved inserts and deletes
func TestSizeAccuracy(t *testing.T) {

	tree := avl.New(avl.Compare[int])
	live := 0

	ops := []struct {
		insert bool
		value  int
	}{
		{true, 5}, {true, 2}, {true, 8}, {true, 2}, // duplicate
		{false, 2}, {true, 11}, {true, 5}, // duplicate
		{false, 99}, // absent
		{true, 7}, {false, 5}, {true, 5},
	}

	for _, op := range ops {
		if op.insert {
			if tree.Insert(op.value) {
				live += 1
			}
		} else {
			if tree.Delete(op.value) {
				live -= 1
			}
		}
		require.Equal(t, live, tree.Count(), "count after op on %d", op.value)
		require.True(t, tree.CheckCounts(), "size fields after op on %d", op.value)
	}
}
