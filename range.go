// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CountRange - number of stored elements v with low ≤ v ≤ high,
// bounds inclusive; the subtree sizes make this logarithmic
func (tree *Tree[T]) CountRange(low, high T) int {
	if tree.cmp(low, high) > 0 {
		return 0
	}
	return countAtMost(high, tree.root, tree.cmp) - countLess(low, tree.root, tree.cmp)
}

// internal: number of elements strictly less than x
func countLess[T any](x T, p *Node[T], cmp CompareFunc[T]) int {
	if nil == p {
		return 0
	}
	if cmp(p.value, x) < 0 {
		return size(p.left) + 1 + countLess(x, p.right, cmp)
	}
	return countLess(x, p.left, cmp)
}

// internal: number of elements less than or equal to x
func countAtMost[T any](x T, p *Node[T], cmp CompareFunc[T]) int {
	if nil == p {
		return 0
	}
	if cmp(p.value, x) <= 0 {
		return size(p.left) + 1 + countAtMost(x, p.right, cmp)
	}
	return countAtMost(x, p.left, cmp)
}

// RangeQuery - call visit once for every element in the inclusive
// range [low, high], in ascending order
// subtrees that are provably outside the range are never entered
func (tree *Tree[T]) RangeQuery(low, high T, visit VisitFunc[T]) {
	if nil == visit || tree.cmp(low, high) > 0 {
		return
	}
	rangeQuery(low, high, tree.root, tree.cmp, visit)
}

func rangeQuery[T any](low, high T, p *Node[T], cmp CompareFunc[T], visit VisitFunc[T]) {
	if nil == p {
		return
	}

	cl := cmp(p.value, low)
	ch := cmp(p.value, high)

	if cl > 0 {
		rangeQuery(low, high, p.left, cmp, visit)
	}
	if cl >= 0 && ch <= 0 {
		visit(p.value)
	}
	if ch < 0 {
		rangeQuery(low, high, p.right, cmp, visit)
	}
}
