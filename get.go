// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - fetch the node at a zero based index in ascending order
// nil when index is outside [0, Count)
func (tree *Tree[T]) Get(index int) *Node[T] {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

// internal: select by index using the subtree sizes
func get[T any](index int, p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	nl := size(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}

// KthSmallest - fetch the k-th smallest element, counting from one
// nil when k is outside [1, Count]: out-of-range k is a normal query
// outcome, not a fault
func (tree *Tree[T]) KthSmallest(k int) *Node[T] {
	if k < 1 || k > tree.Count() {
		return nil
	}
	return get(k-1, tree.root)
}

// KthLargest - fetch the k-th largest element, counting from one
// nil when k is outside [1, Count]
func (tree *Tree[T]) KthLargest(k int) *Node[T] {
	n := tree.Count()
	if k < 1 || k > n {
		return nil
	}
	return get(n-k, tree.root)
}

// Rank - one based position of value in ascending order
// zero when value is not in the tree
func (tree *Tree[T]) Rank(value T) int {
	return rank(value, tree.root, tree.cmp)
}

// internal: accumulate the skipped left subtrees on the way down
func rank[T any](value T, p *Node[T], cmp CompareFunc[T]) int {
	if nil == p {
		return 0
	}

	switch c := cmp(value, p.value); {
	case c < 0:
		return rank(value, p.left, cmp)
	case c > 0:
		r := rank(value, p.right, cmp)
		if 0 == r { // absent below: rank stays zero
			return 0
		}
		return size(p.left) + 1 + r
	default:
		return size(p.left) + 1
	}
}
