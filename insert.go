// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new element to the tree
// returns false when an equal element is already present, in which
// case the tree is unchanged and the caller keeps ownership of the
// rejected value
func (tree *Tree[T]) Insert(value T) bool {
	root, added := insert(value, tree.root, tree.cmp)
	tree.root = root
	return added
}

// internal routine for insert
// returns the possibly updated subtree root
func insert[T any](value T, p *Node[T], cmp CompareFunc[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return newNode(value), true
	}

	added := false
	switch c := cmp(value, p.value); {
	case c < 0:
		p.left, added = insert(value, p.left, cmp)
	case c > 0:
		p.right, added = insert(value, p.right, cmp)
	default: // duplicate: tree is unchanged
		return p, false
	}

	return rebalance(p), added
}
