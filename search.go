// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding an element equal to value
// returns nil when no such element is stored
func (tree *Tree[T]) Search(value T) *Node[T] {
	return search(value, tree.root, tree.cmp)
}

func search[T any](value T, p *Node[T], cmp CompareFunc[T]) *Node[T] {
	if nil == p {
		return nil
	}

	switch c := cmp(value, p.value); {
	case c < 0:
		return search(value, p.left, cmp)
	case c > 0:
		return search(value, p.right, cmp)
	default:
		return p
	}
}

// First - return the node with the lowest element
// nil on an empty tree
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest element
// nil on an empty tree
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
