// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - one element of the tree together with its structural data
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	value  T        // the stored element
	height int      // nodes on the longest downward path, including this one
	size   int      // nodes in the subtree rooted here, including this one
}

// Value - read the element stored in a node
func (p *Node[T]) Value() T {
	return p.value
}

// Height - height of the subtree rooted at this node
func (p *Node[T]) Height() int {
	return height(p)
}

// Size - number of nodes in the subtree rooted at this node
func (p *Node[T]) Size() int {
	return size(p)
}

// Balance - signed balance factor: height(left) − height(right)
func (p *Node[T]) Balance() int {
	return balance(p)
}

// internal: height of a possibly absent subtree
func height[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: size of a possibly absent subtree
func size[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.size
}

// internal: balance factor of a possibly absent subtree
func balance[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// internal: recompute the height field from the children
// the children's own fields must already be correct
func updateHeight[T any](p *Node[T]) {
	if nil == p {
		return
	}
	h := height(p.left)
	if hr := height(p.right); hr > h {
		h = hr
	}
	p.height = 1 + h
}

// internal: recompute the size field from the children
// the children's own fields must already be correct
func updateSize[T any](p *Node[T]) {
	if nil == p {
		return
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// allocate a new leaf node taking ownership of value
func newNode[T any](value T) *Node[T] {
	return &Node[T]{
		value:  value,
		height: 1,
		size:   1,
	}
}
