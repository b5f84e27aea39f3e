// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate the subtree rooted at p to the right, promoting the left
// child; height and size are refreshed demoted node first, then the
// new root; returns the new subtree root
//
// a missing pivot child makes this a no-op, a correct rebalance never
// calls it in that state
func rotateRight[T any](p *Node[T]) *Node[T] {
	if nil == p || nil == p.left {
		return p
	}

	p1 := p.left
	p.left = p1.right
	p1.right = p

	updateHeight(p)
	updateSize(p)
	updateHeight(p1)
	updateSize(p1)

	return p1
}

// mirror image of rotateRight
func rotateLeft[T any](p *Node[T]) *Node[T] {
	if nil == p || nil == p.right {
		return p
	}

	p1 := p.right
	p.right = p1.left
	p1.left = p

	updateHeight(p)
	updateSize(p)
	updateHeight(p1)
	updateSize(p1)

	return p1
}
