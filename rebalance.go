// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// restore the balance invariant at p after one of its subtrees
// changed height; assumes both children are themselves balanced with
// correct height/size fields, so at most two rotations are needed
// returns the new subtree root
func rebalance[T any](p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	updateHeight(p)
	updateSize(p)

	switch b := balance(p); {
	case b > 1: // left branch too tall
		if balance(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)

	case b < -1: // right branch too tall
		if balance(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)
	}

	return p
}
