// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// independent re-derivation of the tree invariants, for testing and
// auditing only: none of these run on any mutating path

// CheckOrder - verify the binary search tree ordering property by
// narrowing an open bound interval on the way down
func (tree *Tree[T]) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil, tree.cmp)
}

// internal: ordering checker, nil bound means unbounded
func checkOrder[T any](p *Node[T], lo *T, hi *T, cmp CompareFunc[T]) bool {
	if nil == p {
		return true
	}
	if nil != lo && cmp(p.value, *lo) <= 0 {
		return false
	}
	if nil != hi && cmp(p.value, *hi) >= 0 {
		return false
	}
	return checkOrder(p.left, lo, &p.value, cmp) &&
		checkOrder(p.right, &p.value, hi, cmp)
}

// CheckBalance - verify the height-balance invariant and the stored
// height fields at every node
func (tree *Tree[T]) CheckBalance() bool {
	return checkBalance(tree.root)
}

// internal: balance checker
func checkBalance[T any](p *Node[T]) bool {
	if nil == p {
		return true
	}
	if b := balance(p); b < -1 || b > 1 {
		return false
	}
	h := height(p.left)
	if hr := height(p.right); hr > h {
		h = hr
	}
	if p.height != 1+h {
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckCounts - verify the stored subtree sizes at every node
func (tree *Tree[T]) CheckCounts() bool {
	return checkCounts(tree.root) >= 0
}

// internal: returns the actual subtree size, -1 on any mismatch
func checkCounts[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	l := checkCounts(p.left)
	if l < 0 {
		return -1
	}
	r := checkCounts(p.right)
	if r < 0 {
		return -1
	}
	if p.size != 1+l+r {
		return -1
	}
	return p.size
}
