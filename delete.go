// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove the element equal to value from the tree
// the configured release function, if any, is handed the discarded
// value; returns false when no such element was present
func (tree *Tree[T]) Delete(value T) bool {
	root, removed := delete(value, tree.root, tree.cmp, tree.release)
	tree.root = root
	return removed
}

// internal delete routine
// release is nil when the caller retains ownership of the value
func delete[T any](value T, p *Node[T], cmp CompareFunc[T], release ReleaseFunc[T]) (*Node[T], bool) {
	if nil == p { // not in tree: no-op
		return nil, false
	}

	removed := false
	switch c := cmp(value, p.value); {
	case c < 0:
		p.left, removed = delete(value, p.left, cmp, release)
	case c > 0:
		p.right, removed = delete(value, p.right, cmp, release)
	default: // found: remove p
		if nil == p.left || nil == p.right {
			// zero or one child: the remaining child, if any,
			// replaces p directly
			q := p.left
			if nil == q {
				q = p.right
			}
			if nil != release {
				release(p.value)
			}
			p.left = nil
			p.right = nil
			return q, true
		}

		// two children: move the in-order successor's value into
		// place, then remove the successor from the right subtree
		s := p.right.first()
		if nil != release {
			release(p.value)
		}
		p.value = s.value

		// the successor's value was relocated, not discarded, so no
		// release here: passing one would release it twice
		p.right, _ = delete(s.value, p.right, cmp, nil)
		removed = true
	}

	return rebalance(p), removed
}

// Destroy - discard every node, releasing each stored value exactly
// once through the configured release function
// the tree remains usable as an empty tree
func (tree *Tree[T]) Destroy() {
	destroy(tree.root, tree.release)
	tree.root = nil
}

// internal: post-order teardown
func destroy[T any](p *Node[T], release ReleaseFunc[T]) {
	if nil == p {
		return
	}
	destroy(p.left, release)
	destroy(p.right, release)
	if nil != release {
		release(p.value)
	}
	p.left = nil
	p.right = nil
}
