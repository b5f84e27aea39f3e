// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CompareFunc - three-way ordering of elements
// must define a strict total order: negative/zero/positive for
// a less/equal/greater than b
type CompareFunc[T any] func(a, b T) int

// ReleaseFunc - called exactly once for each value whose ownership
// the tree gives up, either on Delete or on Destroy
type ReleaseFunc[T any] func(value T)

// VisitFunc - called once per element during a traversal, in the
// traversal's defined order
type VisitFunc[T any] func(value T)

// FormatFunc - render an element for the tree printer
type FormatFunc[T any] func(value T) string

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	cmp     CompareFunc[T]
	release ReleaseFunc[T] // nil means: do not release
}

// New - create an initially empty tree ordered by cmp
func New[T any](cmp CompareFunc[T]) *Tree[T] {
	return &Tree[T]{
		root: nil,
		cmp:  cmp,
	}
}

// NewWithRelease - like New, but release is called whenever the tree
// discards ownership of a stored value
func NewWithRelease[T any](cmp CompareFunc[T], release ReleaseFunc[T]) *Tree[T] {
	return &Tree[T]{
		root:    nil,
		cmp:     cmp,
		release: release,
	}
}

// IsEmpty - true if the tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return size(tree.root)
}

// Height - current height of the tree, zero when empty
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}
