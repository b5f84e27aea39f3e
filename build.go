// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// NewFromSlice - build a tree by inserting each element of values in
// turn; duplicates are silently dropped
//
// this is O(n log n): every element goes through the normal insert
// and rebalance path, so the result is always height balanced
func NewFromSlice[T any](cmp CompareFunc[T], values []T) *Tree[T] {
	tree := New(cmp)
	for _, value := range values {
		tree.Insert(value)
	}
	return tree
}

// NewFromSliceWithRelease - as NewFromSlice, with a release function
// attached for later Delete and Destroy calls
// duplicates dropped during the build are released immediately, the
// tree never took ownership of them
func NewFromSliceWithRelease[T any](cmp CompareFunc[T], release ReleaseFunc[T], values []T) *Tree[T] {
	tree := NewWithRelease(cmp, release)
	for _, value := range values {
		if !tree.Insert(value) && nil != release {
			release(value)
		}
	}
	return tree
}
