// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height-balanced binary search tree, generic over
// the element type, carrying a per-node subtree size so that rank,
// k-th element and range counting queries run in logarithmic time
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ordering is entirely determined by a three-way comparison function
// supplied when the tree is created; the tree never assumes a
// built-in order.  Elements that compare equal to one already stored
// are rejected on insert, so the tree never holds duplicates.
//
// An optional release function can be supplied to take back ownership
// of element values as they are discarded by Delete or Destroy.
//
// The internal algorithms recurse to the depth of the tree, which the
// balance invariant keeps logarithmic in the element count, so stack
// use stays small even for very large trees.
package avl
