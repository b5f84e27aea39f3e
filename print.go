// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Fprint - write an ASCII graphic representation of the tree to w,
// one line per node showing the formatted element, its height and
// its signed balance factor
// returns the maximum depth of the tree
func (tree *Tree[T]) Fprint(w io.Writer, format FormatFunc[T]) int {
	return printTree(w, tree.root, "", root, format)
}

// Print - as Fprint, to standard output
func (tree *Tree[T]) Print(format FormatFunc[T]) int {
	return tree.Fprint(os.Stdout, format)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, p *Node[T], prefix string, br branch, format FormatFunc[T]) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, format)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s [h:%d b:%+d]\n", format(p.value), p.height, balance(p))
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, format)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
