// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// InOrder - visit every element in ascending order
func (tree *Tree[T]) InOrder(visit VisitFunc[T]) {
	if nil == visit {
		return
	}
	inOrder(tree.root, visit)
}

func inOrder[T any](p *Node[T], visit VisitFunc[T]) {
	if nil == p {
		return
	}
	inOrder(p.left, visit)
	visit(p.value)
	inOrder(p.right, visit)
}

// PreOrder - visit every element, parents before children
func (tree *Tree[T]) PreOrder(visit VisitFunc[T]) {
	if nil == visit {
		return
	}
	preOrder(tree.root, visit)
}

func preOrder[T any](p *Node[T], visit VisitFunc[T]) {
	if nil == p {
		return
	}
	visit(p.value)
	preOrder(p.left, visit)
	preOrder(p.right, visit)
}

// PostOrder - visit every element, children before parents
func (tree *Tree[T]) PostOrder(visit VisitFunc[T]) {
	if nil == visit {
		return
	}
	postOrder(tree.root, visit)
}

func postOrder[T any](p *Node[T], visit VisitFunc[T]) {
	if nil == p {
		return
	}
	postOrder(p.left, visit)
	postOrder(p.right, visit)
	visit(p.value)
}
