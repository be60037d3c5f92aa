// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func heightOf[K any, V any](node *Node[K, V]) int {
	if nil == node {
		return 0
	}
	return node.height
}

// recompute the height from the children
// returns true if the height changed
func updateHeight[K any, V any](node *Node[K, V]) bool {
	old := node.height
	lh := heightOf(node.left)
	rh := heightOf(node.right)
	if lh > rh {
		node.height = lh + 1
	} else {
		node.height = rh + 1
	}
	return old != node.height
}

// replace x by y in x's parent, or as the root
func (tree *Tree[K, V]) transplant(x *Node[K, V], y *Node[K, V]) {
	p := x.parent
	y.parent = p
	switch {
	case nil == p:
		tree.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}
}

// promote x.right to the position of x
//
//	  x               y
//	 / \             / \
//	a   y    →      x   c
//	   / \         / \
//	  b   c       a   b
func (tree *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	y := x.right
	if nil == y {
		return x
	}

	x.right = y.left
	if nil != x.right {
		x.right.parent = x
	}

	tree.transplant(x, y)

	y.left = x
	x.parent = y

	updateHeight(x)
	updateHeight(y)

	return y
}

// promote x.left to the position of x, mirror of rotateLeft
func (tree *Tree[K, V]) rotateRight(x *Node[K, V]) *Node[K, V] {
	y := x.left
	if nil == y {
		return x
	}

	x.left = y.right
	if nil != x.left {
		x.left.parent = x
	}

	tree.transplant(x, y)

	y.right = x
	x.parent = y

	updateHeight(x)
	updateHeight(y)

	return y
}
