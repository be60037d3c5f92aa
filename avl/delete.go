// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Del - removes a specific key from the tree
//
// returns the value that was stored, the caller owns it
func (tree *Tree[K, V]) Del(key K) Optional[V] {
	tree.mustBeLive()
	node, _, _ := tree.find(key)
	if nil == node {
		return Optional[V]{}
	}
	r := Optional[V]{
		Exists: true,
		Data:   node.value,
	}
	tree.removeNode(node)
	return r
}

// the node that takes the place of a node with two children, taken
// from the taller side
func chooseReplacer[K any, V any](node *Node[K, V]) *Node[K, V] {
	if heightOf(node.left) < heightOf(node.right) {
		return node.Successor()
	}
	return node.Predecessor()
}

// splice a node out of the tree
func (tree *Tree[K, V]) removeNode(node *Node[K, V]) {
	tree.size -= 1

	deletedKey := node.key

	// a replacer has at most one child
	if nil != node.left && nil != node.right {
		replacer := chooseReplacer(node)
		node.key = replacer.key
		node.value = replacer.value
		node = replacer
	}

	child := node.left
	if nil == child {
		child = node.right
	}
	parent := node.parent
	switch {
	case nil == parent:
		tree.root = child
	case parent.left == node:
		parent.left = child
	default:
		parent.right = child
	}
	if nil != child {
		child.parent = parent
	}

	if nil != tree.freeKey {
		tree.freeKey(deletedKey)
	}
	tree.freeNode(node)

	if nil != parent {
		tree.rebalance(parent, false)
	}
}
