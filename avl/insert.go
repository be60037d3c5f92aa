// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Set - insert a key and value, or overwrite the value of an existing key
//
// returns the previous value if the key was present; the stored key is
// kept, and the previous value is not passed to the value freer
func (tree *Tree[K, V]) Set(key K, value V) Optional[V] {
	tree.mustBeLive()
	node, parent, cmp := tree.find(key)
	if nil != node {
		r := Optional[V]{
			Exists: true,
			Data:   node.value,
		}
		node.value = value
		return r
	}

	tree.insertNode(tree.newNode(key, value), parent, cmp)
	return Optional[V]{}
}

// link a new leaf below parent on the side given by cmp
func (tree *Tree[K, V]) insertNode(node *Node[K, V], parent *Node[K, V], cmp int) {
	tree.size += 1

	node.parent = parent
	switch {
	case nil == parent:
		tree.root = node
	case cmp < 0:
		parent.left = node
	default:
		parent.right = node
	}

	updateHeight(node)
	tree.rebalance(parent, true)
}
