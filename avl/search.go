// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific key, nil if absent
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	tree.mustBeLive()
	node, _, _ := tree.find(key)
	return node
}

// descend from the root
//
// on a match current is the node; otherwise current is nil and
// parent, cmp give the insertion point (parent is nil for an empty
// tree)
func (tree *Tree[K, V]) find(key K) (current *Node[K, V], parent *Node[K, V], cmp int) {
	current = tree.root
	for nil != current {
		cmp = tree.compare(key, current.key)
		switch {
		case cmp < 0:
			parent = current
			current = current.left
		case cmp > 0:
			parent = current
			current = current.right
		default:
			return current, parent, cmp
		}
	}
	return nil, parent, cmp
}
