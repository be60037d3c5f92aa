// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// restore the balance from node up towards the root
//
// after an insert one single or double rotation is enough for the
// whole tree so the loop stops there; after a delete the shrinkage
// can travel all the way up.  In both cases an ancestor whose height
// does not change means nothing above it is affected.
func (tree *Tree[K, V]) rebalance(node *Node[K, V], isInsert bool) {
	for nil != node {
		dh := heightOf(node.left) - heightOf(node.right)
		switch {
		case dh < -1: // right heavy
			if heightOf(node.right.left) > heightOf(node.right.right) {
				tree.rotateRight(node.right) // right-left case
			}
			node = tree.rotateLeft(node)
			if isInsert {
				return
			}
		case dh > 1: // left heavy
			if heightOf(node.left.left) < heightOf(node.left.right) {
				tree.rotateLeft(node.left) // left-right case
			}
			node = tree.rotateRight(node)
			if isInsert {
				return
			}
		default:
			if !updateHeight(node) {
				return
			}
		}
		node = node.parent
	}
}
