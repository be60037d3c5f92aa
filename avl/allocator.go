// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// upper limit of reclaimed nodes kept by one tree
const maxPooledNodes = 4096

// Stats - node allocation counters for a tree
type Stats struct {
	Created  int // nodes allocated from the heap
	Reused   int // nodes taken from the pool
	Released int // nodes removed from the tree
	Pooled   int // nodes currently in the pool
}

// Stats - return the allocation counters
func (tree *Tree[K, V]) Stats() Stats {
	s := tree.stats
	s.Pooled = tree.pooled
	return s
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	p := tree.pool
	if nil == p {
		if 0 != tree.pooled {
			panic("pool corrupt")
		}
		tree.stats.Created += 1
		return &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	tree.pool = p.parent
	tree.pooled -= 1
	tree.stats.Reused += 1

	p.key = key
	p.value = value
	p.parent = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the pool while there is room
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
	tree.stats.Released += 1

	if tree.pooled >= maxPooledNodes {
		node.parent = nil
		return
	}
	node.parent = tree.pool // use as free list pointer
	tree.pool = node
	tree.pooled += 1
}
