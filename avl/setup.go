// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Node - a node in the tree
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	parent *Node[K, V] // points to parent node, nil for root
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // height of this sub-tree, a leaf is 1
}

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root      *Node[K, V]
	size      int
	compare   Comparator[K]
	freeKey   Freer[K]
	freeValue Freer[V]

	pool      *Node[K, V] // reclaimed nodes linked through parent
	pooled    int
	stats     Stats
	destroyed bool
}

// New - create an initially empty tree
//
// either freer may be nil; they are only called when storage is
// removed by Del (key only), Clear or Destroy
func New[K any, V any](compare Comparator[K], freer KeyValueFreer[K, V]) *Tree[K, V] {
	if nil == compare {
		panic(fault.ErrNilComparator)
	}
	return &Tree[K, V]{
		root:      nil,
		size:      0,
		compare:   compare,
		freeKey:   freer.FreeKey,
		freeValue: freer.FreeValue,
	}
}

// NewPrimary - create a tree with no freers, for keys and values
// that need no release
func NewPrimary[K any, V any](compare Comparator[K]) *Tree[K, V] {
	return New[K, V](compare, KeyValueFreer[K, V]{})
}

// NewOrdered - create a tree using the natural ordering of K
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewPrimary[K, V](cmp.Compare[K])
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	tree.mustBeLive()
	return tree.size
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	tree.mustBeLive()
	return nil == tree.root
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	tree.mustBeLive()
	return tree.root
}

// Clear - release every node, the tree remains usable
func (tree *Tree[K, V]) Clear() {
	tree.mustBeLive()
	tree.releaseTree(tree.root)
	tree.root = nil
	tree.size = 0
}

// Destroy - release every node and invalidate the tree
func (tree *Tree[K, V]) Destroy() {
	tree.Clear()
	tree.pool = nil
	tree.pooled = 0
	tree.destroyed = true
}

// post-order release of a sub-tree, depth is bounded by the tree height
func (tree *Tree[K, V]) releaseTree(node *Node[K, V]) {
	if nil == node {
		return
	}
	tree.releaseTree(node.left)
	tree.releaseTree(node.right)
	if nil != tree.freeKey {
		tree.freeKey(node.key)
	}
	if nil != tree.freeValue {
		tree.freeValue(node.value)
	}
	tree.freeNode(node)
}

func (tree *Tree[K, V]) mustBeLive() {
	if tree.destroyed {
		panic(fault.ErrTreeDestroyed)
	}
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.parent
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Depth - get the depth of a node, the root is zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.parent
	for nil != parent {
		count += 1
		parent = parent.parent
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if 0 == depth {
		return []*Node[K, V]{p}
	}

	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
