// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Begin - return the node with the lowest key value, nil if empty
func (tree *Tree[K, V]) Begin() *Node[K, V] {
	tree.mustBeLive()
	if nil == tree.root {
		return nil
	}
	return tree.root.leftmost()
}

// End - return the node with the highest key value, nil if empty
func (tree *Tree[K, V]) End() *Node[K, V] {
	tree.mustBeLive()
	if nil == tree.root {
		return nil
	}
	return tree.root.rightmost()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) leftmost() *Node[K, V] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) rightmost() *Node[K, V] {
	for nil != p.right {
		p = p.right
	}
	return p
}

// Successor - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Successor() *Node[K, V] {
	if nil == p {
		return nil
	}
	if nil != p.right {
		return p.right.leftmost()
	}
	previous := p
	current := p.parent
	for nil != current && current.right == previous {
		previous = current
		current = current.parent
	}
	return current
}

// Predecessor - given a node, return the node with the next lowest
// key value or nil if no more nodes
func (p *Node[K, V]) Predecessor() *Node[K, V] {
	if nil == p {
		return nil
	}
	if nil != p.left {
		return p.left.rightmost()
	}
	previous := p
	current := p.parent
	for nil != current && current.left == previous {
		previous = current
		current = current.parent
	}
	return current
}

// Walk - visit every node in ascending key order until visit returns
// false; the tree must not be modified during the walk
func (tree *Tree[K, V]) Walk(visit func(node *Node[K, V]) bool) {
	for node := tree.Begin(); nil != node; node = node.Successor() {
		if !visit(node) {
			return
		}
	}
}
