// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Check - run all consistency checks, returns the first failure
func (tree *Tree[K, V]) Check() error {
	if err := tree.CheckUp(); nil != err {
		return err
	}
	if err := tree.CheckHeights(); nil != err {
		return err
	}
	if err := tree.CheckOrder(); nil != err {
		return err
	}
	return tree.CheckSize()
}

// CheckUp - check the parent pointers for consistency
func (tree *Tree[K, V]) CheckUp() error {
	return checkUp(tree.root, nil)
}

// internal: parent pointer checker
func checkUp[K any, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.parent != up {
		return fault.ErrParentLinkMismatch
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// CheckHeights - check the cached heights and the balance of every node
func (tree *Tree[K, V]) CheckHeights() error {
	_, err := checkHeight(tree.root)
	return err
}

// internal: recompute heights bottom up and compare to the cached ones
func checkHeight[K any, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	lh, err := checkHeight(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkHeight(p.right)
	if nil != err {
		return 0, err
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fault.ErrBalanceViolation
	}
	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if h != p.height {
		return 0, fault.ErrHeightMismatch
	}
	return h, nil
}

// CheckOrder - check that an in-order walk is strictly increasing
func (tree *Tree[K, V]) CheckOrder() error {
	var last *Node[K, V]
	for p := tree.Begin(); nil != p; p = p.Successor() {
		if nil != last && tree.compare(last.key, p.key) >= 0 {
			return fault.ErrOrderViolation
		}
		last = p
	}
	return nil
}

// CheckSize - check the node count agrees with the size
func (tree *Tree[K, V]) CheckSize() error {
	n := 0
	for p := tree.Begin(); nil != p; p = p.Successor() {
		n += 1
	}
	if n != tree.size {
		return fault.ErrCountMismatch
	}
	return nil
}
