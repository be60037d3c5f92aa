// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - fetch the value stored for a key
func (tree *Tree[K, V]) Get(key K) Optional[V] {
	tree.mustBeLive()
	node, _, _ := tree.find(key)
	if nil == node {
		return Optional[V]{}
	}
	return Optional[V]{
		Exists: true,
		Data:   node.value,
	}
}
