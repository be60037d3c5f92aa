// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lockedmap - an avl tree behind a read/write lock so that it
// can be shared by several go routines
//
// No node handle ever leaves the lock: traversal hands out copies of
// the key and value instead.
package lockedmap

import (
	"cmp"
	"sync"

	"github.com/bitmark-inc/avlmap/avl"
)

// Map - a tree with its lock
type Map[K any, V any] struct {
	sync.RWMutex // to allow locking

	tree *avl.Tree[K, V]
}

// New - create an empty map, freers are optional as for avl.New
func New[K any, V any](compare avl.Comparator[K], freer avl.KeyValueFreer[K, V]) *Map[K, V] {
	return &Map[K, V]{
		tree: avl.New[K, V](compare, freer),
	}
}

// NewOrdered - create an empty map using the natural ordering of K
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: avl.NewOrdered[K, V](),
	}
}

// Set - insert or overwrite, returns any previous value
func (m *Map[K, V]) Set(key K, value V) avl.Optional[V] {
	m.Lock()
	defer m.Unlock()
	return m.tree.Set(key, value)
}

// Get - fetch the value of a key
func (m *Map[K, V]) Get(key K) avl.Optional[V] {
	m.RLock()
	defer m.RUnlock()
	return m.tree.Get(key)
}

// Del - remove a key, returns the value that was stored
func (m *Map[K, V]) Del(key K) avl.Optional[V] {
	m.Lock()
	defer m.Unlock()
	return m.tree.Del(key)
}

// Size - number of keys
func (m *Map[K, V]) Size() int {
	m.RLock()
	defer m.RUnlock()
	return m.tree.Size()
}

// Clear - remove all keys
func (m *Map[K, V]) Clear() {
	m.Lock()
	defer m.Unlock()
	m.tree.Clear()
}

// Destroy - remove all keys and invalidate the map
func (m *Map[K, V]) Destroy() {
	m.Lock()
	defer m.Unlock()
	m.tree.Destroy()
}

// First - lowest key and its value
func (m *Map[K, V]) First() (key K, value V, ok bool) {
	m.RLock()
	defer m.RUnlock()
	return unpack(m.tree.Begin())
}

// Last - highest key and its value
func (m *Map[K, V]) Last() (key K, value V, ok bool) {
	m.RLock()
	defer m.RUnlock()
	return unpack(m.tree.End())
}

// Walk - call visit for every key in ascending order while it returns
// true; visit runs under the read lock so it must not call back into
// the map to modify it
func (m *Map[K, V]) Walk(visit func(key K, value V) bool) {
	m.RLock()
	defer m.RUnlock()
	m.tree.Walk(func(node *avl.Node[K, V]) bool {
		return visit(node.Key(), node.Value())
	})
}

// Keys - snapshot of all keys in ascending order
func (m *Map[K, V]) Keys() []K {
	m.RLock()
	defer m.RUnlock()
	keys := make([]K, 0, m.tree.Size())
	m.tree.Walk(func(node *avl.Node[K, V]) bool {
		keys = append(keys, node.Key())
		return true
	})
	return keys
}

// Check - run the tree consistency checks
func (m *Map[K, V]) Check() error {
	m.RLock()
	defer m.RUnlock()
	return m.tree.Check()
}

func unpack[K any, V any](node *avl.Node[K, V]) (key K, value V, ok bool) {
	if nil == node {
		return
	}
	return node.Key(), node.Value(), true
}
