// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/google/btree"

	"github.com/bitmark-inc/avlmap/fault"
)

const btreeDegree = 32

type btreeItem struct {
	key   uint64
	value uint64
}

type btreeStore struct {
	tree *btree.BTreeG[btreeItem]
}

func newBTreeStore() Store {
	return &btreeStore{
		tree: btree.NewG[btreeItem](btreeDegree, func(a btreeItem, b btreeItem) bool {
			return a.key < b.key
		}),
	}
}

func (s *btreeStore) Name() string {
	return "btree"
}

func (s *btreeStore) Set(key uint64, value uint64) bool {
	_, replaced := s.tree.ReplaceOrInsert(btreeItem{key: key, value: value})
	return replaced
}

func (s *btreeStore) Get(key uint64) (uint64, bool) {
	item, ok := s.tree.Get(btreeItem{key: key})
	return item.value, ok
}

func (s *btreeStore) Del(key uint64) (uint64, bool) {
	item, ok := s.tree.Delete(btreeItem{key: key})
	return item.value, ok
}

func (s *btreeStore) Size() int {
	return s.tree.Len()
}

func (s *btreeStore) Ordered() bool {
	return true
}

func (s *btreeStore) Keys() []uint64 {
	keys := make([]uint64, 0, s.tree.Len())
	s.tree.Ascend(func(item btreeItem) bool {
		keys = append(keys, item.key)
		return true
	})
	return keys
}

func (s *btreeStore) Check() error {
	keys := s.Keys()
	if len(keys) != s.tree.Len() {
		return fault.ErrCountMismatch
	}
	if !isAscending(keys) {
		return fault.ErrOrderViolation
	}
	return nil
}

func (s *btreeStore) Close() {
	s.tree.Clear(false)
}
