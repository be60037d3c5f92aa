// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/lockedmap"
)

type avlStore struct {
	tree *avl.Tree[uint64, uint64]
}

func newAVLStore() Store {
	return &avlStore{
		tree: avl.NewPrimary[uint64, uint64](compareUint64),
	}
}

func (s *avlStore) Name() string {
	return "avl"
}

func (s *avlStore) Set(key uint64, value uint64) bool {
	return s.tree.Set(key, value).Exists
}

func (s *avlStore) Get(key uint64) (uint64, bool) {
	return s.tree.Get(key).Get()
}

func (s *avlStore) Del(key uint64) (uint64, bool) {
	return s.tree.Del(key).Get()
}

func (s *avlStore) Size() int {
	return s.tree.Size()
}

func (s *avlStore) Ordered() bool {
	return true
}

func (s *avlStore) Keys() []uint64 {
	keys := make([]uint64, 0, s.tree.Size())
	s.tree.Walk(func(node *avl.Node[uint64, uint64]) bool {
		keys = append(keys, node.Key())
		return true
	})
	return keys
}

func (s *avlStore) Check() error {
	return s.tree.Check()
}

func (s *avlStore) Close() {
	s.tree.Destroy()
}

type lockedStore struct {
	m *lockedmap.Map[uint64, uint64]
}

func newLockedStore() Store {
	return &lockedStore{
		m: lockedmap.New[uint64, uint64](compareUint64, avl.KeyValueFreer[uint64, uint64]{}),
	}
}

func (s *lockedStore) Name() string {
	return "locked"
}

func (s *lockedStore) Set(key uint64, value uint64) bool {
	return s.m.Set(key, value).Exists
}

func (s *lockedStore) Get(key uint64) (uint64, bool) {
	return s.m.Get(key).Get()
}

func (s *lockedStore) Del(key uint64) (uint64, bool) {
	return s.m.Del(key).Get()
}

func (s *lockedStore) Size() int {
	return s.m.Size()
}

func (s *lockedStore) Ordered() bool {
	return true
}

func (s *lockedStore) Keys() []uint64 {
	return s.m.Keys()
}

func (s *lockedStore) Check() error {
	return s.m.Check()
}

func (s *lockedStore) Close() {
	s.m.Destroy()
}
