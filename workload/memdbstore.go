// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"

	"github.com/bitmark-inc/avlmap/fault"
)

// initial arena size of the skiplist
const memdbCapacity = 1024 * 1024

// big endian keys so that byte order is numeric order
type memdbStore struct {
	db *memdb.DB
}

func newMemDBStore() Store {
	return &memdbStore{
		db: memdb.New(comparer.DefaultComparer, memdbCapacity),
	}
}

func encode(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

func (s *memdbStore) Name() string {
	return "memdb"
}

func (s *memdbStore) Set(key uint64, value uint64) bool {
	k := encode(key)
	existed := s.db.Contains(k)
	_ = s.db.Put(k, encode(value)) // memdb Put always returns nil
	return existed
}

func (s *memdbStore) Get(key uint64) (uint64, bool) {
	v, err := s.db.Get(encode(key))
	if nil != err || 8 != len(v) {
		return 0, false
	}
	return binary.BigEndian.Uint64(v), true
}

func (s *memdbStore) Del(key uint64) (uint64, bool) {
	k := encode(key)
	v, err := s.db.Get(k)
	if nil != err || 8 != len(v) {
		return 0, false
	}
	value := binary.BigEndian.Uint64(v)
	if err := s.db.Delete(k); nil != err {
		return 0, false
	}
	return value, true
}

func (s *memdbStore) Size() int {
	return s.db.Len()
}

func (s *memdbStore) Ordered() bool {
	return true
}

func (s *memdbStore) Keys() []uint64 {
	keys := make([]uint64, 0, s.db.Len())
	iter := s.db.NewIterator(nil)
	defer iter.Release()
	for iter.Next() {
		keys = append(keys, binary.BigEndian.Uint64(iter.Key()))
	}
	return keys
}

func (s *memdbStore) Check() error {
	keys := s.Keys()
	if len(keys) != s.db.Len() {
		return fault.ErrCountMismatch
	}
	if !isAscending(keys) {
		return fault.ErrOrderViolation
	}
	return nil
}

func (s *memdbStore) Close() {
	s.db.Reset()
}
