// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"sort"

	"github.com/bitmark-inc/avlmap/fault"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/avlmap/workload Store

// Store - a uint64 → uint64 map under test
type Store interface {
	Name() string
	Set(key uint64, value uint64) bool // true if key was already present
	Get(key uint64) (uint64, bool)
	Del(key uint64) (uint64, bool)
	Size() int
	Ordered() bool  // Keys returns ascending keys
	Keys() []uint64 // all keys, ascending for ordered stores
	Check() error   // internal consistency
	Close()
}

var constructors = map[string]func() Store{
	"avl":    newAVLStore,
	"btree":  newBTreeStore,
	"cache":  newCacheStore,
	"locked": newLockedStore,
	"memdb":  newMemDBStore,
}

// NewStore - create an empty store by name
func NewStore(name string) (Store, error) {
	create, ok := constructors[name]
	if !ok {
		return nil, fault.ErrUnknownStore
	}
	return create(), nil
}

// StoreNames - all store names in alphabetic order
func StoreNames() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compareUint64(a uint64, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// strictly ascending
func isAscending(keys []uint64) bool {
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			return false
		}
	}
	return true
}
