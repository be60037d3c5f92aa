// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avlmap/fault"
)

// hash map baseline, items never expire and no janitor is started
type cacheStore struct {
	c *cache.Cache
}

func newCacheStore() Store {
	return &cacheStore{
		c: cache.New(cache.NoExpiration, 0),
	}
}

func cacheKey(key uint64) string {
	return strconv.FormatUint(key, 16)
}

func (s *cacheStore) Name() string {
	return "cache"
}

func (s *cacheStore) Set(key uint64, value uint64) bool {
	k := cacheKey(key)
	_, existed := s.c.Get(k)
	s.c.Set(k, value, cache.NoExpiration)
	return existed
}

func (s *cacheStore) Get(key uint64) (uint64, bool) {
	v, ok := s.c.Get(cacheKey(key))
	if !ok {
		return 0, false
	}
	value, ok := v.(uint64)
	return value, ok
}

func (s *cacheStore) Del(key uint64) (uint64, bool) {
	k := cacheKey(key)
	v, ok := s.c.Get(k)
	if !ok {
		return 0, false
	}
	s.c.Delete(k)
	value, ok := v.(uint64)
	return value, ok
}

func (s *cacheStore) Size() int {
	return s.c.ItemCount()
}

func (s *cacheStore) Ordered() bool {
	return false
}

// in no particular order
func (s *cacheStore) Keys() []uint64 {
	items := s.c.Items()
	keys := make([]uint64, 0, len(items))
	for k := range items {
		key, err := strconv.ParseUint(k, 16, 64)
		if nil == err {
			keys = append(keys, key)
		}
	}
	return keys
}

func (s *cacheStore) Check() error {
	if len(s.c.Items()) != s.c.ItemCount() {
		return fault.ErrCountMismatch
	}
	return nil
}

func (s *cacheStore) Close() {
	s.c.Flush()
}
