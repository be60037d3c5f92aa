// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockedmap_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/lockedmap"
)

// the logger package starts a seelog queue goroutine when loaded
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/cihub/seelog.(*asyncLoopLogger).processQueue"))
}

func TestConcurrentWriters(t *testing.T) {
	const writers = 8
	const perWriter = 500

	m := lockedmap.NewOrdered[int, int]()

	wg := new(sync.WaitGroup)
	for w := 0; w < writers; w += 1 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWriter; i += 1 {
				m.Set(base+i, -(base + i))
			}
		}(w * perWriter)
	}

	// readers race with the writers
	for r := 0; r < 4; r += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i += 1 {
				if v := m.Get(i); v.Exists && v.Data != -i {
					t.Errorf("key: %d  value: %d", i, v.Data)
				}
				_ = m.Size()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, m.Size(), "size")
	assert.Nil(t, m.Check(), "tree check")

	keys := m.Keys()
	assert.Equal(t, writers*perWriter, len(keys), "key count")
	for i, k := range keys {
		if i != k {
			t.Fatalf("keys[%d] = %d", i, k)
		}
	}
}

func TestConcurrentDeletes(t *testing.T) {
	m := lockedmap.NewOrdered[int, string]()
	for i := 0; i < 1000; i += 1 {
		m.Set(i, "x")
	}

	wg := new(sync.WaitGroup)
	for w := 0; w < 4; w += 1 {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < 1000; i += 4 {
				r := m.Del(i)
				if !r.Exists {
					t.Errorf("key: %d not found", i)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 0, m.Size(), "size")
	_, _, ok := m.First()
	assert.False(t, ok, "first of empty map")
}

func TestFirstLastWalk(t *testing.T) {
	m := lockedmap.New[string, int](
		func(a string, b string) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
		avl.KeyValueFreer[string, int]{},
	)
	for i, k := range []string{"m", "c", "x", "a", "q"} {
		m.Set(k, i)
	}

	k, v, ok := m.First()
	assert.True(t, ok, "first")
	assert.Equal(t, "a", k, "first key")
	assert.Equal(t, 3, v, "first value")

	k, _, ok = m.Last()
	assert.True(t, ok, "last")
	assert.Equal(t, "x", k, "last key")

	seen := []string{}
	m.Walk(func(key string, value int) bool {
		seen = append(seen, key)
		return "m" != key
	})
	assert.Equal(t, []string{"a", "c", "m"}, seen, "walk")

	r := m.Set("m", 99)
	assert.Equal(t, avl.Optional[int]{Exists: true, Data: 0}, r, "overwrite")

	m.Clear()
	assert.Equal(t, 0, m.Size(), "cleared")

	m.Destroy()
	assert.Panics(t, func() { m.Get("a") }, "get after destroy")
}
