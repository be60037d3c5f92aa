// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// Result - outcome of one run
type Result struct {
	Store    string        `json:"store"`
	Label    string        `json:"label"`
	Batch    int           `json:"batch"`
	Distinct int           `json:"distinct"`
	Set      time.Duration `json:"set"`
	Get      time.Duration `json:"get"`
	Del      time.Duration `json:"del"`
}

// Total - time for all three phases
func (r Result) Total() time.Duration {
	return r.Set + r.Get + r.Del
}

// Runner - executes workloads and counts operations
type Runner struct {
	log      *logger.L
	validate bool

	operations uint64 // atomic
}

// NewRunner - log is optional, validate enables Check after every change
func NewRunner(log *logger.L, validate bool) *Runner {
	return &Runner{
		log:      log,
		validate: validate,
	}
}

// Operations - total store operations so far, safe from any go routine
func (r *Runner) Operations() uint64 {
	return atomic.LoadUint64(&r.operations)
}

func (r *Runner) tick() {
	atomic.AddUint64(&r.operations, 1)
}

func (r *Runner) errorf(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Errorf(format, arguments...)
	}
}

// Run - set every key to itself, read every key back then delete every
// key, the store must be empty at the end
func (r *Runner) Run(store Store, label string, keys []uint64) (Result, error) {
	result := Result{
		Store: store.Name(),
		Label: label,
		Batch: len(keys),
	}

	size := 0

	start := time.Now()
	for _, key := range keys {
		existed := store.Set(key, key)
		r.tick()
		if existed {
			continue
		}
		size += 1
		if r.validate {
			if err := store.Check(); nil != err {
				r.errorf("%s: set key: %016x  error: %s", label, key, err)
				return result, err
			}
		}
	}
	result.Set = time.Since(start)
	result.Distinct = size

	if n := store.Size(); n != size {
		r.errorf("%s: after set size: %d  expected: %d", label, n, size)
		return result, fault.ErrSizeMismatch
	}
	if r.validate {
		if err := store.Check(); nil != err {
			r.errorf("%s: after set error: %s", label, err)
			return result, err
		}
		if store.Ordered() {
			k := store.Keys()
			if len(k) != size {
				return result, fault.ErrCountMismatch
			}
			if !isAscending(k) {
				return result, fault.ErrOrderViolation
			}
		}
	}

	start = time.Now()
	for _, key := range keys {
		value, ok := store.Get(key)
		r.tick()
		if !ok {
			r.errorf("%s: get key: %016x  not found", label, key)
			return result, fault.ErrKeyNotFound
		}
		if value != key {
			r.errorf("%s: get key: %016x  value: %016x", label, key, value)
			return result, fault.ErrGetMismatch
		}
	}
	result.Get = time.Since(start)

	start = time.Now()
	for _, key := range keys {
		value, ok := store.Del(key)
		r.tick()
		if !ok {
			continue // duplicate key already deleted
		}
		size -= 1
		if n := store.Size(); n != size {
			r.errorf("%s: del key: %016x  size: %d  expected: %d", label, key, n, size)
			return result, fault.ErrSizeMismatch
		}
		if value != key {
			r.errorf("%s: del key: %016x  value: %016x", label, key, value)
			return result, fault.ErrDeleteMismatch
		}
		if r.validate {
			if err := store.Check(); nil != err {
				r.errorf("%s: del key: %016x  error: %s", label, key, err)
				return result, err
			}
		}
	}
	result.Del = time.Since(start)

	if n := store.Size(); 0 != n {
		r.errorf("%s: after del size: %d", label, n)
		return result, fault.ErrSizeMismatch
	}
	return result, nil
}
