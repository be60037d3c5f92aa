// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
)

// SerialKeys - n increasing keys with both 32 bit halves equal to the index
func SerialKeys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := 0; i < n; i += 1 {
		k := uint64(i)
		keys[i] = k + k<<32
	}
	return keys
}

// RandomKeys - n pseudo random keys, the same seed gives the same keys
//
// duplicates are possible and are handled by the runner as overwrites
func RandomKeys(n int, seed int64) []uint64 {
	r := rand.New(rand.NewSource(seed))
	keys := make([]uint64, n)
	for i := 0; i < n; i += 1 {
		keys[i] = uint64(r.Uint32())<<32 + uint64(r.Uint32())
	}
	return keys
}
