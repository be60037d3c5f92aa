// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/workload"
)

func TestSerialKeys(t *testing.T) {
	keys := workload.SerialKeys(4)
	assert.Equal(t, []uint64{0, 0x100000001, 0x200000002, 0x300000003}, keys, "wrong keys")
	assert.Equal(t, 0, len(workload.SerialKeys(0)), "non-empty")
}

func TestRandomKeys(t *testing.T) {
	a := workload.RandomKeys(100, 42)
	b := workload.RandomKeys(100, 42)
	c := workload.RandomKeys(100, 43)

	assert.Equal(t, 100, len(a), "wrong length")
	assert.Equal(t, a, b, "same seed differs")
	assert.NotEqual(t, a, c, "different seed matches")
}
