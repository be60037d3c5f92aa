// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive ordered key/value stores through set, get
// and delete phases with optional validation after every change
//
// The avl tree is the primary store; the others are baselines for
// comparison:
//
//	avl     - avl.Tree
//	locked  - lockedmap.Map (avl.Tree behind an RWMutex)
//	memdb   - goleveldb in-memory skiplist
//	btree   - google B-tree
//	cache   - go-cache hash map (unordered)
package workload
