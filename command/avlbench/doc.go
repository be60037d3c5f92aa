// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbench - time the avl tree against other in-memory stores
//
//	avlbench stores
//	avlbench run --store=avl --store=btree --batch=100000 --random
package main
