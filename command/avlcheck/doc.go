// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlcheck - exercise the avl tree with serial and random keys,
// checking every structural invariant after each insert and delete
//
// Usage:
//
//	avlcheck [--verbose] [--quiet] [--config-file=FILE] [--batch=N] [--seed=N] [name=value...]
//	avlcheck --release [--batch=N]
//
// name=value arguments are passed to the configuration file in the
// "variables" table.
package main
