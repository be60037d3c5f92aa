// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic ordered map kept in an AVL balanced tree
// with the addition of parent pointers to allow iteration through the
// nodes without any auxiliary storage
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access (see
// the lockedmap package).
//
// Each node caches the height of its sub-tree.  Insertion rebalances
// upwards from the new leaf and stops after the first rotation;
// deletion may need rotations all the way to the root, and stops as
// soon as an ancestor's height is left unchanged.
//
// Keys are ordered by a caller supplied comparator which must be a
// strict total order over every key ever stored in one tree.  Absence
// is never an error: Get, Set and Del all return an Optional.
//
// A value replaced by Set or removed by Del is handed back to the
// caller and is never passed to the value freer; the caller owns it.
package avl
