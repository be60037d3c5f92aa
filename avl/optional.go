// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Optional - result of a query that may find nothing
// Data is only meaningful when Exists is true
type Optional[V any] struct {
	Exists bool
	Data   V
}

// Get - unpack as the usual value, ok pair
func (o Optional[V]) Get() (V, bool) {
	return o.Data, o.Exists
}

// Comparator - must return <0, 0, >0 for a < b, a == b, a > b
type Comparator[K any] func(a K, b K) int

// Freer - release callback applied to storage leaving the tree
type Freer[T any] func(T)

// KeyValueFreer - the two independently optional release callbacks
type KeyValueFreer[K any, V any] struct {
	FreeKey   Freer[K]
	FreeValue Freer[V]
}
