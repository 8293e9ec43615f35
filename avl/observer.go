// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

//go:generate mockgen -source=observer.go -destination=mocks/observer.go -package=mocks

// Observer - receives structural events synchronously, in the order
// they happen; a rotation is reported before the insert or remove
// that caused it
type Observer interface {
	Inserted(key int)
	Removed(key int)
	Rotated(shape Shape, key int)
}

// Stats - running totals for a tree
type Stats struct {
	Inserts         int // successful inserts
	Duplicates      int // rejected inserts
	Removes         int // successful removes
	Missing         int // removes of an absent key
	SingleRotations int
	DoubleRotations int
	Allocated       int // nodes created by the pool
	Recycled        int // nodes reused from the pool
}

// Stats - a copy of the current totals
func (tree *Tree) Stats() Stats {
	return tree.stats
}
