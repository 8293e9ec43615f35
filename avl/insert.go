// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new key into the tree
// returns fault.ErrDuplicateKey if already present
func (tree *Tree) Insert(key int) error {
	if nil == tree.root {
		tree.root = tree.newNode(key)
		tree.inserted(key)
		return nil
	}

	parent, p := descend(key, tree.root)
	if nil != p {
		tree.stats.Duplicates += 1
		return fault.ErrDuplicateKey
	}

	p = tree.newNode(key)
	p.up = parent
	if key < parent.key {
		parent.left = p
		p.isLeftChild = true
	} else {
		parent.right = p
	}

	tree.rebalanceFrom(parent)
	tree.inserted(key)
	return nil
}

// InsertAll - insert each key in order, one result per key
func (tree *Tree) InsertAll(keys []int) []error {
	results := make([]error, len(keys))
	for i, key := range keys {
		results[i] = tree.Insert(key)
	}
	return results
}

func (tree *Tree) inserted(key int) {
	tree.count += 1
	tree.stats.Inserts += 1
	if nil != tree.observer {
		tree.observer.Inserted(key)
	}
}
