// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - the node holding key or nil
func (tree *Tree) Find(key int) *Node {
	_, p := descend(key, tree.root)
	return p
}

// Search - find a specific key, reporting why it is absent
func (tree *Tree) Search(key int) (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	_, p := descend(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p, nil
}

// walk down from p towards key
//
// returns the matching node, or nil and the last node visited which
// is where a new leaf for key would be attached
func descend(key int, p *Node) (*Node, *Node) {
	var parent *Node
	for nil != p {
		switch {
		case key < p.key:
			parent = p
			p = p.left
		case key > p.key:
			parent = p
			p = p.right
		default:
			return parent, p
		}
	}
	return parent, nil
}
