// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes a specific key from the tree
func (tree *Tree) Remove(key int) error {
	if nil == tree.root {
		tree.stats.Missing += 1
		return fault.ErrEmptyTree
	}

	_, p := descend(key, tree.root)
	if nil == p {
		tree.stats.Missing += 1
		return fault.ErrKeyNotFound
	}

	tree.removeNode(p)

	tree.count -= 1
	tree.stats.Removes += 1
	if nil != tree.observer {
		tree.observer.Removed(key)
	}
	return nil
}

// RemoveAll - remove each key in order, one result per key
func (tree *Tree) RemoveAll(keys []int) []error {
	results := make([]error, len(keys))
	for i, key := range keys {
		results[i] = tree.Remove(key)
	}
	return results
}

// dispatch on the number of children
func (tree *Tree) removeNode(p *Node) {
	switch {
	case nil == p.left && nil == p.right:
		tree.removeLeaf(p)
	case nil == p.right:
		tree.removeWithOnlyLeftChild(p)
	case nil == p.left:
		tree.removeWithOnlyRightChild(p)
	default:
		tree.removeWithTwoChildren(p)
	}
}

// clear the parent's link, the tree becomes empty if p was the root
func (tree *Tree) removeLeaf(p *Node) {
	parent := p.up
	tree.replaceChild(p, nil)
	tree.freeNode(p)
	tree.rebalanceFrom(parent)
}

// splice the left child into p's position
func (tree *Tree) removeWithOnlyLeftChild(p *Node) {
	child := p.left
	tree.replaceChild(p, child)
	tree.freeNode(p)
	tree.rebalanceFrom(child)
}

// splice the right child into p's position
func (tree *Tree) removeWithOnlyRightChild(p *Node) {
	child := p.right
	tree.replaceChild(p, child)
	tree.freeNode(p)
	tree.rebalanceFrom(child)
}

// move the successor key into p then unlink the successor node,
// which never has a left child
func (tree *Tree) removeWithTwoChildren(p *Node) {
	successor := p.right.first()
	p.key = successor.key

	if nil == successor.right {
		tree.removeLeaf(successor)
	} else {
		tree.removeWithOnlyRightChild(successor)
	}
}
