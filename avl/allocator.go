// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Node - a node in the tree
type Node struct {
	left        *Node // left sub-tree
	right       *Node // right sub-tree
	up          *Node // points to parent node
	key         int   // key for ordering
	height      int   // height of this sub-tree, a leaf is zero
	isLeftChild bool  // true when up.left == this node
}

// reclaimed nodes of a single tree
type pool struct {
	free       *Node // linked list through the up pointer
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the list
}

// allocate a new leaf, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key int) *Node {
	p := tree.pool.free
	if nil == p {
		if 0 != tree.pool.freeNodes {
			fault.Panic("avl: node pool corrupt")
		}
		tree.pool.totalNodes += 1
		tree.stats.Allocated += 1
		return &Node{
			key: key,
		}
	}
	tree.pool.free = p.up
	tree.pool.freeNodes -= 1
	tree.stats.Recycled += 1

	*p = Node{
		key: key,
	}
	return p
}

// MaxPooledNodes - removed nodes beyond this many are left to the
// garbage collector so a tree that shrinks does not hold its peak size
const MaxPooledNodes = 256

// reclaim a node and keep it in the pool unless the pool is full
func (tree *Tree) freeNode(node *Node) {
	if tree.pool.freeNodes >= MaxPooledNodes {
		*node = Node{
			height: -1,
		}
		return
	}
	*node = Node{
		up:     tree.pool.free, // use as free list pointer
		height: -1,
	}
	tree.pool.free = node
	tree.pool.freeNodes += 1
}
