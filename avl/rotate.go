// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// apply the rotations for a shape at p
// returns the node now occupying p's old position
func (tree *Tree) rotate(p *Node, shape Shape) *Node {
	key := p.key
	top := p

	switch shape {
	case LeftLeft:
		top = tree.rotateRight(p)
	case LeftRight:
		tree.rotateLeft(p.left)
		top = tree.rotateRight(p)
	case RightRight:
		top = tree.rotateLeft(p)
	case RightLeft:
		tree.rotateRight(p.right)
		top = tree.rotateLeft(p)
	default:
		return p
	}

	if shape.IsDouble() {
		tree.stats.DoubleRotations += 1
	} else {
		tree.stats.SingleRotations += 1
	}
	if nil != tree.observer {
		tree.observer.Rotated(shape, key)
	}
	return top
}

// right rotation at p: the left child takes p's position and p
// becomes its right child
//
//        p            l
//       / \          / \
//      l   c   →    a   p
//     / \              / \
//    a   b            b   c
func (tree *Tree) rotateRight(p *Node) *Node {
	pivot := p.left
	if nil == pivot {
		fault.Panicf("avl: right rotation at key: %d without a left child", p.key)
	}

	tree.replaceChild(p, pivot)

	p.left = pivot.right
	if nil != p.left {
		p.left.up = p
		p.left.isLeftChild = true
	}

	pivot.right = p
	p.up = pivot
	p.isLeftChild = false

	updateHeight(p)
	updateHeight(pivot)
	return pivot
}

// left rotation at p: mirror image of rotateRight
func (tree *Tree) rotateLeft(p *Node) *Node {
	pivot := p.right
	if nil == pivot {
		fault.Panicf("avl: left rotation at key: %d without a right child", p.key)
	}

	tree.replaceChild(p, pivot)

	p.right = pivot.left
	if nil != p.right {
		p.right.up = p
		p.right.isLeftChild = false
	}

	pivot.left = p
	p.up = pivot
	p.isLeftChild = true

	updateHeight(p)
	updateHeight(pivot)
	return pivot
}

// make n (possibly nil) occupy the position of old under old's parent
// or as the root; old's own links are not changed
func (tree *Tree) replaceChild(old *Node, n *Node) {
	parent := old.up
	isLeft := old.isLeftChild

	if nil != n {
		n.up = parent
		n.isLeftChild = isLeft
	}

	switch {
	case nil == parent:
		tree.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}
}
