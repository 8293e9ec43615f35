// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckConnections - verify the links of a single node
//
// each child must point back to the node with the correct side flag
// and the parent's child slot on the flagged side must be this node
func CheckConnections(p *Node) bool {
	if nil == p {
		return true
	}
	if nil != p.left && (p.left.up != p || !p.left.isLeftChild) {
		return false
	}
	if nil != p.right && (p.right.up != p || p.right.isLeftChild) {
		return false
	}
	if nil == p.up {
		return !p.isLeftChild
	}
	if p.isLeftChild {
		return p.up.left == p
	}
	return p.up.right == p
}

// CheckUp - check the up pointers and side flags of every node
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up || !CheckConnections(p) {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - check every cached height against the actual height
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeight(tree.root)
	return ok
}

// internal: returns the actual height of a sub-tree
func checkHeight(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	l, ok := checkHeight(p.left)
	if !ok {
		return 0, false
	}
	r, ok := checkHeight(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + r
	if l > r {
		h = 1 + l
	}
	return h, h == p.height
}

// CheckOrder - check that an in-order walk gives strictly
// increasing keys
func (tree *Tree) CheckOrder() bool {
	first := true
	previous := 0
	for p := tree.First(); nil != p; p = p.Next() {
		if !first && p.key <= previous {
			return false
		}
		first = false
		previous = p.key
	}
	return true
}

// CheckCount - check that the number of reachable nodes is the count
func (tree *Tree) CheckCount() bool {
	return countNodes(tree.root) == tree.count
}

func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}

// Verify - run every audit, the balance audit only applies to the
// Balanced policy
func (tree *Tree) Verify() error {
	if !tree.CheckUp() {
		return fault.ErrInconsistentLinks
	}
	if !tree.CheckHeights() {
		return fault.ErrIncorrectHeight
	}
	if !tree.CheckOrder() {
		return fault.ErrOrderViolation
	}
	if !tree.CheckCount() {
		return fault.ErrIncorrectCount
	}
	if Balanced == tree.policy && !IsBalanced(tree.root) {
		return fault.ErrUnbalanced
	}
	return nil
}
