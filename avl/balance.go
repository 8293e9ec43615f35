// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Shape - classification of an out of balance node
type Shape int

// possible shapes, Level needs no rotation
const (
	Level      Shape = iota
	LeftLeft   Shape = iota // single right rotation
	LeftRight  Shape = iota // left rotation at left child, then right rotation
	RightLeft  Shape = iota // right rotation at right child, then left rotation
	RightRight Shape = iota // single left rotation
)

// String - name of the shape
func (shape Shape) String() string {
	switch shape {
	case Level:
		return "level"
	case LeftLeft:
		return "left-left"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	case RightRight:
		return "right-right"
	default:
		return "unknown"
	}
}

// IsDouble - true if the shape needs two rotations
func (shape Shape) IsDouble() bool {
	return LeftRight == shape || RightLeft == shape
}

// BalanceFactor - height(left) - height(right), zero for nil
func BalanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// IsLeftHeavy - left sub-tree is at least two levels taller
func IsLeftHeavy(p *Node) bool {
	return BalanceFactor(p) >= 2
}

// IsRightHeavy - right sub-tree is at least two levels taller
func IsRightHeavy(p *Node) bool {
	return BalanceFactor(p) <= -2
}

// Classify - determine which rotation a node requires
func Classify(p *Node) Shape {
	switch {
	case IsLeftHeavy(p):
		if BalanceFactor(p.left) >= 0 {
			return LeftLeft
		}
		return LeftRight
	case IsRightHeavy(p):
		if BalanceFactor(p.right) <= 0 {
			return RightRight
		}
		return RightLeft
	default:
		return Level
	}
}

// IsBalanced - true if every node of the sub-tree has a balance
// factor in -1…+1
func IsBalanced(p *Node) bool {
	if nil == p {
		return true
	}
	bf := BalanceFactor(p)
	if bf < -1 || bf > 1 {
		return false
	}
	return IsBalanced(p.left) && IsBalanced(p.right)
}

// walk from p to the root fixing heights and, for a balanced tree,
// rotating any node that has become too heavy on one side
func (tree *Tree) rebalanceFrom(p *Node) {
	for nil != p {
		updateHeight(p)
		if Balanced == tree.policy {
			if shape := Classify(p); Level != shape {
				p = tree.rotate(p, shape)
			}
		}
		p = p.up
	}
}

// Rebalance - restructure the whole tree so that IsBalanced(root)
// holds, regardless of the current policy
//
// used after building a tree with the Unbalanced policy; nodes are
// only relinked, never copied
func (tree *Tree) Rebalance() {
	tree.balanceSubtree(tree.root)
}

// post-order: both children are balanced before their parent is
// settled
func (tree *Tree) balanceSubtree(p *Node) {
	if nil == p {
		return
	}
	tree.balanceSubtree(p.left)
	tree.balanceSubtree(p.right)
	tree.settle(p)
}

// rotate at p until the sub-tree occupying its position is balanced
//
// both children of p must already be balanced; a rotation may leave
// the demoted node out of balance, so the new children are settled
// before the new top is checked again
func (tree *Tree) settle(p *Node) *Node {
	if nil == p {
		return nil
	}
	updateHeight(p)
	for shape := Classify(p); Level != shape; shape = Classify(p) {
		p = tree.rotate(p, shape)
		tree.settle(p.left)
		tree.settle(p.right)
		updateHeight(p)
	}
	return p
}
