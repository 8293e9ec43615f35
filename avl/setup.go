// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Policy - whether structural changes are followed by rotations
type Policy int

// possible policies
const (
	Balanced   Policy = iota // rotate to keep every balance factor in -1…+1
	Unbalanced               // plain binary search tree, heights still maintained
)

// String - name of the policy
func (policy Policy) String() string {
	switch policy {
	case Balanced:
		return "balanced"
	case Unbalanced:
		return "unbalanced"
	default:
		return "unknown"
	}
}

// ParsePolicy - convert a policy name to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "balanced", "avl":
		return Balanced, nil
	case "unbalanced", "plain":
		return Unbalanced, nil
	default:
		return Balanced, fault.ErrInvalidPolicy
	}
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	policy   Policy
	observer Observer
	pool     pool
	stats    Stats
}

// New - create an initially empty balanced tree
func New() *Tree {
	return NewWithPolicy(Balanced)
}

// NewWithPolicy - create an initially empty tree with a specific policy
func NewWithPolicy(policy Policy) *Tree {
	return &Tree{
		root:   nil,
		count:  0,
		policy: policy,
	}
}

// NewWithKeys - create a tree and insert the keys in order,
// duplicates are skipped
func NewWithKeys(policy Policy, keys ...int) *Tree {
	tree := NewWithPolicy(policy)
	tree.InsertAll(keys)
	return tree
}

// Policy - the current balancing policy
func (tree *Tree) Policy() Policy {
	return tree.policy
}

// SetPolicy - change the balancing policy
//
// switching to Balanced does not restructure existing nodes, call
// Rebalance for that
func (tree *Tree) SetPolicy(policy Policy) {
	tree.policy = policy
}

// SetObserver - register a receiver for structural events, nil to disable
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() int {
	return p.key
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// IsLeftChild - true if the node is the left child of its parent
func (p *Node) IsLeftChild() bool {
	return p.isLeftChild
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
