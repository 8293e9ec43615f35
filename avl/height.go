// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height of a sub-tree, an empty one is -1
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the height of a single node from its children
//
// does not recurse, the children must already be correct
func updateHeight(p *Node) {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}
