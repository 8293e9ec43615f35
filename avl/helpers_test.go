// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

// parent key value meaning "this is the root"
const isRoot = -1 << 31

// compact nested form: key(left,right), "-" for a missing child
func layout(p *avl.Node) string {
	if nil == p {
		return "-"
	}
	if nil == p.Left() && nil == p.Right() {
		return fmt.Sprintf("%d", p.Key())
	}
	return fmt.Sprintf("%d(%s,%s)", p.Key(), layout(p.Left()), layout(p.Right()))
}

// assert the full shape of a tree and every structural audit
func expectShape(t *testing.T, tree *avl.Tree, expected string) {
	t.Helper()
	if !assert.Equal(t, expected, layout(tree.Root()), "tree shape") {
		tree.Print(os.Stdout, true)
	}
	require.True(t, tree.CheckUp(), "inconsistent links")
	require.True(t, tree.CheckHeights(), "incorrect heights")
	require.True(t, tree.CheckOrder(), "keys out of order")
	require.True(t, tree.CheckCount(), "incorrect count")
}

// assert the links of a single node
func expectNode(t *testing.T, tree *avl.Tree, key int, parent int, hasLeft bool, hasRight bool, isLeft bool) {
	t.Helper()
	p := tree.Find(key)
	require.NotNil(t, p, "key: %d not found", key)
	assert.Equal(t, key, p.Key(), "key")
	if isRoot == parent {
		assert.Nil(t, p.Parent(), "key: %d parent", key)
		assert.Equal(t, tree.Root(), p, "key: %d is not the root", key)
	} else if assert.NotNil(t, p.Parent(), "key: %d parent", key) {
		assert.Equal(t, parent, p.Parent().Key(), "key: %d parent key", key)
	}
	assert.Equal(t, hasLeft, nil != p.Left(), "key: %d left child presence", key)
	assert.Equal(t, hasRight, nil != p.Right(), "key: %d right child presence", key)
	assert.Equal(t, isLeft, p.IsLeftChild(), "key: %d side flag", key)
	assert.True(t, avl.CheckConnections(p), "key: %d connections", key)
}
