// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert all, delete a growing prefix, then delete the remainder
func doList(t *testing.T, addList []int) {
	for _, policy := range []avl.Policy{avl.Balanced, avl.Unbalanced} {
		for i := 0; i < len(addList)+1; i += 1 {

			alreadyDeleted := make(map[int]struct{})

			tree := avl.NewWithPolicy(policy)
			for _, key := range addList {
				tree.Insert(key)
			}

			if err := tree.Verify(); nil != err {
				depth := tree.Print(os.Stdout, true)
				t.Logf("depth: %d", depth)
				t.Fatalf("add: inconsistent tree: %s", err)
			}

		delete_items:
			for _, key := range addList[:i] {
				if _, ok := alreadyDeleted[key]; ok {
					continue delete_items
				}
				alreadyDeleted[key] = struct{}{}
				if err := tree.Remove(key); nil != err {
					t.Fatalf("delete: %d  error: %s", key, err)
				}
			}

			if err := tree.Verify(); nil != err {
				depth := tree.Print(os.Stdout, true)
				t.Logf("depth: %d", depth)
				t.Fatalf("delete: inconsistent tree: %s", err)
			}

		delete_remainder:
			for _, key := range addList[i:] {
				if _, ok := alreadyDeleted[key]; ok {
					continue delete_remainder
				}
				alreadyDeleted[key] = struct{}{}
				if err := tree.Remove(key); nil != err {
					t.Fatalf("delete: %d  error: %s", key, err)
				}
			}
			if !tree.IsEmpty() {
				depth := tree.Print(os.Stdout, true)
				t.Logf("depth: %d", depth)
				t.Fatal("remainder: remaining nodes")
			}
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []int) {

	unique := make(map[int]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	expected := make([]int, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Ints(expected)

	n := 0
	for i := 0; nil != p; i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}
	assert.Equal(t, expected, tree.Keys(), "keys")

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
	}

	if !tree.IsEmpty() {
		depth := tree.Print(os.Stdout, true)
		t.Logf("depth: %d", depth)
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

func makeKey() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b) % 10000)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

// every audit after every operation, against a map of expected keys
func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	present := make(map[int]struct{})
	d := make([]int, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		err := tree.Insert(key)
		if _, ok := present[key]; ok {
			assert.Error(t, err, "duplicate: %d accepted", key)
		} else {
			assert.NoError(t, err, "insert: %d", key)
		}
		present[key] = struct{}{}

		if err := tree.Verify(); nil != err {
			depth := tree.Print(os.Stdout, true)
			t.Logf("depth: %d", depth)
			t.Fatalf("insert: %d  inconsistent tree: %s", key, err)
		}
	}
	if len(present) != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), len(present))
	}

	for _, key := range d {
		err := tree.Remove(key)
		if _, ok := present[key]; ok {
			assert.NoError(t, err, "remove: %d", key)
		} else {
			assert.Error(t, err, "second remove: %d accepted", key)
		}
		delete(present, key)

		if err := tree.Verify(); nil != err {
			depth := tree.Print(os.Stdout, true)
			t.Logf("depth: %d", depth)
			t.Fatalf("remove: %d  inconsistent tree: %s", key, err)
		}
	}
	if len(present) != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), len(present))
	}

	// add back a test value then remove it again
	const testKey = 50000
	if err := tree.Insert(testKey); nil != err {
		t.Fatalf("insert test key error: %s", err)
	}
	if nil == tree.Find(testKey) {
		t.Fatalf("could not find test key: %d", testKey)
	}
	if err := tree.Remove(testKey); nil != err {
		t.Fatalf("remove test key error: %s", err)
	}
	if nil != tree.Find(testKey) {
		t.Fatalf("test key not deleted")
	}
	if err := tree.Verify(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestRoundTripRestoresKeySet(t *testing.T) {
	tree := avl.NewWithKeys(avl.Balanced, 50, 30, 70, 20, 40, 60, 80, 10)
	keys := tree.Keys()
	for _, key := range []int{5, 35, 65, 90, 45} {
		assert.NoError(t, tree.Insert(key))
		assert.NoError(t, tree.Remove(key))
		assert.Equal(t, keys, tree.Keys(), "key: %d", key)
		assert.NoError(t, tree.Verify(), "key: %d", key)
	}
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.NewWithKeys(avl.Balanced, 1, 2, 3, 4, 5, 6, 7)

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.NewWithKeys(avl.Balanced, 1, 2, 3, 4, 5, 6, 7)

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

func TestPrint(t *testing.T) {
	tree := avl.NewWithKeys(avl.Balanced, 2, 1, 3)
	expected := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	assert.Equal(t, expected, tree.String(), "drawing")

	b := &bytes.Buffer{}
	depth := tree.Print(b, true)
	assert.Equal(t, 2, depth, "depth")
	assert.Contains(t, b.String(), "2 ^- h:1 +0\n", "root detail")
	assert.Contains(t, b.String(), "1 ^2 h:0 +0\n", "leaf detail")

	assert.Equal(t, "", avl.New().String(), "empty tree")
}

func TestParsePolicy(t *testing.T) {
	for name, expected := range map[string]avl.Policy{
		"":           avl.Balanced,
		"balanced":   avl.Balanced,
		"AVL":        avl.Balanced,
		"unbalanced": avl.Unbalanced,
		" plain ":    avl.Unbalanced,
	} {
		policy, err := avl.ParsePolicy(name)
		assert.NoError(t, err, "policy: %q", name)
		assert.Equal(t, expected, policy, "policy: %q", name)
	}

	_, err := avl.ParsePolicy("red-black")
	assert.Error(t, err, "unknown policy")
	assert.Equal(t, "unknown", avl.Policy(7).String())
}
