// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree of integer keys
// with parent pointers and a side flag on every node to allow ascent
// from any node to the root without keeping a path stack.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree (an empty sub-tree is
// -1 so a leaf is 0).  After an insert or a delete the cached heights
// are recomputed bottom-up along the path to the root and, when the
// tree uses the Balanced policy, any node whose balance factor has
// reached ±2 is restored by a single or double rotation.
//
// A key is only ever present once: inserting an existing key is
// rejected and leaves the tree unchanged.
//
// Deleting a node with two children copies the key of its in-order
// successor into it and then unlinks the successor, so the node
// holding the deleted key keeps its identity while the successor node
// is released back to the tree's node pool.
package avl
