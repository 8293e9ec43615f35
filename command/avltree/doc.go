// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltree - build a tree from a Lua script of operations
//
// the configuration file names the balancing policy, the initial keys
// and a list of operations (insert, remove, rebalance, print, verify)
// applied in order.  The final tree is audited and printed; with
// --watch the script is run again each time the file is saved.
package main
