// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// script actions
const (
	actionInsert    = "insert"
	actionRemove    = "remove"
	actionRebalance = "rebalance"
	actionPrint     = "print"
	actionVerify    = "verify"
)

func validAction(action string) bool {
	switch action {
	case actionInsert, actionRemove, actionRebalance, actionPrint, actionVerify:
		return true
	default:
		return false
	}
}

// run - build a tree from the initial keys then apply each operation
//
// duplicate inserts and removes of absent keys are only logged; an
// unknown action or a failed audit stops the script
func run(options *Configuration, w io.Writer, log *logger.L) (*avl.Tree, error) {

	tree := avl.NewWithPolicy(options.policy)
	tree.SetObserver(newObserver(logger.New(observerTag)))

	log.Infof("policy: %s  initial keys: %d", tree.Policy(), len(options.Keys))
	logFailures(log, actionInsert, options.Keys, tree.InsertAll(options.Keys))

	for i, op := range options.Operations {
		log.Debugf("operation[%d]: %s %v", i+1, op.Action, op.Keys)
		if err := apply(tree, op, w, log); nil != err {
			return tree, fmt.Errorf("operation[%d]: %s: %s", i+1, op.Action, err)
		}
	}

	if err := tree.Verify(); nil != err {
		return tree, err
	}

	s := tree.Stats()
	log.Infof("count: %d  height: %d  rotations: %d single %d double", tree.Count(), tree.Height(), s.SingleRotations, s.DoubleRotations)
	return tree, nil
}

func apply(tree *avl.Tree, op Operation, w io.Writer, log *logger.L) error {
	switch op.Action {

	case actionInsert:
		logFailures(log, op.Action, op.Keys, tree.InsertAll(op.Keys))

	case actionRemove:
		logFailures(log, op.Action, op.Keys, tree.RemoveAll(op.Keys))

	case actionRebalance:
		before := tree.Height()
		tree.Rebalance()
		log.Infof("rebalance: height: %d to %d", before, tree.Height())

	case actionPrint:
		depth := tree.Print(w, op.Detail)
		fmt.Fprintf(w, "count: %d  depth: %d\n", tree.Count(), depth)

	case actionVerify:
		return tree.Verify()

	default:
		return fault.ErrInvalidOperation
	}
	return nil
}

func logFailures(log *logger.L, action string, keys []int, results []error) {
	for i, err := range results {
		if nil != err {
			log.Warnf("%s: %d  error: %s", action, keys[i], err)
		}
	}
}
