// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/logger"
)

const (
	observerTag = "avl"
)

// logs every structural change
type observer struct {
	log *logger.L
}

func newObserver(log *logger.L) avl.Observer {
	return &observer{
		log: log,
	}
}

func (o *observer) Inserted(key int) {
	o.log.Debugf("inserted: %d", key)
}

func (o *observer) Removed(key int) {
	o.log.Debugf("removed: %d", key)
}

func (o *observer) Rotated(shape avl.Shape, key int) {
	o.log.Debugf("rotated: %s at: %d", shape, key)
}
