// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commit - answers whether a transaction is in a final block
package commit

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/txhash"
)

// HeightSource - block height of a known transaction
type HeightSource interface {
	Height(hash txhash.Hash) (uint64, bool, error)
}

// Checker - tracks the highest final height
type Checker struct {
	sync.RWMutex
	log       *logger.L
	heights   HeightSource
	finalized uint64
	seen      bool
}

// New - checker with nothing final yet
func New(heights HeightSource) *Checker {
	return &Checker{
		log:     logger.New("commit"),
		heights: heights,
	}
}

// Finalized - record a final height, lower heights than already seen are ignored
func (c *Checker) Finalized(height uint64) {
	c.Lock()
	defer c.Unlock()
	if c.seen && height <= c.finalized {
		return
	}
	c.finalized = height
	c.seen = true
}

// Highest - the highest final height, false if none yet
func (c *Checker) Highest() (uint64, bool) {
	c.RLock()
	defer c.RUnlock()
	return c.finalized, c.seen
}

// BlockCommitted - finality listener
func (c *Checker) BlockCommitted(height uint64) {
	c.Finalized(height)
}

// IsFinal - true if the transaction is stored at a final height
func (c *Checker) IsFinal(hash txhash.Hash) bool {
	height, found, err := c.heights.Height(hash)
	if nil != err {
		c.log.Errorf("tx: %s  height error: %s", hash, err)
		return false
	}
	if !found {
		return false
	}

	finalized, seen := c.Highest()
	return seen && height <= finalized
}
