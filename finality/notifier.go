// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package finality - delivery of "block at height is final" events
package finality

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

// Listener - receives every final height
type Listener interface {
	BlockCommitted(height uint64)
}

// Notifier - ordered set of listeners
type Notifier struct {
	sync.RWMutex
	log       *logger.L
	listeners []Listener
}

// NewNotifier - notifier with no listeners
func NewNotifier() *Notifier {
	return &Notifier{
		log: logger.New("finality"),
	}
}

// Register - add a listener; listeners are called in registration order
func (n *Notifier) Register(listener Listener) {
	n.Lock()
	n.listeners = append(n.listeners, listener)
	n.Unlock()
}

// Notify - deliver a height to every listener and return when all are done
func (n *Notifier) Notify(height uint64) {
	n.RLock()
	listeners := n.listeners
	n.RUnlock()

	n.log.Debugf("final height: %d  listeners: %d", height, len(listeners))

	for _, listener := range listeners {
		listener.BlockCommitted(height)
	}
}
