// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/fault"
)

// DefaultMaximumRetries - times a hash is moved to the next height
// before it is dropped
const DefaultMaximumRetries = 3

// Collaborators - everything the relay reads from or writes to
type Collaborators struct {
	Queue        Queue
	Committer    Committer
	Identity     ChainIdentity
	Sender       Sender
	Messages     MessageStore
	Transactions TransactionStore
}

// Configuration - relay parameters
type Configuration struct {
	MaximumRetries int
	Metrics        *Metrics // nil for unregistered counters
}

// Relay - the registration and commit halves sharing one queue
type Relay struct {
	Gateway *Gateway
	Machine *Machine
}

// New - connect the relay to its collaborators
func New(c Collaborators, configuration Configuration) (*Relay, error) {

	if nil == c.Queue || nil == c.Committer || nil == c.Identity ||
		nil == c.Sender || nil == c.Messages || nil == c.Transactions {
		return nil, fault.ErrInvalidConfiguration
	}
	if configuration.MaximumRetries < 0 {
		return nil, fault.ErrInvalidConfiguration
	}

	log := logger.New("relay")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	metrics := configuration.Metrics
	if nil == metrics {
		m, err := NewMetrics(nil)
		if nil != err {
			return nil, err
		}
		metrics = m
	}

	g := &Gateway{
		log:      log,
		queue:    c.Queue,
		messages: c.Messages,
		metrics:  metrics,
	}

	m := &Machine{
		log:            log,
		queue:          c.Queue,
		committer:      c.Committer,
		identity:       c.Identity,
		sender:         c.Sender,
		messages:       c.Messages,
		transactions:   c.Transactions,
		maximumRetries: configuration.MaximumRetries,
		metrics:        metrics,
		attempts:       make(map[attempt]int),
	}

	c.Queue.OnEvict(m.evicted)

	log.Infof("local chain: %s  maximum retries: %d", c.Identity.LocalChainID(), configuration.MaximumRetries)

	return &Relay{
		Gateway: g,
		Machine: m,
	}, nil
}
