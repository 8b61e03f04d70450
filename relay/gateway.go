// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/transaction"
)

// Gateway - admits transactions to the pending queue
type Gateway struct {
	log      *logger.L
	queue    Queue
	messages MessageStore
	metrics  *Metrics
}

// Register - queue a transaction from the block at height if it needs relaying
//
// a source transaction must be a cross chain send, any other
// transaction must carry a received message that has not yet been
// acknowledged; errors are logged and give false
func (g *Gateway) Register(height uint64, tx *transaction.Transaction) bool {
	if nil == tx || nil == tx.RawData {
		g.log.Warnf("height: %d  missing transaction", height)
		g.metrics.Rejected.Inc()
		return false
	}

	hash, err := tx.ID()
	if nil != err {
		g.log.Errorf("height: %d  transaction id error: %s", height, err)
		g.metrics.Rejected.Inc()
		return false
	}

	purpose := pending.Inbound

	if tx.IsSource() {
		classification, err := transaction.Classify(tx)
		if nil != err {
			g.log.Errorf("height: %d  tx: %s  classify error: %s", height, hash, err)
			g.metrics.Rejected.Inc()
			return false
		}
		if !classification.CrossChain {
			g.log.Debugf("height: %d  tx: %s  ordinary: %s", height, hash, tx.ContractType())
			g.metrics.Rejected.Inc()
			return false
		}
		purpose = pending.Outbound
		g.log.Infof("height: %d  tx: %s  send to: %s", height, hash, classification.Destination)

	} else {
		msg, err := g.messages.ReceivedUnacknowledged(hash)
		if nil != err {
			g.log.Errorf("height: %d  tx: %s  message lookup error: %s", height, hash, err)
			g.metrics.Rejected.Inc()
			return false
		}
		if nil == msg {
			g.log.Debugf("height: %d  tx: %s  no received message", height, hash)
			g.metrics.Rejected.Inc()
			return false
		}
		g.log.Infof("height: %d  tx: %s  received: %s  from: %s  to: %s", height, hash, msg.Type, msg.FromChainID, msg.ToChainID)
	}

	if !g.queue.Enqueue(purpose, height, hash) {
		g.log.Debugf("height: %d  tx: %s  already %s", height, hash, purpose)
		return true
	}
	g.metrics.Registered.WithLabelValues(purpose.String()).Inc()
	return true
}
