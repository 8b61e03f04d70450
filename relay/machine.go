// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/transaction"
	"github.com/bitmark-inc/relayd/txhash"
)

// Machine - moves drained hashes through the exchange
type Machine struct {
	log            *logger.L
	queue          Queue
	committer      Committer
	identity       ChainIdentity
	sender         Sender
	messages       MessageStore
	transactions   TransactionStore
	maximumRetries int
	metrics        *Metrics

	sync.Mutex
	attempts map[attempt]int
}

type attempt struct {
	purpose pending.Purpose
	hash    txhash.Hash
}

// BlockCommitted - finality listener
func (m *Machine) BlockCommitted(height uint64) {
	result := m.Commit(height)
	if 0 != len(result.Items) {
		m.log.Infof("height: %d  sent: %d  completed: %d  timed out: %d  requeued: %d  dropped: %d",
			height,
			result.Count(Sent),
			result.Count(Completed),
			result.Count(TimedOut),
			result.Count(Requeued),
			result.Count(Dropped),
		)
	}
}

// Commit - process everything waiting for a height that is now final
//
// inbound hashes are processed before outbound ones; a failure only
// affects its own hash
func (m *Machine) Commit(height uint64) Result {
	result := Result{
		Height: height,
	}

	for _, hash := range m.queue.Drain(pending.Inbound, height) {
		outcome, err := m.inbound(height, hash)
		result.Items = append(result.Items, m.finish(pending.Inbound, height, hash, outcome, err))
	}

	for _, hash := range m.queue.Drain(pending.Outbound, height) {
		outcome, err := m.outbound(height, hash)
		result.Items = append(result.Items, m.finish(pending.Outbound, height, hash, outcome, err))
	}

	return result
}

// a message received from another relay is now in a final local block
func (m *Machine) inbound(height uint64, hash txhash.Hash) (Outcome, error) {
	if !m.committer.IsFinal(hash) {
		return Requeued, fault.ErrNotFinal
	}

	msg, err := m.messages.ReceivedUnacknowledged(hash)
	if nil != err {
		return Dropped, err
	}
	if nil == msg {
		return Dropped, fault.ErrMessageNotFound
	}

	local := m.identity.LocalChainID()
	toLocal := msg.IsTo(local)

	outcome := Dropped
	switch msg.Type {

	case crossmsg.Data:
		if toLocal {
			ack, err := msg.Acknowledge()
			if nil != err {
				return Dropped, err
			}
			m.send(ack, Forward)
		} else {
			m.send(msg, Forward)
		}
		outcome = Sent

	case crossmsg.Ack:
		if toLocal {
			if err := m.complete(height, hash); nil != err {
				return Dropped, err
			}
			outcome = Completed
		} else {
			stamped, err := msg.Stamped()
			if nil != err {
				return Dropped, err
			}
			m.send(stamped, Forward)
			outcome = Sent
		}

	case crossmsg.Timeout:
		if toLocal {
			sourceTxID, err := transaction.SourceTxID(msg.Transaction)
			if nil != err {
				return Dropped, err
			}
			if err := m.messages.FailSent(sourceTxID); nil != err {
				return Dropped, err
			}
			m.log.Warnf("height: %d  tx: %s  source: %s  timed out on: %s", height, hash, sourceTxID, msg.FromChainID)
		} else {
			m.log.Infof("height: %d  tx: %s  timeout from: %s  to: %s", height, hash, msg.FromChainID, msg.ToChainID)
		}
		outcome = TimedOut

	default:
		return Dropped, fault.ErrInvalidMessageType
	}

	if err := m.messages.MarkExecuted(hash); nil != err {
		m.log.Errorf("height: %d  tx: %s  mark executed error: %s", height, hash, err)
	}
	return outcome, nil
}

// an Ack for an exchange this chain started
func (m *Machine) complete(height uint64, hash txhash.Hash) error {
	tx, err := m.transactions.Get(hash)
	if nil != err {
		return err
	}
	if nil == tx {
		m.log.Warnf("height: %d  tx: %s  finished without local transaction", height, hash)
		return nil
	}

	sourceTxID, err := transaction.SourceTxID(tx)
	if nil != err {
		return err
	}
	if err := m.messages.RemoveSent(sourceTxID); nil != err {
		return err
	}

	m.log.Infof("height: %d  tx: %s  source: %s  finished", height, hash, sourceTxID)
	return nil
}

// a local cross chain send is now in a final block
func (m *Machine) outbound(height uint64, hash txhash.Hash) (Outcome, error) {
	if !m.committer.IsFinal(hash) {
		return Requeued, fault.ErrNotFinal
	}

	tx, err := m.transactions.Get(hash)
	if nil != err {
		return Dropped, err
	}
	if nil == tx {
		return Dropped, fault.ErrTransactionNotFound
	}

	destination, err := transaction.DestinationChainID(tx)
	if nil != err {
		return Dropped, err
	}

	msg := &crossmsg.Message{
		Type:        crossmsg.Data,
		FromChainID: m.identity.LocalChainID(),
		ToChainID:   destination,
		Transaction: tx,
	}
	m.send(msg, Initial)
	return Sent, nil
}

func (m *Machine) send(msg *crossmsg.Message, mode SendMode) {
	m.log.Debugf("send: %s  mode: %s  from: %s  to: %s", msg.Type, mode, msg.FromChainID, msg.ToChainID)
	m.sender.Send(msg, mode)
	m.metrics.Sent.WithLabelValues(mode.String()).Inc()
}

// apply the retry policy and record the outcome
//
// an error that is not permanent moves the hash to the next height
// until the retry limit is reached
func (m *Machine) finish(purpose pending.Purpose, height uint64, hash txhash.Hash, outcome Outcome, err error) Item {
	key := attempt{
		purpose: purpose,
		hash:    hash,
	}

	if nil != err && !fault.IsPermanent(err) {
		m.Lock()
		n := m.attempts[key] + 1
		if n > m.maximumRetries {
			delete(m.attempts, key)
			m.Unlock()
			m.log.Warnf("%s height: %d  tx: %s  dropped after: %d retries  last error: %s", purpose, height, hash, n-1, err)
			err = fault.ErrRetriesExhausted
			outcome = Dropped
		} else {
			m.attempts[key] = n
			m.Unlock()
			m.queue.Enqueue(purpose, height+1, hash)
			m.log.Infof("%s height: %d  tx: %s  retry: %d  error: %s", purpose, height, hash, n, err)
			outcome = Requeued
		}
	} else {
		m.Lock()
		delete(m.attempts, key)
		m.Unlock()
		if nil != err {
			m.log.Errorf("%s height: %d  tx: %s  dropped: %s", purpose, height, hash, err)
			outcome = Dropped
		}
	}

	m.metrics.Outcomes.WithLabelValues(purpose.String(), outcome.String()).Inc()

	return Item{
		Purpose: purpose,
		Hash:    hash,
		Outcome: outcome,
		Err:     err,
	}
}

// hashes that expired in the queue are forgotten
func (m *Machine) evicted(purpose pending.Purpose, height uint64, hashes []txhash.Hash) {
	m.Lock()
	for _, hash := range hashes {
		delete(m.attempts, attempt{purpose: purpose, hash: hash})
	}
	m.Unlock()
	m.metrics.Evicted.WithLabelValues(purpose.String()).Add(float64(len(hashes)))
}
