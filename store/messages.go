// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/storage"
	"github.com/bitmark-inc/relayd/txhash"
)

// Messages - cross chain message records
type Messages struct {
	log      *logger.L
	database *storage.Database
}

// NewMessages - message records on an open database
func NewMessages(database *storage.Database) *Messages {
	return &Messages{
		log:      logger.New("store"),
		database: database,
	}
}

// PutReceived - record a message from a remote relay
func (m *Messages) PutReceived(hash txhash.Hash, msg *crossmsg.Message) error {
	pool := m.database.Pool

	executed, err := pool.ExecutedMessages.Has(hash[:])
	if nil != err {
		return err
	}
	if executed {
		return fault.ErrMessageAlreadyExecuted
	}

	packed, err := msg.Pack()
	if nil != err {
		return err
	}

	m.log.Debugf("received: %s  type: %s  from: %s  to: %s", hash, msg.Type, msg.FromChainID, msg.ToChainID)
	return pool.ReceivedMessages.Put(hash[:], packed)
}

// ReceivedUnacknowledged - a received message not yet executed
//
// returns nil, nil if there is no such message
func (m *Messages) ReceivedUnacknowledged(hash txhash.Hash) (*crossmsg.Message, error) {
	pool := m.database.Pool

	executed, err := pool.ExecutedMessages.Has(hash[:])
	if nil != err {
		return nil, err
	}
	if executed {
		return nil, nil
	}

	return m.get(pool.ReceivedMessages, hash)
}

// MarkExecuted - move a received message to the executed pool
func (m *Messages) MarkExecuted(hash txhash.Hash) error {
	pool := m.database.Pool

	packed, err := pool.ReceivedMessages.Get(hash[:])
	if nil != err {
		return err
	}
	if nil == packed {
		return fault.ErrMessageNotFound
	}

	batch := m.database.NewBatch()
	batch.Delete(pool.ReceivedMessages, hash[:])
	batch.Put(pool.ExecutedMessages, hash[:], packed)
	return batch.Commit()
}

// PutSent - record an initial send keyed by its source transaction id
func (m *Messages) PutSent(sourceTxID txhash.Hash, msg *crossmsg.Message) error {
	packed, err := msg.Pack()
	if nil != err {
		return err
	}
	return m.database.Pool.SentMessages.Put(sourceTxID[:], packed)
}

// Sent - the message sent for a source transaction id
//
// returns nil, nil if there is no such message
func (m *Messages) Sent(sourceTxID txhash.Hash) (*crossmsg.Message, error) {
	return m.get(m.database.Pool.SentMessages, sourceTxID)
}

// Failed - the timed out message for a source transaction id
//
// returns nil, nil if there is no such message
func (m *Messages) Failed(sourceTxID txhash.Hash) (*crossmsg.Message, error) {
	return m.get(m.database.Pool.FailedMessages, sourceTxID)
}

// RemoveSent - the exchange completed; removing an absent record is not an error
func (m *Messages) RemoveSent(sourceTxID txhash.Hash) error {
	return m.database.Pool.SentMessages.Delete(sourceTxID[:])
}

// FailSent - move a sent record to the failed pool
//
// repeating the move is not an error; a source id that was never
// sent gives fault.ErrMessageNotFound
func (m *Messages) FailSent(sourceTxID txhash.Hash) error {
	pool := m.database.Pool

	packed, err := pool.SentMessages.Get(sourceTxID[:])
	if nil != err {
		return err
	}
	if nil == packed {
		failed, err := pool.FailedMessages.Has(sourceTxID[:])
		if nil != err {
			return err
		}
		if failed {
			return nil
		}
		return fault.ErrMessageNotFound
	}

	batch := m.database.NewBatch()
	batch.Delete(pool.SentMessages, sourceTxID[:])
	batch.Put(pool.FailedMessages, sourceTxID[:], packed)
	return batch.Commit()
}

func (m *Messages) get(pool *storage.PoolHandle, hash txhash.Hash) (*crossmsg.Message, error) {
	packed, err := pool.Get(hash[:])
	if nil != err || nil == packed {
		return nil, err
	}
	return crossmsg.Unpack(packed)
}
