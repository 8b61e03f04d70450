// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/storage"
	"github.com/bitmark-inc/relayd/transaction"
	"github.com/bitmark-inc/relayd/txhash"
)

// Transactions - local chain transactions seen in blocks
type Transactions struct {
	log      *logger.L
	database *storage.Database
}

// NewTransactions - transaction records on an open database
func NewTransactions(database *storage.Database) *Transactions {
	return &Transactions{
		log:      logger.New("store"),
		database: database,
	}
}

// Put - store a transaction with the height of its block
func (t *Transactions) Put(height uint64, tx *transaction.Transaction) (txhash.Hash, error) {
	id, err := tx.ID()
	if nil != err {
		return txhash.Hash{}, err
	}
	packed, err := tx.Pack()
	if nil != err {
		return txhash.Hash{}, err
	}

	heightBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBytes, height)

	pool := t.database.Pool
	batch := t.database.NewBatch()
	batch.Put(pool.Transactions, id[:], packed)
	batch.Put(pool.TransactionHeight, id[:], heightBytes)
	if err := batch.Commit(); nil != err {
		return txhash.Hash{}, err
	}

	t.log.Debugf("tx: %s  height: %d", id, height)
	return id, nil
}

// Get - a stored transaction
//
// returns nil, nil if there is no such transaction
func (t *Transactions) Get(hash txhash.Hash) (*transaction.Transaction, error) {
	packed, err := t.database.Pool.Transactions.Get(hash[:])
	if nil != err || nil == packed {
		return nil, err
	}
	return transaction.Unpack(packed)
}

// Height - block height of a stored transaction, false if unknown
func (t *Transactions) Height(hash txhash.Hash) (uint64, bool, error) {
	heightBytes, err := t.database.Pool.TransactionHeight.Get(hash[:])
	if nil != err || nil == heightBytes {
		return 0, false, err
	}
	if 8 != len(heightBytes) {
		return 0, false, fault.ErrWrongHeightLength
	}
	return binary.BigEndian.Uint64(heightBytes), true, nil
}
