// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/relayd/fault"
)

// Batch - a set of updates across pools applied atomically
type Batch struct {
	database *Database
	batch    *leveldb.Batch
}

// NewBatch - start an empty batch
func (d *Database) NewBatch() *Batch {
	return &Batch{
		database: d,
		batch:    new(leveldb.Batch),
	}
}

// Put - queue a store into a pool
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	b.batch.Put(p.prefixKey(key), value)
}

// Delete - queue a removal from a pool
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	b.batch.Delete(p.prefixKey(key))
}

// Commit - write all queued updates
func (b *Batch) Commit() error {
	b.database.RLock()
	defer b.database.RUnlock()
	if nil == b.database.db {
		return fault.ErrDatabaseIsNotOpen
	}
	return b.database.db.Write(b.batch, nil)
}
