// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/transaction"
	"github.com/bitmark-inc/relayd/txhash"
)

// SendMode - how a message leaves this relay
type SendMode int

// the send modes
const (
	Initial SendMode = iota // first hop of a local send
	Forward                 // any later hop
)

// String - name for logging
func (m SendMode) String() string {
	switch m {
	case Initial:
		return "initial"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// Committer - finality of a single transaction
type Committer interface {
	IsFinal(hash txhash.Hash) bool
}

// ChainIdentity - the chain this relay runs beside
type ChainIdentity interface {
	LocalChainID() chain.ID
}

// Sender - transmit a message, failures are the sender's to report
type Sender interface {
	Send(msg *crossmsg.Message, mode SendMode)
}

// MessageStore - cross chain message records
//
// lookups return nil, nil when no record exists
type MessageStore interface {
	ReceivedUnacknowledged(hash txhash.Hash) (*crossmsg.Message, error)
	MarkExecuted(hash txhash.Hash) error
	RemoveSent(sourceTxID txhash.Hash) error
	FailSent(sourceTxID txhash.Hash) error
}

// TransactionStore - local chain transactions
//
// lookups return nil, nil when no record exists
type TransactionStore interface {
	Get(hash txhash.Hash) (*transaction.Transaction, error)
}

// Queue - hashes waiting for a final height
type Queue interface {
	Enqueue(purpose pending.Purpose, height uint64, hash txhash.Hash) bool
	Drain(purpose pending.Purpose, height uint64) []txhash.Hash
	OnEvict(f pending.EvictFunc)
}
