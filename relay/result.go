// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/relayd/pending"
	"github.com/bitmark-inc/relayd/txhash"
)

// Outcome - what happened to one drained hash
type Outcome int

// the outcomes
const (
	Sent      Outcome = iota // a message was given to the sender
	Completed                // an exchange this chain started has finished
	TimedOut                 // a timeout was recorded
	Requeued                 // moved to the next height to be tried again
	Dropped                  // abandoned, see the error
)

// String - name for logging and metrics
func (o Outcome) String() string {
	switch o {
	case Sent:
		return "sent"
	case Completed:
		return "completed"
	case TimedOut:
		return "timed-out"
	case Requeued:
		return "requeued"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Item - the outcome for one hash
type Item struct {
	Purpose pending.Purpose
	Hash    txhash.Hash
	Outcome Outcome
	Err     error // cause of Requeued or Dropped
}

// Result - all outcomes for one final height
type Result struct {
	Height uint64
	Items  []Item
}

// Count - number of items with an outcome
func (r Result) Count(outcome Outcome) int {
	n := 0
	for _, item := range r.Items {
		if outcome == item.Outcome {
			n += 1
		}
	}
	return n
}

// Find - the item for a hash, false if the hash was not drained
func (r Result) Find(purpose pending.Purpose, hash txhash.Hash) (Item, bool) {
	for _, item := range r.Items {
		if purpose == item.Purpose && hash == item.Hash {
			return item, true
		}
	}
	return Item{}, false
}
