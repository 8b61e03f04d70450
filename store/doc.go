// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - message and transaction records kept in the storage pools
//
// received cross messages are keyed by the hash of the transaction
// that will be included on the local chain, sent messages are keyed
// by the hash of the original source transaction
//
//   R: received hash   ⇒ packed message (waiting for local inclusion)
//   E: received hash   ⇒ packed message (executed on the local chain)
//   S: source tx id    ⇒ packed message (sent, waiting for its Ack)
//   F: source tx id    ⇒ packed message (sent, timed out on the remote)
//   T: tx hash         ⇒ packed transaction
//   H: tx hash         ⇒ 8 byte big endian block height
package store
