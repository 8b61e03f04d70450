// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - leveldb pools for the relay
//
// All pools share one database and are separated by a single byte
// key prefix:
//
//   Pool               Prefix  Key                Value
//   |___ Transactions      T   tx hash            packed transaction
//   |___ TransactionHeight H   tx hash            8 byte big endian height
//   |___ ReceivedMessages  R   tx hash            packed cross message
//   |___ ExecutedMessages  E   tx hash            packed cross message
//   |___ SentMessages      S   source tx id       packed cross message
//   |___ FailedMessages    F   source tx id       packed cross message
package storage
