// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - the subset of a chain transaction the relay needs
//
// Transactions are protobuf records.  The identifier of a transaction
// is the SHA3-256 of its packed raw data, so stamping a source
// transaction id into the raw data produces a new identifier.
//
//   Transaction
//   |___ RawData
//   |    |___ Contract (Type, Parameter)
//   |    |___ Timestamp
//   |    |___ SourceTxId   set on acknowledgements, refers to the original send
//   |___ Signature
//   |___ Source          true if the transaction originated on the local chain
//
// Only two contract types are relay candidates:
//   CrossContract       parameter: CrossContractParameter
//   CrossTokenContract  parameter: CrossTokenContractParameter
// both carry the destination chain id.
package transaction
