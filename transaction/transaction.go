// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/txhash"
)

// Classification - relay relevant view of a transaction
type Classification struct {
	CrossChain  bool     // true for a cross chain send
	Destination chain.ID // only set for a cross chain send
}

// Pack - encode a transaction
func (tx *Transaction) Pack() ([]byte, error) {
	return proto.Marshal(tx)
}

// Unpack - decode a packed transaction
func Unpack(buffer []byte) (*Transaction, error) {
	tx := &Transaction{}
	if err := proto.Unmarshal(buffer, tx); nil != err {
		return nil, fault.ErrCannotDecodeTransaction
	}
	if nil == tx.RawData {
		return nil, fault.ErrCannotDecodeTransaction
	}
	return tx, nil
}

// ID - hash of the packed raw data
func (tx *Transaction) ID() (txhash.Hash, error) {
	if nil == tx.RawData {
		return txhash.Hash{}, fault.ErrMissingContract
	}
	packed, err := proto.Marshal(tx.RawData)
	if nil != err {
		return txhash.Hash{}, err
	}
	return txhash.New(packed), nil
}

// IsSource - true if the transaction was created on the local chain
func (tx *Transaction) IsSource() bool {
	return tx.Source
}

// ContractType - type of the first contract, UnknownContract if none
func (tx *Transaction) ContractType() ContractType {
	if nil == tx.RawData || nil == tx.RawData.Contract {
		return UnknownContract
	}
	return tx.RawData.Contract.Type
}

// Classify - decide whether a transaction is a cross chain send
//
// only the two cross chain contract types are decoded, anything else
// is ordinary
func Classify(tx *Transaction) (Classification, error) {
	if nil == tx.RawData || nil == tx.RawData.Contract {
		return Classification{}, fault.ErrMissingContract
	}

	switch tx.RawData.Contract.Type {
	case CrossContract, CrossTokenContract:
		destination, err := DestinationChainID(tx)
		if nil != err {
			return Classification{}, err
		}
		return Classification{
			CrossChain:  true,
			Destination: destination,
		}, nil
	default:
		return Classification{}, nil
	}
}

// DestinationChainID - extract the destination from a cross chain contract
func DestinationChainID(tx *Transaction) (chain.ID, error) {
	if nil == tx.RawData || nil == tx.RawData.Contract {
		return "", fault.ErrMissingContract
	}
	contract := tx.RawData.Contract

	var to []byte
	switch contract.Type {
	case CrossContract:
		var parameter CrossContractParameter
		if err := proto.Unmarshal(contract.Parameter, &parameter); nil != err {
			return "", fault.ErrCannotDecodeContract
		}
		to = parameter.ToChainId
	case CrossTokenContract:
		var parameter CrossTokenContractParameter
		if err := proto.Unmarshal(contract.Parameter, &parameter); nil != err {
			return "", fault.ErrCannotDecodeContract
		}
		to = parameter.ToChainId
	default:
		return "", fault.ErrNotACrossChainSend
	}

	if 0 == len(to) {
		return "", fault.ErrEmptyDestinationChainID
	}
	return chain.IDFromBytes(to)
}

// StampSourceTxID - copy of the transaction marked with the id of the
// transaction it acknowledges
//
// an already stamped transaction keeps its original marker so relaying
// an acknowledgement through several hops does not change it
func StampSourceTxID(tx *Transaction) (*Transaction, error) {
	if nil == tx || nil == tx.RawData {
		return nil, fault.ErrMissingContract
	}

	stamped := proto.Clone(tx).(*Transaction)
	if 0 != len(stamped.RawData.SourceTxId) {
		return stamped, nil
	}

	id, err := tx.ID()
	if nil != err {
		return nil, err
	}
	stamped.RawData.SourceTxId = id[:]
	return stamped, nil
}

// SourceTxID - the marker set by StampSourceTxID
func SourceTxID(tx *Transaction) (txhash.Hash, error) {
	var id txhash.Hash
	if nil == tx || nil == tx.RawData || 0 == len(tx.RawData.SourceTxId) {
		return id, fault.ErrMissingSourceTxID
	}
	err := txhash.FromBytes(&id, tx.RawData.SourceTxId)
	return id, err
}
