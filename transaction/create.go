// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/fault"
)

// NewCross - create a local generic cross chain transaction
func NewCross(owner []byte, to chain.ID, data []byte, timestamp int64) (*Transaction, error) {
	if to.IsEmpty() {
		return nil, fault.ErrEmptyDestinationChainID
	}
	return newTransaction(CrossContract, &CrossContractParameter{
		OwnerAddress: owner,
		ToChainId:    to.Bytes(),
		Data:         data,
	}, timestamp, true)
}

// NewCrossToken - create a local cross chain token transfer
func NewCrossToken(owner []byte, toAddress []byte, token string, amount int64, to chain.ID, timestamp int64) (*Transaction, error) {
	if to.IsEmpty() {
		return nil, fault.ErrEmptyDestinationChainID
	}
	return newTransaction(CrossTokenContract, &CrossTokenContractParameter{
		OwnerAddress: owner,
		ToAddress:    toAddress,
		TokenName:    []byte(token),
		Amount:       amount,
		ToChainId:    to.Bytes(),
	}, timestamp, true)
}

// NewOrdinary - create a transaction of a type the relay ignores
func NewOrdinary(contractType ContractType, parameter []byte, timestamp int64, source bool) *Transaction {
	return &Transaction{
		RawData: &Raw{
			Contract: &Contract{
				Type:      contractType,
				Parameter: parameter,
			},
			Timestamp: timestamp,
		},
		Source: source,
	}
}

func newTransaction(contractType ContractType, parameter proto.Message, timestamp int64, source bool) (*Transaction, error) {
	packed, err := proto.Marshal(parameter)
	if nil != err {
		return nil, err
	}
	return NewOrdinary(contractType, packed, timestamp, source), nil
}
