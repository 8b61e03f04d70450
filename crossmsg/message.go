// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crossmsg - one hop of a cross chain exchange
package crossmsg

import (
	"github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/transaction"
)

// Type - stage of a cross chain exchange
type Type int32

// the only valid message types
const (
	Data    Type = 0
	Ack     Type = 1
	Timeout Type = 2
)

// String - name for logging
func (t Type) String() string {
	switch t {
	case Data:
		return "Data"
	case Ack:
		return "Ack"
	case Timeout:
		return "Timeout"
	default:
		return "Invalid"
	}
}

// Valid - true for one of the defined types
func (t Type) Valid() bool {
	switch t {
	case Data, Ack, Timeout:
		return true
	default:
		return false
	}
}

// Message - a cross chain message
type Message struct {
	Type        Type
	FromChainID chain.ID
	ToChainID   chain.ID
	Transaction *transaction.Transaction
}

// IsTo - true if the message is addressed to the given chain
func (m *Message) IsTo(id chain.ID) bool {
	return m.ToChainID == id
}

// Acknowledge - the reply a destination chain returns for a Data message
//
// the chain ids are swapped and the transaction is stamped with the
// id of the transaction being acknowledged
func (m *Message) Acknowledge() (*Message, error) {
	if Data != m.Type {
		return nil, fault.ErrInvalidMessageType
	}
	if nil == m.Transaction {
		return nil, fault.ErrMissingTransaction
	}
	stamped, err := transaction.StampSourceTxID(m.Transaction)
	if nil != err {
		return nil, err
	}
	return &Message{
		Type:        Ack,
		FromChainID: m.ToChainID,
		ToChainID:   m.FromChainID,
		Transaction: stamped,
	}, nil
}

// Stamped - copy of the message with its transaction stamped
func (m *Message) Stamped() (*Message, error) {
	if nil == m.Transaction {
		return nil, fault.ErrMissingTransaction
	}
	stamped, err := transaction.StampSourceTxID(m.Transaction)
	if nil != err {
		return nil, err
	}
	return &Message{
		Type:        m.Type,
		FromChainID: m.FromChainID,
		ToChainID:   m.ToChainID,
		Transaction: stamped,
	}, nil
}

// wire format
type packedMessage struct {
	Type        Type                     `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	FromChainId []byte                   `protobuf:"bytes,2,opt,name=from_chain_id,json=fromChainId,proto3" json:"from_chain_id,omitempty"`
	ToChainId   []byte                   `protobuf:"bytes,3,opt,name=to_chain_id,json=toChainId,proto3" json:"to_chain_id,omitempty"`
	Transaction *transaction.Transaction `protobuf:"bytes,4,opt,name=transaction,proto3" json:"transaction,omitempty"`
}

func (m *packedMessage) Reset()         { *m = packedMessage{} }
func (m *packedMessage) String() string { return proto.CompactTextString(m) }
func (*packedMessage) ProtoMessage()    {}

// Pack - encode a message
func (m *Message) Pack() ([]byte, error) {
	if !m.Type.Valid() {
		return nil, fault.ErrInvalidMessageType
	}
	return proto.Marshal(&packedMessage{
		Type:        m.Type,
		FromChainId: m.FromChainID.Bytes(),
		ToChainId:   m.ToChainID.Bytes(),
		Transaction: m.Transaction,
	})
}

// Unpack - decode a message
func Unpack(buffer []byte) (*Message, error) {
	var packed packedMessage
	if err := proto.Unmarshal(buffer, &packed); nil != err {
		return nil, fault.ErrCannotDecodeMessage
	}
	if !packed.Type.Valid() {
		return nil, fault.ErrInvalidMessageType
	}
	if nil == packed.Transaction {
		return nil, fault.ErrMissingTransaction
	}

	from, err := chain.IDFromBytes(packed.FromChainId)
	if nil != err {
		return nil, err
	}
	to, err := chain.IDFromBytes(packed.ToChainId)
	if nil != err {
		return nil, err
	}

	return &Message{
		Type:        packed.Type,
		FromChainID: from,
		ToChainID:   to,
		Transaction: packed.Transaction,
	}, nil
}
