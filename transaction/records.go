// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/gogo/protobuf/proto"
)

// ContractType - kind of contract carried by a transaction
type ContractType int32

// contract types known to the relay
const (
	UnknownContract    ContractType = 0
	TransferContract   ContractType = 1
	CrossContract      ContractType = 40
	CrossTokenContract ContractType = 41
)

var contractNames = map[ContractType]string{
	UnknownContract:    "Unknown",
	TransferContract:   "Transfer",
	CrossContract:      "Cross",
	CrossTokenContract: "CrossToken",
}

// String - name for logging
func (t ContractType) String() string {
	if s, ok := contractNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Transaction - a transaction as accepted by the local chain
type Transaction struct {
	RawData   *Raw     `protobuf:"bytes,1,opt,name=raw_data,json=rawData,proto3" json:"raw_data,omitempty"`
	Signature [][]byte `protobuf:"bytes,2,rep,name=signature,proto3" json:"signature,omitempty"`
	Source    bool     `protobuf:"varint,3,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

// Raw - the hashed part of a transaction
type Raw struct {
	Contract   *Contract `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Timestamp  int64     `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	SourceTxId []byte    `protobuf:"bytes,3,opt,name=source_tx_id,json=sourceTxId,proto3" json:"source_tx_id,omitempty"`
}

func (m *Raw) Reset()         { *m = Raw{} }
func (m *Raw) String() string { return proto.CompactTextString(m) }
func (*Raw) ProtoMessage()    {}

// Contract - type tag plus packed parameter record
type Contract struct {
	Type      ContractType `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	Parameter []byte       `protobuf:"bytes,2,opt,name=parameter,proto3" json:"parameter,omitempty"`
}

func (m *Contract) Reset()         { *m = Contract{} }
func (m *Contract) String() string { return proto.CompactTextString(m) }
func (*Contract) ProtoMessage()    {}

// CrossContractParameter - generic cross chain call
type CrossContractParameter struct {
	OwnerAddress []byte `protobuf:"bytes,1,opt,name=owner_address,json=ownerAddress,proto3" json:"owner_address,omitempty"`
	ToChainId    []byte `protobuf:"bytes,2,opt,name=to_chain_id,json=toChainId,proto3" json:"to_chain_id,omitempty"`
	Data         []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *CrossContractParameter) Reset()         { *m = CrossContractParameter{} }
func (m *CrossContractParameter) String() string { return proto.CompactTextString(m) }
func (*CrossContractParameter) ProtoMessage()    {}

// CrossTokenContractParameter - cross chain token transfer
type CrossTokenContractParameter struct {
	OwnerAddress []byte `protobuf:"bytes,1,opt,name=owner_address,json=ownerAddress,proto3" json:"owner_address,omitempty"`
	ToAddress    []byte `protobuf:"bytes,2,opt,name=to_address,json=toAddress,proto3" json:"to_address,omitempty"`
	TokenName    []byte `protobuf:"bytes,3,opt,name=token_name,json=tokenName,proto3" json:"token_name,omitempty"`
	Amount       int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	ToChainId    []byte `protobuf:"bytes,5,opt,name=to_chain_id,json=toChainId,proto3" json:"to_chain_id,omitempty"`
}

func (m *CrossTokenContractParameter) Reset()         { *m = CrossTokenContractParameter{} }
func (m *CrossTokenContractParameter) String() string { return proto.CompactTextString(m) }
func (*CrossTokenContractParameter) ProtoMessage()    {}
