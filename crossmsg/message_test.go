// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crossmsg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/crossmsg"
	"github.com/bitmark-inc/relayd/fault"
	"github.com/bitmark-inc/relayd/transaction"
)

const (
	localChain  = chain.ID("local")
	remoteChain = chain.ID("remote")
)

func dataMessage(t *testing.T) *crossmsg.Message {
	tx, err := transaction.NewCross([]byte("owner"), localChain, []byte("call"), 1600000000)
	if nil != err {
		t.Fatalf("create transaction error: %s", err)
	}
	return &crossmsg.Message{
		Type:        crossmsg.Data,
		FromChainID: remoteChain,
		ToChainID:   localChain,
		Transaction: tx,
	}
}

func TestAcknowledge(t *testing.T) {
	msg := dataMessage(t)
	originalID, _ := msg.Transaction.ID()

	ack, err := msg.Acknowledge()
	assert.Nil(t, err, "acknowledge error")
	assert.Equal(t, crossmsg.Ack, ack.Type, "wrong type")
	assert.Equal(t, localChain, ack.FromChainID, "from not swapped")
	assert.Equal(t, remoteChain, ack.ToChainID, "to not swapped")
	assert.True(t, ack.IsTo(remoteChain), "ack not to remote")

	marker, err := transaction.SourceTxID(ack.Transaction)
	assert.Nil(t, err, "missing marker")
	assert.Equal(t, originalID, marker, "wrong marker")

	// original message is unchanged
	assert.Equal(t, crossmsg.Data, msg.Type, "original type changed")
	_, err = transaction.SourceTxID(msg.Transaction)
	assert.Equal(t, fault.ErrMissingSourceTxID, err, "original stamped")

	_, err = ack.Acknowledge()
	assert.Equal(t, fault.ErrInvalidMessageType, err, "acknowledged an ack")
}

func TestStamped(t *testing.T) {
	msg := dataMessage(t)
	msg.Type = crossmsg.Ack

	stamped, err := msg.Stamped()
	assert.Nil(t, err, "stamp error")
	assert.Equal(t, msg.Type, stamped.Type, "type changed")
	assert.Equal(t, msg.FromChainID, stamped.FromChainID, "from changed")
	assert.Equal(t, msg.ToChainID, stamped.ToChainID, "to changed")

	_, err = (&crossmsg.Message{Type: crossmsg.Ack}).Stamped()
	assert.Equal(t, fault.ErrMissingTransaction, err, "stamped without transaction")
}

func TestPackUnpack(t *testing.T) {
	msg := dataMessage(t)

	packed, err := msg.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, err := crossmsg.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, msg.Type, unpacked.Type, "wrong type")
	assert.Equal(t, msg.FromChainID, unpacked.FromChainID, "wrong from")
	assert.Equal(t, msg.ToChainID, unpacked.ToChainID, "wrong to")

	expectedID, _ := msg.Transaction.ID()
	actualID, _ := unpacked.Transaction.ID()
	assert.Equal(t, expectedID, actualID, "wrong transaction")
}

func TestPackInvalid(t *testing.T) {
	msg := dataMessage(t)
	msg.Type = crossmsg.Type(9)
	_, err := msg.Pack()
	assert.Equal(t, fault.ErrInvalidMessageType, err, "packed invalid type")

	_, err = crossmsg.Unpack([]byte{0xff})
	assert.Equal(t, fault.ErrCannotDecodeMessage, err, "garbage accepted")

	noTx := &crossmsg.Message{Type: crossmsg.Timeout, FromChainID: remoteChain, ToChainID: localChain}
	packed, _ := noTx.Pack()
	_, err = crossmsg.Unpack(packed)
	assert.Equal(t, fault.ErrMissingTransaction, err, "message without transaction accepted")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "Data", crossmsg.Data.String())
	assert.Equal(t, "Ack", crossmsg.Ack.String())
	assert.Equal(t, "Timeout", crossmsg.Timeout.String())
	assert.Equal(t, "Invalid", crossmsg.Type(3).String())
	assert.False(t, crossmsg.Type(3).Valid())
}
