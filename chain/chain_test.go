// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relayd/chain"
	"github.com/bitmark-inc/relayd/fault"
)

func TestIDFromHex(t *testing.T) {
	id, err := chain.IDFromHex("0007")
	assert.Nil(t, err, "decode error")
	assert.Equal(t, []byte{0x00, 0x07}, id.Bytes(), "wrong bytes")
	assert.Equal(t, "0007", id.String(), "wrong string")

	other, _ := chain.IDFromBytes([]byte{0x00, 0x07})
	assert.Equal(t, id, other, "equal ids differ")

	_, err = chain.IDFromHex("zz")
	assert.Equal(t, fault.ErrInvalidChainID, err, "bad hex accepted")

	_, err = chain.IDFromHex("")
	assert.Equal(t, fault.ErrWrongChainIDLength, err, "empty id accepted")
}

func TestStatic(t *testing.T) {
	_, err := chain.NewStatic("")
	assert.Equal(t, fault.ErrInvalidChainID, err, "empty local id accepted")

	s, err := chain.NewStatic(chain.ID("local"))
	assert.Nil(t, err, "static error")
	assert.Equal(t, chain.ID("local"), s.LocalChainID(), "wrong local id")
}
