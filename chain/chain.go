// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - identifiers for the local and remote chains
package chain

import (
	"encoding/hex"

	"github.com/bitmark-inc/relayd/fault"
)

// MaximumIDLength - longest acceptable chain identifier in bytes
const MaximumIDLength = 64

// ID - opaque chain identifier, only ever compared for equality
//
// holds the raw bytes so that it can be used as a map key
type ID string

// IDFromBytes - copy raw bytes into an ID
func IDFromBytes(buffer []byte) (ID, error) {
	if 0 == len(buffer) || len(buffer) > MaximumIDLength {
		return "", fault.ErrWrongChainIDLength
	}
	return ID(buffer), nil
}

// IDFromHex - decode a hex string into an ID
func IDFromHex(s string) (ID, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return "", fault.ErrInvalidChainID
	}
	return IDFromBytes(buffer)
}

// Bytes - raw identifier
func (id ID) Bytes() []byte {
	return []byte(id)
}

// IsEmpty - true if no identifier was set
func (id ID) IsEmpty() bool {
	return "" == id
}

// String - hex form for logging
func (id ID) String() string {
	return hex.EncodeToString([]byte(id))
}

// Static - chain identity fixed at startup from configuration
type Static struct {
	local ID
}

// NewStatic - create an identity provider for a configured chain id
func NewStatic(local ID) (*Static, error) {
	if local.IsEmpty() {
		return nil, fault.ErrInvalidChainID
	}
	return &Static{local: local}, nil
}

// LocalChainID - identifier of the chain this relay runs beside
func (s *Static) LocalChainID() ID {
	return s.local
}
