// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txhash - fixed size transaction identifier
package txhash

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/relayd/fault"
)

// Length - number of bytes in a hash
const Length = 32

// Hash - type for a transaction hash
//
// to convert to bytes just use h[:]
type Hash [Length]byte

// New - hash a packed record
func New(record []byte) Hash {
	return sha3.Sum256(record)
}

// FromBytes - convert and validate a binary byte slice to a hash
func FromBytes(hash *Hash, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrNotTransactionHash
	}
	copy(hash[:], buffer)
	return nil
}

// FromHex - convert a hex string to a hash
func FromHex(s string) (Hash, error) {
	var hash Hash
	err := hash.UnmarshalText([]byte(s))
	return hash, err
}

// IsZero - true if no hash has been set
func (hash Hash) IsZero() bool {
	return hash == Hash{}
}

// String - hex string for use by the fmt package (for %s)
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// GoString - for the fmt package (for %#v)
func (hash Hash) GoString() string {
	return "<TxHash:" + hex.EncodeToString(hash[:]) + ">"
}

// MarshalText - convert hash to hex text
func (hash Hash) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, hash[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a hash
func (hash *Hash) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrNotTransactionHash
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return err
	}
	copy(hash[:], buffer)
	return nil
}

// Scan - hex representation for the fmt package scan routines
func (hash *Hash) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
	})
	if nil != err {
		return err
	}
	return hash.UnmarshalText(token)
}
