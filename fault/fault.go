// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAuthenticationNotStarted = ProcessError("authentication not started")
	ErrCannotDecodeContract     = InvalidError("cannot decode contract")
	ErrCannotDecodeMessage      = InvalidError("cannot decode cross message")
	ErrCannotDecodeTransaction  = InvalidError("cannot decode transaction")
	ErrDatabaseIsNotOpen        = ProcessError("database is not open")
	ErrDatabaseVersion          = RecordError("database version is newer than supported")
	ErrEmptyDestinationChainID  = InvalidError("empty destination chain id")
	ErrInvalidChainID           = InvalidError("invalid chain id")
	ErrInvalidConfiguration     = InvalidError("invalid configuration")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidMessageType       = InvalidError("invalid cross message type")
	ErrInvalidPortNumber        = InvalidError("invalid port number")
	ErrInvalidPrivateKey        = InvalidError("invalid private key")
	ErrInvalidPrivateKeyFile    = InvalidError("invalid private key file")
	ErrInvalidPublicKey         = InvalidError("invalid public key")
	ErrInvalidPublicKeyFile     = InvalidError("invalid public key file")
	ErrKeyFileAlreadyExists     = ExistsError("key file already exists")
	ErrMessageAlreadyExecuted   = ExistsError("cross message already executed")
	ErrMessageNotFound          = NotFoundError("cross message not found")
	ErrMissingContract          = InvalidError("transaction has no contract")
	ErrMissingSourceTxID        = NotFoundError("missing source transaction id")
	ErrMissingTransaction       = InvalidError("cross message has no transaction")
	ErrNotACrossChainSend       = InvalidError("not a cross chain send")
	ErrNotConnected             = ProcessError("not connected")
	ErrNotFinal                 = ProcessError("block is not final")
	ErrNotTransactionHash       = LengthError("not a transaction hash")
	ErrRetriesExhausted         = ProcessError("retries exhausted")
	ErrSendRateExceeded         = ProcessError("send rate exceeded")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
	ErrUnexpectedFrameCount     = LengthError("unexpected frame count")
	ErrWrongChainIDLength       = LengthError("wrong chain id length")
	ErrWrongHeightLength        = LengthError("wrong height length")
	ErrZeroCapacity             = InvalidError("capacity must be greater than zero")
	ErrZeroSweepInterval        = InvalidError("sweep interval must be greater than zero")
	ErrZeroTimeToLive           = InvalidError("time to live must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsPermanent - true if retrying the same operation cannot succeed
func IsPermanent(e error) bool {
	return IsErrInvalid(e) || IsErrLength(e) || IsErrNotFound(e)
}
