// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import "fmt"

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	InvalidError      GenericError
	LengthError       GenericError
	NotFoundError     GenericError
	NotSupportedError GenericError
	ProcessError      GenericError
)

// NetworkError - a remote/transport failure, carries the HTTP status
// (zero for pure transport errors) and a short detail string so a
// caller can distinguish remote failures from local validation
type NetworkError struct {
	Status int
	Detail string
}

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound          = NotFoundError("account not found")
	ErrAddressMismatch          = InvalidError("address does not match protocol pattern")
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrBroadcastRejected        = ProcessError("broadcast rejected by network")
	ErrBufferTooShort           = LengthError("buffer too short")
	ErrCannotDecodeAddress      = InvalidError("cannot decode address")
	ErrCannotDecodeTransaction  = InvalidError("cannot decode transaction")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrCountMismatch            = InvalidError("recipients and amounts count mismatch")
	ErrFieldTooLong             = LengthError("field too long")
	ErrHardenedOnly             = InvalidError("curve only supports hardened derivation")
	ErrInsufficientBalance      = InvalidError("insufficient balance")
	ErrInvalidAmount            = InvalidError("amount is invalid")
	ErrInvalidDerivationPath    = InvalidError("derivation path is invalid")
	ErrInvalidKeyLength         = LengthError("key length is invalid")
	ErrInvalidLoggerChannel     = ProcessError("invalid logger channel")
	ErrInvalidMnemonic          = InvalidError("mnemonic phrase is invalid")
	ErrInvalidSeedLength        = LengthError("seed length is invalid")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrNotSupported             = NotSupportedError("not supported by this protocol")
	ErrPrefixMismatch           = InvalidError("prefix mismatch")
	ErrProtocolNotFound         = NotFoundError("protocol identifier not found")
	ErrUnsupportedOperationKind = NotSupportedError("unsupported operation kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e NotSupportedError) Error() string { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

func (e NetworkError) Error() string {
	if 0 == e.Status {
		return fmt.Sprintf("network: %s", e.Detail)
	}
	return fmt.Sprintf("network: status %d: %s", e.Status, e.Detail)
}

// determine the class of an error
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool       { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrNotSupported(e error) bool { _, ok := e.(NotSupportedError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrNetwork(e error) bool      { _, ok := e.(NetworkError); return ok }
