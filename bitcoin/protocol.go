// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitcoin - the BTC protocol variant
//
// key derivation and the address codec only.  The account-state
// preparation contract the other variants share does not map onto
// UTXO selection, so every transaction operation reports not
// supported; the variant exists for watch-only derivation and
// registry completeness.
package bitcoin

import (
	"context"
	"fmt"
	"regexp"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/keypair"
	"github.com/airgap-inc/coinkit/protocol"
)

// Identifier - registry token for this variant
const Identifier = "btc"

const (
	standardPath  = "m/44h/0h/0h/0/0"
	accountPrefix = "m/44h/0h/0h"

	compressedKeyLength = 33
)

var addressPattern = regexp.MustCompile(`^[13][1-9A-HJ-NP-Za-km-z]{25,34}$`)

// Protocol - CoinProtocol implementation for Bitcoin
type Protocol struct{}

func New() *Protocol {
	return &Protocol{}
}

func (*Protocol) Identifier() string { return Identifier }
func (*Protocol) Symbol() string     { return "BTC" }
func (*Protocol) Name() string       { return "Bitcoin" }
func (*Protocol) Decimals() int32    { return 8 }
func (*Protocol) FeeDecimals() int32 { return 8 }
func (*Protocol) SupportsHD() bool   { return true }

func (*Protocol) FeeDefaults() protocol.FeeDefaults {
	// satoshis for a typical one-input two-output transaction
	return protocol.FeeDefaults{Low: 2000, Medium: 5000, High: 10000}
}

func (*Protocol) StandardDerivationPath() string { return standardPath }

func (*Protocol) AddressPattern() *regexp.Regexp { return addressPattern }

func (*Protocol) DeriveKeyPair(seed []byte, path string) (*keypair.KeyPair, error) {
	return keypair.DeriveSecp256k1(seed, path)
}

// DeriveKeyPairAtIndex - key pair under the standard account
func (*Protocol) DeriveKeyPairAtIndex(seed []byte, change uint32, index uint32) (*keypair.KeyPair, error) {
	return keypair.DeriveSecp256k1(seed,
		fmt.Sprintf("%s/%d/%d", accountPrefix, change, index))
}

// AddressFromExtendedPublicKey - watch-only address derivation, no
// private material involved
func (*Protocol) AddressFromExtendedPublicKey(xpub string, index uint32) (string, error) {
	publicKey, err := keypair.DeriveExtendedPublic(xpub, index)
	if nil != err {
		return "", err
	}
	return AddressFromPublicKey(publicKey)
}

func (*Protocol) AddressFromPublicKey(publicKey []byte) (string, error) {
	return AddressFromPublicKey(publicKey)
}

func (*Protocol) ValidateAddress(address string) error {
	if !addressPattern.MatchString(address) {
		return fault.ErrAddressMismatch
	}
	return ValidateAddress(address)
}

// transaction construction needs UTXO selection, which this layer
// does not model

func (*Protocol) Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
	recipients []string, amounts []uint64, fee uint64) (protocol.UnsignedTransaction, error) {
	return nil, fault.ErrNotSupported
}

func (*Protocol) Forge(tx protocol.UnsignedTransaction) ([]byte, error) {
	return nil, fault.ErrNotSupported
}

func (*Protocol) Parse(forged []byte) (protocol.UnsignedTransaction, error) {
	return nil, fault.ErrNotSupported
}

func (*Protocol) Sign(forged []byte, privateKey []byte) ([]byte, error) {
	return nil, fault.ErrNotSupported
}

func (*Protocol) Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {
	return "", fault.ErrNotSupported
}

func (*Protocol) Summarize(tx protocol.UnsignedTransaction, watched []string) (*protocol.AirGapTransaction, error) {
	return nil, fault.ErrNotSupported
}

func (*Protocol) SummarizeSigned(signed []byte, watched []string) (*protocol.AirGapTransaction, error) {
	return nil, fault.ErrNotSupported
}
