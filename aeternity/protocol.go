// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aeternity - the AE protocol variant
//
// ak_ addresses carry the raw ed25519 public key under a textual role
// tag, spends are single RLP tuples and signatures are domain
// separated by the network id string.  Hardened-only curve, so the
// variant is not HD-capable.
package aeternity

import (
	"context"
	"regexp"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/keypair"
	"github.com/airgap-inc/coinkit/protocol"
)

// Identifier - registry token for this variant
const Identifier = "ae"

const standardPath = "m/44h/457h/0h/0h/0h"

var addressPattern = regexp.MustCompile(`^ak_[1-9A-HJ-NP-Za-km-z]{48,52}$`)

// Protocol - CoinProtocol implementation for Aeternity
type Protocol struct{}

func New() *Protocol {
	return &Protocol{}
}

func (*Protocol) Identifier() string { return Identifier }
func (*Protocol) Symbol() string     { return "AE" }
func (*Protocol) Name() string       { return "Aeternity" }
func (*Protocol) Decimals() int32    { return 18 }
func (*Protocol) FeeDecimals() int32 { return 18 }
func (*Protocol) SupportsHD() bool   { return false }

func (*Protocol) FeeDefaults() protocol.FeeDefaults {
	// aettos; the spend minimum plus headroom tiers
	return protocol.FeeDefaults{
		Low:    16660000000000,
		Medium: 18000000000000,
		High:   20000000000000,
	}
}

func (*Protocol) StandardDerivationPath() string { return standardPath }

func (*Protocol) AddressPattern() *regexp.Regexp { return addressPattern }

func (*Protocol) DeriveKeyPair(seed []byte, path string) (*keypair.KeyPair, error) {
	return keypair.DeriveEd25519(seed, path)
}

func (*Protocol) AddressFromPublicKey(publicKey []byte) (string, error) {
	return AddressFromPublicKey(publicKey)
}

func (*Protocol) ValidateAddress(address string) error {
	return ValidateAddress(address)
}

func (*Protocol) Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
	recipients []string, amounts []uint64, fee uint64) (protocol.UnsignedTransaction, error) {
	return Prepare(ctx, g, publicKey, recipients, amounts, fee)
}

func (*Protocol) Forge(tx protocol.UnsignedTransaction) ([]byte, error) {
	unsigned, ok := tx.(*SpendTransaction)
	if !ok {
		return nil, fault.ErrUnsupportedOperationKind
	}
	return ForgeTransaction(unsigned)
}

func (*Protocol) Parse(forged []byte) (protocol.UnsignedTransaction, error) {
	return ParseTransaction(forged)
}

func (*Protocol) Sign(forged []byte, privateKey []byte) ([]byte, error) {
	return SignTransaction(forged, privateKey, NetworkMainnet)
}

func (*Protocol) Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {
	return Broadcast(ctx, g, signed)
}

func (*Protocol) Summarize(tx protocol.UnsignedTransaction, watched []string) (*protocol.AirGapTransaction, error) {
	unsigned, ok := tx.(*SpendTransaction)
	if !ok {
		return nil, fault.ErrUnsupportedOperationKind
	}
	return Summarize(unsigned, watched)
}

func (*Protocol) SummarizeSigned(signed []byte, watched []string) (*protocol.AirGapTransaction, error) {
	forged, err := innerTransaction(signed)
	if nil != err {
		return nil, err
	}
	unsigned, err := ParseTransaction(forged)
	if nil != err {
		return nil, err
	}
	return Summarize(unsigned, watched)
}

// ValidateAddress - pattern check plus full checksum verification
func ValidateAddress(address string) error {
	if !addressPattern.MatchString(address) {
		return fault.ErrAddressMismatch
	}
	_, err := PublicKeyFromAddress(address)
	return err
}
