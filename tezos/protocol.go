// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tezos - the XTZ protocol variant
//
// Covers derivation at the standard path, tz1 address encoding,
// building operation batches from on-chain state, forging to the
// exact consensus bytes, watermarked ed25519 signing and operation
// injection.  The chain does not support non-hardened derivation, so
// the variant is not HD-capable.
package tezos

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/keypair"
	"github.com/airgap-inc/coinkit/protocol"
	"github.com/airgap-inc/coinkit/util"
)

// Identifier - registry token for this variant
const Identifier = "xtz"

const standardPath = "m/44h/1729h/0h/0h"

var addressPattern = regexp.MustCompile(`^(tz1|tz2|tz3|KT1)[1-9A-HJ-NP-Za-km-z]{33}$`)

// Protocol - CoinProtocol implementation for Tezos
type Protocol struct{}

// New - the single stateless instance is all callers need
func New() *Protocol {
	return &Protocol{}
}

func (*Protocol) Identifier() string { return Identifier }
func (*Protocol) Symbol() string     { return "XTZ" }
func (*Protocol) Name() string       { return "Tezos" }
func (*Protocol) Decimals() int32    { return 6 }
func (*Protocol) FeeDecimals() int32 { return 6 }
func (*Protocol) SupportsHD() bool   { return false }

func (*Protocol) FeeDefaults() protocol.FeeDefaults {
	return protocol.FeeDefaults{Low: 1420, Medium: 1520, High: 3000}
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
	unsigned, ok := tx.(*UnsignedTransaction)
	if !ok {
		return nil, fault.ErrUnsupportedOperationKind
	}
	return ForgeOperation(unsigned)
}

func (*Protocol) Parse(forged []byte) (protocol.UnsignedTransaction, error) {
	return ParseOperation(forged)
}

func (*Protocol) Sign(forged []byte, privateKey []byte) ([]byte, error) {
	return SignOperation(forged, privateKey)
}

func (*Protocol) Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {
	return Broadcast(ctx, g, signed)
}

func (p *Protocol) Summarize(tx protocol.UnsignedTransaction, watched []string) (*protocol.AirGapTransaction, error) {
	unsigned, ok := tx.(*UnsignedTransaction)
	if !ok {
		return nil, fault.ErrUnsupportedOperationKind
	}
	return Summarize(unsigned, watched)
}

func (p *Protocol) SummarizeSigned(signed []byte, watched []string) (*protocol.AirGapTransaction, error) {
	if len(signed) <= ed25519.SignatureSize {
		return nil, fault.ErrBufferTooShort
	}
	unsigned, err := ParseOperation(signed[:len(signed)-ed25519.SignatureSize])
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
	if strings.HasPrefix(address, "KT1") {
		_, err := util.FromBase58Check(address, prefixKT1)
		return err
	}
	_, _, err := decodeAddress(address)
	return err
}
