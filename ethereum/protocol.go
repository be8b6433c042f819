// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ethereum - the ETH protocol variant
//
// secp256k1 keys derived over BIP-32, keccak addresses with the
// EIP-55 capitalisation checksum, replay-protected legacy transfers
// and a JSON-RPC node interface.  The curve allows soft derivation,
// so the variant is HD-capable.
package ethereum

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/keypair"
	"github.com/airgap-inc/coinkit/protocol"
)

// Identifier - registry token for this variant
const Identifier = "eth"

const (
	standardPath  = "m/44h/60h/0h/0/0"
	accountPrefix = "m/44h/60h/0h"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Protocol - CoinProtocol implementation for Ethereum
type Protocol struct{}

func New() *Protocol {
	return &Protocol{}
}

func (*Protocol) Identifier() string { return Identifier }
func (*Protocol) Symbol() string     { return "ETH" }
func (*Protocol) Name() string       { return "Ethereum" }
func (*Protocol) Decimals() int32    { return 18 }
func (*Protocol) FeeDecimals() int32 { return 18 }
func (*Protocol) SupportsHD() bool   { return true }

func (*Protocol) FeeDefaults() protocol.FeeDefaults {
	// wei for one plain transfer at 1 / 2 / 5 gwei
	return protocol.FeeDefaults{
		Low:    21000000000000,
		Medium: 42000000000000,
		High:   105000000000000,
	}
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
	return ValidateAddress(address)
}

func (*Protocol) Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
	recipients []string, amounts []uint64, fee uint64) (protocol.UnsignedTransaction, error) {
	return Prepare(ctx, g, publicKey, recipients, amounts, fee)
}

func (*Protocol) Forge(tx protocol.UnsignedTransaction) ([]byte, error) {
	unsigned, ok := tx.(*Transaction)
	if !ok {
		return nil, fault.ErrUnsupportedOperationKind
	}
	return ForgeTransaction(unsigned)
}

func (*Protocol) Parse(forged []byte) (protocol.UnsignedTransaction, error) {
	return ParseTransaction(forged)
}

func (*Protocol) Sign(forged []byte, privateKey []byte) ([]byte, error) {
	return SignTransaction(forged, privateKey)
}

func (*Protocol) Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {
	return Broadcast(ctx, g, signed)
}

func (*Protocol) Summarize(tx protocol.UnsignedTransaction, watched []string) (*protocol.AirGapTransaction, error) {
	unsigned, ok := tx.(*Transaction)
	if !ok {
		return nil, fault.ErrUnsupportedOperationKind
	}
	return Summarize(unsigned, watched)
}

func (*Protocol) SummarizeSigned(signed []byte, watched []string) (*protocol.AirGapTransaction, error) {

	tx := new(types.Transaction)
	err := tx.UnmarshalBinary(signed)
	if nil != err {
		return nil, fault.ErrCannotDecodeTransaction
	}
	sender, err := SenderOf(signed)
	if nil != err {
		return nil, err
	}
	if nil == tx.To() {
		// contract creation payloads are not transfers
		return nil, fault.ErrUnsupportedOperationKind
	}

	recovered := &Transaction{
		Nonce:    tx.Nonce(),
		GasPrice: tx.GasPrice(),
		Gas:      tx.Gas(),
		To:       tx.To().Hex(),
		Value:    tx.Value(),
		ChainID:  tx.ChainId(),
		From:     sender,
	}
	return Summarize(recovered, watched)
}
