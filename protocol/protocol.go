// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - the uniform contract every supported chain
// implements
//
// A CoinProtocol is stateless and deterministic: given identical
// inputs and identical remote state every method returns identical
// results, and no instance ever holds private key material.  The
// signing entry point consumes nothing but bytes, so it can run on a
// device that has never seen a network handle; preparation and
// broadcast consume a gateway and never see a private key.
package protocol

import (
	"context"
	"regexp"

	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/keypair"
)

// FeeDefaults - suggested fee tiers in base units
type FeeDefaults struct {
	Low    uint64 `json:"low"`
	Medium uint64 `json:"medium"`
	High   uint64 `json:"high"`
}

// UnsignedTransaction - a chain-native transaction structure
//
// instances are never mutated after creation; a fee bump or similar
// amendment is a fresh Prepare
type UnsignedTransaction interface {
	ProtocolID() string
}

// CoinProtocol - one implementation per supported chain
type CoinProtocol interface {

	// static chain facts
	Identifier() string
	Symbol() string
	Name() string
	Decimals() int32
	FeeDecimals() int32
	FeeDefaults() FeeDefaults
	StandardDerivationPath() string
	AddressPattern() *regexp.Regexp
	SupportsHD() bool

	// keys and addresses
	DeriveKeyPair(seed []byte, path string) (*keypair.KeyPair, error)
	AddressFromPublicKey(publicKey []byte) (string, error)
	ValidateAddress(address string) error

	// online: build an unsigned transaction from account state
	Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
		recipients []string, amounts []uint64, fee uint64) (UnsignedTransaction, error)

	// codec: exact consensus bytes and their inverse
	Forge(tx UnsignedTransaction) ([]byte, error)
	Parse(forged []byte) (UnsignedTransaction, error)

	// offline: detached signature over forged bytes
	Sign(forged []byte, privateKey []byte) ([]byte, error)

	// online: submit a signed payload, returns the network hash
	Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error)

	// display projection
	Summarize(tx UnsignedTransaction, watched []string) (*AirGapTransaction, error)
	SummarizeSigned(signed []byte, watched []string) (*AirGapTransaction, error)
}

// HDProtocol - the additional surface of chains whose curve allows
// hierarchical multi-address derivation
//
// callers check SupportsHD before asking the registry for this
// interface; non-HD chains simply do not implement it
type HDProtocol interface {
	CoinProtocol

	DeriveKeyPairAtIndex(seed []byte, change uint32, index uint32) (*keypair.KeyPair, error)
	AddressFromExtendedPublicKey(xpub string, index uint32) (string, error)
}
