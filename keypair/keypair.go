// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - deterministic key derivation
//
// All derivation is a pure function of (seed, path): the same inputs
// always yield byte-identical key pairs, which is what makes wallet
// recovery from a seed phrase possible.  Nothing in this package
// touches the network.
package keypair

import (
	"encoding/hex"
)

// KeyPair - raw public and private key bytes on a chain-specific curve
//
// the private key is only ever consumed by the offline signing
// boundary; online components must restrict themselves to PublicKey
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// RawKeyPair - hex form for display and JSON output
type RawKeyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// Raw - hex encode a key pair
func (kp *KeyPair) Raw() RawKeyPair {
	return RawKeyPair{
		PublicKey:  hex.EncodeToString(kp.PublicKey),
		PrivateKey: hex.EncodeToString(kp.PrivateKey),
	}
}
