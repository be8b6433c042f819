// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

import (
	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
)

// AddressFromPublicKey - ak_ encoding of the raw key bytes
//
// unlike the hash-reduced schemes, the address carries the public key
// itself, so decoding an address recovers the key
func AddressFromPublicKey(publicKey []byte) (string, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return "", fault.ErrInvalidKeyLength
	}
	return Encode(prefixAccount, publicKey), nil
}

// PublicKeyFromAddress - inverse of AddressFromPublicKey
func PublicKeyFromAddress(address string) ([]byte, error) {
	publicKey, err := Decode(address, prefixAccount)
	if nil != err {
		return nil, err
	}
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrCannotDecodeAddress
	}
	return publicKey, nil
}
