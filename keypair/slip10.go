// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
)

// SLIP-10 master key derivation domain for the ed25519 curve
var ed25519SeedKey = []byte("ed25519 seed")

const minimumSeedLength = 16

// DeriveEd25519 - derive an ed25519 key pair from a BIP-39 seed and a
// hierarchical derivation path (SLIP-10)
//
// ed25519 only defines hardened derivation: any non-hardened level in
// the path fails with ErrHardenedOnly
func DeriveEd25519(seed []byte, path string) (*KeyPair, error) {

	if len(seed) < minimumSeedLength {
		return nil, fault.ErrInvalidSeedLength
	}

	levels, err := ParsePath(path)
	if nil != err {
		return nil, err
	}

	key, chainCode := masterEd25519(seed)

	for _, level := range levels {
		if !level.Hardened {
			return nil, fault.ErrHardenedOnly
		}
		key, chainCode = childEd25519(key, chainCode, level.Index+HardenedOffset)
	}

	privateKey := ed25519.NewKeyFromSeed(key)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

func masterEd25519(seed []byte) ([]byte, []byte) {
	mac := hmac.New(sha512.New, ed25519SeedKey)
	mac.Write(seed)
	digest := mac.Sum(nil)
	return digest[:32], digest[32:]
}

func childEd25519(key []byte, chainCode []byte, index uint32) ([]byte, []byte) {
	data := make([]byte, 0, 1+len(key)+4)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	digest := mac.Sum(nil)
	return digest[:32], digest[32:]
}
