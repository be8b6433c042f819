// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

import (
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
)

// wire shape of a signed transaction
type signedTuple struct {
	Tag        uint
	Version    uint
	Signatures [][]byte
	Inner      []byte
}

// SignTransaction - detached ed25519 signature over the network id
// and the forged bytes, wrapped in a signed-transaction tuple
//
// the network id is signed but not transmitted; a receiving node
// prepends its own id before verifying, so a payload signed for one
// network is dead on every other.  No network access happens here.
func SignTransaction(forged []byte, privateKey []byte, networkID string) ([]byte, error) {

	key, err := signingKey(privateKey)
	if nil != err {
		return nil, err
	}

	message := make([]byte, 0, len(networkID)+len(forged))
	message = append(message, networkID...)
	message = append(message, forged...)
	signature := ed25519.Sign(key, message)

	return rlp.EncodeToBytes(&signedTuple{
		Tag:        objectTagSignedTransaction,
		Version:    objectVersion,
		Signatures: [][]byte{signature},
		Inner:      forged,
	})
}

// VerifySignedTransaction - check the wrapped signature and return
// the inner forged bytes
func VerifySignedTransaction(signed []byte, publicKey []byte, networkID string) ([]byte, error) {

	tuple := signedTuple{}
	err := rlp.DecodeBytes(signed, &tuple)
	if nil != err {
		return nil, fault.ErrCannotDecodeTransaction
	}
	if objectTagSignedTransaction != tuple.Tag || objectVersion != tuple.Version ||
		1 != len(tuple.Signatures) {
		return nil, fault.ErrCannotDecodeTransaction
	}

	message := append([]byte(networkID), tuple.Inner...)
	if !ed25519.Verify(publicKey, message, tuple.Signatures[0]) {
		return nil, fault.ErrInvalidSignature
	}
	return tuple.Inner, nil
}

func signingKey(privateKey []byte) (ed25519.PrivateKey, error) {
	switch len(privateKey) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(privateKey), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(privateKey), nil
	default:
		return nil, fault.ErrInvalidKeyLength
	}
}
