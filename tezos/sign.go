// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
)

// operation watermark: domain-separates operation signatures from
// anything else signed with the same key
const operationWatermark = 0x03

// SignOperation - sign forged operation bytes with an ed25519 key
//
// the digest is blake2b-256 over watermark ‖ forged; the signed
// payload is forged ‖ signature - the watermark and digest are
// re-derived by the network, never transmitted.  No network access
// happens here; this is the half that runs on the offline device.
func SignOperation(forged []byte, privateKey []byte) ([]byte, error) {

	key, err := signingKey(privateKey)
	if nil != err {
		return nil, err
	}

	watermarked := make([]byte, 0, 1+len(forged))
	watermarked = append(watermarked, operationWatermark)
	watermarked = append(watermarked, forged...)

	digest := blake2b.Sum256(watermarked)
	signature := ed25519.Sign(key, digest[:])

	signed := make([]byte, 0, len(forged)+ed25519.SignatureSize)
	signed = append(signed, forged...)
	return append(signed, signature...), nil
}

// VerifySignedOperation - check the trailing signature of a signed
// payload against a public key
func VerifySignedOperation(signed []byte, publicKey []byte) error {

	if len(signed) <= ed25519.SignatureSize {
		return fault.ErrBufferTooShort
	}
	forged := signed[:len(signed)-ed25519.SignatureSize]
	signature := signed[len(signed)-ed25519.SignatureSize:]

	watermarked := append([]byte{operationWatermark}, forged...)
	digest := blake2b.Sum256(watermarked)

	if !ed25519.Verify(publicKey, digest[:], signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// accept either a 32 byte seed or a full 64 byte expanded key
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
