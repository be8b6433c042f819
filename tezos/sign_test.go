// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/tezos"
)

func TestSignAndVerify(t *testing.T) {

	kp := testKeyPair(t)
	forged, err := tezos.ForgeOperation(fixtureBatch())
	require.NoError(t, err)

	signed, err := tezos.SignOperation(forged, kp.PrivateKey)
	require.NoError(t, err)

	// payload is forged bytes with the raw signature appended
	require.Len(t, signed, len(forged)+ed25519.SignatureSize)
	assert.Equal(t, forged, signed[:len(forged)])

	assert.NoError(t, tezos.VerifySignedOperation(signed, kp.PublicKey))
}

// a 32 byte seed and its 64 byte expanded form sign identically
func TestSignWithSeed(t *testing.T) {

	kp := testKeyPair(t)
	seed := ed25519.PrivateKey(kp.PrivateKey).Seed()

	forged, err := tezos.ForgeOperation(fixtureBatch())
	require.NoError(t, err)

	fromSeed, err := tezos.SignOperation(forged, seed)
	require.NoError(t, err)
	fromKey, err := tezos.SignOperation(forged, kp.PrivateKey)
	require.NoError(t, err)

	assert.Equal(t, fromKey, fromSeed)
}

func TestSignBadKeyLength(t *testing.T) {

	_, err := tezos.SignOperation([]byte{0x01}, make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
}

func TestVerifyTampered(t *testing.T) {

	kp := testKeyPair(t)
	forged, err := tezos.ForgeOperation(fixtureBatch())
	require.NoError(t, err)

	signed, err := tezos.SignOperation(forged, kp.PrivateKey)
	require.NoError(t, err)

	// flip one payload bit
	signed[10] ^= 0x01
	assert.Equal(t, fault.ErrInvalidSignature,
		tezos.VerifySignedOperation(signed, kp.PublicKey))
	signed[10] ^= 0x01

	// flip one signature bit
	signed[len(signed)-1] ^= 0x01
	assert.Equal(t, fault.ErrInvalidSignature,
		tezos.VerifySignedOperation(signed, kp.PublicKey))
}

func TestVerifyTooShort(t *testing.T) {

	kp := testKeyPair(t)
	err := tezos.VerifySignedOperation(make([]byte, ed25519.SignatureSize), kp.PublicKey)
	assert.Equal(t, fault.ErrBufferTooShort, err)
}

func TestVerifyWrongKey(t *testing.T) {

	kp := testKeyPair(t)
	forged, err := tezos.ForgeOperation(fixtureBatch())
	require.NoError(t, err)

	signed, err := tezos.SignOperation(forged, kp.PrivateKey)
	require.NoError(t, err)

	other, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	assert.Equal(t, fault.ErrInvalidSignature,
		tezos.VerifySignedOperation(signed, other))
}
