// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

import (
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ed25519"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/util"
)

// the address payload is a fixed-length hash of the public key, not
// the key itself
const addressHashLength = 20

// AddressFromPublicKey - tz1 address of an ed25519 public key
//
// payload = blake2b-160(public key), prefixed and checksummed
func AddressFromPublicKey(publicKey []byte) (string, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return "", fault.ErrInvalidKeyLength
	}

	digest, err := blake2b.New(addressHashLength, nil)
	if nil != err {
		return "", err
	}
	digest.Write(publicKey)

	return util.ToBase58Check(prefixTZ1, digest.Sum(nil)), nil
}

// EncodePublicKey - edpk form of an ed25519 public key
func EncodePublicKey(publicKey []byte) (string, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return "", fault.ErrInvalidKeyLength
	}
	return util.ToBase58Check(prefixEdpk, publicKey), nil
}

// DecodePublicKey - edpk string back to raw key bytes
func DecodePublicKey(encoded string) ([]byte, error) {
	publicKey, err := util.FromBase58Check(encoded, prefixEdpk)
	if nil != err {
		return nil, err
	}
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	return publicKey, nil
}

// decodeAddress - address string to curve tag and 20 byte hash
func decodeAddress(address string) (byte, []byte, error) {

	var prefix []byte
	var tag byte

	switch {
	case strings.HasPrefix(address, "tz1"):
		prefix = prefixTZ1
		tag = curveTagEd25519
	case strings.HasPrefix(address, "tz2"):
		prefix = prefixTZ2
		tag = curveTagSecp256k1
	case strings.HasPrefix(address, "tz3"):
		prefix = prefixTZ3
		tag = curveTagP256
	default:
		return 0, nil, fault.ErrPrefixMismatch
	}

	hash, err := util.FromBase58Check(address, prefix)
	if nil != err {
		return 0, nil, err
	}
	if addressHashLength != len(hash) {
		return 0, nil, fault.ErrInvalidKeyLength
	}
	return tag, hash, nil
}

// encodeAddress - curve tag and hash back to an address string
func encodeAddress(tag byte, hash []byte) (string, error) {
	var prefix []byte
	switch tag {
	case curveTagEd25519:
		prefix = prefixTZ1
	case curveTagSecp256k1:
		prefix = prefixTZ2
	case curveTagP256:
		prefix = prefixTZ3
	default:
		return "", fault.ErrPrefixMismatch
	}
	return util.ToBase58Check(prefix, hash), nil
}
