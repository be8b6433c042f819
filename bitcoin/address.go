// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoin

import (
	"bytes"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/util"
)

const (
	versionP2PKH = 0x00
	versionP2SH  = 0x05

	decodedAddressLength = 25
	checksumLength       = 4
)

// AddressFromPublicKey - pay-to-pubkey-hash address of a compressed
// secp256k1 public key
func AddressFromPublicKey(publicKey []byte) (string, error) {

	if compressedKeyLength != len(publicKey) {
		return "", fault.ErrInvalidKeyLength
	}
	address, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(publicKey), &chaincfg.MainNetParams)
	if nil != err {
		return "", fault.ErrInvalidKeyLength
	}
	return address.EncodeAddress(), nil
}

// ValidateAddress - base58 decode, version and double-SHA256 checksum
// check
func ValidateAddress(address string) error {

	decoded := util.FromBase58(address)
	if decodedAddressLength != len(decoded) {
		return fault.ErrCannotDecodeAddress
	}

	switch decoded[0] {
	case versionP2PKH, versionP2SH:
	default:
		return fault.ErrPrefixMismatch
	}

	h := sha256.Sum256(decoded[:decodedAddressLength-checksumLength])
	h = sha256.Sum256(h[:])
	if !bytes.Equal(h[:checksumLength], decoded[decodedAddressLength-checksumLength:]) {
		return fault.ErrChecksumMismatch
	}
	return nil
}
