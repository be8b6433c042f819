// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/airgap-inc/coinkit/fault"
)

const (
	compressedKeyLength   = 33
	uncompressedKeyLength = 65
)

// AddressFromPublicKey - mixed-case checksummed hex address of a
// secp256k1 public key, compressed or uncompressed form accepted
func AddressFromPublicKey(publicKey []byte) (string, error) {

	switch len(publicKey) {
	case compressedKeyLength:
		key, err := crypto.DecompressPubkey(publicKey)
		if nil != err {
			return "", fault.ErrInvalidKeyLength
		}
		return crypto.PubkeyToAddress(*key).Hex(), nil

	case uncompressedKeyLength:
		key, err := crypto.UnmarshalPubkey(publicKey)
		if nil != err {
			return "", fault.ErrInvalidKeyLength
		}
		return crypto.PubkeyToAddress(*key).Hex(), nil

	default:
		return "", fault.ErrInvalidKeyLength
	}
}

// ValidateAddress - hex shape and, for mixed-case input, the EIP-55
// capitalisation checksum
func ValidateAddress(address string) error {
	if !addressPattern.MatchString(address) || !common.IsHexAddress(address) {
		return fault.ErrAddressMismatch
	}
	// all-lower and all-upper forms carry no checksum; a mixed-case
	// form must match its canonical capitalisation exactly
	hex := address[2:]
	if hex != strings.ToLower(hex) && hex != strings.ToUpper(hex) &&
		address != common.HexToAddress(address).Hex() {
		return fault.ErrChecksumMismatch
	}
	return nil
}
