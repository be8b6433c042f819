// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/tyler-smith/go-bip39"

	"github.com/airgap-inc/coinkit/fault"
)

// NewMnemonic - create a fresh 24 word BIP-39 phrase from secure
// random entropy
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if nil != err {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic - expand a BIP-39 phrase into the 64 byte seed all
// derivation starts from
//
// the phrase is checked against the word list before expansion so a
// typo fails loudly instead of deriving a different wallet
func SeedFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fault.ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}
