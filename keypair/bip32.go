// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/airgap-inc/coinkit/fault"
)

// DeriveSecp256k1 - derive a secp256k1 key pair from a BIP-39 seed
// and a hierarchical derivation path (BIP-32)
//
// the private key is the 32-byte scalar, the public key the 33-byte
// compressed point
func DeriveSecp256k1(seed []byte, path string) (*KeyPair, error) {

	levels, err := ParsePath(path)
	if nil != err {
		return nil, err
	}

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if nil != err {
		return nil, fault.ErrInvalidSeedLength
	}

	key := master
	for _, level := range levels {
		index := level.Index
		if level.Hardened {
			index += hdkeychain.HardenedKeyStart
		}
		key, err = key.Derive(index)
		if nil != err {
			return nil, fault.ErrInvalidDerivationPath
		}
	}

	privateKey, err := key.ECPrivKey()
	if nil != err {
		return nil, err
	}
	publicKey, err := key.ECPubKey()
	if nil != err {
		return nil, err
	}

	return &KeyPair{
		PublicKey:  publicKey.SerializeCompressed(),
		PrivateKey: privateKey.Serialize(),
	}, nil
}

// DeriveExtendedPublic - derive a child public key from an extended
// public key string (xpub) without any private material
//
// only non-hardened child indexes are possible from a public key
func DeriveExtendedPublic(xpub string, index uint32) ([]byte, error) {

	if index >= HardenedOffset {
		return nil, fault.ErrHardenedOnly
	}

	key, err := hdkeychain.NewKeyFromString(xpub)
	if nil != err {
		return nil, fault.ErrCannotDecodeAddress
	}
	if key.IsPrivate() {
		return nil, fault.ErrNotSupported
	}

	child, err := key.Derive(index)
	if nil != err {
		return nil, err
	}
	publicKey, err := child.ECPubKey()
	if nil != err {
		return nil, err
	}
	return publicKey.SerializeCompressed(), nil
}
