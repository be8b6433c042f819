// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/airgap-inc/coinkit/fault"
)

const privateKeyLength = 32

// SignTransaction - replay-protected signature over the forged bytes
//
// the forged tuple is the exact signing preimage, so the digest is
// keccak256 of the bytes as given.  The result is the canonical
// broadcast encoding of the signed transaction.  No network access
// happens here.
func SignTransaction(forged []byte, privateKey []byte) ([]byte, error) {

	if privateKeyLength != len(privateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	key, err := crypto.ToECDSA(privateKey)
	if nil != err {
		return nil, fault.ErrInvalidKeyLength
	}

	tx, err := ParseTransaction(forged)
	if nil != err {
		return nil, err
	}

	signature, err := crypto.Sign(crypto.Keccak256(forged), key)
	if nil != err {
		return nil, err
	}

	signer := types.NewEIP155Signer(tx.ChainID)
	signed, err := types.NewTransaction(tx.Nonce, common.HexToAddress(tx.To), tx.Value,
		tx.Gas, tx.GasPrice, tx.Data).WithSignature(signer, signature)
	if nil != err {
		return nil, err
	}
	return signed.MarshalBinary()
}

// SenderOf - recover the signing address from a signed transaction
func SenderOf(signed []byte) (string, error) {

	tx := new(types.Transaction)
	err := tx.UnmarshalBinary(signed)
	if nil != err {
		return "", fault.ErrCannotDecodeTransaction
	}

	sender, err := types.Sender(types.NewEIP155Signer(tx.ChainId()), tx)
	if nil != err {
		return "", fault.ErrInvalidSignature
	}
	return sender.Hex(), nil
}
