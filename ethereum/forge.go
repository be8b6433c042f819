// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/airgap-inc/coinkit/fault"
)

// replay-protected signing tuple: the trailing chain id and two zero
// fields take the place of the signature, so the forged bytes are
// exactly what the signer hashes
type unsignedTuple struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       common.Address
	Value    *big.Int
	Data     []byte
	ChainID  *big.Int
	ZeroR    uint
	ZeroS    uint
}

// ForgeTransaction - RLP bytes of the replay-protected unsigned tuple
func ForgeTransaction(tx *Transaction) ([]byte, error) {

	err := ValidateAddress(tx.To)
	if nil != err {
		return nil, err
	}

	return rlp.EncodeToBytes(&unsignedTuple{
		Nonce:    tx.Nonce,
		GasPrice: tx.GasPrice,
		Gas:      tx.Gas,
		To:       common.HexToAddress(tx.To),
		Value:    tx.Value,
		Data:     tx.Data,
		ChainID:  tx.ChainID,
	})
}

// ParseTransaction - inverse of ForgeTransaction
//
// the sender is not part of the unsigned bytes, so a parsed
// transaction has no From
func ParseTransaction(forged []byte) (*Transaction, error) {

	tuple := unsignedTuple{}
	err := rlp.DecodeBytes(forged, &tuple)
	if nil != err {
		return nil, fault.ErrCannotDecodeTransaction
	}

	return &Transaction{
		Nonce:    tuple.Nonce,
		GasPrice: tuple.GasPrice,
		Gas:      tuple.Gas,
		To:       tuple.To.Hex(),
		Value:    tuple.Value,
		Data:     tuple.Data,
		ChainID:  tuple.ChainID,
	}, nil
}
