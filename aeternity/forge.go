// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/airgap-inc/coinkit/fault"
)

// wire shape of the spend tuple; field order is consensus-fixed
type spendTuple struct {
	Tag         uint
	Version     uint
	SenderID    []byte
	RecipientID []byte
	Amount      uint64
	Fee         uint64
	TTL         uint64
	Nonce       uint64
	Payload     []byte
}

// ForgeTransaction - RLP bytes of the spend tuple
func ForgeTransaction(tx *SpendTransaction) ([]byte, error) {

	senderID, err := accountID(tx.Sender)
	if nil != err {
		return nil, err
	}
	recipientID, err := accountID(tx.Recipient)
	if nil != err {
		return nil, err
	}

	return rlp.EncodeToBytes(&spendTuple{
		Tag:         objectTagSpendTransaction,
		Version:     objectVersion,
		SenderID:    senderID,
		RecipientID: recipientID,
		Amount:      tx.Amount,
		Fee:         tx.Fee,
		TTL:         tx.TTL,
		Nonce:       tx.Nonce,
		Payload:     tx.Payload,
	})
}

// ParseTransaction - inverse of ForgeTransaction
func ParseTransaction(forged []byte) (*SpendTransaction, error) {

	tuple := spendTuple{}
	err := rlp.DecodeBytes(forged, &tuple)
	if nil != err {
		return nil, fault.ErrCannotDecodeTransaction
	}
	if objectTagSpendTransaction != tuple.Tag || objectVersion != tuple.Version {
		return nil, fault.ErrUnsupportedOperationKind
	}

	sender, err := accountAddress(tuple.SenderID)
	if nil != err {
		return nil, err
	}
	recipient, err := accountAddress(tuple.RecipientID)
	if nil != err {
		return nil, err
	}

	return &SpendTransaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    tuple.Amount,
		Fee:       tuple.Fee,
		TTL:       tuple.TTL,
		Nonce:     tuple.Nonce,
		Payload:   tuple.Payload,
		NetworkID: NetworkMainnet,
	}, nil
}

// account id = id tag byte followed by the raw public key
func accountID(address string) ([]byte, error) {
	publicKey, err := PublicKeyFromAddress(address)
	if nil != err {
		return nil, err
	}
	return append([]byte{idTagAccount}, publicKey...), nil
}

func accountAddress(id []byte) (string, error) {
	if 0 == len(id) || idTagAccount != id[0] {
		return "", fault.ErrCannotDecodeAddress
	}
	return AddressFromPublicKey(id[1:])
}
