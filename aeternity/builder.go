// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

import (
	"context"
	"fmt"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
)

const (
	accountsPath     = "/v2/accounts/%s"
	transactionsPath = "/v2/transactions"
)

type accountReply struct {
	Balance uint64 `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

type broadcastRequest struct {
	Tx string `json:"tx"`
}

type broadcastReply struct {
	TxHash string `json:"tx_hash"`
}

// Prepare - single spend from on-chain state
//
// the chain has no batch operation, so exactly one recipient is
// accepted.  An address the chain has never seen reads as balance
// zero, nonce zero.
func Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
	recipients []string, amounts []uint64, fee uint64) (*SpendTransaction, error) {

	if 1 != len(recipients) || 1 != len(amounts) {
		return nil, fault.ErrCountMismatch
	}

	sender, err := AddressFromPublicKey(publicKey)
	if nil != err {
		return nil, err
	}
	err = ValidateAddress(recipients[0])
	if nil != err {
		return nil, err
	}

	balance, nonce, err := fetchAccount(ctx, g, sender)
	if nil != err {
		return nil, err
	}

	// subtraction keeps the test from wrapping on a huge amount
	amount := amounts[0]
	if balance < fee || balance-fee < amount {
		return nil, fault.ErrInsufficientBalance
	}

	return &SpendTransaction{
		Sender:    sender,
		Recipient: recipients[0],
		Amount:    amount,
		Fee:       fee,
		TTL:       0,
		Nonce:     nonce + 1,
		NetworkID: NetworkMainnet,
	}, nil
}

// Broadcast - submit a signed transaction, returning its network hash
func Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {

	reply := broadcastReply{}
	err := g.Post(ctx, transactionsPath,
		broadcastRequest{Tx: Encode(prefixTransaction, signed)}, &reply)
	if nil != err {
		if ne, ok := err.(fault.NetworkError); ok && 0 != ne.Status {
			return "", fault.ErrBroadcastRejected
		}
		return "", err
	}
	return reply.TxHash, nil
}

func fetchAccount(ctx context.Context, g gateway.Gateway, address string) (uint64, uint64, error) {

	reply := accountReply{}
	err := g.Get(ctx, fmt.Sprintf(accountsPath, address), &reply)
	switch err {
	case nil:
		return reply.Balance, reply.Nonce, nil
	case fault.ErrAccountNotFound:
		return 0, 0, nil
	default:
		return 0, 0, err
	}
}

// FetchBalance - balance of one address, not-found is zero
//
// satisfies gateway.BalanceFunc
func FetchBalance(ctx context.Context, g gateway.Gateway, address string) (uint64, error) {
	balance, _, err := fetchAccount(ctx, g, address)
	return balance, err
}
