// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
)

// chain business rules
const (
	// burned from the sender when the destination account record
	// does not exist yet
	activationBurn = 257000

	defaultGasLimit     = 10300
	defaultStorageLimit = 257

	revealFee          = 1300
	revealGasLimit     = 10000
	revealStorageLimit = 0
)

const (
	contractsPath = "/chains/main/blocks/head/context/contracts/%s"
	branchPath    = "/chains/main/blocks/head~2/hash"
	injectionPath = "/injection/operation"
)

// account state fetched before building
type accountState struct {
	balance  uint64
	counter  uint64
	revealed bool
}

// Prepare - assemble an unsigned operation batch from on-chain state
//
// an address the chain has never seen reads as balance zero, counter
// zero, unrevealed; a reveal is prepended when needed.  Counters are
// strictly increasing across the batch.
func Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
	recipients []string, amounts []uint64, fee uint64) (*UnsignedTransaction, error) {

	if 0 == len(recipients) || len(recipients) != len(amounts) {
		return nil, fault.ErrCountMismatch
	}

	source, err := AddressFromPublicKey(publicKey)
	if nil != err {
		return nil, err
	}

	var branch string
	err = g.Get(ctx, branchPath, &branch)
	if nil != err {
		return nil, err
	}

	state, err := fetchAccountState(ctx, g, source)
	if nil != err {
		return nil, err
	}

	counter := state.counter
	tx := &UnsignedTransaction{Branch: branch}

	revealCharge := uint64(0)
	if !state.revealed {
		edpk, err := EncodePublicKey(publicKey)
		if nil != err {
			return nil, err
		}
		counter += 1
		revealCharge = revealFee
		tx.Contents = append(tx.Contents, &Reveal{
			Source:       source,
			Fee:          revealFee,
			Counter:      counter,
			GasLimit:     revealGasLimit,
			StorageLimit: revealStorageLimit,
			PublicKey:    edpk,
		})
	}

	total := uint64(0)
	for i, recipient := range recipients {
		err = ValidateAddress(recipient)
		if nil != err {
			return nil, err
		}

		amount := amounts[i]

		// destination accounts that do not exist yet cost the
		// sender the activation burn on top of amount and fee;
		// when the balance cannot cover all three the spend is
		// shrunk by the burn instead of failing
		recipientBalance, err := FetchBalance(ctx, g, recipient)
		if nil != err {
			return nil, err
		}
		if 0 == recipientBalance && !covers(state.balance, amount, fee, activationBurn) {
			if amount < activationBurn {
				return nil, fault.ErrInsufficientBalance
			}
			amount -= activationBurn
		}

		// fee is charged once, carried on the final spend of
		// the batch
		opFee := uint64(0)
		if len(recipients)-1 == i {
			opFee = fee
		}

		counter += 1
		tx.Contents = append(tx.Contents, &Transaction{
			Source:       source,
			Fee:          opFee,
			Counter:      counter,
			GasLimit:     defaultGasLimit,
			StorageLimit: defaultStorageLimit,
			Amount:       amount,
			Destination:  recipient,
		})

		// a running total past uint64 can never be funded
		if amount > math.MaxUint64-total {
			return nil, fault.ErrInsufficientBalance
		}
		total += amount
	}

	if !covers(state.balance, total, fee, revealCharge) {
		return nil, fault.ErrInsufficientBalance
	}
	return tx, nil
}

// covers - whether balance can pay every part in full
//
// the parts are subtracted one by one; no sum is formed, so the test
// cannot wrap
func covers(balance uint64, parts ...uint64) bool {
	for _, part := range parts {
		if balance < part {
			return false
		}
		balance -= part
	}
	return true
}

// Broadcast - inject a signed operation, returning the operation hash
func Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {

	var hash string
	err := g.Post(ctx, injectionPath, fmt.Sprintf("%x", signed), &hash)
	if nil != err {
		if ne, ok := err.(fault.NetworkError); ok && 0 != ne.Status {
			return "", fault.ErrBroadcastRejected
		}
		return "", err
	}
	return hash, nil
}

func fetchAccountState(ctx context.Context, g gateway.Gateway, address string) (*accountState, error) {

	state := &accountState{}

	balance, err := FetchBalance(ctx, g, address)
	if nil != err {
		return nil, err
	}
	state.balance = balance

	var counter string
	err = g.Get(ctx, fmt.Sprintf(contractsPath+"/counter", address), &counter)
	switch err {
	case nil:
		state.counter, err = strconv.ParseUint(counter, 10, 64)
		if nil != err {
			return nil, fault.ErrCannotDecodeAddress
		}
	case fault.ErrAccountNotFound:
		state.counter = 0
	default:
		return nil, err
	}

	var managerKey *string
	err = g.Get(ctx, fmt.Sprintf(contractsPath+"/manager_key", address), &managerKey)
	switch err {
	case nil:
		state.revealed = nil != managerKey && "" != *managerKey
	case fault.ErrAccountNotFound:
		state.revealed = false
	default:
		return nil, err
	}

	return state, nil
}

// FetchBalance - balance of one address, not-found is zero
//
// satisfies gateway.BalanceFunc so balances can be aggregated across
// several watched addresses
func FetchBalance(ctx context.Context, g gateway.Gateway, address string) (uint64, error) {

	var balance string
	err := g.Get(ctx, fmt.Sprintf(contractsPath+"/balance", address), &balance)
	switch err {
	case nil:
		value, err := strconv.ParseUint(balance, 10, 64)
		if nil != err {
			return 0, fault.ErrCannotDecodeAddress
		}
		return value, nil
	case fault.ErrAccountNotFound:
		return 0, nil
	default:
		return 0, err
	}
}
