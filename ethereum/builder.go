// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
)

// the node speaks JSON-RPC on a single endpoint
const rpcPath = "/"

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcReply struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Prepare - single transfer from on-chain state
//
// one recipient per transaction.  The flat fee is converted to a gas
// price over the fixed transfer gas; remainders are dropped, never
// rounded up, so the cost cannot exceed the requested fee.
func Prepare(ctx context.Context, g gateway.Gateway, publicKey []byte,
	recipients []string, amounts []uint64, fee uint64) (*Transaction, error) {

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
	if fee < transferGas {
		return nil, fault.ErrInvalidAmount
	}

	nonce, err := fetchQuantity(ctx, g, "eth_getTransactionCount", sender, "pending")
	if nil != err {
		return nil, err
	}
	balance, err := fetchQuantity(ctx, g, "eth_getBalance", sender, "latest")
	if nil != err {
		return nil, err
	}

	amount := amounts[0]
	total := new(big.Int).SetUint64(amount)
	total.Add(total, new(big.Int).SetUint64(fee))
	if balance.Cmp(total) < 0 {
		return nil, fault.ErrInsufficientBalance
	}

	return &Transaction{
		Nonce:    nonce.Uint64(),
		GasPrice: new(big.Int).SetUint64(fee / transferGas),
		Gas:      transferGas,
		To:       recipients[0],
		Value:    new(big.Int).SetUint64(amount),
		ChainID:  ChainMainnet,
		From:     sender,
	}, nil
}

// Broadcast - submit a signed transaction, returning its network hash
func Broadcast(ctx context.Context, g gateway.Gateway, signed []byte) (string, error) {

	var hash string
	err := call(ctx, g, "eth_sendRawTransaction",
		[]interface{}{hexutil.Encode(signed)}, &hash)
	if nil != err {
		if fault.IsErrProcess(err) {
			return "", fault.ErrBroadcastRejected
		}
		return "", err
	}
	return hash, nil
}

// FetchBalance - balance of one address in wei
//
// satisfies gateway.BalanceFunc; JSON-RPC has no not-found notion for
// accounts, an unused address reads as zero naturally
func FetchBalance(ctx context.Context, g gateway.Gateway, address string) (uint64, error) {

	balance, err := fetchQuantity(ctx, g, "eth_getBalance", address, "latest")
	if nil != err {
		return 0, err
	}
	return balance.Uint64(), nil
}

func fetchQuantity(ctx context.Context, g gateway.Gateway, method string,
	address string, block string) (*big.Int, error) {

	var quantity string
	err := call(ctx, g, method, []interface{}{address, block}, &quantity)
	if nil != err {
		return nil, err
	}
	value, err := hexutil.DecodeBig(quantity)
	if nil != err {
		return nil, fault.NetworkError{Detail: fmt.Sprintf("bad quantity: %q", quantity)}
	}
	return value, nil
}

// call - one JSON-RPC exchange; a node-level error comes back as a
// process error carrying the node's message
func call(ctx context.Context, g gateway.Gateway, method string,
	params []interface{}, result interface{}) error {

	reply := rpcReply{}
	err := g.Post(ctx, rpcPath, rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}, &reply)
	if nil != err {
		return err
	}
	if nil != reply.Error {
		return fault.ProcessError(fmt.Sprintf("rpc: %s", reply.Error.Message))
	}
	return json.Unmarshal(reply.Result, result)
}
