// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum_test

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgap-inc/coinkit/ethereum"
	"github.com/airgap-inc/coinkit/fault"
)

// fakeRPC - in-memory JSON-RPC node: method → result literal
type fakeRPC struct {
	results map[string]string
	errors  map[string]string
	calls   []string
}

func (f *fakeRPC) Get(ctx context.Context, path string, reply interface{}) error {
	return fault.ErrAccountNotFound
}

func (f *fakeRPC) Post(ctx context.Context, path string, body interface{}, reply interface{}) error {

	raw, err := json.Marshal(body)
	if nil != err {
		return err
	}
	request := struct {
		Method string `json:"method"`
	}{}
	err = json.Unmarshal(raw, &request)
	if nil != err {
		return err
	}
	f.calls = append(f.calls, request.Method)

	if message, ok := f.errors[request.Method]; ok {
		return json.Unmarshal(
			[]byte(`{"error":{"code":-32000,"message":"`+message+`"}}`),
			reply)
	}
	result, ok := f.results[request.Method]
	if !ok {
		return fault.NetworkError{Status: 500, Detail: "unexpected method: " + request.Method}
	}
	return json.Unmarshal([]byte(`{"result":`+result+`}`), reply)
}

func TestPrepareTransfer(t *testing.T) {

	kp := testKeyPair(t)
	sender, _ := ethereum.AddressFromPublicKey(kp.PublicKey)
	recipient := fixtureTransfer().To

	node := &fakeRPC{results: map[string]string{
		"eth_getTransactionCount": `"0x3"`,
		"eth_getBalance":          `"0xde0b6b3a7640000"`, // 1 ether
	}}

	tx, err := ethereum.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{1000000}, 21000000000000)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), tx.Nonce)
	assert.Equal(t, sender, tx.From)
	assert.Equal(t, recipient, tx.To)
	assert.Equal(t, uint64(21000), tx.Gas)
	assert.Equal(t, 0, big.NewInt(1000000000).Cmp(tx.GasPrice)) // fee over transfer gas
	assert.Equal(t, uint64(1000000), tx.Value.Uint64())
	assert.Equal(t, ethereum.ChainMainnet, tx.ChainID)
}

func TestPrepareInsufficientBalance(t *testing.T) {

	kp := testKeyPair(t)
	recipient := fixtureTransfer().To

	node := &fakeRPC{results: map[string]string{
		"eth_getTransactionCount": `"0x0"`,
		"eth_getBalance":          `"0x3e8"`, // 1000 wei
	}}

	_, err := ethereum.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{2000}, 21000)
	assert.Equal(t, fault.ErrInsufficientBalance, err)
}

// a fee below one wei per gas unit cannot be priced
func TestPrepareFeeTooSmall(t *testing.T) {

	kp := testKeyPair(t)
	recipient := fixtureTransfer().To

	node := &fakeRPC{}
	_, err := ethereum.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{1000}, 100)
	assert.Equal(t, fault.ErrInvalidAmount, err)
	assert.Empty(t, node.calls)
}

func TestPrepareMultipleRecipients(t *testing.T) {

	kp := testKeyPair(t)
	recipient := fixtureTransfer().To

	_, err := ethereum.Prepare(context.Background(), &fakeRPC{}, kp.PublicKey,
		[]string{recipient, recipient}, []uint64{1, 2}, 21000)
	assert.Equal(t, fault.ErrCountMismatch, err)
}

func TestBroadcast(t *testing.T) {

	node := &fakeRPC{results: map[string]string{
		"eth_sendRawTransaction": `"0xdeadbeef"`,
	}}

	hash, err := ethereum.Broadcast(context.Background(), node, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", hash)
	assert.Equal(t, []string{"eth_sendRawTransaction"}, node.calls)
}

// a node-level rejection is a broadcast rejection, not a network
// error
func TestBroadcastRejected(t *testing.T) {

	node := &fakeRPC{errors: map[string]string{
		"eth_sendRawTransaction": "nonce too low",
	}}

	_, err := ethereum.Broadcast(context.Background(), node, []byte{0x01})
	assert.Equal(t, fault.ErrBroadcastRejected, err)
}

func TestFetchBalance(t *testing.T) {

	node := &fakeRPC{results: map[string]string{
		"eth_getBalance": `"0x64"`,
	}}

	balance, err := ethereum.FetchBalance(context.Background(), node,
		fixtureTransfer().To)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
}
