// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity_test

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgap-inc/coinkit/aeternity"
	"github.com/airgap-inc/coinkit/fault"
)

// fakeNode - in-memory Gateway: path → raw JSON; missing paths are
// not-found
type fakeNode struct {
	responses map[string]string
	posted    []string
	reject    bool
}

func (f *fakeNode) Get(ctx context.Context, path string, reply interface{}) error {
	raw, ok := f.responses[path]
	if !ok {
		return fault.ErrAccountNotFound
	}
	return json.Unmarshal([]byte(raw), reply)
}

func (f *fakeNode) Post(ctx context.Context, path string, body interface{}, reply interface{}) error {
	if f.reject {
		return fault.NetworkError{Status: 400, Detail: "invalid tx"}
	}
	raw, err := json.Marshal(body)
	if nil != err {
		return err
	}
	f.posted = append(f.posted, string(raw))
	if nil != reply {
		return json.Unmarshal([]byte(`{"tx_hash":"th_fakehash"}`), reply)
	}
	return nil
}

func TestPrepareSpend(t *testing.T) {

	kp := testKeyPair(t)
	sender, _ := aeternity.AddressFromPublicKey(kp.PublicKey)
	recipient := fixtureSpend(t).Recipient

	node := &fakeNode{responses: map[string]string{
		"/v2/accounts/" + sender: `{"balance": 5000000, "nonce": 3}`,
	}}

	tx, err := aeternity.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{1000000}, 20000)
	require.NoError(t, err)

	assert.Equal(t, sender, tx.Sender)
	assert.Equal(t, recipient, tx.Recipient)
	assert.Equal(t, uint64(1000000), tx.Amount)
	assert.Equal(t, uint64(20000), tx.Fee)
	assert.Equal(t, uint64(4), tx.Nonce)
	assert.Equal(t, aeternity.NetworkMainnet, tx.NetworkID)
}

// an address the chain has never seen reads as balance zero, nonce
// zero; any spend from it is insufficient
func TestPrepareUnknownSender(t *testing.T) {

	kp := testKeyPair(t)
	recipient := fixtureSpend(t).Recipient

	node := &fakeNode{responses: map[string]string{}}

	_, err := aeternity.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{1}, 0)
	assert.Equal(t, fault.ErrInsufficientBalance, err)
}

func TestPrepareInsufficientBalance(t *testing.T) {

	kp := testKeyPair(t)
	sender, _ := aeternity.AddressFromPublicKey(kp.PublicKey)
	recipient := fixtureSpend(t).Recipient

	node := &fakeNode{responses: map[string]string{
		"/v2/accounts/" + sender: `{"balance": 1000, "nonce": 0}`,
	}}

	_, err := aeternity.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{2000}, 500)
	assert.Equal(t, fault.ErrInsufficientBalance, err)
}

// a near-max amount must not wrap amount+fee back under the balance
func TestPrepareAmountOverflow(t *testing.T) {

	kp := testKeyPair(t)
	sender, _ := aeternity.AddressFromPublicKey(kp.PublicKey)
	recipient := fixtureSpend(t).Recipient

	node := &fakeNode{responses: map[string]string{
		"/v2/accounts/" + sender: `{"balance": 1000, "nonce": 0}`,
	}}

	_, err := aeternity.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient}, []uint64{math.MaxUint64}, 2)
	assert.Equal(t, fault.ErrInsufficientBalance, err)
}

// no batch spends on this chain
func TestPrepareMultipleRecipients(t *testing.T) {

	kp := testKeyPair(t)
	recipient := fixtureSpend(t).Recipient

	node := &fakeNode{responses: map[string]string{}}

	_, err := aeternity.Prepare(context.Background(), node, kp.PublicKey,
		[]string{recipient, recipient}, []uint64{1, 2}, 0)
	assert.Equal(t, fault.ErrCountMismatch, err)
}

func TestBroadcast(t *testing.T) {

	node := &fakeNode{responses: map[string]string{}}

	hash, err := aeternity.Broadcast(context.Background(), node, []byte{0x01, 0x02, 0x03})
	require.NoError(t, err)
	assert.Equal(t, "th_fakehash", hash)

	require.Len(t, node.posted, 1)
	assert.True(t, strings.Contains(node.posted[0], `"tx":"tx_`),
		"posted: %s", node.posted[0])
}

func TestBroadcastRejected(t *testing.T) {

	node := &fakeNode{reject: true}
	_, err := aeternity.Broadcast(context.Background(), node, []byte{0x01})
	assert.Equal(t, fault.ErrBroadcastRejected, err)
}
