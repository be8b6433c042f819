// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/airgap-inc/coinkit/ethereum"
	"github.com/airgap-inc/coinkit/fault"
)

func fixtureTransfer() *ethereum.Transaction {
	return &ethereum.Transaction{
		Nonce:    1,
		GasPrice: big.NewInt(1000000000),
		Gas:      21000,
		To:       "0x" + "2222222222222222222222222222222222222222",
		Value:    big.NewInt(1000),
		ChainID:  ethereum.ChainMainnet,
	}
}

// hand-assembled wire bytes of the fixture transfer
func fixtureForged() []byte {

	expected := []byte{
		0xe5, // list, 37 payload bytes
		0x01, // nonce
		0x84, 0x3b, 0x9a, 0xca, 0x00, // gas price 1 gwei
		0x82, 0x52, 0x08, // gas 21000
		0x94, // 20 byte recipient
	}
	expected = append(expected, bytes.Repeat([]byte{0x22}, 20)...)
	expected = append(expected,
		0x82, 0x03, 0xe8, // value 1000
		0x80, // empty data
		0x01, // chain id
		0x80, // r placeholder
		0x80, // s placeholder
	)
	return expected
}

func TestForgeTransaction(t *testing.T) {

	forged, err := ethereum.ForgeTransaction(fixtureTransfer())
	if nil != err {
		t.Fatalf("forge error: %s", err)
	}

	expected := fixtureForged()
	if !bytes.Equal(expected, forged) {
		t.Fatalf("forged: %x  expected: %x", forged, expected)
	}
}

func TestParseTransaction(t *testing.T) {

	tx := fixtureTransfer()
	forged, err := ethereum.ForgeTransaction(tx)
	if nil != err {
		t.Fatalf("forge error: %s", err)
	}

	parsed, err := ethereum.ParseTransaction(forged)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if tx.Nonce != parsed.Nonce {
		t.Errorf("nonce: %d  expected: %d", parsed.Nonce, tx.Nonce)
	}
	if 0 != tx.GasPrice.Cmp(parsed.GasPrice) {
		t.Errorf("gas price: %s  expected: %s", parsed.GasPrice, tx.GasPrice)
	}
	if tx.Gas != parsed.Gas {
		t.Errorf("gas: %d  expected: %d", parsed.Gas, tx.Gas)
	}
	if tx.To != parsed.To {
		t.Errorf("to: %q  expected: %q", parsed.To, tx.To)
	}
	if 0 != tx.Value.Cmp(parsed.Value) {
		t.Errorf("value: %s  expected: %s", parsed.Value, tx.Value)
	}
	if 0 != tx.ChainID.Cmp(parsed.ChainID) {
		t.Errorf("chain id: %s  expected: %s", parsed.ChainID, tx.ChainID)
	}
	if "" != parsed.From {
		t.Errorf("from: %q  expected empty", parsed.From)
	}
}

// a bad recipient aborts forging with no partial output
func TestForgeBadRecipient(t *testing.T) {

	tx := fixtureTransfer()
	tx.To = "0xzz"

	forged, err := ethereum.ForgeTransaction(tx)
	if fault.ErrAddressMismatch != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrAddressMismatch)
	}
	if nil != forged {
		t.Fatalf("partial output: %x", forged)
	}
}

func TestParseGarbage(t *testing.T) {

	_, err := ethereum.ParseTransaction([]byte{0xc1})
	if fault.ErrCannotDecodeTransaction != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrCannotDecodeTransaction)
	}
}

func TestTransactionFee(t *testing.T) {

	tx := fixtureTransfer()
	if 21000000000000 != tx.Fee() {
		t.Errorf("fee: %d  expected: %d", tx.Fee(), 21000000000000)
	}
}
