// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity_test

import (
	"bytes"
	"testing"

	"github.com/airgap-inc/coinkit/aeternity"
	"github.com/airgap-inc/coinkit/fault"
)

func fixtureSpend(t *testing.T) *aeternity.SpendTransaction {
	t.Helper()

	sender, err := aeternity.AddressFromPublicKey(bytes.Repeat([]byte{0x11}, 32))
	if nil != err {
		t.Fatalf("sender error: %s", err)
	}
	recipient, err := aeternity.AddressFromPublicKey(bytes.Repeat([]byte{0x22}, 32))
	if nil != err {
		t.Fatalf("recipient error: %s", err)
	}

	return &aeternity.SpendTransaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    1000,
		Fee:       2,
		TTL:       0,
		Nonce:     1,
		NetworkID: aeternity.NetworkMainnet,
	}
}

// hand-assembled wire bytes of the fixture spend
func fixtureForged() []byte {

	expected := []byte{
		0xf8, 0x4d, // list, 77 payload bytes
		0x0c, // spend object tag
		0x01, // object version
	}
	expected = append(expected, 0xa1, 0x01) // 33 byte sender id
	expected = append(expected, bytes.Repeat([]byte{0x11}, 32)...)
	expected = append(expected, 0xa1, 0x01) // 33 byte recipient id
	expected = append(expected, bytes.Repeat([]byte{0x22}, 32)...)
	expected = append(expected,
		0x82, 0x03, 0xe8, // amount 1000
		0x02, // fee
		0x80, // ttl 0
		0x01, // nonce
		0x80, // empty payload
	)
	return expected
}

func TestForgeTransaction(t *testing.T) {

	forged, err := aeternity.ForgeTransaction(fixtureSpend(t))
	if nil != err {
		t.Fatalf("forge error: %s", err)
	}

	expected := fixtureForged()
	if !bytes.Equal(expected, forged) {
		t.Fatalf("forged: %x  expected: %x", forged, expected)
	}
}

func TestParseTransaction(t *testing.T) {

	spend := fixtureSpend(t)
	forged, err := aeternity.ForgeTransaction(spend)
	if nil != err {
		t.Fatalf("forge error: %s", err)
	}

	parsed, err := aeternity.ParseTransaction(forged)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if spend.Sender != parsed.Sender {
		t.Errorf("sender: %q  expected: %q", parsed.Sender, spend.Sender)
	}
	if spend.Recipient != parsed.Recipient {
		t.Errorf("recipient: %q  expected: %q", parsed.Recipient, spend.Recipient)
	}
	if spend.Amount != parsed.Amount {
		t.Errorf("amount: %d  expected: %d", parsed.Amount, spend.Amount)
	}
	if spend.Fee != parsed.Fee {
		t.Errorf("fee: %d  expected: %d", parsed.Fee, spend.Fee)
	}
	if spend.Nonce != parsed.Nonce {
		t.Errorf("nonce: %d  expected: %d", parsed.Nonce, spend.Nonce)
	}
	if 0 != len(parsed.Payload) {
		t.Errorf("payload: %x  expected empty", parsed.Payload)
	}
	if aeternity.NetworkMainnet != parsed.NetworkID {
		t.Errorf("network: %q  expected: %q", parsed.NetworkID, aeternity.NetworkMainnet)
	}
}

// a corrupted sender address aborts forging with no partial output
func TestForgeBadSender(t *testing.T) {

	spend := fixtureSpend(t)
	spend.Sender = "ak_invalid"

	forged, err := aeternity.ForgeTransaction(spend)
	if nil == err {
		t.Fatal("unexpected success")
	}
	if nil != forged {
		t.Fatalf("partial output: %x", forged)
	}
}

// a signed-transaction tuple is not a spend
func TestParseWrongTag(t *testing.T) {

	forged := fixtureForged()
	forged[2] = 0x0b // signed transaction object tag

	_, err := aeternity.ParseTransaction(forged)
	if fault.ErrUnsupportedOperationKind != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrUnsupportedOperationKind)
	}
}

func TestParseGarbage(t *testing.T) {

	_, err := aeternity.ParseTransaction([]byte{0xf9, 0x01})
	if fault.ErrCannotDecodeTransaction != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrCannotDecodeTransaction)
	}
}
