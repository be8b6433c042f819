// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/protocol"
)

// Summarize - chain-agnostic projection of a spend
func Summarize(tx *SpendTransaction, watched []string) (*protocol.AirGapTransaction, error) {

	to := []string{tx.Recipient}
	return &protocol.AirGapTransaction{
		Amount:    tx.Amount,
		Fee:       tx.Fee,
		From:      []string{tx.Sender},
		To:        to,
		IsInbound: protocol.Inbound(to, watched),
		Protocol:  Identifier,
		Network:   tx.NetworkID,
	}, nil
}

// unwrap a signed tuple without verifying: display needs the fields,
// not the signature
func innerTransaction(signed []byte) ([]byte, error) {
	tuple := signedTuple{}
	err := rlp.DecodeBytes(signed, &tuple)
	if nil != err {
		return nil, fault.ErrCannotDecodeTransaction
	}
	if objectTagSignedTransaction != tuple.Tag || objectVersion != tuple.Version {
		return nil, fault.ErrCannotDecodeTransaction
	}
	return tuple.Inner, nil
}
