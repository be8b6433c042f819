// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

import (
	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/protocol"
)

// Summarize - chain-agnostic projection of an operation batch
//
// reveals are skipped and, when a batch carries several spends, only
// the last one is reported.  A deliberate simplification carried over
// from the display layer this feeds; multi-spend batches lose detail
// here.
func Summarize(tx *UnsignedTransaction, watched []string) (*protocol.AirGapTransaction, error) {

	var last *Transaction
	for _, operation := range tx.Contents {
		if spend, ok := operation.(*Transaction); ok {
			last = spend
		}
	}
	if nil == last {
		return nil, fault.ErrUnsupportedOperationKind
	}

	to := []string{last.Destination}
	return &protocol.AirGapTransaction{
		Amount:    last.Amount,
		Fee:       last.Fee,
		From:      []string{last.Source},
		To:        to,
		IsInbound: protocol.Inbound(to, watched),
		Protocol:  Identifier,
	}, nil
}
