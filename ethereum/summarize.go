// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum

import (
	"github.com/airgap-inc/coinkit/protocol"
)

// Summarize - chain-agnostic projection of a transfer
//
// a transaction recovered from forged bytes alone has no sender; one
// built by Prepare, or recovered from a signed payload, does
func Summarize(tx *Transaction, watched []string) (*protocol.AirGapTransaction, error) {

	from := []string{}
	if "" != tx.From {
		from = append(from, tx.From)
	}

	to := []string{tx.To}
	return &protocol.AirGapTransaction{
		Amount:    tx.Value.Uint64(),
		Fee:       tx.Fee(),
		From:      from,
		To:        to,
		IsInbound: protocol.Inbound(to, watched),
		Protocol:  Identifier,
	}, nil
}
