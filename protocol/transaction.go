// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

// AirGapTransaction - chain-agnostic transaction summary
//
// a pure projection for display and audit; it is never converted back
// into a chain-native structure
type AirGapTransaction struct {
	Amount      uint64   `json:"amount,string"`
	Fee         uint64   `json:"fee,string"`
	From        []string `json:"from"`
	To          []string `json:"to"`
	IsInbound   bool     `json:"isInbound"`
	Protocol    string   `json:"protocol"`
	Network     string   `json:"network,omitempty"`
	Hash        string   `json:"hash,omitempty"`
	Timestamp   int64    `json:"timestamp,omitempty"`
	BlockHeight int64    `json:"blockHeight,omitempty"`
}

// Inbound - membership test of the destination addresses against a
// watched address set
func Inbound(to []string, watched []string) bool {
	for _, destination := range to {
		for _, w := range watched {
			if destination == w {
				return true
			}
		}
	}
	return false
}
