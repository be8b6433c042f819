// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

// object and serialisation version tags of the spend wire tuple
const (
	objectTagSignedTransaction = 11
	objectTagSpendTransaction  = 12

	objectVersion = 1
)

// object id discriminator: account ids are the tag byte followed by
// the raw public key
const idTagAccount = 0x01

// NetworkMainnet - domain separation string mixed into every
// signature; a transaction signed for one network verifies on no
// other
const NetworkMainnet = "ae_mainnet"

// SpendTransaction - single value transfer
//
// amounts are in aettos.  Immutable after Prepare; a fee change is a
// fresh Prepare.
type SpendTransaction struct {
	Sender    string
	Recipient string
	Amount    uint64
	Fee       uint64
	TTL       uint64
	Nonce     uint64
	Payload   []byte
	NetworkID string
}

// ProtocolID - registry token of the owning variant
func (tx *SpendTransaction) ProtocolID() string {
	return Identifier
}
