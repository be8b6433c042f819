// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

// OperationKind - discriminator for the operation variants
type OperationKind int

const (
	KindReveal OperationKind = iota
	KindTransaction
)

// one byte tags used in the forged binary form
const (
	tagReveal      = 107
	tagTransaction = 108
)

// Operation - one element of an operation batch
//
// a closed set: the codec switches on Kind, never on shape
type Operation interface {
	Kind() OperationKind
}

// Reveal - publishes the sender's public key before its first spend
type Reveal struct {
	Source       string `json:"source"`
	Fee          uint64 `json:"fee,string"`
	Counter      uint64 `json:"counter,string"`
	GasLimit     uint64 `json:"gas_limit,string"`
	StorageLimit uint64 `json:"storage_limit,string"`
	PublicKey    string `json:"public_key"` // edpk form
}

// Transaction - a single spend
type Transaction struct {
	Source       string `json:"source"`
	Fee          uint64 `json:"fee,string"`
	Counter      uint64 `json:"counter,string"`
	GasLimit     uint64 `json:"gas_limit,string"`
	StorageLimit uint64 `json:"storage_limit,string"`
	Amount       uint64 `json:"amount,string"`
	Destination  string `json:"destination"`
}

func (r *Reveal) Kind() OperationKind      { return KindReveal }
func (t *Transaction) Kind() OperationKind { return KindTransaction }

// UnsignedTransaction - an operation batch against one branch
//
// never mutated after Prepare returns it
type UnsignedTransaction struct {
	Branch   string      `json:"branch"`
	Contents []Operation `json:"contents"`
}

// ProtocolID - registry identifier of the owning chain
func (tx *UnsignedTransaction) ProtocolID() string {
	return Identifier
}
