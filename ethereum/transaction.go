// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ethereum

import (
	"math/big"
)

// ChainMainnet - replay protection id mixed into every signature
var ChainMainnet = big.NewInt(1)

// a plain value transfer always costs exactly this much gas
const transferGas = 21000

// Transaction - single value transfer
//
// the flat fee is carried as gas price times the fixed transfer gas;
// amounts are in wei.  Immutable after Prepare.
type Transaction struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       string
	Value    *big.Int
	Data     []byte
	ChainID  *big.Int

	// sender, derived during Prepare; display only, not forged
	From string
}

// ProtocolID - registry token of the owning variant
func (tx *Transaction) ProtocolID() string {
	return Identifier
}

// Fee - total cost of executing the transfer, in wei
func (tx *Transaction) Fee() uint64 {
	fee := new(big.Int).Mul(tx.GasPrice, new(big.Int).SetUint64(tx.Gas))
	return fee.Uint64()
}
