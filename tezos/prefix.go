// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

// base58check version prefixes, one per semantic role
//
// chain-intrinsic constants, process-wide and read-only
var (
	prefixTZ1 = []byte{6, 161, 159} // ed25519 public key hash
	prefixTZ2 = []byte{6, 161, 161} // secp256k1 public key hash
	prefixTZ3 = []byte{6, 161, 164} // p256 public key hash
	prefixKT1 = []byte{2, 90, 121}  // originated contract

	prefixBlock     = []byte{1, 52}                // operation branch
	prefixOperation = []byte{5, 116}               // operation hash
	prefixEdpk      = []byte{13, 15, 37, 217}      // ed25519 public key
	prefixEdsk      = []byte{43, 246, 78, 7}       // ed25519 secret key
	prefixEdsig     = []byte{9, 245, 205, 134, 18} // ed25519 signature
)

// one byte curve discriminators used inside forged operations
const (
	curveTagEd25519   = 0x00
	curveTagSecp256k1 = 0x01
	curveTagP256      = 0x02
)

// contract id discriminators
const (
	contractTagImplicit   = 0x00
	contractTagOriginated = 0x01
)
