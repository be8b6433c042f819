// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

import (
	"math/big"

	"github.com/airgap-inc/coinkit/fault"
)

// ToZarith - encode a non-negative integer as a little-endian
// base-128 sequence
//
// each output byte carries seven value bits; the high bit is set on
// every byte except the last
func ToZarith(value *big.Int) []byte {
	if 0 == value.Sign() {
		return []byte{0x00}
	}

	n := new(big.Int).Set(value)
	sevenBits := big.NewInt(0x7f)
	scratch := new(big.Int)

	result := make([]byte, 0, (value.BitLen()+6)/7)
	for 0 != n.Sign() {
		b := byte(scratch.And(n, sevenBits).Uint64())
		n.Rsh(n, 7)
		if 0 != n.Sign() {
			b |= 0x80
		}
		result = append(result, b)
	}
	return result
}

// FromZarith - decode a zarith integer from the start of a buffer
//
// returns the value and the number of bytes consumed
func FromZarith(buffer []byte) (*big.Int, int, error) {
	value := new(big.Int)
	scratch := new(big.Int)

	for i, b := range buffer {
		scratch.SetUint64(uint64(b & 0x7f))
		scratch.Lsh(scratch, uint(7*i))
		value.Or(value, scratch)
		if 0 == b&0x80 {
			return value, i + 1, nil
		}
	}
	return nil, 0, fault.ErrBufferTooShort
}

// appendNat - append a uint64 in zarith form
func appendNat(buffer []byte, value uint64) []byte {
	return append(buffer, ToZarith(new(big.Int).SetUint64(value))...)
}

// parseNat - read a zarith uint64, returning value and bytes consumed
func parseNat(buffer []byte) (uint64, int, error) {
	value, length, err := FromZarith(buffer)
	if nil != err {
		return 0, 0, err
	}
	if !value.IsUint64() {
		return 0, 0, fault.ErrFieldTooLong
	}
	return value.Uint64(), length, nil
}
