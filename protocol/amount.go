// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"github.com/shopspring/decimal"

	"github.com/airgap-inc/coinkit/fault"
)

// FormatUnits - render base units as a decimal string at the given
// precision, e.g. 1500 µꜩ at 6 decimals → "0.0015"
func FormatUnits(amount uint64, decimals int32) string {
	return decimal.NewFromUint64(amount).Shift(-decimals).String()
}

// ParseUnits - parse a human decimal string into base units
//
// anything with more fractional digits than the chain supports is
// rejected rather than silently truncated
func ParseUnits(s string, decimals int32) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}

	shifted := d.Shift(decimals)
	if !shifted.IsInteger() || shifted.IsNegative() {
		return 0, fault.ErrInvalidAmount
	}

	// base units are uint64 throughout; a value past that range
	// must fail here, Uint64 alone would return the low 64 bits
	value := shifted.BigInt()
	if !value.IsUint64() {
		return 0, fault.ErrInvalidAmount
	}
	return value.Uint64(), nil
}
