// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aeternity

import (
	"strings"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/util"
)

// textual role prefixes; the checksum covers only the payload, the
// role tag stays outside the base58 body
const (
	prefixAccount     = "ak_"
	prefixTransaction = "tx_"
	prefixHash        = "th_"
	prefixSignature   = "sg_"
)

// Encode - role prefix followed by checksummed base58 of the payload
func Encode(prefix string, payload []byte) string {
	return prefix + util.ToBase58Check(nil, payload)
}

// Decode - strip and verify a role prefix, then the checksum
func Decode(value string, prefix string) ([]byte, error) {
	if !strings.HasPrefix(value, prefix) {
		return nil, fault.ErrPrefixMismatch
	}
	return util.FromBase58Check(value[len(prefix):], nil)
}
