// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"crypto/sha256"

	"github.com/airgap-inc/coinkit/fault"
)

// length of the trailing checksum on all checked encodings
const ChecksumLength = 4

// checksum - first four bytes of SHA256(SHA256(data))
func checksum(data []byte) []byte {
	d := sha256.Sum256(data)
	d = sha256.Sum256(d[:])
	return d[:ChecksumLength]
}

// ToBase58Check - encode prefix ‖ payload ‖ checksum(prefix ‖ payload)
// using the base-58 alphabet
func ToBase58Check(prefix []byte, payload []byte) string {
	buffer := make([]byte, 0, len(prefix)+len(payload)+ChecksumLength)
	buffer = append(buffer, prefix...)
	buffer = append(buffer, payload...)
	buffer = append(buffer, checksum(buffer)...)
	return ToBase58(buffer)
}

// FromBase58Check - decode a checked base-58 string and strip an
// expected version prefix
//
// the checksum is verified before the prefix is examined so a
// corrupted string is never reported as a prefix mismatch
func FromBase58Check(encoded string, expectedPrefix []byte) ([]byte, error) {
	decoded := FromBase58(encoded)
	if 0 == len(decoded) {
		return nil, fault.ErrCannotDecodeAddress
	}
	if len(decoded) < len(expectedPrefix)+ChecksumLength+1 {
		return nil, fault.ErrCannotDecodeAddress
	}

	checksumStart := len(decoded) - ChecksumLength
	if !bytes.Equal(checksum(decoded[:checksumStart]), decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	if !bytes.Equal(decoded[:len(expectedPrefix)], expectedPrefix) {
		return nil, fault.ErrPrefixMismatch
	}

	return decoded[len(expectedPrefix):checksumStart], nil
}
