// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"strconv"
	"strings"

	"github.com/airgap-inc/coinkit/fault"
)

// HardenedOffset - added to an index for a hardened derivation level
const HardenedOffset = uint32(0x80000000)

// PathLevel - one level of a hierarchical derivation path
type PathLevel struct {
	Index    uint32
	Hardened bool
}

// ParsePath - parse a path of the form m/44h/1729h/0h/0h
//
// both "h" and "'" mark a hardened level; the leading "m/" is
// optional; an empty remainder yields no levels (the master key)
func ParsePath(path string) ([]PathLevel, error) {

	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "m/")
	if "" == path || "m" == path {
		return []PathLevel{}, nil
	}

	segments := strings.Split(path, "/")
	levels := make([]PathLevel, len(segments))

	for i, segment := range segments {
		hardened := false
		if strings.HasSuffix(segment, "h") || strings.HasSuffix(segment, "'") {
			hardened = true
			segment = segment[:len(segment)-1]
		}

		value, err := strconv.ParseUint(segment, 10, 32)
		if nil != err || value >= uint64(HardenedOffset) {
			return nil, fault.ErrInvalidDerivationPath
		}

		levels[i] = PathLevel{
			Index:    uint32(value),
			Hardened: hardened,
		}
	}
	return levels, nil
}
