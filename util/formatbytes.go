// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// FormatBytes - render a byte slice as Go source, eight bytes per
// line, for pasting expected values into codec tests
func FormatBytes(name string, data []byte) string {
	s := strings.Builder{}
	s.WriteString(name + " := []byte{")
	for i, b := range data {
		if 0 == i%8 {
			s.WriteString("\n\t")
		}
		s.WriteString(fmt.Sprintf("0x%02x, ", b))
	}
	s.WriteString("\n}")
	return s.String()
}
