// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"sort"
	"strings"

	"github.com/airgap-inc/coinkit/fault"
)

// Registry - fixed identifier → CoinProtocol mapping
//
// built once at startup and read-only afterwards
type Registry struct {
	protocols map[string]CoinProtocol
}

// NewRegistry - build the registry from a closed set of variants
//
// later duplicates of an identifier are ignored; the first
// registration wins
func NewRegistry(protocols ...CoinProtocol) *Registry {
	m := make(map[string]CoinProtocol, len(protocols))
	for _, p := range protocols {
		identifier := strings.ToLower(p.Identifier())
		if _, ok := m[identifier]; !ok {
			m[identifier] = p
		}
	}
	return &Registry{protocols: m}
}

// Get - resolve a protocol by its identifier token
func (r *Registry) Get(identifier string) (CoinProtocol, error) {
	p, ok := r.protocols[strings.ToLower(identifier)]
	if !ok {
		return nil, fault.ErrProtocolNotFound
	}
	return p, nil
}

// GetHD - resolve a protocol and require hierarchical derivation
//
// fails fast for variants that only derive at their standard path
func (r *Registry) GetHD(identifier string) (HDProtocol, error) {
	p, err := r.Get(identifier)
	if nil != err {
		return nil, err
	}
	hd, ok := p.(HDProtocol)
	if !ok || !p.SupportsHD() {
		return nil, fault.ErrNotSupported
	}
	return hd, nil
}

// Identifiers - sorted list of registered identifiers
func (r *Registry) Identifiers() []string {
	identifiers := make([]string, 0, len(r.protocols))
	for identifier := range r.protocols {
		identifiers = append(identifiers, identifier)
	}
	sort.Strings(identifiers)
	return identifiers
}
