// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgap-inc/coinkit/aeternity"
	"github.com/airgap-inc/coinkit/bitcoin"
	"github.com/airgap-inc/coinkit/ethereum"
	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/protocol"
	"github.com/airgap-inc/coinkit/tezos"
)

func testRegistry() *protocol.Registry {
	return protocol.NewRegistry(
		tezos.New(),
		aeternity.New(),
		ethereum.New(),
		bitcoin.New(),
	)
}

func TestRegistryGet(t *testing.T) {

	r := testRegistry()

	for _, identifier := range []string{"xtz", "ae", "eth", "btc"} {
		p, err := r.Get(identifier)
		require.NoError(t, err, identifier)
		assert.Equal(t, identifier, p.Identifier())
	}

	// case-insensitive lookup
	p, err := r.Get("XTZ")
	require.NoError(t, err)
	assert.Equal(t, "xtz", p.Identifier())

	_, err = r.Get("doge")
	assert.Equal(t, fault.ErrProtocolNotFound, err)
}

func TestRegistryGetHD(t *testing.T) {

	r := testRegistry()

	for _, identifier := range []string{"eth", "btc"} {
		hd, err := r.GetHD(identifier)
		require.NoError(t, err, identifier)
		assert.True(t, hd.SupportsHD())
	}

	// hardened-only curves fail fast, not per-method
	for _, identifier := range []string{"xtz", "ae"} {
		_, err := r.GetHD(identifier)
		assert.Equal(t, fault.ErrNotSupported, err, identifier)
	}
}

func TestRegistryIdentifiers(t *testing.T) {

	r := testRegistry()
	assert.Equal(t, []string{"ae", "btc", "eth", "xtz"}, r.Identifiers())
}

func TestRegistryFirstRegistrationWins(t *testing.T) {

	r := protocol.NewRegistry(tezos.New(), tezos.New())
	assert.Equal(t, []string{"xtz"}, r.Identifiers())
}
