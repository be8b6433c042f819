// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/configuration"
	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/keypair"
	"github.com/airgap-inc/coinkit/protocol"
)

// common errors - keep in alphabetic order
const (
	ErrIndexOutOfRange   = fault.InvalidError("address index out of range")
	ErrNoNodeConfigured  = fault.InvalidError("no node configured for protocol")
	ErrNoPayload         = fault.InvalidError("payload or file argument is required")
	ErrRequiredArguments = fault.InvalidError("missing required arguments")
)

func loadConfiguration(m *metadata) error {

	config, err := configuration.GetConfiguration(m.file)
	if nil != err {
		return err
	}
	m.config = config

	err = config.EnsureDirectory()
	if nil != err {
		return err
	}
	err = logger.Initialise(logger.Configuration{
		Directory: config.Logging.Directory,
		File:      config.Logging.File,
		Size:      config.Logging.Size,
		Count:     config.Logging.Count,
		Console:   config.Logging.Console,
		Levels:    config.Logging.Levels,
	})
	if nil != err {
		return err
	}

	// last-chance log channel for panics
	return fault.Initialise()
}

// resolve the protocol: global flag first, then the config default,
// then the tezos variant
func protocolFor(c *cli.Context, m *metadata) (protocol.CoinProtocol, error) {

	identifier := c.GlobalString("protocol")
	if "" == identifier && nil != m.config {
		identifier = m.config.DefaultProtocol
	}
	if "" == identifier {
		identifier = "xtz"
	}
	return m.registry.Get(identifier)
}

func gatewayFor(m *metadata, identifier string) (gateway.Gateway, error) {

	url := m.config.NodeURL(identifier)
	if "" == url {
		return nil, ErrNoNodeConfigured
	}
	return gateway.NewClient(url), nil
}

// derive the key pair named by the command's mnemonic/path flags
func deriveKeyPair(c *cli.Context, p protocol.CoinProtocol) (*keypair.KeyPair, string, error) {

	mnemonic := c.String("mnemonic")
	if "" == mnemonic {
		return nil, "", ErrRequiredArguments
	}

	seed, err := keypair.SeedFromMnemonic(mnemonic, c.String("passphrase"))
	if nil != err {
		return nil, "", err
	}

	path := c.String("path")
	if "" == path {
		path = p.StandardDerivationPath()
	}

	kp, err := p.DeriveKeyPair(seed, path)
	if nil != err {
		return nil, "", err
	}
	return kp, path, nil
}

// payload from the --payload flag or, failing that, a file of hex
func readPayload(c *cli.Context) ([]byte, error) {

	payload := c.String("payload")
	if "" == payload {
		file := c.String("file")
		if "" == file {
			return nil, ErrNoPayload
		}
		data, err := os.ReadFile(file)
		if nil != err {
			return nil, err
		}
		payload = strings.TrimSpace(string(data))
	}
	return hex.DecodeString(strings.TrimPrefix(payload, "0x"))
}

// addressIndex - the --index flag bounded to the uint32 range
// derivation works in; a silent truncation would derive a different
// address than requested
func addressIndex(c *cli.Context) (uint32, error) {
	index := c.Uint64("index")
	if index > math.MaxUint32 {
		return 0, ErrIndexOutOfRange
	}
	return uint32(index), nil
}

// watched addresses for a protocol, empty without a config file
func watchedFor(m *metadata, identifier string) []string {
	if nil == m.config {
		return nil
	}
	return m.config.Watched[identifier]
}

func amountArguments(c *cli.Context, p protocol.CoinProtocol) (recipients []string, amounts []uint64, fee uint64, err error) {

	recipients = c.StringSlice("recipient")
	decimals := c.StringSlice("amount")
	if 0 == len(recipients) || len(recipients) != len(decimals) {
		return nil, nil, 0, ErrRequiredArguments
	}

	amounts = make([]uint64, len(decimals))
	for i, s := range decimals {
		amounts[i], err = protocol.ParseUnits(s, p.Decimals())
		if nil != err {
			return nil, nil, 0, fmt.Errorf("amount %q: %w", s, err)
		}
	}

	fee = p.FeeDefaults().Medium
	if s := c.String("fee"); "" != s {
		fee, err = protocol.ParseUnits(s, p.FeeDecimals())
		if nil != err {
			return nil, nil, 0, fmt.Errorf("fee %q: %w", s, err)
		}
	}
	return recipients, amounts, fee, nil
}
