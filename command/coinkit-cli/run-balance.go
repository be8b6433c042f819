// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/aeternity"
	"github.com/airgap-inc/coinkit/ethereum"
	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/gateway"
	"github.com/airgap-inc/coinkit/protocol"
	"github.com/airgap-inc/coinkit/tezos"
)

type balanceResult struct {
	Protocol  string   `json:"protocol"`
	Addresses []string `json:"addresses"`
	Balance   string   `json:"balance"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	addresses := c.Args()
	if 0 == len(addresses) {
		addresses = watchedFor(m, p.Identifier())
	}
	if 0 == len(addresses) {
		return ErrRequiredArguments
	}
	for _, address := range addresses {
		err = p.ValidateAddress(address)
		if nil != err {
			return err
		}
	}

	fetch, err := balanceFetcher(p.Identifier())
	if nil != err {
		return err
	}
	g, err := gatewayFor(m, p.Identifier())
	if nil != err {
		return err
	}

	total, err := gateway.AggregateBalances(context.Background(), g, fetch, addresses)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Protocol:  p.Identifier(),
		Addresses: addresses,
		Balance:   protocol.FormatUnits(total, p.Decimals()),
	})
	return nil
}

func balanceFetcher(identifier string) (gateway.BalanceFunc, error) {
	switch identifier {
	case tezos.Identifier:
		return tezos.FetchBalance, nil
	case aeternity.Identifier:
		return aeternity.FetchBalance, nil
	case ethereum.Identifier:
		return ethereum.FetchBalance, nil
	default:
		return nil, fault.ErrNotSupported
	}
}
