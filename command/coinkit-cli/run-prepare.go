// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/protocol"
)

type preparedTransaction struct {
	Protocol string                      `json:"protocol"`
	Payload  string                      `json:"payload"`
	Summary  *protocol.AirGapTransaction `json:"summary"`
}

func runPrepare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	publicKey, err := hex.DecodeString(c.String("public-key"))
	if nil != err || 0 == len(publicKey) {
		return ErrRequiredArguments
	}

	recipients, amounts, fee, err := amountArguments(c, p)
	if nil != err {
		return err
	}

	g, err := gatewayFor(m, p.Identifier())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "prepare: %d recipient(s)  fee: %s\n",
			len(recipients), protocol.FormatUnits(fee, p.FeeDecimals()))
	}

	tx, err := p.Prepare(context.Background(), g, publicKey, recipients, amounts, fee)
	if nil != err {
		return err
	}

	forged, err := p.Forge(tx)
	if nil != err {
		return err
	}

	summary, err := p.Summarize(tx, watchedFor(m, p.Identifier()))
	if nil != err {
		return err
	}

	printJson(m.w, preparedTransaction{
		Protocol: p.Identifier(),
		Payload:  hex.EncodeToString(forged),
		Summary:  summary,
	})
	return nil
}
