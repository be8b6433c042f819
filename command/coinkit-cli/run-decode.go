// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/protocol"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	payload, err := readPayload(c)
	if nil != err {
		return err
	}

	watched := watchedFor(m, p.Identifier())

	var summary *protocol.AirGapTransaction
	if c.Bool("signed") {
		summary, err = p.SummarizeSigned(payload, watched)
	} else {
		var tx protocol.UnsignedTransaction
		tx, err = p.Parse(payload)
		if nil == err {
			summary, err = p.Summarize(tx, watched)
		}
	}
	if nil != err {
		return err
	}

	printJson(m.w, summary)
	return nil
}
