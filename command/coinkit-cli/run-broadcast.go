// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"
)

type broadcastResult struct {
	Protocol string `json:"protocol"`
	Hash     string `json:"hash"`
}

func runBroadcast(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	signed, err := readPayload(c)
	if nil != err {
		return err
	}

	g, err := gatewayFor(m, p.Identifier())
	if nil != err {
		return err
	}

	hash, err := p.Broadcast(context.Background(), g, signed)
	if nil != err {
		return err
	}

	printJson(m.w, broadcastResult{
		Protocol: p.Identifier(),
		Hash:     hash,
	})
	return nil
}
