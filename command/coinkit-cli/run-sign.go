// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
)

type signedPayload struct {
	Protocol string `json:"protocol"`
	Payload  string `json:"payload"`
}

// the offline half: nothing here may touch a gateway
func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	forged, err := readPayload(c)
	if nil != err {
		return err
	}

	kp, path, err := deriveKeyPair(c, p)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signing with key at %s\n", path)
	}

	signed, err := p.Sign(forged, kp.PrivateKey)
	if nil != err {
		return err
	}

	printJson(m.w, signedPayload{
		Protocol: p.Identifier(),
		Payload:  hex.EncodeToString(signed),
	})
	return nil
}
