// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/keypair"
)

type generatedKey struct {
	Mnemonic   string `json:"mnemonic"`
	Path       string `json:"path"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	Address    string `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	mnemonic, err := keypair.NewMnemonic()
	if nil != err {
		return err
	}
	seed, err := keypair.SeedFromMnemonic(mnemonic, "")
	if nil != err {
		return err
	}

	path := c.String("path")
	if "" == path {
		path = p.StandardDerivationPath()
	}
	kp, err := p.DeriveKeyPair(seed, path)
	if nil != err {
		return err
	}
	address, err := p.AddressFromPublicKey(kp.PublicKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "protocol: %s  path: %s\n", p.Identifier(), path)
	}

	raw := kp.Raw()
	printJson(m.w, generatedKey{
		Mnemonic:   mnemonic,
		Path:       path,
		PublicKey:  raw.PublicKey,
		PrivateKey: raw.PrivateKey,
		Address:    address,
	})
	return nil
}
