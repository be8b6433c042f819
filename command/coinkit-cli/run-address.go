// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/keypair"
	"github.com/airgap-inc/coinkit/protocol"
)

type derivedAddress struct {
	Protocol  string `json:"protocol"`
	Path      string `json:"path"`
	Index     uint32 `json:"index,omitempty"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := protocolFor(c, m)
	if nil != err {
		return err
	}

	index, err := addressIndex(c)
	if nil != err {
		return err
	}

	var kp *keypair.KeyPair
	var path string

	if 0 == index {
		kp, path, err = deriveKeyPair(c, p)
		if nil != err {
			return err
		}
	} else {
		// address indexes only exist on HD-capable chains
		hd, ok := p.(protocol.HDProtocol)
		if !ok || !p.SupportsHD() {
			return fault.ErrNotSupported
		}
		mnemonic := c.String("mnemonic")
		if "" == mnemonic {
			return ErrRequiredArguments
		}
		seed, err := keypair.SeedFromMnemonic(mnemonic, c.String("passphrase"))
		if nil != err {
			return err
		}
		kp, err = hd.DeriveKeyPairAtIndex(seed, 0, index)
		if nil != err {
			return err
		}
	}

	address, err := p.AddressFromPublicKey(kp.PublicKey)
	if nil != err {
		return err
	}

	printJson(m.w, derivedAddress{
		Protocol:  p.Identifier(),
		Path:      path,
		Index:     index,
		PublicKey: kp.Raw().PublicKey,
		Address:   address,
	})
	return nil
}
