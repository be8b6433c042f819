// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/airgap-inc/coinkit/aeternity"
	"github.com/airgap-inc/coinkit/bitcoin"
	"github.com/airgap-inc/coinkit/configuration"
	"github.com/airgap-inc/coinkit/ethereum"
	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/protocol"
	"github.com/airgap-inc/coinkit/tezos"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	registry *protocol.Registry
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "coinkit-cli"
	app.Usage = "air-gapped multi-chain wallet operations"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "coinkit-cli.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "protocol, p",
			Value: "",
			Usage: " chain `PROTOCOL` [xtz|ae|eth|btc], default from config",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a mnemonic and its key pair, nothing is stored",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "path, d",
					Value: "",
					Usage: " derivation `PATH`, default is the chain standard path",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "derive the address of a mnemonic",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: "*recovery `MNEMONIC`",
				},
				cli.StringFlag{
					Name:  "passphrase",
					Value: "",
					Usage: " optional mnemonic `PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "path, d",
					Value: "",
					Usage: " derivation `PATH`, default is the chain standard path",
				},
				cli.Uint64Flag{
					Name:  "index, i",
					Value: 0,
					Usage: " address `INDEX` for HD chains",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "prepare",
			Usage:     "build an unsigned transaction from on-chain state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "*sender public key `HEX`",
				},
				cli.StringSliceFlag{
					Name:  "recipient, r",
					Usage: "*recipient `ADDRESS`, repeatable",
				},
				cli.StringSliceFlag{
					Name:  "amount, a",
					Usage: "*decimal `AMOUNT` per recipient, repeatable",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: "",
					Usage: " decimal `FEE`, default is the chain medium tier",
				},
			},
			Action: runPrepare,
		},
		{
			Name:      "sign",
			Usage:     "sign a forged payload offline",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, x",
					Value: "",
					Usage: "+forged payload `HEX`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+`FILE` containing the forged payload hex",
				},
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: "*recovery `MNEMONIC`",
				},
				cli.StringFlag{
					Name:  "passphrase",
					Value: "",
					Usage: " optional mnemonic `PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "path, d",
					Value: "",
					Usage: " derivation `PATH`, default is the chain standard path",
				},
			},
			Action: runSign,
		},
		{
			Name:      "broadcast",
			Usage:     "submit a signed payload to the configured node",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, x",
					Value: "",
					Usage: "+signed payload `HEX`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+`FILE` containing the signed payload hex",
				},
			},
			Action: runBroadcast,
		},
		{
			Name:      "decode",
			Usage:     "summarize a forged or signed payload",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, x",
					Value: "",
					Usage: "+payload `HEX`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+`FILE` containing the payload hex",
				},
				cli.BoolFlag{
					Name:  "signed, s",
					Usage: " payload carries a signature",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "balance",
			Usage:     "total balance of the watched addresses",
			ArgsUsage: "[ADDRESS...]\n   defaults to the watched addresses from the config file",
			Action:    runBalance,
		},
		{
			Name:  "version",
			Usage: "display coinkit-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			file: c.GlobalString("config"),
			registry: protocol.NewRegistry(
				tezos.New(),
				aeternity.New(),
				ethereum.New(),
				bitcoin.New(),
			),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// offline commands must work on a machine that has no
		// configuration at all
		switch c.Args().Get(0) {
		case "prepare", "broadcast", "balance":
			return loadConfiguration(m)
		case "decode":
			// watched addresses improve the summary when present
			if _, err := os.Stat(m.file); nil == err {
				return loadConfiguration(m)
			}
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.config {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
