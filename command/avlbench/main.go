// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

const (
	defaultBatch = 100000
	defaultSeed  = 1
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avlbench"
	app.Usage = "compare in-memory ordered stores"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "stores",
			Usage:  "list the store names",
			Flags:  []cli.Flag{},
			Action: runStores,
		},
		{
			Name:      "run",
			Usage:     "set, get then delete a batch of keys in each store",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "store, s",
					Usage: " `NAME` of store to time, repeat for more [default all]",
				},
				cli.IntFlag{
					Name:  "batch, b",
					Value: defaultBatch,
					Usage: " number of keys `N`",
				},
				cli.BoolFlag{
					Name:  "random, r",
					Usage: " random instead of serial keys",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaultSeed,
					Usage: " random key `SEED`",
				},
				cli.BoolFlag{
					Name:  "validate",
					Usage: " check each store after every change",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " output JSON instead of a table",
				},
			},
			Action: runRun,
		},
		{
			Name:   "version",
			Usage:  "display avlbench version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
