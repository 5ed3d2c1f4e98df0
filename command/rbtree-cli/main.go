// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "rbtree-cli"
	app.Usage = "exercise a red-black tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert keys in order and display the resulting tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " show the value stored with each key",
				},
			},
			Action: runInsert,
		},
		{
			Name:      "scenario",
			Usage:     "run a named sequence of operations: " + scenarioNames(),
			ArgsUsage: "NAME",
			Action:    runScenario,
		},
		{
			Name:  "run",
			Usage: "run one randomised workload round",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10000,
					Usage: " number of random keys `N`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random seed `S`, 0 for time based",
				},
				cli.Float64Flag{
					Name:  "delete-ratio, r",
					Value: 0.5,
					Usage: " chance `R` of deleting after each insert",
				},
				cli.IntFlag{
					Name:  "check-every, e",
					Value: 1,
					Usage: " validate the tree every `N` operations",
				},
				cli.IntFlag{
					Name:  "rate",
					Value: 0,
					Usage: " operations per second `N`, 0 for unlimited",
				},
			},
			Action: runWorkload,
		},
		{
			Name:  "version",
			Usage: "display rbtree-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
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
