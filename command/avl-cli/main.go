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
	file    string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "inspect an ordered key set through a balanced tree"
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
			Name:  "file, f",
			Value: "",
			Usage: "*key file, one key per line `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "show",
			Usage:     "print the tree shape with height and balance annotations",
			ArgsUsage: "\n   (* = required)",
			Action:    runShow,
		},
		{
			Name:      "rank",
			Usage:     "one based rank of KEY, zero when absent",
			ArgsUsage: "KEY",
			Action:    runRank,
		},
		{
			Name:      "kth",
			Usage:     "fetch the N-th smallest key",
			ArgsUsage: "N",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "largest, l",
					Usage: " count from the largest instead",
				},
			},
			Action: runKth,
		},
		{
			Name:      "range",
			Usage:     "count and list the keys in [LOW, HIGH]",
			ArgsUsage: "LOW HIGH",
			Action:    runRange,
		},
		{
			Name:   "audit",
			Usage:  "re-derive every tree invariant",
			Action: runAudit,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				file:    c.GlobalString("file"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
