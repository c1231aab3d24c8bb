// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fest-assign",
		Usage: "Assign jugglers to circuits",
		Commands: []*cli.Command{
			runCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var runCmd = &cli.Command{
	Name:    "run",
	Usage:   "Run the assignment and write the rosters",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input fest file (.txt or .yaml)",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: true,
			Usage:    "specify the output roster file",
		},
		&cli.BoolFlag{
			Name:     "json",
			Required: false,
			Usage:    "write the rosters as JSON instead of text",
		},
		&cli.BoolFlag{
			Name:     "verbose",
			Required: false,
			Usage:    "trace seatings and bumps",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			input   = ctx.String("input")
			output  = ctx.String("output")
			asJSON  = ctx.Bool("json")
			verbose = ctx.Bool("verbose")
		)
		return doRun(ctx.Context, input, output, asJSON, verbose)
	},
}
