package main

import "github.com/urfave/cli/v2"

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write output to `FILE`",
	}

	libFlag = &cli.StringFlag{
		Name:    "lib",
		Aliases: []string{"l"},
		Usage:   "load data modules / libs from `DIR`",
	}

	paramFlag = &cli.StringSliceFlag{
		Name:    "param",
		Aliases: []string{"p"},
		Usage:   "set importer parameter `NAME=VALUE` (repeatable)",
	}

	templateFlag = &cli.StringFlag{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "render output through `TEMPLATE`",
	}

	baseURLFlag = &cli.StringFlag{
		Name:    "base-url",
		Aliases: []string{"b"},
		Usage:   "base `URL` handed to output templates",
	}

	selectedContextFlag = &cli.StringFlag{
		Name:        "context",
		Usage:       "use the named `CONTEXT` instead of the selected one",
		DefaultText: "<selected>",
	}
)
