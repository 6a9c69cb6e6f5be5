// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package tax implements the "taxjar tax" command group.
package tax

import (
	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// Command returns the "tax" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "tax",
		Summary: "Calculate sales tax for an order",
		Subcommands: []*cli.Command{
			calculateCommand(),
		},
	}
}
