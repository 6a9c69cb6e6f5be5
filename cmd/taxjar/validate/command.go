// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate implements the "taxjar validate" command group:
// address standardization and VAT registry checks.
package validate

import (
	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// Command returns the "validate" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Validate addresses and VAT numbers",
		Subcommands: []*cli.Command{
			addressCommand(),
			vatCommand(),
		},
	}
}
