// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package rates implements the "taxjar rates" command group.
package rates

import (
	"github.com/shopspring/decimal"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// Command returns the "rates" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "rates",
		Summary: "Look up sales-tax rates by location",
		Subcommands: []*cli.Command{
			lookupCommand(),
			summaryCommand(),
		},
	}
}

// percent renders an API rate string ("0.0625") as a percentage
// ("6.25%"). Unparseable values pass through verbatim rather than
// dropping data.
func percent(rate string) string {
	value, err := decimal.NewFromString(rate)
	if err != nil {
		return rate
	}
	return cli.Percent(value.InexactFloat64())
}
