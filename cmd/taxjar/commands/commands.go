// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete taxjar CLI command tree.
package commands

import (
	"fmt"

	categoriescmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/categories"
	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/configcmd"
	nexuscmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/nexus"
	orderscmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/orders"
	ratescmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/rates"
	refundscmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/refunds"
	taxcmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/tax"
	validatecmd "github.com/taxjar-tools/taxjar-cli/cmd/taxjar/validate"
	"github.com/taxjar-tools/taxjar-cli/lib/version"
)

// Root builds and returns the complete taxjar CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "taxjar",
		Description: `taxjar: sales-tax calculations, rate lookups, and transaction
reporting against the TaxJar API.

Credentials resolve environment-first: TAXJAR_API_KEY wins over the
value stored by "taxjar config set". Every command accepts --json for
machine-readable output.`,
		Subcommands: []*cli.Command{
			configcmd.Command(),
			taxcmd.Command(),
			ratescmd.Command(),
			nexuscmd.Command(),
			categoriescmd.Command(),
			orderscmd.Command(),
			refundscmd.Command(),
			validatecmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("taxjar %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Store the API token",
				Command:     "taxjar config set --api-key <key>",
			},
			{
				Description: "Calculate tax on an order",
				Command:     "taxjar tax calculate --from-zip 94043 --from-state CA --to-zip 90002 --to-state CA --amount 100 --shipping 5",
			},
			{
				Description: "Look up rates for a postal code",
				Command:     "taxjar rates lookup 90404 --state CA",
			},
			{
				Description: "List nexus regions as JSON",
				Command:     "taxjar nexus list --json",
			},
			{
				Description: "Record an order transaction",
				Command:     "taxjar orders create --transaction-id ORDER-123 --date 2026/03/15 --to-country US --to-zip 90002 --to-state CA --amount 16.50 --shipping 1.50 --sales-tax 0.95",
			},
		},
	}
}
