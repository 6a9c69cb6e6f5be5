// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package refunds implements the "taxjar refunds" command group.
package refunds

import (
	"io"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// Command returns the "refunds" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "refunds",
		Summary: "Manage refund transactions",
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			createCommand(),
		},
	}
}

// renderRefund writes the human-mode view of a refund transaction.
func renderRefund(w io.Writer, refund *taxjar.Refund) {
	fields := []cli.Field{
		{Label: "Transaction", Value: refund.TransactionID},
		{Label: "References", Value: refund.TransactionReferenceID},
		{Label: "Date", Value: refund.TransactionDate},
	}
	if refund.Provider != "" {
		fields = append(fields, cli.Field{Label: "Provider", Value: refund.Provider})
	}
	fields = append(fields,
		cli.Field{Label: "Amount", Value: cli.Money(refund.Amount)},
		cli.Field{Label: "Shipping", Value: cli.Money(refund.Shipping)},
		cli.Field{Label: "Sales tax", Value: cli.Money(refund.SalesTax)},
	)
	cli.RenderFields(w, fields)
}
