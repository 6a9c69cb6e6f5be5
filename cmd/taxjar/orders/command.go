// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package orders implements the "taxjar orders" command group:
// listing, retrieving, recording, updating, and deleting order
// transactions.
package orders

import (
	"io"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// Command returns the "orders" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "orders",
		Summary: "Manage order transactions",
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

// renderOrder writes the human-mode view of an order transaction,
// skipping optional fields the API left empty.
func renderOrder(w io.Writer, order *taxjar.Order) {
	fields := []cli.Field{
		{Label: "Transaction", Value: order.TransactionID},
		{Label: "Date", Value: order.TransactionDate},
	}
	if order.Provider != "" {
		fields = append(fields, cli.Field{Label: "Provider", Value: order.Provider})
	}
	fields = append(fields,
		cli.Field{Label: "Ship to", Value: shipTo(order.ToCity, order.ToState, order.ToZip, order.ToCountry)},
		cli.Field{Label: "Amount", Value: cli.Money(order.Amount)},
		cli.Field{Label: "Shipping", Value: cli.Money(order.Shipping)},
		cli.Field{Label: "Sales tax", Value: cli.Money(order.SalesTax)},
	)
	cli.RenderFields(w, fields)
}

// shipTo joins the non-empty destination parts into one line.
func shipTo(city, state, zip, country string) string {
	line := ""
	for _, part := range []string{city, state, zip, country} {
		if part == "" {
			continue
		}
		if line != "" {
			line += ", "
		}
		line += part
	}
	return line
}
