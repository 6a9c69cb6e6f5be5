// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// updateParams holds the parameters for the orders update command.
// Every field is optional; only flags the user actually set are sent,
// which is why Run consults flagSet.Changed rather than zero values.
type updateParams struct {
	cli.JSONOutput

	Date        string          `flag:"date" desc:"Transaction date (YYYY/MM/DD)"`
	FromCountry string          `flag:"from-country" desc:"Origin country code (two-letter ISO)"`
	FromZip     string          `flag:"from-zip" desc:"Origin postal code"`
	FromState   string          `flag:"from-state" desc:"Origin state code"`
	FromCity    string          `flag:"from-city" desc:"Origin city"`
	FromStreet  string          `flag:"from-street" desc:"Origin street address"`
	ToCountry   string          `flag:"to-country" desc:"Destination country code (two-letter ISO)"`
	ToZip       string          `flag:"to-zip" desc:"Destination postal code"`
	ToState     string          `flag:"to-state" desc:"Destination state code"`
	ToCity      string          `flag:"to-city" desc:"Destination city"`
	ToStreet    string          `flag:"to-street" desc:"Destination street address"`
	Amount      decimal.Decimal `flag:"amount" desc:"Order amount, excluding shipping and tax"`
	Shipping    decimal.Decimal `flag:"shipping" desc:"Shipping amount"`
	SalesTax    decimal.Decimal `flag:"sales-tax" desc:"Sales tax collected"`
}

func updateCommand() *cli.Command {
	var params updateParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "update",
		Summary: "Update an existing order transaction",
		Description: `Update fields on a recorded order transaction.

Only the flags given change; everything else keeps its stored value.
The transaction id names the order and cannot change.`,
		Usage: "taxjar orders update <transaction-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Correct the sales tax on an order",
				Command:     "taxjar orders update ORDER-123 --sales-tax 1.10",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("update", &params)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one transaction id argument")
			}
			transactionID := args[0]

			update := taxjar.UpdateOrderParams{}
			changed := false
			setString := func(flag string, target **string, value string) {
				if flagSet.Changed(flag) {
					v := value
					*target = &v
					changed = true
				}
			}
			setAmount := func(flag string, target **float64, value decimal.Decimal) {
				if flagSet.Changed(flag) {
					v := value.InexactFloat64()
					*target = &v
					changed = true
				}
			}
			setString("date", &update.TransactionDate, params.Date)
			setString("from-country", &update.FromCountry, params.FromCountry)
			setString("from-zip", &update.FromZip, params.FromZip)
			setString("from-state", &update.FromState, params.FromState)
			setString("from-city", &update.FromCity, params.FromCity)
			setString("from-street", &update.FromStreet, params.FromStreet)
			setString("to-country", &update.ToCountry, params.ToCountry)
			setString("to-zip", &update.ToZip, params.ToZip)
			setString("to-state", &update.ToState, params.ToState)
			setString("to-city", &update.ToCity, params.ToCity)
			setString("to-street", &update.ToStreet, params.ToStreet)
			setAmount("amount", &update.Amount, params.Amount)
			setAmount("shipping", &update.Shipping, params.Shipping)
			setAmount("sales-tax", &update.SalesTax, params.SalesTax)

			if !changed {
				return cli.Usagef("no fields to update; pass at least one field flag")
			}

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("updating order " + transactionID)
			order, err := client.UpdateOrder(ctx, transactionID, update)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(order); done {
				return err
			}

			renderOrder(os.Stdout, order)
			return nil
		},
	}
}
