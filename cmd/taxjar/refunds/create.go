// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package refunds

import (
	"context"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// createParams holds the parameters for the refunds create command.
type createParams struct {
	cli.JSONOutput

	TransactionID string          `flag:"transaction-id" desc:"Unique id for this refund"`
	ReferenceID   string          `flag:"reference-id" desc:"Transaction id of the refunded order"`
	Date          string          `flag:"date" desc:"Refund date (YYYY/MM/DD)"`
	Provider      string          `flag:"provider" desc:"Platform the refund came from"`
	FromCountry   string          `flag:"from-country" desc:"Origin country code (two-letter ISO)"`
	FromZip       string          `flag:"from-zip" desc:"Origin postal code"`
	FromState     string          `flag:"from-state" desc:"Origin state code"`
	FromCity      string          `flag:"from-city" desc:"Origin city"`
	FromStreet    string          `flag:"from-street" desc:"Origin street address"`
	ToCountry     string          `flag:"to-country" desc:"Destination country code (two-letter ISO)"`
	ToZip         string          `flag:"to-zip" desc:"Destination postal code"`
	ToState       string          `flag:"to-state" desc:"Destination state code"`
	ToCity        string          `flag:"to-city" desc:"Destination city"`
	ToStreet      string          `flag:"to-street" desc:"Destination street address"`
	Amount        decimal.Decimal `flag:"amount" desc:"Refund amount, negative by TaxJar convention"`
	Shipping      decimal.Decimal `flag:"shipping" desc:"Refunded shipping amount"`
	SalesTax      decimal.Decimal `flag:"sales-tax" desc:"Refunded sales tax"`
}

func createCommand() *cli.Command {
	var params createParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "create",
		Summary: "Record a new refund transaction",
		Description: `Record a refund transaction against a previously recorded order.

Amounts pass through exactly as given. TaxJar expects refund amounts
to be negative; the service enforces that convention, not this tool.`,
		Usage: "taxjar refunds create --transaction-id <id> --reference-id <order-id> --date <date> --to-country <cc> --to-zip <zip> --to-state <st> --amount <n> --shipping <n> --sales-tax <n> [flags]",
		Examples: []cli.Example{
			{
				Description: "Refund an order in full",
				Command:     "taxjar refunds create --transaction-id REFUND-123 --reference-id ORDER-123 --date 2026/03/20 --to-country US --to-zip 90002 --to-state CA --amount -16.50 --shipping -1.50 --sales-tax -0.95",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("create", &params)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument: %s", args[0])
			}
			if err := cli.RequireFlags(flagSet, "transaction-id", "reference-id", "date",
				"to-country", "to-zip", "to-state", "amount", "shipping", "sales-tax"); err != nil {
				return err
			}

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("creating refund " + params.TransactionID)
			refund, err := client.CreateRefund(ctx, taxjar.RefundParams{
				TransactionID:          params.TransactionID,
				TransactionReferenceID: params.ReferenceID,
				TransactionDate:        params.Date,
				Provider:               params.Provider,
				FromCountry:            params.FromCountry,
				FromZip:                params.FromZip,
				FromState:              params.FromState,
				FromCity:               params.FromCity,
				FromStreet:             params.FromStreet,
				ToCountry:              params.ToCountry,
				ToZip:                  params.ToZip,
				ToState:                params.ToState,
				ToCity:                 params.ToCity,
				ToStreet:               params.ToStreet,
				Amount:                 params.Amount.InexactFloat64(),
				Shipping:               params.Shipping.InexactFloat64(),
				SalesTax:               params.SalesTax.InexactFloat64(),
			})
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(refund); done {
				return err
			}

			renderRefund(os.Stdout, refund)
			return nil
		},
	}
}
