// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package tax

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// calculateParams holds the parameters for the tax calculate command.
// Amount and shipping are decimal so non-numeric input fails at flag
// parse time, before any request is built.
type calculateParams struct {
	cli.JSONOutput

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
	Amount      decimal.Decimal `flag:"amount" desc:"Order amount, excluding shipping"`
	Shipping    decimal.Decimal `flag:"shipping" desc:"Shipping amount"`
}

func calculateCommand() *cli.Command {
	var params calculateParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "calculate",
		Summary: "Calculate sales tax for an order",
		Description: `Calculate the sales tax to collect for an order.

Requires origin and destination addresses plus the order and shipping
amounts. The result includes the amount to collect, the combined rate,
and a per-jurisdiction breakdown when the account has nexus for the
destination.`,
		Usage: "taxjar tax calculate --from-zip <zip> --from-state <st> --to-zip <zip> --to-state <st> --amount <n> --shipping <n> [flags]",
		Examples: []cli.Example{
			{
				Description: "Tax on a $100 order shipped within California",
				Command:     "taxjar tax calculate --from-zip 94043 --from-state CA --to-zip 90002 --to-state CA --amount 100 --shipping 5",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("calculate", &params)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument: %s", args[0])
			}
			if err := cli.RequireFlags(flagSet, "from-zip", "from-state", "to-zip", "to-state", "amount", "shipping"); err != nil {
				return err
			}

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("calculating tax")
			tax, err := client.CalculateTax(ctx, taxjar.TaxParams{
				FromCountry: params.FromCountry,
				FromZip:     params.FromZip,
				FromState:   params.FromState,
				FromCity:    params.FromCity,
				FromStreet:  params.FromStreet,
				ToCountry:   params.ToCountry,
				ToZip:       params.ToZip,
				ToState:     params.ToState,
				ToCity:      params.ToCity,
				ToStreet:    params.ToStreet,
				Amount:      params.Amount.InexactFloat64(),
				Shipping:    params.Shipping.InexactFloat64(),
			})
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(tax); done {
				return err
			}

			renderTax(os.Stdout, tax)
			return nil
		},
	}
}

// renderTax writes the human-mode view of a calculation result.
func renderTax(w io.Writer, tax *taxjar.Tax) {
	fields := []cli.Field{
		{Label: "Order total", Value: cli.Money(tax.OrderTotalAmount)},
		{Label: "Shipping", Value: cli.Money(tax.Shipping)},
		{Label: "Taxable amount", Value: cli.Money(tax.TaxableAmount)},
		{Label: "Tax to collect", Value: cli.Money(tax.AmountToCollect)},
		{Label: "Rate", Value: cli.Percent(tax.Rate)},
		{Label: "Has nexus", Value: cli.YesNo(tax.HasNexus)},
		{Label: "Freight taxable", Value: cli.YesNo(tax.FreightTaxable)},
	}
	if tax.TaxSource != "" {
		fields = append(fields, cli.Field{Label: "Tax source", Value: tax.TaxSource})
	}
	cli.RenderFields(w, fields)

	if tax.Breakdown != nil {
		fmt.Fprint(w, "\nBreakdown:\n")
		cli.RenderFields(w, []cli.Field{
			{Label: "  State", Value: cli.Money(tax.Breakdown.StateTaxCollectable) + " at " + cli.Percent(tax.Breakdown.StateTaxRate)},
			{Label: "  County", Value: cli.Money(tax.Breakdown.CountyTaxCollectable) + " at " + cli.Percent(tax.Breakdown.CountyTaxRate)},
			{Label: "  City", Value: cli.Money(tax.Breakdown.CityTaxCollectable) + " at " + cli.Percent(tax.Breakdown.CityTaxRate)},
			{Label: "  Special district", Value: cli.Money(tax.Breakdown.SpecialDistrictTaxCollectable) + " at " + cli.Percent(tax.Breakdown.SpecialTaxRate)},
		})
	}
}
