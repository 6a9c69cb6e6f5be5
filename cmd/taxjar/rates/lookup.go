// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package rates

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// lookupParams holds the parameters for the rates lookup command.
type lookupParams struct {
	cli.JSONOutput

	City    string `flag:"city" desc:"City to narrow the lookup"`
	State   string `flag:"state" desc:"State code to narrow the lookup"`
	Country string `flag:"country" desc:"Country code to narrow the lookup (two-letter ISO)"`
}

func lookupCommand() *cli.Command {
	var params lookupParams

	return &cli.Command{
		Name:    "lookup",
		Summary: "Look up rates for a postal code",
		Description: `Look up the sales-tax rates for a postal code.

City, state, and country narrow the lookup when a postal code spans
multiple jurisdictions.`,
		Usage: "taxjar rates lookup <zip> [--city <city>] [--state <st>] [--country <cc>]",
		Examples: []cli.Example{
			{
				Description: "Rates for a Santa Monica ZIP",
				Command:     "taxjar rates lookup 90404 --city 'Santa Monica' --state CA",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("lookup", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one postal code argument")
			}
			zip := args[0]

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("looking up rates for " + zip)
			rate, err := client.RatesForLocation(ctx, zip, &taxjar.RateParams{
				City:    params.City,
				State:   params.State,
				Country: params.Country,
			})
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(rate); done {
				return err
			}

			renderRate(os.Stdout, rate)
			return nil
		},
	}
}

// renderRate writes the human-mode view of a rate lookup, skipping
// jurisdiction levels the API left empty.
func renderRate(w io.Writer, rate *taxjar.Rate) {
	fields := []cli.Field{
		{Label: "ZIP", Value: rate.Zip},
	}
	if rate.Country != "" {
		fields = append(fields, cli.Field{Label: "Country", Value: rate.Country + " (" + percent(rate.CountryRate) + ")"})
	}
	if rate.State != "" {
		fields = append(fields, cli.Field{Label: "State", Value: rate.State + " (" + percent(rate.StateRate) + ")"})
	}
	if rate.County != "" {
		fields = append(fields, cli.Field{Label: "County", Value: rate.County + " (" + percent(rate.CountyRate) + ")"})
	}
	if rate.City != "" {
		fields = append(fields, cli.Field{Label: "City", Value: rate.City + " (" + percent(rate.CityRate) + ")"})
	}
	if rate.CombinedDistrictRate != "" {
		fields = append(fields, cli.Field{Label: "District rate", Value: percent(rate.CombinedDistrictRate)})
	}
	fields = append(fields,
		cli.Field{Label: "Combined rate", Value: percent(rate.CombinedRate)},
		cli.Field{Label: "Freight taxable", Value: cli.YesNo(rate.FreightTaxable)},
	)
	cli.RenderFields(w, fields)
}
