// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// addressParams holds the parameters for the validate address command.
type addressParams struct {
	cli.JSONOutput

	Country string `flag:"country" desc:"Country code (two-letter ISO)"`
	State   string `flag:"state" desc:"State code"`
	Zip     string `flag:"zip" desc:"Postal code"`
	City    string `flag:"city" desc:"City"`
	Street  string `flag:"street" desc:"Street address"`
}

func addressCommand() *cli.Command {
	var params addressParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "address",
		Summary: "Validate and standardize an address",
		Description: `Validate an address against the postal registry. Returns zero or
more standardized candidate matches, best match first.`,
		Usage: "taxjar validate address --country <cc> --state <st> --zip <zip> [--city <city>] [--street <street>]",
		Examples: []cli.Example{
			{
				Description: "Standardize a street address",
				Command:     "taxjar validate address --country US --state AZ --zip 85297 --city Gilbert --street '3301 South Greenfield Rd'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("address", &params)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument: %s", args[0])
			}
			if err := cli.RequireFlags(flagSet, "country", "state", "zip"); err != nil {
				return err
			}

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("validating address")
			addresses, err := client.ValidateAddress(ctx, taxjar.AddressParams{
				Country: params.Country,
				State:   params.State,
				Zip:     params.Zip,
				City:    params.City,
				Street:  params.Street,
			})
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(addresses); done {
				return err
			}

			if len(addresses) == 0 {
				fmt.Fprintln(os.Stderr, "No matching addresses found.")
				return nil
			}
			for i, address := range addresses {
				if i > 0 {
					fmt.Println()
				}
				renderAddress(os.Stdout, address)
			}
			return nil
		},
	}
}

// renderAddress writes one candidate match as a field listing.
func renderAddress(w io.Writer, address taxjar.Address) {
	fields := []cli.Field{}
	if address.Street != "" {
		fields = append(fields, cli.Field{Label: "Street", Value: address.Street})
	}
	if address.City != "" {
		fields = append(fields, cli.Field{Label: "City", Value: address.City})
	}
	if address.State != "" {
		fields = append(fields, cli.Field{Label: "State", Value: address.State})
	}
	if address.Zip != "" {
		fields = append(fields, cli.Field{Label: "ZIP", Value: address.Zip})
	}
	if address.Country != "" {
		fields = append(fields, cli.Field{Label: "Country", Value: address.Country})
	}
	cli.RenderFields(w, fields)
}
