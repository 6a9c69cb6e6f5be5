// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// vatParams holds the parameters for the validate vat command.
type vatParams struct {
	cli.JSONOutput
}

func vatCommand() *cli.Command {
	var params vatParams

	return &cli.Command{
		Name:    "vat",
		Summary: "Validate a VAT number against VIES",
		Description: `Check a VAT identification number against the EU VIES registry.

When the registry has detail for a valid number, the registered name
and address are included.`,
		Usage: "taxjar validate vat <vat-number> [--json]",
		Examples: []cli.Example{
			{
				Description: "Check a UK VAT number",
				Command:     "taxjar validate vat GB333289454",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("vat", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one VAT number argument")
			}
			vatNumber := args[0]

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("validating VAT number " + vatNumber)
			validation, err := client.ValidateVAT(ctx, vatNumber)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(validation); done {
				return err
			}

			renderValidation(os.Stdout, validation)
			return nil
		},
	}
}

// renderValidation writes the human-mode view of a VAT check.
func renderValidation(w io.Writer, validation *taxjar.VatValidation) {
	fields := []cli.Field{
		{Label: "Valid", Value: cli.YesNo(validation.Valid)},
		{Label: "Exists", Value: cli.YesNo(validation.Exists)},
		{Label: "VIES available", Value: cli.YesNo(validation.ViesAvailable)},
	}
	if vies := validation.ViesResponse; vies != nil {
		fields = append(fields,
			cli.Field{Label: "VAT number", Value: vies.CountryCode + vies.VatNumber},
		)
		if vies.Name != "" {
			fields = append(fields, cli.Field{Label: "Registered name", Value: vies.Name})
		}
		if vies.Address != "" {
			fields = append(fields, cli.Field{Label: "Registered address", Value: vies.Address})
		}
	}
	cli.RenderFields(w, fields)
}
