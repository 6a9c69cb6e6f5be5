// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package categories implements the "taxjar categories" command group.
package categories

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// Command returns the "categories" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Summary: "List product tax categories",
		Subcommands: []*cli.Command{
			listCommand(),
		},
	}
}

// listParams holds the parameters for the categories list command.
type listParams struct {
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List product tax categories",
		Description: `List product tax categories and their product tax codes. Put a
code on an order line item to get category-specific tax treatment.`,
		Usage: "taxjar categories list [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument: %s", args[0])
			}

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("listing categories")
			categories, err := client.Categories(ctx)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(categories); done {
				return err
			}

			if len(categories) == 0 {
				fmt.Fprintln(os.Stderr, "No categories found.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tDESCRIPTION")
			for _, category := range categories {
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					category.ProductTaxCode, category.Name, category.Description)
			}
			return tw.Flush()
		},
	}
}
