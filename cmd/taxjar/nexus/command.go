// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package nexus implements the "taxjar nexus" command group.
package nexus

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// Command returns the "nexus" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "nexus",
		Summary: "Inspect nexus regions for the account",
		Subcommands: []*cli.Command{
			listCommand(),
		},
	}
}

// listParams holds the parameters for the nexus list command.
type listParams struct {
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List the account's nexus regions",
		Description: `List the regions where the account is registered to collect
sales tax, in the order the service reports them.`,
		Usage: "taxjar nexus list [--json]",
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

			progress := cli.StartProgress("listing nexus regions")
			regions, err := client.NexusRegions(ctx)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(regions); done {
				return err
			}

			if len(regions) == 0 {
				fmt.Fprintln(os.Stderr, "No nexus regions found.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "COUNTRY\tREGION\tCODE")
			for _, region := range regions {
				name := region.Region
				if name == "" {
					name = "-"
				}
				code := region.RegionCode
				if code == "" {
					code = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", region.Country, name, code)
			}
			return tw.Flush()
		},
	}
}
