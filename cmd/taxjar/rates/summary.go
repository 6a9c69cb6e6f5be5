// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package rates

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// summaryParams holds the parameters for the rates summary command.
type summaryParams struct {
	cli.JSONOutput
}

func summaryCommand() *cli.Command {
	var params summaryParams

	return &cli.Command{
		Name:    "summary",
		Summary: "List minimum and average rates for all regions",
		Description: `List backup minimum and average sales-tax rates for every
region TaxJar covers. Useful as a fallback when a precise lookup is
not possible.`,
		Usage: "taxjar rates summary [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("summary", &params)
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

			progress := cli.StartProgress("listing summary rates")
			summaries, err := client.SummaryRates(ctx)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(summaries); done {
				return err
			}

			if len(summaries) == 0 {
				fmt.Fprintln(os.Stderr, "No summary rates found.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "COUNTRY\tREGION\tMINIMUM\tAVERAGE")
			for _, summary := range summaries {
				region := summary.Region
				if region == "" {
					region = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					summary.Country,
					region,
					cli.Percent(summary.MinimumRate.Rate),
					cli.Percent(summary.AverageRate.Rate))
			}
			return tw.Flush()
		},
	}
}
