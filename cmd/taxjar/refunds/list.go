// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package refunds

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// listParams holds the parameters for the refunds list command.
type listParams struct {
	cli.JSONOutput

	FromDate string `flag:"from-date" desc:"Inclusive start date (YYYY/MM/DD)"`
	ToDate   string `flag:"to-date" desc:"Inclusive end date (YYYY/MM/DD)"`
	Provider string `flag:"provider" desc:"Filter to one import platform (e.g. api, amazon)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List refund transaction ids",
		Description: `List refund transaction ids, optionally filtered by date range
and provider. Ids print one per line in the order the service returns
them.`,
		Usage: "taxjar refunds list [--from-date <date>] [--to-date <date>] [--provider <name>]",
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

			progress := cli.StartProgress("listing refunds")
			ids, err := client.ListRefunds(ctx, &taxjar.ListTransactionsParams{
				FromTransactionDate: params.FromDate,
				ToTransactionDate:   params.ToDate,
				Provider:            params.Provider,
			})
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(ids); done {
				return err
			}

			if len(ids) == 0 {
				fmt.Fprintln(os.Stderr, "No refunds found.")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
