// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// listParams holds the parameters for the orders list command.
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
		Summary: "List order transaction ids",
		Description: `List order transaction ids, optionally filtered by date range
and provider. Ids print one per line in the order the service returns
them.`,
		Usage: "taxjar orders list [--from-date <date>] [--to-date <date>] [--provider <name>]",
		Examples: []cli.Example{
			{
				Description: "Orders recorded in March 2026",
				Command:     "taxjar orders list --from-date 2026/03/01 --to-date 2026/03/31",
			},
		},
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

			progress := cli.StartProgress("listing orders")
			ids, err := client.ListOrders(ctx, &taxjar.ListTransactionsParams{
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
				fmt.Fprintln(os.Stderr, "No orders found.")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
