// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// deleteParams holds the parameters for the orders delete command.
type deleteParams struct {
	cli.JSONOutput
}

func deleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete an order transaction",
		Description: `Delete a recorded order transaction. The service echoes the
deleted order back, which is printed as confirmation.`,
		Usage: "taxjar orders delete <transaction-id> [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usagef("expected exactly one transaction id argument")
			}
			transactionID := args[0]

			client, err := cli.APIClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			progress := cli.StartProgress("deleting order " + transactionID)
			order, err := client.DeleteOrder(ctx, transactionID)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(order); done {
				return err
			}

			fmt.Printf("Deleted order %s\n", order.TransactionID)
			return nil
		},
	}
}
