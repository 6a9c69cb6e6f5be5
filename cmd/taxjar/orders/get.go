// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// getParams holds the parameters for the orders get command.
type getParams struct {
	cli.JSONOutput
}

func getCommand() *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "get",
		Summary: "Show one order transaction",
		Usage:   "taxjar orders get <transaction-id> [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get", &params)
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

			progress := cli.StartProgress("getting order " + transactionID)
			order, err := client.ShowOrder(ctx, transactionID)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(order); done {
				return err
			}

			renderOrder(os.Stdout, order)
			return nil
		},
	}
}
