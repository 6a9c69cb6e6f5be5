// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package refunds

import (
	"context"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// getParams holds the parameters for the refunds get command.
type getParams struct {
	cli.JSONOutput
}

func getCommand() *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "get",
		Summary: "Show one refund transaction",
		Usage:   "taxjar refunds get <transaction-id> [--json]",
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

			progress := cli.StartProgress("getting refund " + transactionID)
			refund, err := client.ShowRefund(ctx, transactionID)
			progress.Done(err)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(refund); done {
				return err
			}

			renderRefund(os.Stdout, refund)
			return nil
		},
	}
}
