// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package configcmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/config"
)

// setParams holds the parameters for the config set command.
type setParams struct {
	APIKey  string `flag:"api-key" desc:"TaxJar API token to store"`
	BaseURL string `flag:"base-url" desc:"API base URL to store (e.g. the sandbox endpoint)"`
}

func setCommand() *cli.Command {
	var params setParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "set",
		Summary: "Store the API token",
		Description: `Store the TaxJar API token in the per-user config file.

Overwrites any previously stored token. The file is written with mode
0600 since it contains the credential. Pass --base-url to also store
a base URL (the sandbox endpoint, for example); leaving it off keeps
any previously stored URL.`,
		Usage: "taxjar config set --api-key <key> [--base-url <url>]",
		Examples: []cli.Example{
			{
				Description: "Store a production token",
				Command:     "taxjar config set --api-key 9e0cd62a22f451701f29c3bde214",
			},
			{
				Description: "Point at the sandbox environment",
				Command:     "taxjar config set --api-key <sandbox-key> --base-url https://api.sandbox.taxjar.com/v2",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("set", &params)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument: %s", args[0])
			}
			if err := cli.RequireFlags(flagSet, "api-key"); err != nil {
				return err
			}

			if err := config.SetAPIKey(params.APIKey, params.BaseURL); err != nil {
				return err
			}

			fmt.Printf("API token stored in %s\n", config.FilePath())
			return nil
		},
	}
}
