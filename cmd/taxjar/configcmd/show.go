// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package configcmd

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
	"github.com/taxjar-tools/taxjar-cli/lib/config"
)

// showParams holds the parameters for the config show command.
type showParams struct {
	cli.JSONOutput
}

// configView is the redacted view of the resolved credential. The
// raw token never appears in any output mode.
type configView struct {
	MaskedAPIKey string `json:"masked_api_key"`
	KeySource    string `json:"key_source"`
	BaseURL      string `json:"base_url"`
	URLSource    string `json:"url_source"`
	ConfigFile   string `json:"config_file"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show the resolved credential (redacted)",
		Description: `Show where the API token and base URL resolve from.

The token is always redacted: the first four and last four characters
with the middle masked. The config file path is informational.`,
		Usage: "taxjar config show [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("unexpected argument: %s", args[0])
			}

			credential, err := config.Load()
			if err != nil {
				return err
			}

			view := configView{
				MaskedAPIKey: credential.MaskedKey(),
				KeySource:    string(credential.KeySource),
				BaseURL:      credential.BaseURL,
				URLSource:    string(credential.URLSource),
				ConfigFile:   config.FilePath(),
			}

			if done, err := params.EmitJSON(view); done {
				return err
			}

			cli.RenderFields(os.Stdout, []cli.Field{
				{Label: "API token", Value: view.MaskedAPIKey + " (" + view.KeySource + ")"},
				{Label: "Base URL", Value: view.BaseURL + " (" + view.URLSource + ")"},
				{Label: "Config file", Value: view.ConfigFile},
			})
			return nil
		},
	}
}
