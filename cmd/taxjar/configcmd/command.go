// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package configcmd implements the "taxjar config" command group:
// storing the API token and inspecting the resolved credential.
package configcmd

import (
	"github.com/taxjar-tools/taxjar-cli/cmd/taxjar/cli"
)

// Command returns the "config" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Summary: "Manage the stored API credential",
		Description: `Manage the stored TaxJar API credential.

The API token resolves environment-first: TAXJAR_API_KEY always wins
over the stored value, and TAXJAR_BASE_URL wins over the stored base
URL. "config set" writes the durable fallback used when neither
variable is set.`,
		Subcommands: []*cli.Command{
			setCommand(),
			showCommand(),
		},
	}
}
