// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/taxjar-tools/taxjar-cli/lib/config"
	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

// APIClient resolves the credential (environment first, then the
// config file) and constructs an authenticated API client. Commands
// call this once per invocation, before starting the progress
// indicator — a missing credential must fail before anything is
// drawn.
func APIClient() (*taxjar.Client, error) {
	credential, err := config.Load()
	if err != nil {
		return nil, err
	}

	return taxjar.NewClient(taxjar.Config{
		APIKey:  credential.APIKey,
		BaseURL: credential.BaseURL,
		Logger:  NewCommandLogger(),
	})
}
