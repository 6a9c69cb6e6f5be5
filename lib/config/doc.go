// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package config persists and resolves the credential used to talk to
// the TaxJar API: an API token and an optional base URL override.
//
// Resolution is environment-first: TAXJAR_API_KEY beats the stored
// token, TAXJAR_BASE_URL beats the stored URL, and the production
// endpoint is the final base URL fallback. The config file lives at
// $TAXJAR_CONFIG_FILE, or $XDG_CONFIG_HOME/taxjar/config.yaml, or
// ~/.config/taxjar/config.yaml, and is written with mode 0600 since
// it holds an API token.
package config
