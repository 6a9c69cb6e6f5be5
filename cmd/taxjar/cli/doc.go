// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the taxjar binary:
// the command tree with flag parsing and help output, struct-tag flag
// binding, --json output support, terminal rendering helpers, the
// transient progress indicator, and exit-code plumbing.
//
// Commands are single-shot: parse flags, resolve the credential, make
// one API call, render, exit. Nothing in this package carries state
// across invocations.
package cli
