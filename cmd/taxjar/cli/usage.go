// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// UsageError indicates malformed or missing command-line input:
// unknown commands, bad flag syntax, missing required flags, wrong
// argument counts. Usage errors are raised before any network call is
// attempted and exit with status 1.
type UsageError struct {
	// Err carries the human-readable message.
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error so errors.Is and errors.As can
// walk the chain.
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef creates a UsageError from a format string.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var usageError *UsageError
	return errors.As(err, &usageError)
}

// RequireFlags returns a UsageError naming every flag in names that
// was not set on the parsed flag set. Commands call this before
// touching the network so a missing required flag never costs a
// request.
func RequireFlags(flagSet *pflag.FlagSet, names ...string) error {
	var missing []string
	for _, name := range names {
		if !flagSet.Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if len(missing) == 1 {
		return Usagef("required flag %s not set", missing[0])
	}
	return Usagef("required flags not set: %s", strings.Join(missing, ", "))
}
