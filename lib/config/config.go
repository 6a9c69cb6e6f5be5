// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production TaxJar API endpoint. Override it
// with TAXJAR_BASE_URL (e.g. for the sandbox environment) or by
// storing a base URL with "taxjar config set".
const DefaultBaseURL = "https://api.taxjar.com/v2"

// Source identifies where a resolved credential value came from.
type Source string

const (
	// SourceEnvironment means the value came from an environment
	// variable (TAXJAR_API_KEY / TAXJAR_BASE_URL).
	SourceEnvironment Source = "environment"

	// SourceFile means the value came from the config file.
	SourceFile Source = "file"

	// SourceDefault means the built-in production base URL is in use.
	SourceDefault Source = "default"
)

// Credential is the resolved authentication state for one process
// invocation. Loaded once at dispatch time and never mutated mid-run.
type Credential struct {
	// APIKey is the TaxJar API token sent as a bearer token.
	APIKey string

	// BaseURL is the API root (no trailing slash).
	BaseURL string

	// KeySource records where APIKey was resolved from.
	KeySource Source

	// URLSource records where BaseURL was resolved from.
	URLSource Source
}

// fileRecord is the on-disk shape of the config file. Two fields only;
// everything else about a run is transient.
type fileRecord struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// MissingCredentialError is returned by Load when no API key is
// available from either the environment or the config file. The
// message tells the user exactly how to fix it.
type MissingCredentialError struct {
	// Path is the config file location that was checked.
	Path string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("no TaxJar API key configured — set TAXJAR_API_KEY or run \"taxjar config set --api-key <key>\" (config file: %s)", e.Path)
}

// IsMissingCredential reports whether err indicates an absent API key.
func IsMissingCredential(err error) bool {
	var missing *MissingCredentialError
	return errors.As(err, &missing)
}

// FilePath returns the config file location. Checks TAXJAR_CONFIG_FILE
// first, then $XDG_CONFIG_HOME/taxjar/config.yaml, then
// ~/.config/taxjar/config.yaml.
func FilePath() string {
	if envPath := os.Getenv("TAXJAR_CONFIG_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "taxjar-config.yaml")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "taxjar", "config.yaml")
}

// Load resolves the credential for this invocation. The environment
// always wins over the stored record; a stored record is not required
// when TAXJAR_API_KEY is set. Returns *MissingCredentialError when no
// key is available from either source.
func Load() (*Credential, error) {
	return loadFrom(FilePath())
}

// loadFrom is Load with an explicit file path, for tests.
func loadFrom(path string) (*Credential, error) {
	stored, err := readFile(path)
	if err != nil {
		return nil, err
	}

	credential := &Credential{}

	if envKey := os.Getenv("TAXJAR_API_KEY"); envKey != "" {
		credential.APIKey = envKey
		credential.KeySource = SourceEnvironment
	} else if stored.APIKey != "" {
		credential.APIKey = stored.APIKey
		credential.KeySource = SourceFile
	} else {
		return nil, &MissingCredentialError{Path: path}
	}

	switch {
	case os.Getenv("TAXJAR_BASE_URL") != "":
		credential.BaseURL = os.Getenv("TAXJAR_BASE_URL")
		credential.URLSource = SourceEnvironment
	case stored.BaseURL != "":
		credential.BaseURL = stored.BaseURL
		credential.URLSource = SourceFile
	default:
		credential.BaseURL = DefaultBaseURL
		credential.URLSource = SourceDefault
	}

	return credential, nil
}

// readFile parses the stored config record. A missing file is not an
// error — it reads as an empty record so that env-only setups work
// without ever running "config set".
func readFile(path string) (fileRecord, error) {
	var record fileRecord

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record, nil
		}
		return record, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return record, nil
}

// SetAPIKey persists an API key (and optionally a base URL) to the
// config file, overwriting any previously stored values. Creates the
// parent directory with mode 0700; the file is written with mode 0600
// since it contains the token. Pass baseURL == "" to leave the stored
// base URL untouched.
func SetAPIKey(key, baseURL string) error {
	return setAPIKeyAt(FilePath(), key, baseURL)
}

// setAPIKeyAt is SetAPIKey with an explicit path, for tests.
func setAPIKeyAt(path, key, baseURL string) error {
	record, err := readFile(path)
	if err != nil {
		return err
	}

	record.APIKey = key
	if baseURL != "" {
		record.BaseURL = baseURL
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating config directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// MaskedKey returns a redacted view of the API key for display: the
// first four and last four characters with a fixed "****" mask in
// between. Keys shorter than eight characters are fully masked —
// revealing 4+4 of a short key would reveal all of it.
func (c *Credential) MaskedKey() string {
	if c.APIKey == "" {
		return ""
	}
	if len(c.APIKey) < 8 {
		return "****"
	}
	return c.APIKey[:4] + "****" + c.APIKey[len(c.APIKey)-4:]
}
