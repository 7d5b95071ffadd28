// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file and boot timeout.
	App App `envPrefix:"APP_"`

	// Storage holds the local credential database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. Empty means next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// BootTimeout bounds the whole boot chain: identity fetch, optional
	// renewal and the single retried fetch.
	// Env: APP_BOOT_TIMEOUT
	BootTimeout time.Duration `env:"BOOT_TIMEOUT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database that persists
// the credential pair.
type DB struct {
	// DSN is the sqlite file path (e.g. "collab-client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the backend REST adapter.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "http://localhost:8000").
	// A bare "host:port" is accepted and gets the http scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
