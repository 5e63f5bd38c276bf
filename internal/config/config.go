// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment labels understood by the application. Anything other than
// EnvProduction is treated as a development deployment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// go-role-registry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session cookie
	// secret, the deployment environment, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the user registry seed file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// cookie, the deployment mode, and versioning.
type App struct {
	// Environment is the deployment environment label ("development" or
	// "production"). In production the session cookie is marked
	// Secure and a configured session secret becomes mandatory.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// SessionSecret is the hex-encoded 32-byte key used to encrypt and
	// authenticate the session cookie. Must be kept confidential.
	// When empty outside production, a transient random key is generated at
	// startup and a warning is logged; sessions then do not survive restarts.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// CookieName is the name of the session cookie.
	// Env: APP_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence sources used by the
// application. The only persisted state is the user registry seed file.
type Storage struct {
	// Users holds the registry seed file settings.
	Users Users `envPrefix:"USERS_"`
}

// Users holds the location of the user registry seed file.
type Users struct {
	// File is the path to the flat JSON file containing the user records.
	// The file is written offline by the seed tool and read exactly once at
	// startup; the server never writes to it.
	// Env: STORAGE_USERS_FILE
	File string `env:"FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IsProduction reports whether the application runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
