// Package config loads and validates the application configuration.
//
// Values are collected from environment variables, command-line flags, and an
// optional JSON file, merged in priority order (environment wins over flags,
// flags win over the JSON file, built-in defaults fill whatever remains), and
// validated before the server starts.
package config
