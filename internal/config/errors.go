package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty registry seed file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionSecret indicates that a session secret was provided
	// but is not valid hex or does not decode to exactly 32 bytes.
	ErrInvalidSessionSecret = errors.New("session secret must be 32 bytes of hex")
	// ErrSessionSecretRequired indicates that the application runs in
	// production mode without a configured session secret.
	ErrSessionSecretRequired = errors.New("session secret is required in production")
)
