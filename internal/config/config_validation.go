// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "encoding/hex"

// sessionSecretLen is the required decoded length of the session secret in
// bytes. The key is used both to authenticate and to encrypt the session
// cookie, so it must be a full 256-bit key.
const sessionSecretLen = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - the HTTP address and the registry seed file path must be non-empty;
//   - a configured session secret must be valid hex decoding to exactly
//     32 bytes, in any environment;
//   - in production the session secret is mandatory — the transient
//     random-key fallback is a development-only convenience.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Users.File == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSecret != "" {
		secret, err := hex.DecodeString(cfg.App.SessionSecret)
		if err != nil || len(secret) != sessionSecretLen {
			return ErrInvalidSessionSecret
		}
	}

	if cfg.App.IsProduction() && cfg.App.SessionSecret == "" {
		return ErrSessionSecretRequired
	}

	return nil
}
