// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package config

import "strings"

// validateServer checks that the final merged [StructuredConfig] satisfies
// the invariants the server needs at startup. Invalid configuration fails
// fast here rather than on the first request.
func validateServer(cfg *StructuredConfig) error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || !strings.HasPrefix(cfg.ServerURL, "http") {
		return ErrInvalidClientConfigs
	}

	if cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
