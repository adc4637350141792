// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package config

import (
	"time"
)

// ClientConfig is the client-facing configuration view assembled from
// [StructuredConfig]. The CLI works against this narrow struct so it never
// sees server-only secrets like the token sign key.
type ClientConfig struct {
	// ServerURL is the base URL of the StudyHub server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// SessionFile is where the session token is persisted between runs.
	// Empty means the per-user default location.
	SessionFile string
	// GeminiAPIKey authenticates AI assist requests; empty disables them.
	GeminiAPIKey string
	// AssistModel is the Gemini model identifier.
	AssistModel string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Unlike [GetServerConfig] it does not consult command-line flags: the CLI
// owns its flag surface via cobra, so only environment variables, the JSON
// file, and defaults participate here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build(nil)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		SessionFile:    cfg.Client.SessionFile,
		GeminiAPIKey:   cfg.Assist.GeminiAPIKey,
		AssistModel:    cfg.Assist.Model,
	}

	return clientCfg, clientCfg.validate()
}
