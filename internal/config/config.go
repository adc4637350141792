// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// StudyHub application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds JWT token parameters shared by the server and,
	// indirectly, by every authenticated client request.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the notes database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server, including the realtime subscription endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Client holds settings used by the studyhub CLI: where the server
	// lives, request timeouts, and where the session token is persisted.
	Client Client `envPrefix:"CLIENT_"`

	// Assist holds settings for the AI note assistant integration.
	Assist Assist `envPrefix:"ASSIST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged into the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds JWT lifecycle settings.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the notes database.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A postgres:// URI selects the PostgreSQL backend; any other value
	// is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. The subscription endpoint is
	// exempt; streams stay open until the client disconnects.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings consumed by the studyhub CLI.
type Client struct {
	// ServerURL is the base URL of the StudyHub server
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// The subscription stream ignores it.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile is the path where the CLI persists the session token
	// between invocations. Empty means the per-user default
	// (~/.studyhub/session.json).
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// Assist holds AI assistant settings.
type Assist struct {
	// GeminiAPIKey authenticates requests to the Gemini API. The assist
	// commands are disabled when it is empty.
	// Env: ASSIST_GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// Model is the Gemini model identifier used for note assistance.
	// Env: ASSIST_MODEL
	Model string `env:"MODEL"`
}

// Defaults applied after all sources are merged; only zero fields are filled.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "studyhub"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultServerURL      = "http://localhost:8080"
	DefaultAssistModel    = "gemini-2.0-flash"
)

// GetServerConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever remains zero after the merge.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetServerConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build(validateServer)
}
