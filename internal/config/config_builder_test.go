package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build(nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "secret"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build(nil)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
}

// TestBuild_FirstSourceWins verifies the merge priority: a field set by an
// earlier source is not overridden by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Minute}},
	)

	cfg, err := b.build(nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// TestBuild_RunsValidation verifies that the validate callback sees the
// merged config and its error propagates.
func TestBuild_RunsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build(validateServer)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyMissingFields verifies that defaults never
// override values from real sources.
func TestWithDefaults_FillsOnlyMissingFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "0.0.0.0:9999"},
	})

	cfg, err := b.withDefaults().build(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultServerURL, cfg.Client.ServerURL)
	assert.Equal(t, DefaultAssistModel, cfg.Assist.Model)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_LoadsFileNamedByEarlierSource verifies that the JSON path is
// resolved from an already-collected source config.
func TestWithJSON_LoadsFileNamedByEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "notes.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build(nil)
	require.NoError(t, err)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
}

// TestWithJSON_NoPath verifies that the step is skipped when no source named
// a JSON file.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.withJSON().build(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestWithJSON_MissingFile verifies that a dangling path surfaces as a build
// error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build(nil)
	require.Error(t, err)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		ServerURL:      "http://localhost:8080",
		RequestTimeout: 30 * time.Second,
	}
	assert.NoError(t, valid.validate())

	noURL := &ClientConfig{RequestTimeout: 30 * time.Second}
	assert.ErrorIs(t, noURL.validate(), ErrInvalidClientConfigs)

	badScheme := &ClientConfig{ServerURL: "ftp://x", RequestTimeout: time.Second}
	assert.ErrorIs(t, badScheme.validate(), ErrInvalidClientConfigs)

	noTimeout := &ClientConfig{ServerURL: "http://localhost:8080"}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidClientConfigs)
}

func TestValidateServer(t *testing.T) {
	valid := &StructuredConfig{
		Auth:    Auth{TokenSignKey: "k", TokenIssuer: "studyhub", TokenDuration: time.Hour},
		Storage: Storage{DB: DB{DSN: "notes.db"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
	assert.NoError(t, validateServer(valid))

	noDSN := *valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, validateServer(&noDSN), ErrInvalidStorageConfigs)

	noKey := *valid
	noKey.Auth.TokenSignKey = ""
	assert.ErrorIs(t, validateServer(&noKey), ErrInvalidAuthConfigs)

	noAddr := *valid
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, validateServer(&noAddr), ErrInvalidServerConfigs)
}
