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

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier configs winning for set fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
		&StructuredConfig{Server: Server{HTTPAddress: "ignored:1", RequestTimeout: time.Minute}},
		defaults(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	// untouched groups fall through to the defaults
	assert.Equal(t, "https://apis.justwatch.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "https://open.er-api.com/v6/latest/USD", cfg.Exchange.RatesURL)
}

// TestBuild_DefaultsOnly verifies that defaults alone produce a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Exchange.RequestTimeout)
}

// TestBuild_ValidationFailure verifies that a merged config with a malformed
// value is rejected by validate.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Upstream: Upstream{BaseURL: "not a url"}},
		defaults(),
	)

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUpstreamConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergedAfterEnv verifies that a JSON file referenced by an
// earlier source is parsed and merged with lower priority.
func TestWithJSON_MergedAfterEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":   map[string]any{"http_address": "json-host:7070", "request_timeout": "45s"},
		"upstream": map[string]any{"base_url": "https://json.example.com"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server:       Server{HTTPAddress: "env-host:8080"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	// env wins over json for the address, json fills the rest
	assert.Equal(t, "env-host:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://json.example.com", cfg.Upstream.BaseURL)
}

// TestWithJSON_MissingFile verifies that a dangling JSON path surfaces as a
// builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// TestWithJSON_NoPath verifies that the JSON step is skipped when no source
// specified a file path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
