package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "2.0.0"},
		"server": map[string]any{
			"http_address":    "localhost:9090",
			"request_timeout": "20s",
		},
		"upstream": map[string]any{
			"base_url":        "https://apis.example.com",
			"request_timeout": "25s",
		},
		"exchange": map[string]any{
			"rates_url":       "https://rates.example.com/USD",
			"request_timeout": "5s",
		},
		"static": map[string]any{"dir": "/srv/static"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://apis.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "https://rates.example.com/USD", cfg.Exchange.RatesURL)
	assert.Equal(t, 5*time.Second, cfg.Exchange.RequestTimeout)
	assert.Equal(t, "/srv/static", cfg.Static.Dir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	f := writeTempJSONConfig(t, "not-an-object")
	_, err := parseJSON(f)
	require.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(42 * time.Second)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"42s"`, string(data))
}
