// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-watch-proxy application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the advertised version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds the JustWatch endpoint settings.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Exchange holds the exchange-rate source settings.
	Exchange Exchange `envPrefix:"EXCHANGE_"`

	// Static holds the optional static asset serving settings.
	Static Static `envPrefix:"STATIC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"). Exposed in the root banner response.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
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

// Upstream holds the settings of the JustWatch API the proxy queries.
type Upstream struct {
	// BaseURL is the scheme+host of the JustWatch API. The GraphQL
	// endpoint is <BaseURL>/graphql and URL metadata is served from
	// <BaseURL>/content/urls.
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound call to the upstream API.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Exchange holds the settings of the exchange-rate source.
type Exchange struct {
	// RatesURL is the full URL of the USD-keyed exchange-rate snapshot
	// (a plain HTTPS GET returning {"rates": {code: rate}}).
	// Env: EXCHANGE_RATES_URL
	RatesURL string `env:"RATES_URL"`

	// RequestTimeout bounds the rate-snapshot fetch.
	// Env: EXCHANGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Static holds the optional static asset mount of the root route.
type Static struct {
	// Dir is a directory of static files served at "/". When empty the
	// root route answers with the service banner instead.
	// Env: STATIC_DIR
	Dir string `env:"DIR"`
}

// defaults returns the built-in configuration that backs any field left
// unset by the environment, flags, and JSON file.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Upstream: Upstream{
			BaseURL:        "https://apis.justwatch.com",
			RequestTimeout: 30 * time.Second,
		},
		Exchange: Exchange{
			RatesURL:       "https://open.er-api.com/v6/latest/USD",
			RequestTimeout: 30 * time.Second,
		},
	}
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
