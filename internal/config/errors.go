package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing HTTP address or non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpstreamConfigs indicates invalid JustWatch endpoint
	// settings (for example, a base URL without scheme or host).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidExchangeConfigs indicates invalid exchange-rate source
	// settings (for example, a malformed rates URL).
	ErrInvalidExchangeConfigs = errors.New("invalid exchange configuration")
)
