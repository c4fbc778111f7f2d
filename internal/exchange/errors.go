// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package exchange

import "errors"

var (
	// ErrUpstreamUnavailable is returned by Initialize when the rate
	// snapshot cannot be fetched (transport failure or non-200 status).
	ErrUpstreamUnavailable = errors.New("exchange rate source unavailable")

	// ErrNotInitialized is returned by ConvertToUSD when no successful
	// Initialize has happened yet.
	ErrNotInitialized = errors.New("exchange rate provider not initialized")
)
