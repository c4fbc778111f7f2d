// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package justwatch

import "errors"

var (
	// ErrRequestFailed is returned when an upstream call fails at the
	// transport level or answers with a non-2xx status. The wrapping error
	// carries the operation name and status code; no retry is attempted.
	ErrRequestFailed = errors.New("upstream request failed")

	// ErrInvalidCountryCode is returned by the offers query builder when a
	// requested country code does not match the two-letter allowlist.
	ErrInvalidCountryCode = errors.New("invalid country code")
)
