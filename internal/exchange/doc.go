// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package exchange provides USD price normalization backed by a public
// exchange-rate snapshot.
//
// The snapshot is fetched lazily, at most once per process: the first
// successful [RateProvider.Initialize] caches the rate table for the process
// lifetime and every later call is a no-op. There is no TTL and no refresh.
// Conversion of an unknown or missing currency does not fail; it yields the
// sentinel value 999.0 for nonzero amounts (and 0.0 for zero) so that a
// suspicious price is flagged instead of crashing the request.
package exchange
