package exchange

import "context"

// RateProvider converts currency amounts to USD using a process-lifetime
// snapshot of exchange rates.
type RateProvider interface {
	// Initialize fetches the rate snapshot on the first call and caches it
	// for the process lifetime. Subsequent calls are no-ops once a fetch
	// has succeeded; a failed fetch leaves the provider uninitialized so a
	// later call may retry. Returns [ErrUpstreamUnavailable] (wrapped) when
	// the snapshot cannot be fetched.
	Initialize(ctx context.Context) error

	// ConvertToUSD converts amount from currencyCode to USD, rounded to two
	// decimal places. An empty or unknown currencyCode yields 999.0 for a
	// nonzero amount and 0.0 for zero. Returns [ErrNotInitialized] when
	// called before a successful Initialize.
	ConvertToUSD(currencyCode string, amount float64) (float64, error)
}
