package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-watch-proxy/internal/config"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/go-resty/resty/v2"
)

// unconvertiblePrice flags an offer whose currency has no known rate.
// Callers must treat it as "unconvertible", never as a real price.
const unconvertiblePrice = 999.0

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

type rateProvider struct {
	client *resty.Client
	logger *logger.Logger

	mu          sync.RWMutex
	rates       map[string]float64
	initialized bool
}

// NewRateProvider constructs a [RateProvider] that fetches its snapshot from
// cfg.RatesURL with cfg.RequestTimeout applied to the fetch.
func NewRateProvider(cfg config.Exchange, logger *logger.Logger) RateProvider {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	cli := resty.New().SetTimeout(cfg.RequestTimeout)

	return &rateProvider{
		client: cli.SetBaseURL(cfg.RatesURL),
		logger: logger,
	}
}

// Initialize implements [RateProvider]. The mutex gives at-most-once
// semantics under concurrent callers: the first one performs the fetch while
// the rest block and then observe the initialized flag.
func (p *rateProvider) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	resp, err := p.client.R().SetContext(ctx).Get("")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: http %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	var body ratesResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("%w: decode rates: %v", ErrUpstreamUnavailable, err)
	}

	p.rates = body.Rates
	p.initialized = true
	p.logger.Info().Int("rates", len(p.rates)).Msg("exchange rate snapshot cached")

	return nil
}

// ConvertToUSD implements [RateProvider].
func (p *rateProvider) ConvertToUSD(currencyCode string, amount float64) (float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.initialized {
		return 0, ErrNotInitialized
	}

	if rate, ok := p.rates[currencyCode]; ok && currencyCode != "" {
		return math.Round(amount/rate*100) / 100, nil
	}

	if amount != 0 {
		return unconvertiblePrice, nil
	}
	return 0, nil
}
