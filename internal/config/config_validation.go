// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged configuration is complete enough to start
// the server. Defaults cover every field, so failures here normally mean an
// explicitly provided value is malformed.
func (c *StructuredConfig) validate() error {
	if strings.TrimSpace(c.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidServerConfigs)
	}

	if err := validateURL(c.Upstream.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidUpstreamConfigs, err)
	}
	if c.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidUpstreamConfigs)
	}

	if err := validateURL(c.Exchange.RatesURL); err != nil {
		return fmt.Errorf("%w: rates url: %v", ErrInvalidExchangeConfigs, err)
	}
	if c.Exchange.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidExchangeConfigs)
	}

	return nil
}

func validateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url must include scheme and host")
	}

	return nil
}
