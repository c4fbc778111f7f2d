// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-watch-proxy/models"
)

// TitleService exposes the title/offer operations of the proxy: search,
// title lookup, locale discovery, and cross-country offer aggregation.
type TitleService interface {
	// Search forwards a free-text title search in the given country's
	// locale and returns the upstream result with edge order preserved.
	Search(ctx context.Context, query, country string) (*models.SearchResponse, error)

	// GetTitle returns the full title content for one node ID. Returns
	// [ErrTitleNotFound] when the node does not resolve to a movie/show.
	GetTitle(ctx context.Context, nodeID string) (*models.TitleNode, error)

	// GetAvailableLocales returns the locale strings of the title path's
	// href-lang tags. Tags without a locale are skipped silently.
	GetAvailableLocales(ctx context.Context, path string) ([]string, error)

	// GetAllOffers returns the flattened, normalized offer list for a
	// title across every available country. Locale discovery failures
	// fall back to a fixed list of major streaming markets; the result
	// is ordered by resolved country, then upstream offer order.
	GetAllOffers(ctx context.Context, nodeID, path string) ([]models.TitleOffer, error)
}
