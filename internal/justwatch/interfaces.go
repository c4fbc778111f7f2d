// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package justwatch

import (
	"context"

	"github.com/MKhiriev/go-watch-proxy/models"
)

// Client defines the operations the proxy issues against the JustWatch API.
// Implementations are responsible for query construction, serialisation, and
// mapping transport-level failures to the sentinel errors of this package.
type Client interface {
	// SearchTitles returns up to 20 popular titles matching query in the
	// given country's locale, sorted by popularity with a fixed random
	// seed for deterministic tie-breaking. Edge order is preserved.
	SearchTitles(ctx context.Context, query, country string) (*models.SearchResponse, error)

	// GetTitle returns the full title content for one opaque node ID, or
	// nil when the node does not resolve to a movie or show.
	GetTitle(ctx context.Context, nodeID string) (*models.TitleNode, error)

	// GetURLMetadata returns locale/path metadata for a title's canonical
	// path, including its alternate-locale href-lang tags.
	GetURLMetadata(ctx context.Context, path string) (*models.URLMetadata, error)

	// GetTitleOffers retrieves offers for the title in every requested
	// country in a single round trip. The result maps the lowercased
	// country alias to that country's raw offers. Returns
	// [ErrInvalidCountryCode] if any code fails validation.
	GetTitleOffers(ctx context.Context, nodeID string, countries []string) (map[string][]models.Offer, error)
}
