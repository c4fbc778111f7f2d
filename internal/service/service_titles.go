package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-watch-proxy/internal/exchange"
	"github.com/MKhiriev/go-watch-proxy/internal/justwatch"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/MKhiriev/go-watch-proxy/models"
)

type titleService struct {
	client justwatch.Client
	rates  exchange.RateProvider

	logger *logger.Logger
}

// NewTitleService constructs the [TitleService] implementation on top of the
// JustWatch client and the exchange-rate provider.
func NewTitleService(client justwatch.Client, rates exchange.RateProvider, logger *logger.Logger) TitleService {
	return &titleService{client: client, rates: rates, logger: logger}
}

// Search implements [TitleService].
func (s *titleService) Search(ctx context.Context, query, country string) (*models.SearchResponse, error) {
	return s.client.SearchTitles(ctx, query, country)
}

// GetTitle implements [TitleService].
func (s *titleService) GetTitle(ctx context.Context, nodeID string) (*models.TitleNode, error) {
	title, err := s.client.GetTitle(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, ErrTitleNotFound
	}
	return title, nil
}

// GetAvailableLocales implements [TitleService]. Href-lang entries that carry
// no locale are not an error; they are skipped.
func (s *titleService) GetAvailableLocales(ctx context.Context, path string) ([]string, error) {
	metadata, err := s.client.GetURLMetadata(ctx, path)
	if err != nil {
		return nil, err
	}

	locales := make([]string, 0, len(metadata.HrefLangTags))
	for _, tag := range metadata.HrefLangTags {
		if tag.Locale != "" {
			locales = append(locales, tag.Locale)
		}
	}

	return locales, nil
}

// countryFromLocale extracts the country code of a "language_COUNTRY" locale
// string: the substring after the last underscore.
func countryFromLocale(locale string) string {
	return locale[strings.LastIndex(locale, "_")+1:]
}
