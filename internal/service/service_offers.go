package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-watch-proxy/models"
)

// fallbackCountries lists the major streaming markets queried when locale
// discovery fails or yields nothing. The list and its order are part of the
// API contract, not an example set.
var fallbackCountries = []string{
	"US", "GB", "CA", "AU", "DE", "FR", "ES", "IT", "JP", "BR",
	"MX", "AR", "IN", "NL", "SE", "NO", "DK", "FI", "IE", "NZ",
	"AT", "CH", "BE", "PT", "PL", "CZ", "GR", "TR", "ZA", "KR",
}

// GetAllOffers implements [TitleService].
func (s *titleService) GetAllOffers(ctx context.Context, nodeID, path string) ([]models.TitleOffer, error) {
	if err := s.rates.Initialize(ctx); err != nil {
		return nil, err
	}

	countries := s.resolveCountries(ctx, path)

	offersByAlias, err := s.client.GetTitleOffers(ctx, nodeID, countries)
	if err != nil {
		return nil, err
	}

	result := make([]models.TitleOffer, 0, len(offersByAlias))
	for _, country := range countries {
		for _, offer := range offersByAlias[strings.ToLower(country)] {
			var amount float64
			if offer.RetailPriceValue != nil {
				amount = *offer.RetailPriceValue
			}

			usd, err := s.rates.ConvertToUSD(offer.Currency, amount)
			if err != nil {
				return nil, err
			}

			result = append(result, newTitleOffer(country, offer, usd))
		}
	}

	return result, nil
}

// resolveCountries turns the title path into the target country list.
// A failed or empty locale discovery is not an error: the fixed fallback
// market list is used instead.
func (s *titleService) resolveCountries(ctx context.Context, path string) []string {
	locales, err := s.GetAvailableLocales(ctx, path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("locale discovery failed, using fallback countries")
		return fallbackCountries
	}
	if len(locales) == 0 {
		return fallbackCountries
	}

	countries := make([]string, 0, len(locales))
	for _, locale := range locales {
		countries = append(countries, countryFromLocale(locale))
	}
	return countries
}
