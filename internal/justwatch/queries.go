package justwatch

import (
	"fmt"
	"regexp"
	"strings"
)

// graphQLRequest is the wire shape of every upstream GraphQL call.
type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

const searchTitlesQuery = `
query GetSearchTitles(
    $searchTitlesFilter: TitleFilter!,
    $country: Country!,
    $language: Language!,
    $first: Int!,
    $formatPoster: ImageFormat,
    $profile: PosterProfile,
    $backdropProfile: BackdropProfile
) {
    popularTitles(
        country: $country
        filter: $searchTitlesFilter
        first: $first
        sortBy: POPULAR
        sortRandomSeed: 0
    ) {
        edges {
            ...SearchTitleGraphql
            __typename
        }
        __typename
    }
}

fragment SearchTitleGraphql on PopularTitlesEdge {
    node {
        id
        objectId
        objectType
        content(country: $country, language: $language) {
            title
            fullPath
            originalReleaseYear
            originalReleaseDate
            productionCountries
            runtime
            shortDescription
            genres {
                shortName
                __typename
            }
            externalIds {
                imdbId
                tmdbId
                __typename
            }
            posterUrl(profile: $profile, format: $formatPoster)
            backdrops(profile: $backdropProfile, format: $formatPoster) {
                backdropUrl
                __typename
            }
            __typename
        }
        __typename
    }
    __typename
}`

const titleNodeQuery = `
query GetTitleNode(
    $nodeId: ID!,
    $language: Language!,
    $country: Country!,
    $formatPoster: ImageFormat,
    $profile: PosterProfile,
    $backdropProfile: BackdropProfile
) {
    node(id: $nodeId) {
        ... on MovieOrShow {
            id
            objectId
            objectType
            content(country: $country, language: $language) {
                title
                fullPath
                originalReleaseYear
                originalReleaseDate
                productionCountries
                runtime
                shortDescription
                genres {
                    shortName
                    __typename
                }
                externalIds {
                    imdbId
                    tmdbId
                    __typename
                }
                posterUrl(profile: $profile, format: $formatPoster)
                backdrops(profile: $backdropProfile, format: $formatPoster) {
                    backdropUrl
                    __typename
                }
                __typename
            }
            __typename
        }
    }
}`

const titleOfferFragment = `
fragment TitleOffer on Offer {
    id
    presentationType
    monetizationType
    retailPrice(language: $language)
    retailPriceValue
    currency
    lastChangeRetailPriceValue
    type
    package {
        id
        packageId
        clearName
        technicalName
        icon(profile: S100)
        __typename
    }
    standardWebURL
    elementCount
    availableTo
    deeplinkRoku: deeplinkURL(platform: ROKU_OS)
    subtitleLanguages
    videoTechnology
    audioTechnology
    audioLanguages
    __typename
}`

// countryCodePattern is the allowlist for country codes spliced into the
// generated offers document. The upstream schema requires the country as a
// compile-time literal per aliased field, so codes become query text; only
// ISO 3166-1 alpha-2 shapes are accepted to keep interpolation closed.
var countryCodePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

// buildOffersQuery generates the GetTitleOffers document with one aliased
// offers field per requested country. The alias is the lowercased country
// code; the country argument is the uppercased code. Returns
// [ErrInvalidCountryCode] if any code fails the allowlist check.
func buildOffersQuery(countries []string) (string, error) {
	fields := make([]string, 0, len(countries))
	for _, country := range countries {
		if !countryCodePattern.MatchString(country) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, country)
		}
		fields = append(fields, fmt.Sprintf(
			"        %s: offers(country: %s, platform: $platform, filter: $filterBuy) {\n            ...TitleOffer\n            __typename\n        }",
			strings.ToLower(country), strings.ToUpper(country),
		))
	}

	return fmt.Sprintf(`
query GetTitleOffers($nodeId: ID!, $language: Language!, $filterBuy: OfferFilter!, $platform: Platform!) {
    node(id: $nodeId) {
        ... on MovieOrShowOrSeasonOrEpisode {
%s
        }
    }
}
%s`, strings.Join(fields, "\n"), titleOfferFragment), nil
}
