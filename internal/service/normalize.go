// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-watch-proxy/models"
)

// trackingDomains are services known to append tracking query strings to
// their offer links; links to them are reduced to scheme+host+path.
var trackingDomains = []string{
	"tv.apple.com",
	"watch.plex.tv",
	"play.max.com",
	"therokuchannel.roku.com",
}

// newTitleOffer flattens one (country, raw offer) pair into the outbound
// view record.
func newTitleOffer(country string, offer models.Offer, normalizedPrice float64) models.TitleOffer {
	var clearName string
	if offer.Package != nil {
		clearName = offer.Package.ClearName
	}

	return models.TitleOffer{
		Country:           strings.ToUpper(country),
		PackageURL:        cleanPackageURL(offer.StandardWebURL),
		PackageClearName:  clearName,
		RetailPrice:       offer.RetailPrice,
		RetailPriceValue:  offer.RetailPriceValue,
		NormalizedPrice:   normalizedPrice,
		PresentationType:  offer.PresentationType,
		MonetizationType:  offer.MonetizationType,
		SubtitleLanguages: formatLanguages(offer.SubtitleLanguages),
		AudioLanguages:    formatLanguages(offer.AudioLanguages),
		Technology:        formatTechnology(offer.VideoTechnology, offer.AudioTechnology),
		OfferDetails:      offer,
	}
}

// cleanPackageURL strips tracking noise from an offer link. Cleaning is
// best-effort: any parse failure returns the original URL unchanged.
func cleanPackageURL(packageURL string) string {
	if packageURL == "" {
		return ""
	}

	// Disney+ affiliate redirects carry the destination in the "u" param.
	if strings.Contains(packageURL, "bn5x.net") && strings.Contains(packageURL, "www.disneyplus.com") {
		if parsed, err := url.Parse(packageURL); err == nil {
			if clean := parsed.Query().Get("u"); clean != "" {
				return clean
			}
		}
	}

	for _, domain := range trackingDomains {
		if strings.Contains(packageURL, domain) {
			if parsed, err := url.Parse(packageURL); err == nil {
				return parsed.Scheme + "://" + parsed.Host + parsed.Path
			}
			break
		}
	}

	return packageURL
}

// formatLanguages joins a language list into a single display string; an
// empty or missing list yields the empty string.
func formatLanguages(languages []string) string {
	return strings.Join(languages, ", ")
}

// formatTechnology concatenates the video then audio technology entries,
// dropping empty strings from each.
func formatTechnology(videoTech, audioTech []string) string {
	parts := make([]string, 0, len(videoTech)+len(audioTech))
	for _, t := range videoTech {
		if t != "" {
			parts = append(parts, t)
		}
	}
	for _, t := range audioTech {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ", ")
}
