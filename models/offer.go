package models

// OfferPackage identifies the streaming provider behind an offer.
type OfferPackage struct {
	ID            string `json:"id"`
	PackageID     int    `json:"packageId"`
	ClearName     string `json:"clearName"`
	TechnicalName string `json:"technicalName"`
	Icon          string `json:"icon"`
}

// Offer is one raw availability record of a title in one country, as
// returned by the upstream GraphQL API. Price fields are pointers because
// flatrate offers carry no price at all.
type Offer struct {
	ID                         string        `json:"id"`
	PresentationType           string        `json:"presentationType"`
	MonetizationType           string        `json:"monetizationType"`
	RetailPrice                string        `json:"retailPrice"`
	RetailPriceValue           *float64      `json:"retailPriceValue"`
	Currency                   string        `json:"currency"`
	LastChangeRetailPriceValue *float64      `json:"lastChangeRetailPriceValue"`
	Type                       string        `json:"type"`
	Package                    *OfferPackage `json:"package"`
	StandardWebURL             string        `json:"standardWebURL"`
	ElementCount               int           `json:"elementCount"`
	AvailableTo                string        `json:"availableTo"`
	DeeplinkRoku               string        `json:"deeplinkRoku"`
	SubtitleLanguages          []string      `json:"subtitleLanguages"`
	VideoTechnology            []string      `json:"videoTechnology"`
	AudioTechnology            []string      `json:"audioTechnology"`
	AudioLanguages             []string      `json:"audioLanguages"`
}

// TitleOffer is the flattened outbound view of one offer in one country.
//
// NormalizedPrice is the offer price converted to USD and rounded to two
// decimals. A value of 999.0 flags a price whose currency has no known
// exchange rate; 0.0 means the offer carries no price.
type TitleOffer struct {
	Country           string   `json:"country"`
	PackageURL        string   `json:"packageUrl"`
	PackageClearName  string   `json:"packageClearName"`
	RetailPrice       string   `json:"retailPrice"`
	RetailPriceValue  *float64 `json:"retailPriceValue"`
	NormalizedPrice   float64  `json:"normalizedPrice"`
	PresentationType  string   `json:"presentationType"`
	MonetizationType  string   `json:"monetizationType"`
	SubtitleLanguages string   `json:"subtitleLanguages"`
	AudioLanguages    string   `json:"audioLanguages"`
	Technology        string   `json:"technology"`
	OfferDetails      Offer    `json:"offerDetails"`
}
