package models

// HrefLangTag is one alternate-locale link of a title URL.
type HrefLangTag struct {
	Locale string `json:"locale"`
	Href   string `json:"href"`
}

// URLMetadata describes a title URL as returned by the upstream content
// URLs endpoint.
type URLMetadata struct {
	ID           int           `json:"id"`
	Locale       string        `json:"locale"`
	ObjectType   string        `json:"objectType"`
	ObjectID     int           `json:"objectId"`
	FullPath     string        `json:"fullPath"`
	HrefLangTags []HrefLangTag `json:"hrefLangTags"`
}

// LocalesResponse is the outbound envelope of the locales endpoint.
type LocalesResponse struct {
	Locales []string `json:"locales"`
}
