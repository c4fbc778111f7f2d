package models

// TitleNode is a single movie or show node as returned by the upstream
// GraphQL API. Content is nil when the node carries no localized content.
type TitleNode struct {
	ID         string        `json:"id"`
	ObjectID   int           `json:"objectId"`
	ObjectType string        `json:"objectType"`
	Content    *TitleContent `json:"content,omitempty"`
}

// TitleContent is the localized content block of a title: display fields
// resolved for one (country, language) pair.
type TitleContent struct {
	Title               string      `json:"title"`
	FullPath            string      `json:"fullPath"`
	OriginalReleaseYear int         `json:"originalReleaseYear"`
	OriginalReleaseDate string      `json:"originalReleaseDate"`
	ProductionCountries []string    `json:"productionCountries"`
	Runtime             int         `json:"runtime"`
	ShortDescription    string      `json:"shortDescription"`
	Genres              []Genre     `json:"genres"`
	ExternalIDs         ExternalIDs `json:"externalIds"`
	PosterURL           string      `json:"posterUrl"`
	Backdrops           []Backdrop  `json:"backdrops"`
}

type Genre struct {
	ShortName string `json:"shortName"`
}

// ExternalIDs maps a title to third-party catalogue identifiers.
type ExternalIDs struct {
	IMDBID string `json:"imdbId"`
	TMDBID string `json:"tmdbId"`
}

type Backdrop struct {
	BackdropURL string `json:"backdropUrl"`
}

type TitleEdge struct {
	Node TitleNode `json:"node"`
}

type PopularTitles struct {
	Edges []TitleEdge `json:"edges"`
}

// SearchResponse is the envelope returned by a title search. Edge order is
// the upstream popularity order and is preserved as-is.
type SearchResponse struct {
	PopularTitles PopularTitles `json:"popularTitles"`
}
