package justwatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-watch-proxy/internal/config"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/MKhiriev/go-watch-proxy/models"
	"github.com/go-resty/resty/v2"
)

type client struct {
	http   *resty.Client
	logger *logger.Logger
}

// NewClient constructs the HTTP implementation of [Client]. The base URL is
// the scheme+host of the JustWatch API; cfg.RequestTimeout bounds every call
// uniformly.
func NewClient(cfg config.Upstream, logger *logger.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://apis.justwatch.com"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &client{http: cli, logger: logger}
}

// SearchTitles implements [Client].
func (c *client) SearchTitles(ctx context.Context, query, country string) (*models.SearchResponse, error) {
	req := graphQLRequest{
		OperationName: "GetSearchTitles",
		Query:         searchTitlesQuery,
		Variables: map[string]any{
			"searchTitlesFilter": map[string]any{
				"searchQuery":             query,
				"includeTitlesWithoutUrl": true,
			},
			"country":         country,
			"language":        "en",
			"first":           20,
			"formatPoster":    "JPG",
			"formatOfferIcon": "PNG",
			"profile":         "S718",
			"backdropProfile": "S1920",
		},
	}

	var envelope struct {
		Data models.SearchResponse `json:"data"`
	}
	if err := c.post(ctx, req, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// GetTitle implements [Client]. A null node in the response (unknown ID or a
// non-movie/show node kind) yields (nil, nil).
func (c *client) GetTitle(ctx context.Context, nodeID string) (*models.TitleNode, error) {
	req := graphQLRequest{
		OperationName: "GetTitleNode",
		Query:         titleNodeQuery,
		Variables: map[string]any{
			"nodeId":          nodeID,
			"country":         "US",
			"language":        "en",
			"formatPoster":    "JPG",
			"profile":         "S718",
			"backdropProfile": "S1920",
		},
	}

	var envelope struct {
		Data struct {
			Node *models.TitleNode `json:"node"`
		} `json:"data"`
	}
	if err := c.post(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Data.Node == nil || envelope.Data.Node.ID == "" {
		return nil, nil
	}
	return envelope.Data.Node, nil
}

// GetURLMetadata implements [Client].
func (c *client) GetURLMetadata(ctx context.Context, path string) (*models.URLMetadata, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("path", path).
		Get("/content/urls")
	if err != nil {
		return nil, fmt.Errorf("%w: GetUrlMetadata: %v", ErrRequestFailed, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: GetUrlMetadata: http %d", ErrRequestFailed, resp.StatusCode())
	}

	var metadata models.URLMetadata
	if err = json.Unmarshal(resp.Body(), &metadata); err != nil {
		return nil, fmt.Errorf("decode url metadata response: %w", err)
	}

	return &metadata, nil
}

// GetTitleOffers implements [Client].
func (c *client) GetTitleOffers(ctx context.Context, nodeID string, countries []string) (map[string][]models.Offer, error) {
	query, err := buildOffersQuery(countries)
	if err != nil {
		return nil, err
	}

	req := graphQLRequest{
		OperationName: "GetTitleOffers",
		Query:         query,
		Variables: map[string]any{
			"nodeId":    nodeID,
			"language":  "en",
			"filterBuy": map[string]any{},
			"platform":  "WEB",
		},
	}

	var envelope struct {
		Data struct {
			Node map[string][]models.Offer `json:"node"`
		} `json:"data"`
	}
	if err = c.post(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Data.Node == nil {
		return map[string][]models.Offer{}, nil
	}
	return envelope.Data.Node, nil
}

// post executes one GraphQL round trip and decodes the response body into
// out. Failures carry the operation name and, for HTTP errors, the status
// code, so the caller has retry-decision context without this client ever
// retrying itself.
func (c *client) post(ctx context.Context, req graphQLRequest, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/graphql")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRequestFailed, req.OperationName, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: http %d", ErrRequestFailed, req.OperationName, resp.StatusCode())
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.OperationName, err)
	}

	return nil
}
