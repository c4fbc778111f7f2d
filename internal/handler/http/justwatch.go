package http

import (
	"net/http"
	"regexp"

	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/MKhiriev/go-watch-proxy/internal/utils"
	"github.com/MKhiriev/go-watch-proxy/models"
	"github.com/go-chi/chi/v5"
)

const defaultSearchCountry = "US"

var countryParamPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

func (h *Handler) searchTitles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "query parameter `q` is required", http.StatusBadRequest)
		return
	}

	country := r.URL.Query().Get("country")
	if country == "" {
		country = defaultSearchCountry
	}
	if !countryParamPattern.MatchString(country) {
		http.Error(w, "query parameter `country` must be a two-letter code", http.StatusBadRequest)
		return
	}

	result, err := h.services.TitleService.Search(ctx, query, country)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.searchTitles").Str("query", query).Msg("error searching titles")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	nodeID := chi.URLParam(r, "nodeID")

	title, err := h.services.TitleService.GetTitle(ctx, nodeID)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.getTitle").Str("node_id", nodeID).Msg("error getting title")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, title, http.StatusOK)
}

func (h *Handler) getTitleOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	nodeID := chi.URLParam(r, "nodeID")
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "query parameter `path` is required", http.StatusBadRequest)
		return
	}

	offers, err := h.services.TitleService.GetAllOffers(ctx, nodeID, path)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.getTitleOffers").Str("node_id", nodeID).Msg("error getting title offers")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int("offers", len(offers)).Str("node_id", nodeID).Msg("offers aggregated")
	utils.WriteJSON(w, offers, http.StatusOK)
}

func (h *Handler) getLocales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "query parameter `path` is required", http.StatusBadRequest)
		return
	}

	locales, err := h.services.TitleService.GetAvailableLocales(ctx, path)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.getLocales").Str("path", path).Msg("error getting available locales")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if locales == nil {
		locales = []string{}
	}
	utils.WriteJSON(w, models.LocalesResponse{Locales: locales}, http.StatusOK)
}
