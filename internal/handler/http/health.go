package http

import (
	"net/http"

	"github.com/MKhiriev/go-watch-proxy/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) banner(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "JustWatch proxy is running",
		"version": h.version,
	}, http.StatusOK)
}
