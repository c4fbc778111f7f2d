package http

import (
	"github.com/MKhiriev/go-watch-proxy/internal/config"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/MKhiriev/go-watch-proxy/internal/service"
)

type Handler struct {
	services *service.Services

	version   string
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		version:   cfg.App.Version,
		staticDir: cfg.Static.Dir,
		logger:    logger,
	}
}
