package handler

import (
	"github.com/MKhiriev/go-watch-proxy/internal/config"
	"github.com/MKhiriev/go-watch-proxy/internal/handler/http"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/MKhiriev/go-watch-proxy/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
