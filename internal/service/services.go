package service

import (
	"github.com/MKhiriev/go-watch-proxy/internal/exchange"
	"github.com/MKhiriev/go-watch-proxy/internal/justwatch"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
)

type Services struct {
	TitleService TitleService
}

func NewServices(client justwatch.Client, rates exchange.RateProvider, logger *logger.Logger) *Services {
	return &Services{
		TitleService: NewTitleService(client, rates, logger),
	}
}
