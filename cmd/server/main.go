package main

import (
	"fmt"

	"github.com/MKhiriev/go-watch-proxy/internal/config"
	"github.com/MKhiriev/go-watch-proxy/internal/exchange"
	"github.com/MKhiriev/go-watch-proxy/internal/handler"
	"github.com/MKhiriev/go-watch-proxy/internal/justwatch"
	"github.com/MKhiriev/go-watch-proxy/internal/logger"
	"github.com/MKhiriev/go-watch-proxy/internal/server"
	"github.com/MKhiriev/go-watch-proxy/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-watch-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	rates := exchange.NewRateProvider(cfg.Exchange, log)
	client := justwatch.NewClient(cfg.Upstream, log)
	services := service.NewServices(client, rates, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
