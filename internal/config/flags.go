package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-upstream-url JustWatch API base URL
//	-upstream-timeout outbound upstream request timeout
//	-rates-url exchange-rate snapshot URL
//	-rates-timeout exchange-rate fetch timeout
//	-static-dir static assets directory served at "/"
//	-app-version advertised application version
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var upstreamURL string
	var upstreamTimeout time.Duration
	var ratesURL string
	var ratesTimeout time.Duration
	var staticDir string
	var appVersion string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&upstreamURL, "upstream-url", "", "JustWatch API base URL")
	flag.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout")
	flag.StringVar(&ratesURL, "rates-url", "", "Exchange-rate snapshot URL")
	flag.DurationVar(&ratesTimeout, "rates-timeout", 0, "Exchange-rate fetch timeout")
	flag.StringVar(&staticDir, "static-dir", "", "Static assets directory")
	flag.StringVar(&appVersion, "app-version", "", "Advertised application version")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Upstream: Upstream{
			BaseURL:        upstreamURL,
			RequestTimeout: upstreamTimeout,
		},
		Exchange: Exchange{
			RatesURL:       ratesURL,
			RequestTimeout: ratesTimeout,
		},
		Static: Static{
			Dir: staticDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step can fall through to lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
