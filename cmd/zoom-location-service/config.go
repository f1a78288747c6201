// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/nats-io/nats.go"

	"github.com/eventwire/zoom-location-service/internal/infrastructure/zoom"
	"github.com/eventwire/zoom-location-service/internal/logging"
)

// flags are the command line flags for the zoom location service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the zoom location service.
type environment struct {
	Port              string
	NatsURL           string
	SkipNotifications bool
	Zoom              zoom.Config
}

// parseFlags parses command line flags for the zoom location service.
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used
	// by [logging.InitStructuredLogConfig].
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the zoom location service.
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	skipNotifications := os.Getenv("SKIP_SYNC_NOTIFICATIONS") == "true"

	return environment{
		Port:              port,
		NatsURL:           natsURL,
		SkipNotifications: skipNotifications,
		Zoom:              parseZoomConfig(),
	}
}

// parseZoomConfig parses the Zoom server-to-server OAuth configuration from
// environment variables.
func parseZoomConfig() zoom.Config {
	accountID := os.Getenv("ZOOM_ACCOUNT_ID")
	if accountID == "" {
		slog.Error("ZOOM_ACCOUNT_ID environment variable is required but not set")
		os.Exit(1)
	}

	clientID := os.Getenv("ZOOM_CLIENT_ID")
	if clientID == "" {
		slog.Error("ZOOM_CLIENT_ID environment variable is required but not set")
		os.Exit(1)
	}

	clientSecret := os.Getenv("ZOOM_CLIENT_SECRET")
	if clientSecret == "" {
		slog.Error("ZOOM_CLIENT_SECRET environment variable is required but not set")
		os.Exit(1)
	}

	return zoom.Config{
		AccountID:    accountID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		BaseURL:      os.Getenv("ZOOM_BASE_URL"),
		AuthURL:      os.Getenv("ZOOM_AUTH_URL"),
	}
}
