// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package main is the zoom location service daemon: it consumes event and
// booking lifecycle messages over NATS, synchronizes Zoom meetings and
// registrants, and persists location state in JetStream key-value buckets.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/eventwire/zoom-location-service/internal/handlers"
	"github.com/eventwire/zoom-location-service/internal/infrastructure/forms"
	"github.com/eventwire/zoom-location-service/internal/infrastructure/messaging"
	"github.com/eventwire/zoom-location-service/internal/infrastructure/zoom"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"github.com/eventwire/zoom-location-service/internal/service"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructuredLogConfig()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Setup NATS connection
	natsConn, err := setupNATS(env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// Get the key-value stores for the service.
	repos, err := getKeyValueStores(ctx, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error getting key-value stores")
		return
	}

	// Initialize services
	zoomClient := zoom.NewClient(env.Zoom)
	messageBuilder := messaging.NewMessageBuilder(natsConn)
	formProvider := forms.NewStaticProvider(nil, nil, nil)
	locationService := service.NewZoomLocationService(
		zoomClient,
		repos.Locations,
		repos.Bookings,
		formProvider,
		messageBuilder,
		service.ServiceConfig{
			SkipNotifications: env.SkipNotifications,
		},
	)

	// Initialize handlers
	locationHandler := handlers.NewZoomLocationHandler(locationService)

	httpServer := setupHTTPServer(flags, locationHandler, &gracefulCloseWG)

	// Create NATS subscriptions for the service.
	err = createNatsSubscriptions(ctx, locationHandler, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error creating NATS subscriptions")
		return
	}

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)
}

// gracefulShutdown drains the NATS connection, stops the HTTP listener, and
// waits for in-flight work to finish.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	if natsConn != nil && !natsConn.IsClosed() {
		if err := natsConn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
			natsConn.Close()
			gracefulCloseWG.Done()
		}
	}

	cancel()
	gracefulCloseWG.Wait()
	slog.Info("shutdown complete")
}
