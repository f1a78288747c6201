// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/infrastructure/messaging"
	"github.com/eventwire/zoom-location-service/internal/infrastructure/store"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"github.com/eventwire/zoom-location-service/pkg/concurrent"
)

// repositories bundles the NATS KV repositories used by the service.
type repositories struct {
	Locations *store.NatsEventLocationRepository
	Bookings  *store.NatsBookingRepository
}

// setupNATS connects to the NATS server with reconnection handling and
// arranges a drain on shutdown.
func setupNATS(env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.DrainTimeout(25*time.Second),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.With("nats_url", env.NatsURL).Info("NATS connection established")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				slog.With(logging.ErrKey, err, "subject", s.Subject, "queue", s.Queue).Error("async NATS error")
			} else {
				slog.With(logging.ErrKey, err).Error("async NATS error outside subscription")
			}
		}),
		nats.ClosedHandler(func(conn *nats.Conn) {
			err := conn.LastError()
			if err != nil {
				slog.With(logging.ErrKey, err).Error("NATS connection closed")
			} else {
				slog.Info("NATS connection closed")
			}
			// Signal the main goroutine to exit if it has not already.
			select {
			case done <- os.Interrupt:
			default:
			}
			gracefulCloseWG.Done()
		}),
	)
	if err != nil {
		return nil, err
	}
	gracefulCloseWG.Add(1)
	return natsConn, nil
}

// getKeyValueStores creates or binds the JetStream KV buckets used by the
// repositories.
func getKeyValueStores(ctx context.Context, natsConn *nats.Conn) (*repositories, error) {
	js, err := jetstream.New(natsConn)
	if err != nil {
		slog.ErrorContext(ctx, "error creating JetStream context", logging.ErrKey, err)
		return nil, err
	}

	var locationsKV, bookingsKV jetstream.KeyValue
	pool := concurrent.NewWorkerPool(2)
	err = pool.Run(ctx,
		func() error {
			var err error
			locationsKV, err = js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
				Bucket: store.KVStoreNameEventLocations,
			})
			return err
		},
		func() error {
			var err error
			bookingsKV, err = js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
				Bucket: store.KVStoreNameBookings,
			})
			return err
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "error creating KV buckets", logging.ErrKey, err)
		return nil, err
	}

	return &repositories{
		Locations: store.NewNatsEventLocationRepository(locationsKV),
		Bookings:  store.NewNatsBookingRepository(bookingsKV),
	}, nil
}

// createNatsSubscriptions sets up queue subscriptions for the lifecycle
// subjects handled by the service.
func createNatsSubscriptions(ctx context.Context, handler domain.MessageHandler, natsConn *nats.Conn) error {
	subjects := []string{
		models.EventSavedSubject,
		models.EventDeletedSubject,
		models.BookingSavedSubject,
		models.BookingDeletedSubject,
	}
	for _, subject := range subjects {
		if _, err := natsConn.QueueSubscribe(subject, models.ServiceQueue, func(msg *nats.Msg) {
			handler.HandleMessage(ctx, messaging.NewNatsMsg(msg))
		}); err != nil {
			slog.ErrorContext(ctx, "error creating NATS subscription", logging.ErrKey, err, "subject", subject)
			return err
		}
		slog.DebugContext(ctx, "subscribed to NATS subject", "subject", subject, "queue", models.ServiceQueue)
	}
	return nil
}
