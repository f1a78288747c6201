// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// EventLocationRepository persists the event-to-Zoom binding, keyed by
// event UID.
type EventLocationRepository interface {
	Get(ctx context.Context, eventUID string) (*models.EventLocation, error)
	Save(ctx context.Context, location *models.EventLocation) error
	Delete(ctx context.Context, eventUID string) error
	IsReady() bool
}

// BookingRepository persists booking registration metadata, keyed by
// booking UID.
type BookingRepository interface {
	Get(ctx context.Context, bookingUID string) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, bookingUID string) error
	IsReady() bool
}
