// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// NatsBookingRepository stores booking registration metadata in a NATS KV
// bucket keyed by booking UID.
type NatsBookingRepository struct {
	*NatsBaseRepository[models.Booking]
}

// NewNatsBookingRepository creates a new booking repository.
func NewNatsBookingRepository(kvStore INatsKeyValue) *NatsBookingRepository {
	return &NatsBookingRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Booking](kvStore, "booking"),
	}
}

func (r *NatsBookingRepository) Get(ctx context.Context, bookingUID string) (*models.Booking, error) {
	if bookingUID == "" {
		return nil, domain.NewValidationError("booking_uid", "Booking UID", "booking UID is required")
	}
	return r.NatsBaseRepository.Get(ctx, bookingUID)
}

func (r *NatsBookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	if booking == nil || booking.UID == "" {
		return domain.NewValidationError("booking_uid", "Booking UID", "booking UID is required")
	}
	return r.NatsBaseRepository.Put(ctx, booking.UID, booking)
}

func (r *NatsBookingRepository) Delete(ctx context.Context, bookingUID string) error {
	if bookingUID == "" {
		return domain.NewValidationError("booking_uid", "Booking UID", "booking UID is required")
	}
	return r.NatsBaseRepository.Delete(ctx, bookingUID)
}
