// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// NatsEventLocationRepository stores event locations in a NATS KV bucket
// keyed by event UID.
type NatsEventLocationRepository struct {
	*NatsBaseRepository[models.EventLocation]
}

// NewNatsEventLocationRepository creates a new event location repository.
func NewNatsEventLocationRepository(kvStore INatsKeyValue) *NatsEventLocationRepository {
	return &NatsEventLocationRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.EventLocation](kvStore, "event location"),
	}
}

func (r *NatsEventLocationRepository) Get(ctx context.Context, eventUID string) (*models.EventLocation, error) {
	if eventUID == "" {
		return nil, domain.NewValidationError("event_uid", "Event UID", "event UID is required")
	}
	return r.NatsBaseRepository.Get(ctx, eventUID)
}

func (r *NatsEventLocationRepository) Save(ctx context.Context, location *models.EventLocation) error {
	if location == nil || location.EventUID == "" {
		return domain.NewValidationError("event_uid", "Event UID", "event UID is required")
	}
	return r.NatsBaseRepository.Put(ctx, location.EventUID, location)
}

func (r *NatsEventLocationRepository) Delete(ctx context.Context, eventUID string) error {
	if eventUID == "" {
		return domain.NewValidationError("event_uid", "Event UID", "event UID is required")
	}
	return r.NatsBaseRepository.Delete(ctx, eventUID)
}
