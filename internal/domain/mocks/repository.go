// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// MockEventLocationRepository implements EventLocationRepository for testing
type MockEventLocationRepository struct {
	mock.Mock
}

func (m *MockEventLocationRepository) Get(ctx context.Context, eventUID string) (*models.EventLocation, error) {
	args := m.Called(ctx, eventUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventLocation), args.Error(1)
}

func (m *MockEventLocationRepository) Save(ctx context.Context, location *models.EventLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockEventLocationRepository) Delete(ctx context.Context, eventUID string) error {
	args := m.Called(ctx, eventUID)
	return args.Error(0)
}

func (m *MockEventLocationRepository) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockBookingRepository implements BookingRepository for testing
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Get(ctx context.Context, bookingUID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, bookingUID string) error {
	args := m.Called(ctx, bookingUID)
	return args.Error(0)
}

func (m *MockBookingRepository) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}
