// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

type mockKeyValue struct {
	mock.Mock
}

func (m *mockKeyValue) Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(jetstream.KeyValueEntry), args.Error(1)
}

func (m *mockKeyValue) Put(ctx context.Context, key string, value []byte) (uint64, error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockKeyValue) Delete(ctx context.Context, key string, opts ...jetstream.KVDeleteOpt) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// kvEntry is a minimal jetstream.KeyValueEntry for stubbing Get results.
type kvEntry struct {
	key   string
	value []byte
}

func (e *kvEntry) Bucket() string                  { return KVStoreNameEventLocations }
func (e *kvEntry) Key() string                     { return e.key }
func (e *kvEntry) Value() []byte                   { return e.value }
func (e *kvEntry) Revision() uint64                { return 1 }
func (e *kvEntry) Created() time.Time              { return time.Time{} }
func (e *kvEntry) Delta() uint64                   { return 0 }
func (e *kvEntry) Operation() jetstream.KeyValueOp { return jetstream.KeyValuePut }

func TestNatsEventLocationRepositoryGet(t *testing.T) {
	t.Run("returns the stored location", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		kv.On("Get", mock.Anything, "event-1").Return(&kvEntry{
			key:   "event-1",
			value: []byte(`{"event_uid":"event-1","variant":"zoom_meeting","remote_id":"777"}`),
		}, nil)

		location, err := repo.Get(context.Background(), "event-1")

		require.NoError(t, err)
		assert.Equal(t, "event-1", location.EventUID)
		assert.Equal(t, models.VariantMeeting, location.Variant)
		assert.Equal(t, "777", location.RemoteID)
	})

	t.Run("missing key maps to a not found error", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		kv.On("Get", mock.Anything, "event-2").Return(nil, jetstream.ErrKeyNotFound)

		_, err := repo.Get(context.Background(), "event-2")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})

	t.Run("empty UID is rejected before hitting the store", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)

		_, err := repo.Get(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
		kv.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("corrupt stored value is an internal error", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		kv.On("Get", mock.Anything, "event-3").Return(&kvEntry{key: "event-3", value: []byte(`{broken`)}, nil)

		_, err := repo.Get(context.Background(), "event-3")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeInternal, domain.GetErrorType(err))
	})
}

func TestNatsEventLocationRepositorySave(t *testing.T) {
	t.Run("stores the marshalled location under the event UID", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		location := models.NewEventLocation("event-1", models.VariantMeeting)
		location.RemoteID = "777"
		kv.On("Put", mock.Anything, "event-1", mock.MatchedBy(func(data []byte) bool {
			return len(data) > 0
		})).Return(uint64(1), nil)

		require.NoError(t, repo.Save(context.Background(), location))
		kv.AssertExpectations(t)
	})

	t.Run("rejects a location without an event UID", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)

		err := repo.Save(context.Background(), &models.EventLocation{})

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
		kv.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNatsEventLocationRepositoryDelete(t *testing.T) {
	t.Run("deletes the key", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		kv.On("Delete", mock.Anything, "event-1").Return(nil)

		require.NoError(t, repo.Delete(context.Background(), "event-1"))
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		kv.On("Delete", mock.Anything, "event-1").Return(jetstream.ErrKeyNotFound)

		require.NoError(t, repo.Delete(context.Background(), "event-1"))
	})

	t.Run("other failures propagate", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsEventLocationRepository(kv)
		kv.On("Delete", mock.Anything, "event-1").Return(errors.New("connection lost"))

		err := repo.Delete(context.Background(), "event-1")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeInternal, domain.GetErrorType(err))
	})
}

func TestNatsBookingRepository(t *testing.T) {
	t.Run("round-trips booking metadata", func(t *testing.T) {
		kv := &mockKeyValue{}
		repo := NewNatsBookingRepository(kv)
		booking := &models.Booking{
			UID:      "booking-1",
			EventUID: "event-1",
			Status:   models.BookingStatusApproved,
			Meta:     &models.ZoomMeta{Registrant: &models.RegistrantRecord{ID: "reg-1"}},
		}
		var stored []byte
		kv.On("Put", mock.Anything, "booking-1", mock.MatchedBy(func(data []byte) bool {
			stored = data
			return true
		})).Return(uint64(1), nil)

		require.NoError(t, repo.Save(context.Background(), booking))

		kv.On("Get", mock.Anything, "booking-1").Return(&kvEntry{key: "booking-1", value: stored}, nil)
		loaded, err := repo.Get(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusApproved, loaded.Status)
		require.NotNil(t, loaded.Meta)
		require.NotNil(t, loaded.Meta.Registrant)
		assert.Equal(t, "reg-1", loaded.Meta.Registrant.ID)
	})

	t.Run("not ready without a KV store", func(t *testing.T) {
		repo := NewNatsBookingRepository(nil)
		assert.False(t, repo.IsReady())

		err := repo.Save(context.Background(), &models.Booking{UID: "booking-1"})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
	})
}
