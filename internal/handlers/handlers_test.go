// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/mocks"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/service"
)

type handlerMocks struct {
	api       *mocks.MockMeetingAPI
	locations *mocks.MockEventLocationRepository
	bookings  *mocks.MockBookingRepository
	forms     *mocks.MockFormProvider
	builder   *mocks.MockMessageBuilder
}

func newTestHandler() (*ZoomLocationHandler, *handlerMocks) {
	m := &handlerMocks{
		api:       &mocks.MockMeetingAPI{},
		locations: &mocks.MockEventLocationRepository{},
		bookings:  &mocks.MockBookingRepository{},
		forms:     &mocks.MockFormProvider{},
		builder:   &mocks.MockMessageBuilder{},
	}
	svc := service.NewZoomLocationService(m.api, m.locations, m.bookings, m.forms, m.builder,
		service.ServiceConfig{SkipNotifications: true})
	return NewZoomLocationHandler(svc), m
}

// message builds a mock message that expects a reply and captures it.
func message(subject string, payload any, reply *[]byte) *mocks.MockMessage {
	msg := &mocks.MockMessage{}
	msg.On("Subject").Return(subject)
	if payload != nil {
		data, _ := json.Marshal(payload)
		msg.On("Data").Return(data)
	}
	msg.On("HasReply").Return(true)
	msg.On("Respond", mock.Anything).Run(func(args mock.Arguments) {
		*reply = args.Get(0).([]byte)
	}).Return(nil)
	return msg
}

func savedEvent() models.Event {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	return models.Event{
		UID:       "event-1",
		Name:      "Community Standup",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Contact:   models.Contact{Name: "Dana Rivers", Email: "dana@example.org"},
	}
}

func TestHandlerReady(t *testing.T) {
	handler, _ := newTestHandler()
	assert.True(t, handler.HandlerReady())

	assert.False(t, (&ZoomLocationHandler{}).HandlerReady())
}

func TestHandleMessageUnknownSubject(t *testing.T) {
	handler, _ := newTestHandler()
	msg := &mocks.MockMessage{}
	msg.On("Subject").Return("eventwire.unknown")
	msg.On("HasReply").Return(false)

	handler.HandleMessage(context.Background(), msg)

	msg.AssertNotCalled(t, "Respond", mock.Anything)
}

func TestHandleEventSavedCreatesLocation(t *testing.T) {
	handler, m := newTestHandler()

	// First save: no stored location, stored settings come from defaults.
	m.locations.On("Get", mock.Anything, "event-1").Return(nil, domain.NewNotFoundError("event location not found"))
	m.api.On("CreateMeeting", mock.Anything, "meetings", mock.Anything).
		Return(&models.MeetingInfo{ID: 777, JoinURL: "https://zoom.us/j/777", Password: "abc123xyz0"}, nil)
	m.locations.On("Save", mock.Anything, mock.MatchedBy(func(l *models.EventLocation) bool {
		return l.EventUID == "event-1" && l.Variant == models.VariantMeeting
	})).Return(nil)

	var reply []byte
	msg := message(models.EventSavedSubject, models.EventSavedMessage{
		Event:    savedEvent(),
		Variant:  models.VariantMeeting,
		Settings: map[string]any{"contact_email": "dana@example.org"},
	}, &reply)

	handler.HandleMessage(context.Background(), msg)

	var result models.SyncResultMessage
	require.NoError(t, json.Unmarshal(reply, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "event-1", result.EventUID)
	assert.Equal(t, "777", result.RemoteID)
	assert.Empty(t, result.Errors)
}

func TestHandleEventSavedUnknownVariantFallsBack(t *testing.T) {
	handler, m := newTestHandler()

	m.locations.On("Get", mock.Anything, "event-1").Return(nil, domain.NewNotFoundError("event location not found"))
	m.api.On("CreateMeeting", mock.Anything, "meetings", mock.Anything).
		Return(&models.MeetingInfo{ID: 1, JoinURL: "https://zoom.us/j/1"}, nil)
	m.locations.On("Save", mock.Anything, mock.MatchedBy(func(l *models.EventLocation) bool {
		return l.Variant == models.VariantMeeting
	})).Return(nil)

	var reply []byte
	msg := message(models.EventSavedSubject, models.EventSavedMessage{
		Event:   savedEvent(),
		Variant: models.LocationVariant("zoom_hologram"),
	}, &reply)

	handler.HandleMessage(context.Background(), msg)

	var result models.SyncResultMessage
	require.NoError(t, json.Unmarshal(reply, &result))
	assert.True(t, result.Success)
}

func TestHandleEventSavedMalformedPayload(t *testing.T) {
	handler, _ := newTestHandler()

	var reply []byte
	msg := &mocks.MockMessage{}
	msg.On("Subject").Return(models.EventSavedSubject)
	msg.On("Data").Return([]byte(`{not json`))
	msg.On("HasReply").Return(true)
	msg.On("Respond", mock.Anything).Run(func(args mock.Arguments) {
		reply = args.Get(0).([]byte)
	}).Return(nil)

	handler.HandleMessage(context.Background(), msg)

	var result models.SyncResultMessage
	require.NoError(t, json.Unmarshal(reply, &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
}

func TestHandleEventDeletedVetoesOnRemoteFailure(t *testing.T) {
	handler, m := newTestHandler()

	location := models.NewEventLocation("event-1", models.VariantMeeting)
	location.RemoteID = "777"
	m.locations.On("Get", mock.Anything, "event-1").Return(location, nil)
	m.api.On("DeleteMeeting", mock.Anything, "meetings", "777").
		Return(&domain.APIError{StatusCode: 500, Message: "internal error"})

	var reply []byte
	msg := message(models.EventDeletedSubject, models.EventDeletedMessage{Event: savedEvent()}, &reply)

	handler.HandleMessage(context.Background(), msg)

	var result models.SyncResultMessage
	require.NoError(t, json.Unmarshal(reply, &result))
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Could not delete or update Zoom Meeting")
	m.locations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHandleBookingSavedWithoutLocation(t *testing.T) {
	handler, m := newTestHandler()

	m.locations.On("Get", mock.Anything, "event-1").Return(nil, domain.NewNotFoundError("event location not found"))

	var reply []byte
	msg := message(models.BookingSavedSubject, models.BookingSavedMessage{
		Event:   savedEvent(),
		Booking: models.Booking{UID: "booking-1", EventUID: "event-1", Status: models.BookingStatusApproved},
	}, &reply)

	handler.HandleMessage(context.Background(), msg)

	var result models.SyncResultMessage
	require.NoError(t, json.Unmarshal(reply, &result))
	assert.True(t, result.Success)
	m.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHandleBookingSavedMergesStoredMetadata(t *testing.T) {
	handler, m := newTestHandler()

	location := models.NewEventLocation("event-1", models.VariantMeeting)
	location.RemoteID = "777"
	m.locations.On("Get", mock.Anything, "event-1").Return(location, nil)

	// The stored copy carries the registration state the host payload does
	// not know about; an unchanged status is then a no-op.
	stored := &models.Booking{
		UID:    "booking-1",
		Status: models.BookingStatusApproved,
		Meta:   &models.ZoomMeta{Registrant: &models.RegistrantRecord{ID: "reg-1"}},
	}
	m.bookings.On("Get", mock.Anything, "booking-1").Return(stored, nil)
	m.bookings.On("Save", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.Meta != nil && b.Meta.Registrant != nil && b.Meta.Registrant.ID == "reg-1"
	})).Return(nil)

	var reply []byte
	msg := message(models.BookingSavedSubject, models.BookingSavedMessage{
		Event: savedEvent(),
		Booking: models.Booking{
			UID: "booking-1", EventUID: "event-1",
			Status: models.BookingStatusApproved, PreviousStatus: models.BookingStatusApproved,
		},
	}, &reply)

	handler.HandleMessage(context.Background(), msg)

	var result models.SyncResultMessage
	require.NoError(t, json.Unmarshal(reply, &result))
	assert.True(t, result.Success)
	m.api.AssertNotCalled(t, "AddRegistrant", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMergeAttendeeRegistrants(t *testing.T) {
	booking := &models.Booking{
		Attendees: map[string][]models.Attendee{
			"t1": {
				{Fields: map[string]string{"email": "ana@example.org"}},
				{Fields: map[string]string{"email": "ben@example.org"}},
			},
		},
	}
	stored := &models.Booking{
		Attendees: map[string][]models.Attendee{
			"t1": {
				{Registrant: &models.RegistrantRecord{ID: "reg-ana"}},
			},
		},
	}

	mergeAttendeeRegistrants(booking, stored)

	require.NotNil(t, booking.Attendees["t1"][0].Registrant)
	assert.Equal(t, "reg-ana", booking.Attendees["t1"][0].Registrant.ID)
	assert.Nil(t, booking.Attendees["t1"][1].Registrant)
}
