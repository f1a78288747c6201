// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
)

// HandleBookingSaved reconciles a booking save or status change against the
// remote registrants of the event's meeting. Events without a Zoom location
// are ignored.
func (h *ZoomLocationHandler) HandleBookingSaved(ctx context.Context, msg domain.Message) models.SyncResultMessage {
	return h.reconcileBookingMessage(ctx, msg, false)
}

// HandleBookingDeleted forces a cancellation for a deleted booking.
func (h *ZoomLocationHandler) HandleBookingDeleted(ctx context.Context, msg domain.Message) models.SyncResultMessage {
	return h.reconcileBookingMessage(ctx, msg, true)
}

func (h *ZoomLocationHandler) reconcileBookingMessage(ctx context.Context, msg domain.Message, deleted bool) models.SyncResultMessage {
	var message models.BookingSavedMessage
	if err := json.Unmarshal(msg.Data(), &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling booking message", logging.ErrKey, err)
		return failureResult("", []string{"invalid booking message"})
	}
	event := &message.Event
	booking := &message.Booking
	ctx = logging.AppendCtx(ctx, slog.String("event_uid", event.UID))
	ctx = logging.AppendCtx(ctx, slog.String("booking_uid", booking.UID))

	location, err := h.Service.LocationRepository.Get(ctx, event.UID)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			// No Zoom location attached; nothing to reconcile.
			return models.SyncResultMessage{EventUID: event.UID, Success: true}
		}
		slog.ErrorContext(ctx, "error loading event location", logging.ErrKey, err)
		return failureResult(event.UID, []string{"could not load event location"})
	}

	// Carry over registration metadata from earlier reconciliations; the
	// host's booking payload does not know about it.
	if stored, err := h.Service.BookingRepository.Get(ctx, booking.UID); err == nil {
		if booking.Meta == nil {
			booking.Meta = stored.Meta
		}
		mergeAttendeeRegistrants(booking, stored)
	}

	var reconcileErr error
	if deleted {
		reconcileErr = h.Service.CancelBooking(ctx, event, location, booking)
	} else {
		reconcileErr = h.Service.ReconcileBooking(ctx, event, location, booking)
	}

	return models.SyncResultMessage{
		EventUID: event.UID,
		RemoteID: location.RemoteID,
		Success:  reconcileErr == nil,
		Errors:   booking.Errors(),
	}
}

// mergeAttendeeRegistrants copies stored per-attendee registrant records
// onto the incoming booking's attendee entries, matched by ticket and
// position.
func mergeAttendeeRegistrants(booking, stored *models.Booking) {
	if stored == nil || stored.Attendees == nil {
		return
	}
	for ticketID, attendees := range booking.Attendees {
		storedAttendees, ok := stored.Attendees[ticketID]
		if !ok {
			continue
		}
		for i := range attendees {
			if i < len(storedAttendees) && attendees[i].Registrant == nil {
				attendees[i].Registrant = storedAttendees[i].Registrant
			}
		}
	}
}
