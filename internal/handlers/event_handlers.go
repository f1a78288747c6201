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

// HandleEventSaved loads or creates the event's location binding, folds any
// submitted settings into it, and runs the meeting sync. The reply carries
// the remote identifiers on success and the messages attached to the event
// on failure.
func (h *ZoomLocationHandler) HandleEventSaved(ctx context.Context, msg domain.Message) models.SyncResultMessage {
	var message models.EventSavedMessage
	if err := json.Unmarshal(msg.Data(), &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling event saved message", logging.ErrKey, err)
		return failureResult("", []string{"invalid event saved message"})
	}
	event := &message.Event
	ctx = logging.AppendCtx(ctx, slog.String("event_uid", event.UID))

	location, err := h.Service.LocationRepository.Get(ctx, event.UID)
	if err != nil {
		if domain.GetErrorType(err) != domain.ErrorTypeNotFound {
			slog.ErrorContext(ctx, "error loading event location", logging.ErrKey, err)
			return failureResult(event.UID, []string{"could not load event location"})
		}
		variant := message.Variant
		if !variant.Valid() {
			variant = models.VariantMeeting
		}
		location = models.NewEventLocation(event.UID, variant)
	}

	h.Service.ApplySettings(event, location, message.Settings)

	syncErr := h.Service.SyncMeeting(ctx, event, location)
	return models.SyncResultMessage{
		EventUID: event.UID,
		RemoteID: location.RemoteID,
		Success:  syncErr == nil,
		Errors:   event.Errors(),
	}
}

// HandleEventDeleted deletes the remote meeting attached to the event. A
// remote failure is reported as unsuccessful so the host can veto the event
// deletion.
func (h *ZoomLocationHandler) HandleEventDeleted(ctx context.Context, msg domain.Message) models.SyncResultMessage {
	var message models.EventDeletedMessage
	if err := json.Unmarshal(msg.Data(), &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling event deleted message", logging.ErrKey, err)
		return failureResult("", []string{"invalid event deleted message"})
	}
	event := &message.Event
	ctx = logging.AppendCtx(ctx, slog.String("event_uid", event.UID))

	if err := h.Service.DeleteLocation(ctx, event); err != nil {
		return failureResult(event.UID, event.Errors())
	}
	return models.SyncResultMessage{EventUID: event.UID, Success: true}
}
