// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package handlers dispatches event and booking lifecycle messages from
// NATS onto the zoom location service.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"github.com/eventwire/zoom-location-service/internal/service"
)

// ZoomLocationHandler implements domain.MessageHandler for the event and
// booking lifecycle subjects.
type ZoomLocationHandler struct {
	Service *service.ZoomLocationService
}

// NewZoomLocationHandler creates a new ZoomLocationHandler.
func NewZoomLocationHandler(svc *service.ZoomLocationService) *ZoomLocationHandler {
	return &ZoomLocationHandler{Service: svc}
}

// HandlerReady checks if the handler's service is ready to process messages.
func (h *ZoomLocationHandler) HandlerReady() bool {
	return h.Service != nil && h.Service.ServiceReady()
}

// HandleMessage implements domain.MessageHandler.
func (h *ZoomLocationHandler) HandleMessage(ctx context.Context, msg domain.Message) {
	subject := msg.Subject()
	ctx = logging.AppendCtx(ctx, slog.String("subject", subject))
	slog.DebugContext(ctx, "handling NATS message")

	handlers := map[string]func(ctx context.Context, msg domain.Message) models.SyncResultMessage{
		models.EventSavedSubject:     h.HandleEventSaved,
		models.EventDeletedSubject:   h.HandleEventDeleted,
		models.BookingSavedSubject:   h.HandleBookingSaved,
		models.BookingDeletedSubject: h.HandleBookingDeleted,
	}

	handler, ok := handlers[subject]
	if !ok {
		slog.WarnContext(ctx, "unknown subject")
		h.respond(ctx, msg, nil)
		return
	}

	result := handler(ctx, msg)
	response, err := json.Marshal(result)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling sync result", logging.ErrKey, err)
		h.respond(ctx, msg, nil)
		return
	}
	h.respond(ctx, msg, response)
}

func (h *ZoomLocationHandler) respond(ctx context.Context, msg domain.Message, response []byte) {
	if !msg.HasReply() {
		return
	}
	if err := msg.Respond(response); err != nil {
		slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
	}
}

func failureResult(eventUID string, errors []string) models.SyncResultMessage {
	return models.SyncResultMessage{EventUID: eventUID, Success: false, Errors: errors}
}
