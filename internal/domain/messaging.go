// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// Message represents a domain message interface.
type Message interface {
	Subject() string
	Data() []byte
	Respond(data []byte) error
	HasReply() bool
}

// MessageHandler defines how the service handles incoming messages.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message)
	HandlerReady() bool
}

// MessageBuilder publishes outbound notifications for other services.
type MessageBuilder interface {
	SendLocationSynced(ctx context.Context, result models.SyncResultMessage) error
}
