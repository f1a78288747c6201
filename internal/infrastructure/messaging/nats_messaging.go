// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package messaging implements the NATS-backed message builder and the
// message wrapper consumed by the handlers.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
)

// INatsConn is the NATS connection interface needed by the message builder.
type INatsConn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// MessageBuilder builds outbound messages and sends them to the NATS server.
type MessageBuilder struct {
	NatsConn INatsConn
}

// NewMessageBuilder creates a new MessageBuilder.
func NewMessageBuilder(natsConn INatsConn) *MessageBuilder {
	return &MessageBuilder{
		NatsConn: natsConn,
	}
}

// sendMessage sends the message to the NATS server.
func (m *MessageBuilder) sendMessage(ctx context.Context, subject string, data []byte) error {
	err := m.NatsConn.Publish(subject, data)
	if err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err, "subject", subject)
		return err
	}
	slog.DebugContext(ctx, "sent message to NATS", "subject", subject)
	return nil
}

// SendLocationSynced notifies other services that an event's remote
// location finished a synchronization attempt.
func (m *MessageBuilder) SendLocationSynced(ctx context.Context, result models.SyncResultMessage) error {
	data, err := json.Marshal(result)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling sync result into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendMessage(ctx, models.LocationSyncedSubject, data)
}

// NatsMsg wraps a NATS message to implement the domain message interface.
type NatsMsg struct {
	*nats.Msg
}

// NewNatsMsg creates a new NATS message wrapper.
func NewNatsMsg(msg *nats.Msg) *NatsMsg {
	return &NatsMsg{Msg: msg}
}

// Subject returns the subject of the message.
func (m *NatsMsg) Subject() string {
	return m.Msg.Subject
}

// Data returns the payload of the message.
func (m *NatsMsg) Data() []byte {
	return m.Msg.Data
}

// HasReply reports whether the message expects a response.
func (m *NatsMsg) HasReply() bool {
	return m.Msg.Reply != ""
}

// Respond sends a response back on the message's reply subject.
func (m *NatsMsg) Respond(data []byte) error {
	return m.Msg.Respond(data)
}
