// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

type fakeConn struct {
	connected bool
	published map[string][]byte
	err       error
}

func (c *fakeConn) IsConnected() bool {
	return c.connected
}

func (c *fakeConn) Publish(subj string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	if c.published == nil {
		c.published = map[string][]byte{}
	}
	c.published[subj] = data
	return nil
}

func TestSendLocationSynced(t *testing.T) {
	conn := &fakeConn{connected: true}
	builder := NewMessageBuilder(conn)

	result := models.SyncResultMessage{
		EventUID: "event-1",
		RemoteID: "777",
		Success:  true,
	}
	require.NoError(t, builder.SendLocationSynced(context.Background(), result))

	data, ok := conn.published[models.LocationSyncedSubject]
	require.True(t, ok, "nothing published on %s", models.LocationSyncedSubject)

	var sent models.SyncResultMessage
	require.NoError(t, json.Unmarshal(data, &sent))
	assert.Equal(t, result, sent)
}

func TestSendLocationSyncedPublishFailure(t *testing.T) {
	conn := &fakeConn{connected: true, err: errors.New("connection closed")}
	builder := NewMessageBuilder(conn)

	err := builder.SendLocationSynced(context.Background(), models.SyncResultMessage{EventUID: "event-1"})
	require.Error(t, err)
}

func TestNatsMsg(t *testing.T) {
	msg := NewNatsMsg(&nats.Msg{
		Subject: models.EventSavedSubject,
		Reply:   "_INBOX.reply",
		Data:    []byte(`{"event":{"uid":"event-1"}}`),
	})

	assert.Equal(t, models.EventSavedSubject, msg.Subject())
	assert.True(t, msg.HasReply())
	assert.JSONEq(t, `{"event":{"uid":"event-1"}}`, string(msg.Data()))

	noReply := NewNatsMsg(&nats.Msg{Subject: models.EventSavedSubject})
	assert.False(t, noReply.HasReply())
}
