// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

// NATS subjects consumed and published by the service.
const (
	// EventSavedSubject carries an EventSavedMessage whenever the host
	// application saves an event with a Zoom location attached.
	EventSavedSubject = "eventwire.event.saved"
	// EventDeletedSubject carries an EventDeletedMessage when an event with
	// a Zoom location is being deleted.
	EventDeletedSubject = "eventwire.event.deleted"
	// BookingSavedSubject carries a BookingSavedMessage on every booking
	// save or status change.
	BookingSavedSubject = "eventwire.booking.saved"
	// BookingDeletedSubject carries a BookingSavedMessage for a booking
	// being deleted; the reconciliation engine forces a cancellation.
	BookingDeletedSubject = "eventwire.booking.deleted"

	// LocationSyncedSubject is published after a successful meeting sync.
	LocationSyncedSubject = "eventwire.location.synced"

	// ServiceQueue is the queue group name for the service subscriptions.
	ServiceQueue = "eventwire.zoom-location-service.queue"
)

// EventSavedMessage is the payload of EventSavedSubject. The host sends the
// full event; the location state is owned by this service and loaded from
// the store, created on first save.
type EventSavedMessage struct {
	Event   Event           `json:"event"`
	Variant LocationVariant `json:"variant"`
	// Settings is the submitted settings input to merge into the stored
	// location before syncing, absent to sync with stored settings.
	Settings map[string]any `json:"settings,omitempty"`
}

// EventDeletedMessage is the payload of EventDeletedSubject.
type EventDeletedMessage struct {
	Event Event `json:"event"`
}

// BookingSavedMessage is the payload of BookingSavedSubject and
// BookingDeletedSubject.
type BookingSavedMessage struct {
	Event   Event   `json:"event"`
	Booking Booking `json:"booking"`
}

// SyncResultMessage is the reply payload for save messages and the body of
// LocationSyncedSubject notifications.
type SyncResultMessage struct {
	EventUID string   `json:"event_uid"`
	RemoteID string   `json:"remote_id,omitempty"`
	Success  bool     `json:"success"`
	Errors   []string `json:"errors,omitempty"`
}
