// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// Contact is the person responsible for an event, used to seed the default
// contact fields of a new Zoom settings set.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Event is the host-side calendar event a Zoom location is attached to.
// Events are owned by the host application; this service only reads them.
type Event struct {
	UID         string    `json:"uid"`
	Name        string    `json:"name"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Permalink   string    `json:"permalink,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Timezone    string    `json:"timezone,omitempty"` // IANA name, e.g. "Europe/Berlin"
	RSVPEnabled bool      `json:"rsvp_enabled"`
	Contact     Contact   `json:"contact"`

	// errors attached during a save pipeline run; transient, never persisted.
	errors []string
}

// AddError attaches a human-readable error to the event. The save pipeline
// collects these for display; attaching an error does not block persistence.
func (e *Event) AddError(msg string) {
	e.errors = append(e.errors, msg)
}

// Errors returns the human-readable errors attached during this save.
func (e *Event) Errors() []string {
	return e.errors
}

// DurationMinutes returns the whole minutes between event start and end,
// with a floor applied when start equals end since the remote API rejects
// zero-length meetings. Any other interval counts as at least one minute,
// including sub-minute ones that truncate to zero.
func (e *Event) DurationMinutes(floor int) int {
	if e.EndTime.Equal(e.StartTime) {
		return floor
	}
	minutes := int(e.EndTime.Sub(e.StartTime) / time.Minute)
	if minutes < 1 {
		return 1
	}
	return minutes
}
