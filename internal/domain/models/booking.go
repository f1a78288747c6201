// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

import "fmt"

// BookingStatus is the lifecycle status of a booking. The numeric values
// are part of the persisted representation and must not be reordered.
type BookingStatus int

const (
	BookingStatusPending   BookingStatus = 0
	BookingStatusApproved  BookingStatus = 1
	BookingStatusRejected  BookingStatus = 2
	BookingStatusCancelled BookingStatus = 3
)

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusPending:
		return "pending"
	case BookingStatusApproved:
		return "approved"
	case BookingStatusRejected:
		return "rejected"
	case BookingStatusCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// RegistrantAction is the remote-side status action applied to registrants.
type RegistrantAction string

const (
	RegistrantActionApprove RegistrantAction = "approve"
	RegistrantActionDeny    RegistrantAction = "deny"
	RegistrantActionCancel  RegistrantAction = "cancel"
)

// Action translates a booking status into the registrant status action the
// remote API expects. Unknown statuses map to cancel.
func (s BookingStatus) Action() RegistrantAction {
	switch s {
	case BookingStatusApproved:
		return RegistrantActionApprove
	case BookingStatusRejected:
		return RegistrantActionDeny
	default:
		return RegistrantActionCancel
	}
}

// Person is the primary contact of a booking.
type Person struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RegistrantRecord is the remote identity of one registered person, stored
// in booking metadata so later status changes can address the registrant.
type RegistrantRecord struct {
	ID      string `json:"id"`
	JoinURL string `json:"join_url,omitempty"`
}

// Attendee is one person on a ticket when per-attendee registration is in
// use. Fields holds the attendee-form values keyed by field ID, including
// the identity fields email, first_name and last_name.
type Attendee struct {
	Fields     map[string]string `json:"fields"`
	Registrant *RegistrantRecord `json:"registrant,omitempty"`
}

// Field returns the attendee-form value for id, or "".
func (a *Attendee) Field(id string) string {
	if a.Fields == nil {
		return ""
	}
	return a.Fields[id]
}

// Name returns the attendee's display name from the identity fields.
func (a *Attendee) Name() string {
	return a.Field("first_name") + " " + a.Field("last_name")
}

// ZoomMeta is the per-booking registration state kept in booking metadata.
// Exactly one of PerAttendee and Registrant is meaningful: PerAttendee
// marks that each attendee entry carries its own registrant record, while
// Registrant holds the single record for bookings registered as one person.
type ZoomMeta struct {
	PerAttendee bool              `json:"per_attendee,omitempty"`
	Registrant  *RegistrantRecord `json:"registrant,omitempty"`
}

// Booking is one booking of an event, owned by the host application. The
// reconciliation engine reads its status transition and writes registrant
// records into its metadata.
type Booking struct {
	UID            string        `json:"uid"`
	EventUID       string        `json:"event_uid"`
	Status         BookingStatus `json:"status"`
	PreviousStatus BookingStatus `json:"previous_status"`
	Person         Person        `json:"person"`

	// Fields holds booking-form values keyed by field ID, used to build the
	// single-registrant payload when no attendee form is in use.
	Fields map[string]string `json:"fields,omitempty"`

	// Attendees maps ticket ID to the ordered attendees booked on that
	// ticket. Present only when per-attendee registration is supported.
	Attendees map[string][]Attendee `json:"attendees,omitempty"`

	// TicketNames maps ticket ID to its display name, carried into the
	// "Ticket Name" custom question of each attendee registration.
	TicketNames map[string]string `json:"ticket_names,omitempty"`

	// Meta is the Zoom registration state; nil until the booking is first
	// registered remotely.
	Meta *ZoomMeta `json:"zoom_meta,omitempty"`

	errors []string
}

// StatusChanged reports whether this save represents a status transition.
func (b *Booking) StatusChanged() bool {
	return b.Status != b.PreviousStatus
}

// AddError attaches a human-readable error to the booking. Metadata
// mutations made before the failure are still persisted.
func (b *Booking) AddError(msg string) {
	b.errors = append(b.errors, msg)
}

// Errors returns the human-readable errors attached during this save.
func (b *Booking) Errors() []string {
	return b.errors
}

// TicketName returns the display name for a ticket, falling back to the ID.
func (b *Booking) TicketName(ticketID string) string {
	if name, ok := b.TicketNames[ticketID]; ok && name != "" {
		return name
	}
	return ticketID
}

// JoinLines renders the join URLs stored for a booking, one line per
// attendee in "First Last - url" form, or the single join URL when the
// booking was registered as one person. Unregistered entries render "#".
func (b *Booking) JoinLines() []string {
	if b.Meta == nil {
		return nil
	}
	if !b.Meta.PerAttendee {
		if b.Meta.Registrant != nil && b.Meta.Registrant.JoinURL != "" {
			return []string{b.Meta.Registrant.JoinURL}
		}
		return []string{"#"}
	}
	var lines []string
	for _, ticketID := range sortedKeys(b.Attendees) {
		for _, attendee := range b.Attendees[ticketID] {
			joinURL := "#"
			if attendee.Registrant != nil && attendee.Registrant.JoinURL != "" {
				joinURL = attendee.Registrant.JoinURL
			}
			lines = append(lines, attendee.Name()+" - "+joinURL)
		}
	}
	return lines
}
