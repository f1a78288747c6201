// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// MeetingAPI is the contract this service needs from the authenticated Zoom
// client. resource is the variant's REST resource base ("meetings" or
// "webinars"). Every method returns a typed *APIError on transport or
// authentication failure.
type MeetingAPI interface {
	// CreateMeeting creates a remote meeting or webinar for the
	// authenticated account's user.
	CreateMeeting(ctx context.Context, resource string, payload *models.MeetingPayload) (*models.MeetingInfo, error)

	// UpdateMeeting patches an existing remote meeting. The remote API
	// signals success with 204 No Content; any other status is an error.
	UpdateMeeting(ctx context.Context, resource, meetingID string, payload *models.MeetingPayload) error

	// DeleteMeeting deletes the remote meeting. A missing meeting is not an
	// error; it may already have been deleted remotely.
	DeleteMeeting(ctx context.Context, resource, meetingID string) error

	// GetMeeting fetches the remote meeting, including the host start URL
	// which is generated ad hoc and never persisted.
	GetMeeting(ctx context.Context, resource, meetingID string) (*models.MeetingInfo, error)

	// UpdateRegistrantQuestions replaces the registration question set.
	// The remote API signals success with 204 No Content.
	UpdateRegistrantQuestions(ctx context.Context, resource, meetingID string, questions *models.RegistrantQuestionSet) error

	// AddRegistrant registers one person and returns their remote record.
	AddRegistrant(ctx context.Context, resource, meetingID string, registrant *models.RegistrantPayload) (*models.RegistrantRecord, error)

	// UpdateRegistrantStatus applies a status action to one registrant.
	UpdateRegistrantStatus(ctx context.Context, resource, meetingID string, action models.RegistrantAction, registrant models.RegistrantRef) error

	// UpdateRegistrantsStatus applies a status action to a batch of
	// registrants in a single remote call.
	UpdateRegistrantsStatus(ctx context.Context, resource, meetingID string, action models.RegistrantAction, registrants []models.RegistrantRef) error
}

// FormProvider supplies the host application's custom form schemas and the
// gateway field-alias table.
type FormProvider interface {
	// AttendeeForm returns the per-attendee form for the event, or nil when
	// the host has none configured.
	AttendeeForm(ctx context.Context, eventUID string) (*models.CustomForm, error)

	// BookingForm returns the per-booking checkout form for the event, or
	// nil when the host has none configured.
	BookingForm(ctx context.Context, eventUID string) (*models.CustomForm, error)

	// GatewayAliases maps canonical checkout field names (e.g. "company",
	// "address_2") to the form field IDs the host uses for them.
	GatewayAliases(ctx context.Context) (map[string]string, error)
}
