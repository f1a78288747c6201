// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"github.com/eventwire/zoom-location-service/pkg/constants"
)

// activeForm returns the form registrant questions are derived from: the
// per-attendee form when it can identify individual attendees, otherwise
// the per-booking checkout form. Either may be nil.
func (s *ZoomLocationService) activeForm(ctx context.Context, eventUID string) (*models.CustomForm, error) {
	attendeeForm, err := s.Forms.AttendeeForm(ctx, eventUID)
	if err != nil {
		return nil, err
	}
	if attendeeForm.HasIdentityFields() {
		return attendeeForm, nil
	}
	return s.Forms.BookingForm(ctx, eventUID)
}

// supportsAttendeeForm reports whether per-attendee registration is
// possible: the attendee form must carry at least the email, first_name
// and last_name fields.
func (s *ZoomLocationService) supportsAttendeeForm(ctx context.Context, eventUID string) bool {
	form, err := s.Forms.AttendeeForm(ctx, eventUID)
	if err != nil {
		slog.WarnContext(ctx, "error loading attendee form", logging.ErrKey, err, "event_uid", eventUID)
		return false
	}
	return form.HasIdentityFields()
}

// BuildRegistrantQuestions maps the event's custom form onto Zoom's fixed
// registrant-question vocabulary. A field becomes a standard question when
// its ID exactly matches a vocabulary name and, for enumerated entries,
// its option list equals Zoom's list in value and order. Booking-form
// fields are additionally resolved through the gateway alias table
// (company becomes org; address_2 is folded into address and emits no
// question of its own). Reserved identity fields never emit questions;
// everything else becomes a short-text custom question carrying the
// field's label. The set is always seeded with the optional "Ticket Name"
// custom question.
func (s *ZoomLocationService) BuildRegistrantQuestions(ctx context.Context, eventUID string) (*models.RegistrantQuestionSet, error) {
	set := &models.RegistrantQuestionSet{
		CustomQuestions: []models.CustomQuestion{
			{Title: "Ticket Name", Type: "short", Required: false},
		},
	}

	form, err := s.activeForm(ctx, eventUID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return set, nil
	}

	vocabulary := constants.ZoomRegistrantQuestions()

	var fieldAliases map[string]string // form field ID -> canonical checkout name
	if form.Kind == models.FormKindBooking {
		aliases, err := s.Forms.GatewayAliases(ctx)
		if err != nil {
			return nil, err
		}
		fieldAliases = make(map[string]string, len(aliases))
		for canonical, fieldID := range aliases {
			fieldAliases[fieldID] = canonical
		}
	}

	for _, field := range form.Fields {
		if field.Type == models.FieldTypeHTML {
			continue
		}
		added := false
		if allowed, ok := vocabulary[field.ID]; ok {
			// Constrained vocabulary entries map directly only when the
			// field offers exactly the values Zoom accepts, in the same
			// order; otherwise the field falls through to a custom question.
			if allowed == nil || slices.Equal(field.Options, allowed) {
				set.Questions = append(set.Questions, models.StandardQuestion{FieldName: field.ID})
				added = true
			}
		} else if canonical, ok := fieldAliases[field.ID]; ok {
			if _, known := vocabulary[canonical]; known {
				set.Questions = append(set.Questions, models.StandardQuestion{FieldName: canonical})
				added = true
			} else if canonical == "company" {
				set.Questions = append(set.Questions, models.StandardQuestion{FieldName: "org"})
				added = true
			} else if canonical == "address_2" {
				// Second address line is merged into address when the
				// registrant payload is built.
				added = true
			}
		}
		if !added && !slices.Contains(constants.ReservedRegistrantFields, field.ID) {
			set.CustomQuestions = append(set.CustomQuestions, models.CustomQuestion{
				Title: field.Label,
				Type:  "short",
			})
		}
	}
	return set, nil
}

// SyncQuestions pushes the derived registrant question set to the remote
// meeting when it differs from the last successfully-sent set. Failures are
// wrapped in a typed error that propagates to the caller; both the event
// save and booking flows catch it at their own boundary.
func (s *ZoomLocationService) SyncQuestions(ctx context.Context, event *models.Event, location *models.EventLocation) error {
	cfg := location.Variant.Config()
	if !cfg.Remote || !location.HasRemote() {
		return nil
	}

	set, err := s.BuildRegistrantQuestions(ctx, event.UID)
	if err != nil {
		return domain.NewApplicationError("registration questions error", err)
	}
	if set.Empty() {
		return nil
	}

	hash := models.ContentHash(set)
	if location.LastQuestionsHash != "" && hash == location.LastQuestionsHash {
		slog.DebugContext(ctx, "registrant questions unchanged, skipping remote update",
			"zoom_meeting_id", location.RemoteID)
		return nil
	}

	if err := s.Client.UpdateRegistrantQuestions(ctx, cfg.ResourceBase, location.RemoteID, set); err != nil {
		return domain.NewApplicationError("registration questions error", err)
	}

	location.LastQuestionsHash = hash
	if err := s.LocationRepository.Save(ctx, location); err != nil {
		// The remote update already landed; a failed hash save only costs a
		// redundant PATCH on the next sync.
		slog.ErrorContext(ctx, "error persisting questions hash", logging.ErrKey, err)
	}
	return nil
}
