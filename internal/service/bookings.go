// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"github.com/eventwire/zoom-location-service/pkg/constants"
)

// ReconcileBooking aligns the remote registrant state with a booking save.
// The transition is keyed on the booking status, its previous status, and
// whether registration metadata already exists:
//
//   - first approval with no metadata registers the booking, either one
//     registrant per attendee or a single registrant built from the booking
//     person and their checkout fields;
//   - any status change on a registered booking translates the new status
//     into a registrant action (approve / deny / cancel) and applies it,
//     registering newly approved attendees that were never registered.
//
// Failures are logged, reduced to one user-facing message on the booking,
// and returned; registrant records captured before the failure are
// persisted regardless, so retries resume from the partial state rather
// than re-registering everyone.
func (s *ZoomLocationService) ReconcileBooking(ctx context.Context, event *models.Event, location *models.EventLocation, booking *models.Booking) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("zoom location service is not ready")
	}

	cfg := location.Variant.Config()
	if !cfg.Remote || !location.HasRemote() {
		return nil
	}

	ctx = logging.AppendCtx(ctx, slog.String("event_uid", event.UID))
	ctx = logging.AppendCtx(ctx, slog.String("booking_uid", booking.UID))

	hadMeta := booking.Meta != nil
	err := s.reconcile(ctx, event, location, booking)
	if err != nil {
		slog.ErrorContext(ctx, "zoom registrant reconciliation failed", logging.ErrKey, err,
			"booking_status", booking.Status.String())
		if hadMeta {
			booking.AddError("Could not automatically modify the status of Zoom meeting registrants.")
		} else {
			booking.AddError("Could not automatically enroll you into the Zoom meeting. Please get in touch with the event organizer.")
		}
	}

	// Persist metadata mutations made before any failure: side effects are
	// at-least-once, not transactional.
	if saveErr := s.BookingRepository.Save(ctx, booking); saveErr != nil {
		slog.ErrorContext(ctx, "error persisting booking metadata", logging.ErrKey, saveErr)
		if err == nil {
			err = saveErr
		}
	}
	return err
}

// CancelBooking forces a cancellation transition for a booking being
// deleted, reusing the status-change reconciliation path.
func (s *ZoomLocationService) CancelBooking(ctx context.Context, event *models.Event, location *models.EventLocation, booking *models.Booking) error {
	booking.PreviousStatus = booking.Status
	booking.Status = models.BookingStatusCancelled
	return s.ReconcileBooking(ctx, event, location, booking)
}

func (s *ZoomLocationService) reconcile(ctx context.Context, event *models.Event, location *models.EventLocation, booking *models.Booking) error {
	cfg := location.Variant.Config()
	resource := cfg.ResourceBase
	meetingID := location.RemoteID

	switch {
	case booking.Status == models.BookingStatusApproved && booking.Meta == nil:
		// Newly approved booking, registered for the first time.
		if err := s.SyncQuestions(ctx, event, location); err != nil {
			return err
		}
		if s.supportsAttendeeForm(ctx, event.UID) {
			failed, attempted := 0, 0
			for _, ticketID := range sortedTicketIDs(booking.Attendees) {
				attendees := booking.Attendees[ticketID]
				for i := range attendees {
					if attendees[i].Registrant != nil {
						// Already registered by an earlier, partially
						// failed attempt.
						continue
					}
					attempted++
					if !s.registerAttendee(ctx, resource, meetingID, event, booking, ticketID, &attendees[i]) {
						failed++
					}
				}
			}
			if failed > 0 {
				// The marker stays unset so a retry comes back through this
				// path and registers the attendees that are still missing.
				return domain.NewPartialFailureError("register", failed, attempted)
			}
			booking.Meta = &models.ZoomMeta{PerAttendee: true}
		} else {
			registrant, err := s.buildPrimaryRegistrant(ctx, event, booking)
			if err != nil {
				return err
			}
			record, err := s.Client.AddRegistrant(ctx, resource, meetingID, registrant)
			if err != nil {
				return err
			}
			booking.Meta = &models.ZoomMeta{Registrant: record}
		}

	case booking.Meta != nil && booking.StatusChanged():
		if err := s.SyncQuestions(ctx, event, location); err != nil {
			return err
		}
		action := booking.Status.Action()
		if booking.Meta.PerAttendee && s.supportsAttendeeForm(ctx, event.UID) {
			failed, attempted := 0, 0
			var modifications []models.RegistrantRef
			for _, ticketID := range sortedTicketIDs(booking.Attendees) {
				attendees := booking.Attendees[ticketID]
				for i := range attendees {
					attendee := &attendees[i]
					if attendee.Registrant != nil && attendee.Registrant.ID != "" {
						modifications = append(modifications, models.RegistrantRef{
							ID:    attendee.Registrant.ID,
							Email: attendee.Field("email"),
						})
					} else if action == models.RegistrantActionApprove {
						attempted++
						if !s.registerAttendee(ctx, resource, meetingID, event, booking, ticketID, attendee) {
							failed++
						}
					}
				}
			}
			if len(modifications) > 0 {
				if err := s.Client.UpdateRegistrantsStatus(ctx, resource, meetingID, action, modifications); err != nil {
					return domain.NewPartialFailureError("modify", len(modifications), len(modifications))
				}
			}
			if failed > 0 {
				return domain.NewPartialFailureError("register", failed, attempted)
			}
		} else if booking.Meta.Registrant != nil && booking.Meta.Registrant.ID != "" {
			ref := models.RegistrantRef{ID: booking.Meta.Registrant.ID, Email: booking.Person.Email}
			if err := s.Client.UpdateRegistrantStatus(ctx, resource, meetingID, action, ref); err != nil {
				return err
			}
		}
	}
	return nil
}

// registerAttendee registers one attendee and stores the returned remote
// record on the attendee entry. Individual failures are reported as false
// so the caller's loop continues past them and aggregates the count.
func (s *ZoomLocationService) registerAttendee(ctx context.Context, resource, meetingID string, event *models.Event, booking *models.Booking, ticketID string, attendee *models.Attendee) bool {
	payload := &models.RegistrantPayload{}
	payload.AddCustomQuestion("Ticket Name", booking.TicketName(ticketID))

	form, err := s.Forms.AttendeeForm(ctx, event.UID)
	if err != nil {
		slog.WarnContext(ctx, "error loading attendee form", logging.ErrKey, err)
		return false
	}

	vocabulary := constants.ZoomRegistrantQuestions()
	for _, fieldID := range sortedFieldIDs(attendee.Fields) {
		value := attendee.Fields[fieldID]
		switch fieldID {
		case "email":
			payload.Email = value
		case "first_name":
			payload.FirstName = value
		case "last_name":
			payload.LastName = value
		default:
			if allowed, ok := vocabulary[fieldID]; ok {
				// Constrained vocabulary answers are sent only when the
				// value is one Zoom accepts.
				if allowed == nil || containsValue(allowed, value) {
					payload.SetStandardField(fieldID, value)
				}
			} else {
				title := fieldID
				if form != nil {
					if field := form.Field(fieldID); field != nil {
						title = field.Label
					}
				}
				payload.AddCustomQuestion(title, value)
			}
		}
	}

	record, err := s.Client.AddRegistrant(ctx, resource, meetingID, payload)
	if err != nil {
		slog.WarnContext(ctx, "failed to register attendee", logging.ErrKey, err,
			"ticket_id", ticketID, "zoom_meeting_id", meetingID)
		return false
	}
	attendee.Registrant = record
	return true
}

// buildPrimaryRegistrant builds the single-registrant payload for a booking
// without per-attendee registration: the booking person's identity, the
// gateway-aliased checkout fields (with the second address line folded into
// address), and the remaining booking-form answers as standard or custom
// question answers.
func (s *ZoomLocationService) buildPrimaryRegistrant(ctx context.Context, event *models.Event, booking *models.Booking) (*models.RegistrantPayload, error) {
	payload := &models.RegistrantPayload{
		Email:     booking.Person.Email,
		FirstName: booking.Person.FirstName,
		LastName:  booking.Person.LastName,
	}

	aliases, err := s.Forms.GatewayAliases(ctx)
	if err != nil {
		return nil, err
	}
	gateway := func(name string) string {
		if fieldID, ok := aliases[name]; ok {
			return booking.Fields[fieldID]
		}
		return ""
	}

	address := gateway("address")
	if second := gateway("address_2"); second != "" {
		if address != "" {
			address += ", " + second
		} else {
			address = second
		}
	}
	if address != "" {
		payload.Address = address
	}
	for canonical, target := range map[string]string{
		"city": "city", "state": "state", "zip": "zip",
		"country": "country", "phone": "phone", "company": "org",
	} {
		if value := gateway(canonical); value != "" {
			payload.SetStandardField(target, value)
		}
	}
	payload.AddCustomQuestion("Fax", gateway("fax"))

	// Remaining booking-form fields become standard answers when they fit
	// the vocabulary, custom answers otherwise.
	form, err := s.Forms.BookingForm(ctx, event.UID)
	if err != nil {
		return nil, err
	}
	aliased := make(map[string]struct{}, len(aliases))
	for _, fieldID := range aliases {
		aliased[fieldID] = struct{}{}
	}
	vocabulary := constants.ZoomRegistrantQuestions()
	for _, fieldID := range sortedFieldIDs(booking.Fields) {
		value := booking.Fields[fieldID]
		if _, isAliased := aliased[fieldID]; isAliased {
			continue
		}
		switch fieldID {
		case "user_email", "first_name", "last_name", "user_name", "user_password":
			continue
		}
		if allowed, ok := vocabulary[fieldID]; ok {
			if value != "" && (allowed == nil || containsValue(allowed, value)) {
				payload.SetStandardField(fieldID, value)
			}
		} else {
			title := fieldID
			if form != nil {
				if field := form.Field(fieldID); field != nil {
					title = field.Label
				}
			}
			payload.AddCustomQuestion(title, value)
		}
	}
	return payload, nil
}

func sortedTicketIDs(attendees map[string][]models.Attendee) []string {
	ids := make([]string, 0, len(attendees))
	for id := range attendees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedFieldIDs(fields map[string]string) []string {
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
