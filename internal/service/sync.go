// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
	"github.com/eventwire/zoom-location-service/pkg/constants"
)

// SyncMeeting brings the remote Zoom resource in line with the event: it
// validates the location's settings, builds the meeting payload, creates or
// patches the remote meeting unless the payload hash matches the last
// successful send, and runs the registrant-question sync for events that
// accept RSVPs.
//
// The location state is always persisted as the final step, success or
// failure, so the user never loses submitted settings and partially
// captured remote identifiers survive. Remote failures are attached to the
// event as one human-readable message and returned; they never panic past
// this boundary.
func (s *ZoomLocationService) SyncMeeting(ctx context.Context, event *models.Event, location *models.EventLocation) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("zoom location service is not ready")
	}

	ctx = logging.AppendCtx(ctx, slog.String("event_uid", event.UID))
	ctx = logging.AppendCtx(ctx, slog.String("location_variant", string(location.Variant)))

	cfg := location.Variant.Config()
	if !cfg.Remote {
		// Rooms are provisioned hardware with no schedulable API resource;
		// the identifiers are carried verbatim and sync only persists.
		return s.persistLocation(ctx, location, nil)
	}

	if errs := s.ValidateSettings(event, location); len(errs) > 0 {
		for _, err := range errs {
			event.AddError(err.Error())
		}
		slog.WarnContext(ctx, "zoom settings validation failed", "error_count", len(errs))
		return s.persistLocation(ctx, location, errs[0])
	}

	payload := s.buildMeetingPayload(event, location)
	hash := models.ContentHash(payload)

	var syncErr error
	if !location.HasRemote() || hash != location.LastMeetingHash {
		if !location.HasRemote() {
			syncErr = s.createRemoteMeeting(ctx, event, location, payload)
		} else {
			syncErr = s.updateRemoteMeeting(ctx, event, location, payload)
		}
	} else {
		slog.DebugContext(ctx, "meeting payload unchanged, skipping remote update",
			"zoom_meeting_id", location.RemoteID)
	}

	if syncErr == nil {
		location.LastMeetingHash = hash
		if event.RSVPEnabled {
			if err := s.SyncQuestions(ctx, event, location); err != nil {
				// The meeting create/update already committed; a question
				// failure does not roll it back.
				event.AddError(fmt.Sprintf("Could not create or update Zoom Meeting due to the following error: %s", err.Error()))
				syncErr = err
			}
		}
	}

	if syncErr == nil && !s.Config.SkipNotifications {
		result := models.SyncResultMessage{
			EventUID: event.UID,
			RemoteID: location.RemoteID,
			Success:  true,
		}
		if err := s.MessageBuilder.SendLocationSynced(ctx, result); err != nil {
			// Notification delivery is best effort; the sync itself stands.
			slog.WarnContext(ctx, "failed to publish location synced message", logging.ErrKey, err)
		}
	}

	return s.persistLocation(ctx, location, syncErr)
}

// persistLocation saves the location state, preferring the original sync
// error over a save error when both occur.
func (s *ZoomLocationService) persistLocation(ctx context.Context, location *models.EventLocation, syncErr error) error {
	if err := s.LocationRepository.Save(ctx, location); err != nil {
		slog.ErrorContext(ctx, "error persisting event location", logging.ErrKey, err)
		if syncErr == nil {
			return err
		}
	}
	return syncErr
}

func (s *ZoomLocationService) createRemoteMeeting(ctx context.Context, event *models.Event, location *models.EventLocation, payload *models.MeetingPayload) error {
	cfg := location.Variant.Config()
	info, err := s.Client.CreateMeeting(ctx, cfg.ResourceBase, payload)
	if err != nil {
		event.AddError(fmt.Sprintf("Could not create Zoom Meeting due to the following error: %s", err.Error()))
		return err
	}

	location.RemoteID = fmt.Sprintf("%d", info.ID)
	location.JoinURL = info.JoinURL
	if info.RegistrationURL != "" {
		location.RegistrationURL = info.RegistrationURL
	}
	location.SetPassword(info.Password)

	slog.InfoContext(ctx, "created zoom meeting", "zoom_meeting_id", location.RemoteID)
	return nil
}

func (s *ZoomLocationService) updateRemoteMeeting(ctx context.Context, event *models.Event, location *models.EventLocation, payload *models.MeetingPayload) error {
	cfg := location.Variant.Config()
	if err := s.Client.UpdateMeeting(ctx, cfg.ResourceBase, location.RemoteID, payload); err != nil {
		event.AddError(fmt.Sprintf("Could not update Zoom Meeting due to the following error: %s", err.Error()))
		return err
	}
	slog.InfoContext(ctx, "updated zoom meeting", "zoom_meeting_id", location.RemoteID)
	return nil
}

// buildMeetingPayload assembles the create/patch request body from the
// event and the validated settings. registration_type is always forced to
// the single-occurrence value since meetings have no recurrences; the
// event timezone is sent only when Zoom's legacy timezone list knows it,
// otherwise the start time stands alone and Zoom defaults to UTC.
func (s *ZoomLocationService) buildMeetingPayload(event *models.Event, location *models.EventLocation) *models.MeetingPayload {
	settings := make(map[string]any, len(location.Settings)+1)
	for k, v := range location.Settings {
		settings[k] = v
	}
	settings["registration_type"] = constants.RegistrationTypeSingle

	payload := &models.MeetingPayload{
		Topic:     event.Name,
		Type:      location.Variant.Config().APIType,
		StartTime: event.StartTime.UTC().Format("2006-01-02T15:04:05") + "Z",
		Duration:  event.DurationMinutes(constants.MinimumMeetingDurationMinutes),
		Agenda:    event.Excerpt + " " + fmt.Sprintf("More information at %s", event.Permalink),
		Settings:  settings,
	}
	if _, ok := constants.ZoomTimezones[event.Timezone]; ok {
		payload.Timezone = event.Timezone
	}

	for _, filter := range s.payloadFilters {
		filter(event, location, payload)
	}
	return payload
}

// StartURL fetches the host's start URL for the location's meeting. The URL
// is generated ad hoc by the remote API and is never persisted; it should
// only be shown to event admins.
func (s *ZoomLocationService) StartURL(ctx context.Context, location *models.EventLocation) (string, error) {
	cfg := location.Variant.Config()
	if !cfg.Remote || !location.HasRemote() {
		return "", domain.NewNotFoundError("location has no remote meeting")
	}
	info, err := s.Client.GetMeeting(ctx, cfg.ResourceBase, location.RemoteID)
	if err != nil {
		return "", err
	}
	return info.StartURL, nil
}

// DeleteLocation removes the remote meeting attached to an event, then the
// stored binding. A remote failure is attached to the event and returned so
// the caller can veto the event deletion; a missing stored location is not
// an error.
func (s *ZoomLocationService) DeleteLocation(ctx context.Context, event *models.Event) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("zoom location service is not ready")
	}

	ctx = logging.AppendCtx(ctx, slog.String("event_uid", event.UID))

	location, err := s.LocationRepository.Get(ctx, event.UID)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			return nil
		}
		return err
	}

	cfg := location.Variant.Config()
	if cfg.Remote && location.HasRemote() {
		if err := s.Client.DeleteMeeting(ctx, cfg.ResourceBase, location.RemoteID); err != nil {
			event.AddError(fmt.Sprintf("Could not delete or update Zoom Meeting due to the following error: %s", err.Error()))
			return err
		}
		slog.InfoContext(ctx, "deleted zoom meeting", "zoom_meeting_id", location.RemoteID)
	}

	return s.LocationRepository.Delete(ctx, event.UID)
}
