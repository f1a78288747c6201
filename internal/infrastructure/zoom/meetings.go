// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
)

// CreateMeeting creates a new meeting or webinar under the authenticated
// account's user.
func (c *Client) CreateMeeting(ctx context.Context, resource string, payload *models.MeetingPayload) (*models.MeetingInfo, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "create_"+resource))

	path := fmt.Sprintf("/users/me/%s", resource)
	resp, err := c.doRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create Zoom meeting", logging.ErrKey, err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		apiErr := drainError(resp)
		slog.ErrorContext(ctx, "Zoom API returned error", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read meeting response", logging.ErrKey, err)
		return nil, &domain.APIError{Message: "failed to read meeting response", Err: err}
	}

	var info models.MeetingInfo
	if err := json.Unmarshal(body, &info); err != nil {
		slog.ErrorContext(ctx, "failed to decode meeting response", logging.ErrKey, err)
		return nil, &domain.APIError{Message: "failed to decode meeting response", Err: err}
	}

	// Zoom sometimes answers a create with a success status but an error
	// body instead of a meeting object. Without an ID there is no meeting.
	if info.ID == 0 {
		apiErr := parseErrorResponse(resp.StatusCode, body)
		slog.ErrorContext(ctx, "Zoom API returned error body on success status", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return nil, apiErr
	}

	slog.InfoContext(ctx, "created Zoom meeting",
		"meeting_id", info.ID, "topic", info.Topic, "join_url", info.JoinURL)
	return &info, nil
}

// UpdateMeeting patches an existing meeting or webinar. Success is 204 No
// Content; everything else is surfaced as an error.
func (c *Client) UpdateMeeting(ctx context.Context, resource, meetingID string, payload *models.MeetingPayload) error {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "update_"+resource))
	ctx = logging.AppendCtx(ctx, slog.String("zoom_meeting_id", meetingID))

	path := fmt.Sprintf("/%s/%s", resource, meetingID)
	resp, err := c.doRequest(ctx, http.MethodPatch, path, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update Zoom meeting", logging.ErrKey, err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		apiErr := drainError(resp)
		slog.ErrorContext(ctx, "Zoom API returned error", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return apiErr
	}

	slog.InfoContext(ctx, "updated Zoom meeting")
	return nil
}

// DeleteMeeting deletes a meeting or webinar. 404 is accepted since the
// meeting may already have been deleted remotely.
func (c *Client) DeleteMeeting(ctx context.Context, resource, meetingID string) error {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "delete_"+resource))
	ctx = logging.AppendCtx(ctx, slog.String("zoom_meeting_id", meetingID))

	path := fmt.Sprintf("/%s/%s", resource, meetingID)
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete Zoom meeting", logging.ErrKey, err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		slog.InfoContext(ctx, "deleted Zoom meeting")
	case http.StatusNotFound:
		slog.WarnContext(ctx, "Zoom meeting not found, may have been already deleted")
	default:
		apiErr := drainError(resp)
		slog.ErrorContext(ctx, "Zoom API returned error", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return apiErr
	}
	return nil
}

// GetMeeting fetches the remote meeting, including the ad-hoc start URL.
func (c *Client) GetMeeting(ctx context.Context, resource, meetingID string) (*models.MeetingInfo, error) {
	path := fmt.Sprintf("/%s/%s", resource, meetingID)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, drainError(resp)
	}

	var info models.MeetingInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, &domain.APIError{Message: "failed to decode meeting response", Err: err}
	}
	return &info, nil
}

// UpdateRegistrantQuestions replaces the meeting's registration questions.
// Success is 204 No Content.
func (c *Client) UpdateRegistrantQuestions(ctx context.Context, resource, meetingID string, questions *models.RegistrantQuestionSet) error {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "update_registrant_questions"))
	ctx = logging.AppendCtx(ctx, slog.String("zoom_meeting_id", meetingID))

	path := fmt.Sprintf("/%s/%s/registrants/questions", resource, meetingID)
	resp, err := c.doRequest(ctx, http.MethodPatch, path, questions)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update registrant questions", logging.ErrKey, err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		apiErr := drainError(resp)
		slog.ErrorContext(ctx, "Zoom API returned error", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return apiErr
	}

	slog.InfoContext(ctx, "updated registrant questions")
	return nil
}
