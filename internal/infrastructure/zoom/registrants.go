// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/internal/logging"
)

// AddRegistrant registers one person to a meeting or webinar and returns
// the remote registrant record.
func (c *Client) AddRegistrant(ctx context.Context, resource, meetingID string, registrant *models.RegistrantPayload) (*models.RegistrantRecord, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "add_registrant"))
	ctx = logging.AppendCtx(ctx, slog.String("zoom_meeting_id", meetingID))

	path := fmt.Sprintf("/%s/%s/registrants", resource, meetingID)
	resp, err := c.doRequest(ctx, http.MethodPost, path, registrant)
	if err != nil {
		slog.ErrorContext(ctx, "failed to add registrant", logging.ErrKey, err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		apiErr := drainError(resp)
		slog.ErrorContext(ctx, "Zoom API returned error", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return nil, apiErr
	}

	// The registrant endpoint replies with a numeric registrant ID; keep it
	// as a string since it is only ever echoed back in status updates.
	var created struct {
		ID      json.Number `json:"registrant_id"`
		JoinURL string      `json:"join_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		slog.ErrorContext(ctx, "failed to decode registrant response", logging.ErrKey, err)
		return nil, &domain.APIError{Message: "failed to decode registrant response", Err: err}
	}

	record := &models.RegistrantRecord{ID: created.ID.String(), JoinURL: created.JoinURL}
	slog.InfoContext(ctx, "added registrant", "registrant_id", record.ID, "email", registrant.Email)
	return record, nil
}

// UpdateRegistrantStatus applies a status action to a single registrant.
func (c *Client) UpdateRegistrantStatus(ctx context.Context, resource, meetingID string, action models.RegistrantAction, registrant models.RegistrantRef) error {
	return c.UpdateRegistrantsStatus(ctx, resource, meetingID, action, []models.RegistrantRef{registrant})
}

// UpdateRegistrantsStatus applies a status action to a batch of registrants
// in one remote call.
func (c *Client) UpdateRegistrantsStatus(ctx context.Context, resource, meetingID string, action models.RegistrantAction, registrants []models.RegistrantRef) error {
	if len(registrants) == 0 {
		return nil
	}
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "update_registrants_status"))
	ctx = logging.AppendCtx(ctx, slog.String("zoom_meeting_id", meetingID))

	body := struct {
		Action      models.RegistrantAction `json:"action"`
		Registrants []models.RegistrantRef  `json:"registrants"`
	}{Action: action, Registrants: registrants}

	path := fmt.Sprintf("/%s/%s/registrants/status", resource, meetingID)
	resp, err := c.doRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update registrant status", logging.ErrKey, err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		apiErr := drainError(resp)
		slog.ErrorContext(ctx, "Zoom API returned error", logging.ErrKey, apiErr, "status", resp.StatusCode)
		return apiErr
	}

	slog.InfoContext(ctx, "updated registrant status", "action", action, "count", len(registrants))
	return nil
}
