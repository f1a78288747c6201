// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package zoom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// newTestClient starts a server that issues tokens on /oauth/token and
// delegates everything else to handler, and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing token request form: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "account_credentials" {
			t.Errorf("grant_type = %q, want account_credentials", got)
		}
		if got := r.Form.Get("account_id"); got != "test-account" {
			t.Errorf("account_id = %q, want test-account", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", got)
		}
		handler(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewClient(Config{
		AccountID:      "test-account",
		ClientID:       "test-client",
		ClientSecret:   "test-secret",
		BaseURL:        server.URL,
		AuthURL:        server.URL + "/oauth/token",
		MaxRetries:     1,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	})
}

func TestCreateMeeting(t *testing.T) {
	var gotPath string
	var gotPayload models.MeetingPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": 82411523189,
			"topic": "Community Standup",
			"start_url": "https://zoom.us/s/82411523189?zak=host",
			"join_url": "https://zoom.us/j/82411523189",
			"password": "abc123xyz0"
		}`))
	})

	info, err := client.CreateMeeting(context.Background(), "meetings", &models.MeetingPayload{
		Topic: "Community Standup", Type: 2, Duration: 60,
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if gotPath != "POST /users/me/meetings" {
		t.Errorf("request = %q, want POST /users/me/meetings", gotPath)
	}
	if gotPayload.Topic != "Community Standup" || gotPayload.Type != 2 {
		t.Errorf("payload = %+v", gotPayload)
	}
	if info.ID != 82411523189 {
		t.Errorf("info.ID = %d, want 82411523189", info.ID)
	}
	if info.JoinURL != "https://zoom.us/j/82411523189" {
		t.Errorf("info.JoinURL = %q", info.JoinURL)
	}
	if info.Password != "abc123xyz0" {
		t.Errorf("info.Password = %q", info.Password)
	}
}

func TestCreateMeetingAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":300,"message":"Invalid meeting topic."}`))
	})

	_, err := client.CreateMeeting(context.Background(), "meetings", &models.MeetingPayload{})
	if err == nil {
		t.Fatal("CreateMeeting: expected error")
	}
	apiErr, ok := err.(*domain.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *domain.APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Code != 300 {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if got := domain.GetErrorType(err); got != domain.ErrorTypeTransport {
		t.Errorf("GetErrorType = %v, want transport", got)
	}
}

func TestCreateMeetingErrorBodyOnSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"code":300,"message":"Request failed: validation error."}`))
	})

	info, err := client.CreateMeeting(context.Background(), "meetings", &models.MeetingPayload{
		Topic: "Community Standup", Type: 2,
	})
	if err == nil {
		t.Fatalf("CreateMeeting: expected error, got info %+v", info)
	}
	apiErr, ok := err.(*domain.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *domain.APIError", err)
	}
	if apiErr.Code != 300 || apiErr.Message != "Request failed: validation error." {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestUpdateMeeting(t *testing.T) {
	t.Run("204 is success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if want := "PATCH /meetings/82411523189"; r.Method+" "+r.URL.Path != want {
				t.Errorf("request = %q, want %q", r.Method+" "+r.URL.Path, want)
			}
			w.WriteHeader(http.StatusNoContent)
		})
		if err := client.UpdateMeeting(context.Background(), "meetings", "82411523189", &models.MeetingPayload{}); err != nil {
			t.Fatalf("UpdateMeeting: %v", err)
		}
	})

	t.Run("anything but 204 is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
		})
		if err := client.UpdateMeeting(context.Background(), "meetings", "82411523189", &models.MeetingPayload{}); err == nil {
			t.Fatal("UpdateMeeting: expected error on 200")
		}
	})
}

func TestDeleteMeeting(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if want := "DELETE /webinars/555"; r.Method+" "+r.URL.Path != want {
				t.Errorf("request = %q, want %q", r.Method+" "+r.URL.Path, want)
			}
			w.WriteHeader(http.StatusNoContent)
		})
		if err := client.DeleteMeeting(context.Background(), "webinars", "555"); err != nil {
			t.Fatalf("DeleteMeeting: %v", err)
		}
	})

	t.Run("already deleted remotely", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":3001,"message":"Meeting does not exist."}`))
		})
		if err := client.DeleteMeeting(context.Background(), "meetings", "555"); err != nil {
			t.Fatalf("DeleteMeeting on 404: %v", err)
		}
	})
}

func TestGetMeeting(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if want := "GET /meetings/333"; r.Method+" "+r.URL.Path != want {
			t.Errorf("request = %q, want %q", r.Method+" "+r.URL.Path, want)
		}
		_, _ = w.Write([]byte(`{"id":333,"start_url":"https://zoom.us/s/333?zak=host-token"}`))
	})

	info, err := client.GetMeeting(context.Background(), "meetings", "333")
	if err != nil {
		t.Fatalf("GetMeeting: %v", err)
	}
	if info.StartURL != "https://zoom.us/s/333?zak=host-token" {
		t.Errorf("info.StartURL = %q", info.StartURL)
	}
}

func TestUpdateRegistrantQuestions(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	set := &models.RegistrantQuestionSet{
		CustomQuestions: []models.CustomQuestion{{Title: "Ticket Name", Type: "short"}},
	}
	if err := client.UpdateRegistrantQuestions(context.Background(), "meetings", "777", set); err != nil {
		t.Fatalf("UpdateRegistrantQuestions: %v", err)
	}
	if gotPath != "PATCH /meetings/777/registrants/questions" {
		t.Errorf("request = %q", gotPath)
	}
}

func TestAddRegistrant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if want := "POST /meetings/777/registrants"; r.Method+" "+r.URL.Path != want {
			t.Errorf("request = %q, want %q", r.Method+" "+r.URL.Path, want)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"registrant_id":36742,"join_url":"https://zoom.us/w/36742"}`))
	})

	record, err := client.AddRegistrant(context.Background(), "meetings", "777", &models.RegistrantPayload{
		Email: "ana@example.org", FirstName: "Ana", LastName: "Gomez",
	})
	if err != nil {
		t.Fatalf("AddRegistrant: %v", err)
	}
	if record.ID != "36742" {
		t.Errorf("record.ID = %q, want 36742", record.ID)
	}
	if record.JoinURL != "https://zoom.us/w/36742" {
		t.Errorf("record.JoinURL = %q", record.JoinURL)
	}
}

func TestUpdateRegistrantsStatus(t *testing.T) {
	t.Run("sends one batch request", func(t *testing.T) {
		var gotBody struct {
			Action      string                 `json:"action"`
			Registrants []models.RegistrantRef `json:"registrants"`
		}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if want := "PUT /meetings/777/registrants/status"; r.Method+" "+r.URL.Path != want {
				t.Errorf("request = %q, want %q", r.Method+" "+r.URL.Path, want)
			}
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			w.WriteHeader(http.StatusNoContent)
		})

		refs := []models.RegistrantRef{
			{ID: "reg-ana", Email: "ana@example.org"},
			{ID: "reg-ben", Email: "ben@example.org"},
		}
		if err := client.UpdateRegistrantsStatus(context.Background(), "meetings", "777", models.RegistrantActionCancel, refs); err != nil {
			t.Fatalf("UpdateRegistrantsStatus: %v", err)
		}
		if gotBody.Action != "cancel" || len(gotBody.Registrants) != 2 {
			t.Errorf("body = %+v", gotBody)
		}
	})

	t.Run("empty batch skips the request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected API request for empty batch")
		})
		if err := client.UpdateRegistrantsStatus(context.Background(), "meetings", "777", models.RegistrantActionCancel, nil); err != nil {
			t.Fatalf("UpdateRegistrantsStatus: %v", err)
		}
	})
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"join_url":"https://zoom.us/j/1"}`))
	})

	info, err := client.CreateMeeting(context.Background(), "meetings", &models.MeetingPayload{})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
	if info.ID != 1 {
		t.Errorf("info.ID = %d, want 1", info.ID)
	}
}

func TestRetriesExhaustedReturnLastResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":0,"message":"service unavailable"}`))
	})

	_, err := client.CreateMeeting(context.Background(), "meetings", &models.MeetingPayload{})
	if err == nil {
		t.Fatal("CreateMeeting: expected error")
	}
	apiErr, ok := err.(*domain.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *domain.APIError", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("apiErr.StatusCode = %d, want 503", apiErr.StatusCode)
	}
}
