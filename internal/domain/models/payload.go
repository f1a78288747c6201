// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

// MeetingPayload is the wire request for creating or patching a remote
// meeting or webinar. Settings carries the validated settings mapping with
// registration_type already forced to the single-occurrence value.
type MeetingPayload struct {
	Topic     string         `json:"topic"`
	Type      int            `json:"type"`
	StartTime string         `json:"start_time"`
	Duration  int            `json:"duration"`
	Timezone  string         `json:"timezone,omitempty"`
	Agenda    string         `json:"agenda,omitempty"`
	Settings  map[string]any `json:"settings"`
}

// MeetingInfo is the remote representation of a meeting or webinar returned
// by create and get calls.
type MeetingInfo struct {
	ID              int64  `json:"id"`
	UUID            string `json:"uuid"`
	HostID          string `json:"host_id"`
	Topic           string `json:"topic"`
	Status          string `json:"status"`
	StartURL        string `json:"start_url"`
	JoinURL         string `json:"join_url"`
	RegistrationURL string `json:"registration_url"`
	Password        string `json:"password"`
}

// RegistrantPayload is the wire request for adding one registrant. Standard
// vocabulary answers are flattened to top-level members, the way the
// registrant endpoint expects them.
type RegistrantPayload struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Address               string `json:"address,omitempty"`
	City                  string `json:"city,omitempty"`
	Country               string `json:"country,omitempty"`
	Zip                   string `json:"zip,omitempty"`
	State                 string `json:"state,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	Industry              string `json:"industry,omitempty"`
	Org                   string `json:"org,omitempty"`
	JobTitle              string `json:"job_title,omitempty"`
	Comments              string `json:"comments,omitempty"`
	PurchasingTimeFrame   string `json:"purchasing_time_frame,omitempty"`
	RoleInPurchaseProcess string `json:"role_in_purchase_process,omitempty"`
	NoOfEmployees         string `json:"no_of_employees,omitempty"`

	CustomQuestions []CustomQuestionAnswer `json:"custom_questions,omitempty"`
}

// SetStandardField assigns a Zoom vocabulary answer by its field name and
// reports whether the name was recognized.
func (r *RegistrantPayload) SetStandardField(name, value string) bool {
	switch name {
	case "address":
		r.Address = value
	case "city":
		r.City = value
	case "country":
		r.Country = value
	case "zip":
		r.Zip = value
	case "state":
		r.State = value
	case "phone":
		r.Phone = value
	case "industry":
		r.Industry = value
	case "org":
		r.Org = value
	case "job_title":
		r.JobTitle = value
	case "comments":
		r.Comments = value
	case "purchasing_time_frame":
		r.PurchasingTimeFrame = value
	case "role_in_purchase_process":
		r.RoleInPurchaseProcess = value
	case "no_of_employees":
		r.NoOfEmployees = value
	default:
		return false
	}
	return true
}

// AddCustomQuestion appends a custom-question answer, dropping empties.
func (r *RegistrantPayload) AddCustomQuestion(title, value string) {
	if value == "" {
		return
	}
	r.CustomQuestions = append(r.CustomQuestions, CustomQuestionAnswer{Title: title, Value: value})
}

// RegistrantRef addresses one existing remote registrant in a batch status
// update.
type RegistrantRef struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
