// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

// LocationVariant identifies the kind of remote Zoom resource an event is
// bound to.
type LocationVariant string

const (
	VariantMeeting LocationVariant = "zoom_meeting"
	VariantWebinar LocationVariant = "zoom_webinar"
	VariantRoom    LocationVariant = "zoom_room"
)

// VariantConfig is the per-variant configuration record that replaces the
// original per-subclass statics: the numeric meeting type the API expects,
// the REST resource the variant lives under, and display metadata.
type VariantConfig struct {
	APIType      int    // "type" value sent on meeting creation
	ResourceBase string // REST resource, e.g. "meetings" or "webinars"
	AdminURLBase string // path segment of the zoom.us admin UI
	Label        string
	PluralLabel  string
	Remote       bool // whether the variant is backed by a remote API resource
}

var variantConfigs = map[LocationVariant]VariantConfig{
	VariantMeeting: {
		APIType:      2, // scheduled meeting
		ResourceBase: "meetings",
		AdminURLBase: "meeting",
		Label:        "Zoom Meeting",
		PluralLabel:  "Zoom Meetings",
		Remote:       true,
	},
	VariantWebinar: {
		APIType:      5, // scheduled webinar
		ResourceBase: "webinars",
		AdminURLBase: "webinar",
		Label:        "Zoom Webinar",
		PluralLabel:  "Zoom Webinars",
		Remote:       true,
	},
	VariantRoom: {
		// Zoom Rooms are provisioned hardware, not a schedulable API
		// resource; the variant carries identifiers verbatim and sync is a
		// local no-op.
		Label:       "Zoom Room",
		PluralLabel: "Zoom Rooms",
	},
}

// Config returns the variant's configuration record. Unknown variants get
// the meeting configuration.
func (v LocationVariant) Config() VariantConfig {
	if cfg, ok := variantConfigs[v]; ok {
		return cfg
	}
	return variantConfigs[VariantMeeting]
}

// Valid reports whether v is a known location variant.
func (v LocationVariant) Valid() bool {
	_, ok := variantConfigs[v]
	return ok
}

// EventLocation is the persisted binding between an event and its remote
// Zoom resource.
//
// RemoteID is assigned once by the remote API at creation and is immutable
// thereafter; an empty RemoteID means the meeting will be created on the
// next save.
type EventLocation struct {
	EventUID        string          `json:"event_uid"`
	Variant         LocationVariant `json:"variant"`
	RemoteID        string          `json:"remote_id,omitempty"`
	JoinURL         string          `json:"join_url,omitempty"`
	RegistrationURL string          `json:"registration_url,omitempty"`

	// Settings is the user-editable subset of the settings schema, sent as
	// the "settings" member of meeting create/update payloads.
	Settings map[string]any `json:"settings,omitempty"`

	// LastMeetingHash is the content hash of the last successfully-sent
	// meeting payload, used to suppress redundant updates.
	LastMeetingHash string `json:"last_meeting_hash,omitempty"`
	// LastQuestionsHash is the content hash of the last successfully-sent
	// registrant-question payload.
	LastQuestionsHash string `json:"last_questions_hash,omitempty"`
}

// NewEventLocation creates an empty location binding for an event.
func NewEventLocation(eventUID string, variant LocationVariant) *EventLocation {
	return &EventLocation{
		EventUID: eventUID,
		Variant:  variant,
		Settings: map[string]any{},
	}
}

// HasRemote reports whether a remote resource has been created for this
// location.
func (l *EventLocation) HasRemote() bool {
	return l.RemoteID != ""
}

// Password reads the meeting passcode through the nested settings mapping.
func (l *EventLocation) Password() string {
	if l.Settings == nil {
		return ""
	}
	if p, ok := l.Settings["password"].(string); ok {
		return p
	}
	return ""
}

// SetPassword writes the meeting passcode through to the settings mapping.
func (l *EventLocation) SetPassword(password string) {
	if l.Settings == nil {
		l.Settings = map[string]any{}
	}
	l.Settings["password"] = password
}

// Setting returns the raw settings value for key.
func (l *EventLocation) Setting(key string) (any, bool) {
	if l.Settings == nil {
		return nil, false
	}
	v, ok := l.Settings[key]
	return v, ok
}

// SettingString returns the settings value for key as a string, or "" when
// absent or not a string.
func (l *EventLocation) SettingString(key string) string {
	if v, ok := l.Setting(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
