// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"net/mail"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
	"github.com/eventwire/zoom-location-service/pkg/constants"
)

// SettingsFieldType is the input type of a settings field.
type SettingsFieldType string

const (
	SettingTypeText    SettingsFieldType = "text"
	SettingTypeBoolean SettingsFieldType = "boolean"
	SettingTypeSelect  SettingsFieldType = "select"
)

// SettingsField describes one configurable meeting option.
type SettingsField struct {
	Key           string
	Label         string
	Type          SettingsFieldType
	Default       any
	AllowedValues []string // declared values for select fields, in display order
	Multiple      bool     // select fields only; empty is permitted when multiple
	Description   string
}

// SettingsGroup is an ordered group of field keys under a display label.
type SettingsGroup struct {
	Label string
	Keys  []string
}

// SettingsFieldSet is the full settings schema: display groups in order plus
// the field catalog keyed by setting key.
type SettingsFieldSet struct {
	Groups []SettingsGroup
	Fields map[string]SettingsField
}

// Field returns the field for key, or nil.
func (f *SettingsFieldSet) Field(key string) *SettingsField {
	if field, ok := f.Fields[key]; ok {
		return &field
	}
	return nil
}

// DescribeSettingsFields returns the settings schema with per-event
// defaults: contact name and email come from the event's contact, and each
// new settings set gets a random 10-character passcode seed. Registered
// settings filters run on the result before it is returned, so hosts can
// add or adjust fields without the other components losing the core key
// set they rely on.
func (s *ZoomLocationService) DescribeSettingsFields(event *models.Event) *SettingsFieldSet {
	fields := &SettingsFieldSet{
		Groups: []SettingsGroup{
			{Label: "Meeting Options", Keys: []string{"join_before_host", "mute_upon_entry", "watermark", "use_pmi", "waiting_room", "allow_multiple_devices"}},
			{Label: "Host Options", Keys: []string{"alternative_hosts", "contact_name", "contact_email"}},
			{Label: "Registration", Keys: []string{"approval_type", "close_registration", "meeting_authentication", "authentication_domains"}},
			{Label: "Password", Keys: []string{"password"}},
			{Label: "Emails", Keys: []string{"registrants_email_notification", "registrants_confirmation_email"}},
			{Label: "Video", Keys: []string{"host_video", "participant_video", "auto_recording"}},
			{Label: "Audio", Keys: []string{"audio", "global_dial_in_countries"}},
		},
		Fields: map[string]SettingsField{
			"approval_type": {
				Key:           "approval_type",
				Label:         "Require Registration?",
				Type:          SettingTypeSelect,
				Default:       "1",
				AllowedValues: []string{"0", "1", "2"},
				Description:   "0: registration required, automatic approval. 1: registration required, manual approval. 2: no registration required.",
			},
			"contact_name": {
				Key:         "contact_name",
				Label:       "Contact name",
				Type:        SettingTypeText,
				Default:     event.Contact.Name,
				Description: "Contact name for registration.",
			},
			"contact_email": {
				Key:         "contact_email",
				Label:       "Contact email",
				Type:        SettingTypeText,
				Default:     event.Contact.Email,
				Description: "Contact email for registration.",
			},
			"registrants_confirmation_email": {
				Key:     "registrants_confirmation_email",
				Label:   "Send Confirmation Email to Registrants",
				Type:    SettingTypeBoolean,
				Default: false,
			},
			"registrants_email_notification": {
				Key:         "registrants_email_notification",
				Label:       "Registrants Email Notification",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Send email notifications to registrants about approval, cancellation or denial of the registration.",
			},
			"host_video": {
				Key:         "host_video",
				Label:       "Host Video",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Start video when the host joins the meeting.",
			},
			"password": {
				Key:         "password",
				Label:       "Passcode",
				Type:        SettingTypeText,
				Default:     uuid.NewString()[:10],
				Description: "Passcode may only contain the following characters: [a-z A-Z 0-9 @ - _ * !]. Max of 10 characters.",
			},
			"participant_video": {
				Key:         "participant_video",
				Label:       "Participant Video",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Start video when participants join the meeting.",
			},
			"join_before_host": {
				Key:         "join_before_host",
				Label:       "Enable join before host",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Allow participants to join the meeting before the host starts the meeting.",
			},
			"mute_upon_entry": {
				Key:     "mute_upon_entry",
				Label:   "Mute participants upon entry",
				Type:    SettingTypeBoolean,
				Default: false,
			},
			"watermark": {
				Key:         "watermark",
				Label:       "Watermark",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Add watermark when viewing a shared screen.",
			},
			"use_pmi": {
				Key:         "use_pmi",
				Label:       "Use Personal Meeting ID",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Use Personal Meeting ID instead of an automatically generated meeting ID.",
			},
			"audio": {
				Key:           "audio",
				Label:         "Audio",
				Type:          SettingTypeSelect,
				Default:       "both",
				AllowedValues: []string{"both", "telephony", "voip"},
				Description:   "Determine how participants can join the audio portion of the meeting.",
			},
			"auto_recording": {
				Key:           "auto_recording",
				Label:         "Automatic recording",
				Type:          SettingTypeSelect,
				Default:       "none",
				AllowedValues: []string{"none", "local", "cloud"},
			},
			"alternative_hosts": {
				Key:         "alternative_hosts",
				Label:       "Alternative Hosts",
				Type:        SettingTypeText,
				Default:     "",
				Description: "Alternative hosts' emails or IDs: multiple values separated by a comma.",
			},
			"close_registration": {
				Key:     "close_registration",
				Label:   "Close registration after meeting date",
				Type:    SettingTypeBoolean,
				Default: false,
			},
			"waiting_room": {
				Key:     "waiting_room",
				Label:   "Enable waiting room",
				Type:    SettingTypeBoolean,
				Default: true,
			},
			"meeting_authentication": {
				Key:     "meeting_authentication",
				Label:   "Only authenticated users can join",
				Type:    SettingTypeBoolean,
				Default: false,
			},
			"authentication_domains": {
				Key:         "authentication_domains",
				Label:       "Authentication Domains",
				Type:        SettingTypeText,
				Default:     "",
				Description: "Zoom users whose email address contains one of these domains can join. Multiple domains separated by a comma; wildcards permitted.",
			},
			"allow_multiple_devices": {
				Key:         "allow_multiple_devices",
				Label:       "Allow Multiple Devices",
				Type:        SettingTypeBoolean,
				Default:     false,
				Description: "Allow attendees to join from multiple devices.",
			},
			"global_dial_in_countries": {
				Key:           "global_dial_in_countries",
				Label:         "Global dial-in countries",
				Type:          SettingTypeSelect,
				Default:       "",
				AllowedValues: constants.ZoomDialInCountries,
				Multiple:      true,
				Description:   "Countries users can dial in from, shown on Zoom confirmation emails.",
			},
		},
	}

	for _, filter := range s.settingsFilters {
		filter(event, fields)
	}
	return fields
}

// ApplySettings folds a submitted settings mapping into the location,
// coercing each value per its schema type: text values are trimmed, select
// values are kept only when declared, booleans follow truthiness. Keys the
// location has never seen get their per-event defaults first, so a fresh
// location starts from a complete settings set.
func (s *ZoomLocationService) ApplySettings(event *models.Event, location *models.EventLocation, submitted map[string]any) {
	fields := s.DescribeSettingsFields(event)
	if location.Settings == nil {
		location.Settings = map[string]any{}
	}
	for _, key := range sortedFieldKeys(fields.Fields) {
		field := fields.Fields[key]
		if _, ok := location.Settings[key]; !ok {
			location.Settings[key] = field.Default
		}
		value, ok := submitted[key]
		if !ok {
			continue
		}
		switch field.Type {
		case SettingTypeText:
			location.Settings[key] = strings.TrimSpace(settingValueString(value))
		case SettingTypeSelect:
			if field.Multiple {
				chosen := settingValueList(value)
				kept := make([]string, 0, len(chosen))
				for _, c := range chosen {
					if containsValue(field.AllowedValues, c) {
						kept = append(kept, c)
					}
				}
				location.Settings[key] = kept
			} else if containsValue(field.AllowedValues, settingValueString(value)) {
				location.Settings[key] = settingValueString(value)
			}
		case SettingTypeBoolean:
			location.Settings[key] = isTruthy(value)
		}
	}
}

func isTruthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "0" && t != "false"
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

// ValidateSettings checks the location's settings against the schema. Text
// fields carrying email addresses (alternative_hosts as a comma-separated
// list, contact_email) must be well-formed; select values must be declared
// allowed values unless the field is multi-select and empty. Every failure
// is returned as a field-scoped validation error; validation never blocks
// persisting the submitted settings.
func (s *ZoomLocationService) ValidateSettings(event *models.Event, location *models.EventLocation) []error {
	var errs []error
	fields := s.DescribeSettingsFields(event)
	for _, key := range sortedFieldKeys(fields.Fields) {
		field := fields.Fields[key]
		value, present := location.Setting(key)
		switch field.Type {
		case SettingTypeText:
			text := settingValueString(value)
			if text == "" {
				continue
			}
			switch key {
			case "alternative_hosts":
				for _, email := range strings.Split(text, ",") {
					if !isEmail(strings.TrimSpace(email)) {
						errs = append(errs, domain.NewValidationError(key, field.Label,
							"The Zoom settings field %s has an invalid email.", field.Label))
					}
				}
			case "contact_email":
				if !isEmail(strings.TrimSpace(text)) {
					errs = append(errs, domain.NewValidationError(key, field.Label,
						"The Zoom settings field %s has an invalid email.", field.Label))
				}
			}
		case SettingTypeSelect:
			if !present || isEmptySetting(value) {
				if field.Multiple {
					continue
				}
				errs = append(errs, domain.NewValidationError(key, field.Label,
					"The Zoom settings field %s does not have a valid value selected.", field.Label))
				continue
			}
			for _, chosen := range settingValueList(value) {
				if !containsValue(field.AllowedValues, chosen) {
					errs = append(errs, domain.NewValidationError(key, field.Label,
						"The Zoom settings field %s does not have a valid value selected.", field.Label))
					break
				}
			}
		}
	}
	return errs
}

func isEmail(s string) bool {
	if s == "" || strings.ContainsAny(s, " ") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isEmptySetting(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

// settingValueString renders a scalar settings value as a string. Settings
// round-trip through JSON, so numbers arrive as float64.
func settingValueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

// settingValueList renders a settings value as the list of chosen values,
// treating a scalar as a single-element list.
func settingValueList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		values := make([]string, 0, len(t))
		for _, item := range t {
			values = append(values, settingValueString(item))
		}
		return values
	}
	return []string{settingValueString(v)}
}

func containsValue(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func sortedFieldKeys(fields map[string]SettingsField) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
