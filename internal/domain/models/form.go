// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

// FormKind discriminates the two custom form sources: the per-attendee
// form, preferred when present, and the per-booking checkout form.
type FormKind string

const (
	FormKindAttendee FormKind = "attendee"
	FormKindBooking  FormKind = "booking"
)

// FieldType is the input type of a custom form field. Layout-only fields
// (FieldTypeHTML) never map to registrant questions.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeHTML     FieldType = "html"
)

// FormField is one field of a custom booking or attendee form.
type FormField struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	// Options is the declared answer list for select-style fields, in
	// display order. Order matters: a field maps onto a constrained Zoom
	// vocabulary entry only when this list equals Zoom's list exactly.
	Options []string `json:"options,omitempty"`
}

// CustomForm is the dynamic form schema supplied by the host application.
// Fields preserve the form's declared order.
type CustomForm struct {
	Kind   FormKind    `json:"kind"`
	Fields []FormField `json:"fields"`
}

// Field returns the form field with the given ID, or nil.
func (f *CustomForm) Field(id string) *FormField {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return &f.Fields[i]
		}
	}
	return nil
}

// HasIdentityFields reports whether the form carries the minimum identity
// fields required to register its entries individually.
func (f *CustomForm) HasIdentityFields() bool {
	return f != nil && f.Field("email") != nil && f.Field("first_name") != nil && f.Field("last_name") != nil
}
