// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

// StandardQuestion is a registrant field Zoom recognizes natively by key.
type StandardQuestion struct {
	FieldName string `json:"field_name"`
	Required  bool   `json:"required"`
}

// CustomQuestion is a free-form registrant field outside Zoom's fixed
// vocabulary.
type CustomQuestion struct {
	Title    string `json:"title"`
	Type     string `json:"type"` // "short" for free text
	Required bool   `json:"required"`
}

// RegistrantQuestionSet is the derived question payload sent to the
// registrant-questions endpoint. It is recomputed on every sync and
// compared by content hash against the last successfully-sent set; it is
// never persisted itself.
type RegistrantQuestionSet struct {
	Questions       []StandardQuestion `json:"questions,omitempty"`
	CustomQuestions []CustomQuestion   `json:"custom_questions,omitempty"`
}

// Empty reports whether the set carries no questions at all.
func (q *RegistrantQuestionSet) Empty() bool {
	return len(q.Questions) == 0 && len(q.CustomQuestions) == 0
}

// CustomQuestionAnswer is one custom-question answer on a registrant.
type CustomQuestionAnswer struct {
	Title string `json:"title"`
	Value string `json:"value"`
}
