// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package forms provides a form provider backed by static configuration.
// Hosts that manage their form schemas outside the event platform can load
// them once at startup; everything else can implement the domain interface
// against their own storage.
package forms

import (
	"context"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// StaticProvider serves fixed form schemas and gateway aliases. Forms keyed
// by event UID override the defaults; an empty map entry means the event has
// no form of that kind.
type StaticProvider struct {
	DefaultAttendeeForm *models.CustomForm
	DefaultBookingForm  *models.CustomForm
	AttendeeForms       map[string]*models.CustomForm
	BookingForms        map[string]*models.CustomForm
	Aliases             map[string]string
}

// NewStaticProvider creates a provider with the given defaults and no
// per-event overrides.
func NewStaticProvider(attendee, booking *models.CustomForm, aliases map[string]string) *StaticProvider {
	return &StaticProvider{
		DefaultAttendeeForm: attendee,
		DefaultBookingForm:  booking,
		Aliases:             aliases,
	}
}

func (p *StaticProvider) AttendeeForm(_ context.Context, eventUID string) (*models.CustomForm, error) {
	if form, ok := p.AttendeeForms[eventUID]; ok {
		return form, nil
	}
	return p.DefaultAttendeeForm, nil
}

func (p *StaticProvider) BookingForm(_ context.Context, eventUID string) (*models.CustomForm, error) {
	if form, ok := p.BookingForms[eventUID]; ok {
		return form, nil
	}
	return p.DefaultBookingForm, nil
}

func (p *StaticProvider) GatewayAliases(_ context.Context) (map[string]string, error) {
	return p.Aliases, nil
}
