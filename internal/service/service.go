// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package service implements the Zoom location synchronization logic: the
// settings schema, the meeting synchronizer, the registrant question mapper,
// and the booking reconciliation engine.
package service

import (
	"github.com/eventwire/zoom-location-service/internal/domain"
	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// SettingsFilter mutates the settings field set before it is returned to
// callers, mirroring the host application's filter extension point.
type SettingsFilter func(event *models.Event, fields *SettingsFieldSet)

// PayloadFilter mutates a built meeting payload before it is hashed and
// sent to the remote API.
type PayloadFilter func(event *models.Event, location *models.EventLocation, payload *models.MeetingPayload)

// ServiceConfig holds the configuration for the zoom location service.
type ServiceConfig struct {
	// SkipNotifications disables the "location synced" NATS notifications.
	SkipNotifications bool
}

// ZoomLocationService coordinates event, booking, and registrant state
// against the remote Zoom API. It implements domain.MessageHandler through
// the handlers package.
type ZoomLocationService struct {
	Client             domain.MeetingAPI
	LocationRepository domain.EventLocationRepository
	BookingRepository  domain.BookingRepository
	Forms              domain.FormProvider
	MessageBuilder     domain.MessageBuilder
	Config             ServiceConfig

	settingsFilters []SettingsFilter
	payloadFilters  []PayloadFilter
}

// NewZoomLocationService creates a new ZoomLocationService.
func NewZoomLocationService(
	client domain.MeetingAPI,
	locationRepository domain.EventLocationRepository,
	bookingRepository domain.BookingRepository,
	forms domain.FormProvider,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *ZoomLocationService {
	return &ZoomLocationService{
		Client:             client,
		LocationRepository: locationRepository,
		BookingRepository:  bookingRepository,
		Forms:              forms,
		MessageBuilder:     messageBuilder,
		Config:             config,
	}
}

// RegisterSettingsFilter adds a settings schema filter. Filters run in
// registration order. Not safe for concurrent use with DescribeSettingsFields;
// register filters before serving traffic.
func (s *ZoomLocationService) RegisterSettingsFilter(f SettingsFilter) {
	s.settingsFilters = append(s.settingsFilters, f)
}

// RegisterPayloadFilter adds a meeting payload filter. Filters run in
// registration order, before the payload is hashed.
func (s *ZoomLocationService) RegisterPayloadFilter(f PayloadFilter) {
	s.payloadFilters = append(s.payloadFilters, f)
}

// ServiceReady checks if the service is ready for use.
func (s *ZoomLocationService) ServiceReady() bool {
	return s.Client != nil &&
		s.LocationRepository != nil &&
		s.BookingRepository != nil &&
		s.Forms != nil &&
		s.MessageBuilder != nil
}
