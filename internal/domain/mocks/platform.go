// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eventwire/zoom-location-service/internal/domain/models"
)

// MockMeetingAPI implements MeetingAPI for testing
type MockMeetingAPI struct {
	mock.Mock
}

func (m *MockMeetingAPI) CreateMeeting(ctx context.Context, resource string, payload *models.MeetingPayload) (*models.MeetingInfo, error) {
	args := m.Called(ctx, resource, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingInfo), args.Error(1)
}

func (m *MockMeetingAPI) UpdateMeeting(ctx context.Context, resource, meetingID string, payload *models.MeetingPayload) error {
	args := m.Called(ctx, resource, meetingID, payload)
	return args.Error(0)
}

func (m *MockMeetingAPI) DeleteMeeting(ctx context.Context, resource, meetingID string) error {
	args := m.Called(ctx, resource, meetingID)
	return args.Error(0)
}

func (m *MockMeetingAPI) GetMeeting(ctx context.Context, resource, meetingID string) (*models.MeetingInfo, error) {
	args := m.Called(ctx, resource, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingInfo), args.Error(1)
}

func (m *MockMeetingAPI) UpdateRegistrantQuestions(ctx context.Context, resource, meetingID string, questions *models.RegistrantQuestionSet) error {
	args := m.Called(ctx, resource, meetingID, questions)
	return args.Error(0)
}

func (m *MockMeetingAPI) AddRegistrant(ctx context.Context, resource, meetingID string, registrant *models.RegistrantPayload) (*models.RegistrantRecord, error) {
	args := m.Called(ctx, resource, meetingID, registrant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegistrantRecord), args.Error(1)
}

func (m *MockMeetingAPI) UpdateRegistrantStatus(ctx context.Context, resource, meetingID string, action models.RegistrantAction, registrant models.RegistrantRef) error {
	args := m.Called(ctx, resource, meetingID, action, registrant)
	return args.Error(0)
}

func (m *MockMeetingAPI) UpdateRegistrantsStatus(ctx context.Context, resource, meetingID string, action models.RegistrantAction, registrants []models.RegistrantRef) error {
	args := m.Called(ctx, resource, meetingID, action, registrants)
	return args.Error(0)
}

// MockFormProvider implements FormProvider for testing
type MockFormProvider struct {
	mock.Mock
}

func (m *MockFormProvider) AttendeeForm(ctx context.Context, eventUID string) (*models.CustomForm, error) {
	args := m.Called(ctx, eventUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomForm), args.Error(1)
}

func (m *MockFormProvider) BookingForm(ctx context.Context, eventUID string) (*models.CustomForm, error) {
	args := m.Called(ctx, eventUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomForm), args.Error(1)
}

func (m *MockFormProvider) GatewayAliases(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
