// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventDurationMinutes(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{
			name:     "start equals end gets the floor",
			end:      start,
			expected: 15,
		},
		{
			name:     "one hour",
			end:      start.Add(time.Hour),
			expected: 60,
		},
		{
			name:     "sub-minute duration never rounds to zero",
			end:      start.Add(30 * time.Second),
			expected: 1,
		},
		{
			name:     "ninety minutes",
			end:      start.Add(90 * time.Minute),
			expected: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &Event{StartTime: start, EndTime: tt.end}
			assert.Equal(t, tt.expected, event.DurationMinutes(15))
		})
	}
}
