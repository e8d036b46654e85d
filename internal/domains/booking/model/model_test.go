package model_test

import (
	"database/sql"
	"testing"

	"booking-api/internal/domains/booking/model"
	"booking-api/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestBooking_NeedsProvisioning(t *testing.T) {
	a := model.Booking{MeetingType: constant.MeetingTypeVideoCallA}
	b := model.Booking{MeetingType: constant.MeetingTypeVideoCallB}

	assert.True(t, a.NeedsProvisioning())
	assert.False(t, b.NeedsProvisioning())
}

func TestBooking_HasJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		joinURL  sql.NullString
		expected bool
	}{
		{
			name:     "valid url",
			joinURL:  sql.NullString{String: "https://zoom.us/j/1", Valid: true},
			expected: true,
		},
		{
			name:     "null",
			joinURL:  sql.NullString{},
			expected: false,
		},
		{
			name:     "valid but empty",
			joinURL:  sql.NullString{String: "", Valid: true},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{ZoomJoinURL: tt.joinURL}
			assert.Equal(t, tt.expected, booking.HasJoinURL())
		})
	}
}

func TestBooking_Topic(t *testing.T) {
	booking := model.Booking{Name: "Ana"}
	assert.Equal(t, "Consultation with Ana", booking.Topic())
}
