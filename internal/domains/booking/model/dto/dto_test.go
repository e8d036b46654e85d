package dto_test

import (
	"database/sql"
	"testing"
	"time"

	"booking-api/internal/domains/booking/model"
	"booking-api/internal/domains/booking/model/dto"
	"booking-api/shared/constant"
	gModel "booking-api/shared/model"
	"booking-api/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_StartAt(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{
			name: "valid date and time",
			date: "2025-09-06",
			time: "14:30",
		},
		{
			name:    "invalid date",
			date:    "06-09-2025",
			time:    "14:30",
			wantErr: true,
		},
		{
			name:    "invalid time",
			date:    "2025-09-06",
			time:    "2pm",
			wantErr: true,
		},
		{
			name:    "empty date",
			date:    "",
			time:    "14:30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				Name:    "Ana",
				Email:   "ana@example.com",
				Date:    tt.date,
				Time:    tt.time,
				Meeting: constant.MeetingTypeVideoCallA,
			}

			startAt, err := req.StartAt()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			expected, err := timezone.Parse("2006-01-02T15:04", tt.date+"T"+tt.time)
			require.NoError(t, err)
			assert.True(t, startAt.Equal(expected), "expected %v, got %v", expected, startAt)
			assert.Equal(t, time.UTC, startAt.Location())
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Date:    "2025-09-06",
		Time:    "14:30",
		Meeting: constant.MeetingTypeVideoCallA,
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Ana", booking.Name)
	assert.Equal(t, "ana@example.com", booking.Email)
	assert.Equal(t, constant.MeetingTypeVideoCallA, booking.MeetingType)
	assert.False(t, booking.ReminderSent)
	assert.False(t, booking.ZoomMeetingID.Valid)
	assert.False(t, booking.ZoomJoinURL.Valid)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.False(t, booking.ModifiedAt.IsZero())
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Date:    "not-a-date",
		Time:    "14:30",
		Meeting: constant.MeetingTypeVideoCallB,
	}

	_, err := req.ToModel()
	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	startAt := time.Date(2025, 9, 6, 14, 30, 0, 0, time.UTC)

	booking := model.Booking{
		ID:            "booking-1",
		Name:          "Ana",
		Email:         "ana@example.com",
		StartAt:       startAt,
		MeetingType:   constant.MeetingTypeVideoCallA,
		ZoomMeetingID: sql.NullString{String: "987654321", Valid: true},
		ZoomJoinURL:   sql.NullString{String: "https://zoom.us/j/987654321", Valid: true},
		ReminderSent:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  startAt.Add(-time.Hour),
			ModifiedAt: startAt.Add(-time.Minute),
		},
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, startAt.Format(constant.DateFormat), res.StartAt)
	assert.Equal(t, "987654321", res.ZoomMeetingID)
	assert.Equal(t, "https://zoom.us/j/987654321", res.ZoomJoinURL)
	assert.True(t, res.ReminderSent)
}

func TestBookingResponse_FromModel_NoLink(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-2",
		Name:        "Budi",
		Email:       "budi@example.com",
		StartAt:     time.Date(2025, 9, 7, 10, 0, 0, 0, time.UTC),
		MeetingType: constant.MeetingTypeVideoCallB,
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Empty(t, res.ZoomMeetingID)
	assert.Empty(t, res.ZoomJoinURL)
	assert.False(t, res.ReminderSent)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "a", Name: "Ana"},
		{ID: "b", Name: "Budi"},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(models, 12, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "a", res.Bookings[0].ID)
}
