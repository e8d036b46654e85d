package dto

import (
	"database/sql"
	"time"

	"booking-api/internal/domains/booking/model"
	"booking-api/shared"
	"booking-api/shared/constant"
	gDto "booking-api/shared/dto"
	gModel "booking-api/shared/model"
	"booking-api/shared/timezone"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type CreateBookingRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Date    string `json:"date"    validate:"required"`
	Time    string `json:"time"    validate:"required"`
	Meeting string `json:"meeting" validate:"required,oneof=VideoCallA VideoCallB"`
}

// StartAt combines the wall-clock date and time fields, interpreted in the
// configured application timezone, into a UTC instant.
func (c *CreateBookingRequest) StartAt() (time.Time, error) {
	start, err := timezone.Parse(dateLayout+"T"+timeLayout, c.Date+"T"+c.Time)
	if err != nil {
		return time.Time{}, err
	}

	return start.UTC(), nil
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	startAt, err := c.StartAt()
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Email:       c.Email,
		StartAt:     startAt,
		MeetingType: c.Meeting,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type CreateBookingResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	StartAt       string `json:"start_at"`
	MeetingType   string `json:"meeting_type"`
	ZoomMeetingID string `json:"zoom_meeting_id,omitempty"`
	ZoomJoinURL   string `json:"zoom_join_url,omitempty"`
	ReminderSent  bool   `json:"reminder_sent"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.StartAt = model.StartAt.UTC().Format(constant.DateFormat)
	r.MeetingType = model.MeetingType
	r.ZoomMeetingID = nullableString(model.ZoomMeetingID)
	r.ZoomJoinURL = nullableString(model.ZoomJoinURL)
	r.ReminderSent = model.ReminderSent
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func nullableString(value sql.NullString) string {
	if !value.Valid {
		return constant.Empty
	}

	return value.String
}
