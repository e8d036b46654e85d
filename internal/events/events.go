package events

import "time"

const (
	KeyBookingCreated = "booking.created"
	KeyReminderSent   = "booking.reminder_sent"
)

type BookingCreated struct {
	BookingID   string    `json:"booking_id"`
	Email       string    `json:"email"`
	MeetingType string    `json:"meeting_type"`
	StartAt     time.Time `json:"start_at"`
}

type ReminderSent struct {
	BookingID string    `json:"booking_id"`
	Email     string    `json:"email"`
	StartAt   time.Time `json:"start_at"`
}
