package model

import (
	"database/sql"
	"fmt"
	"time"

	"booking-api/shared/constant"
	"booking-api/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldStartAt       = "start_at"
	FieldMeetingType   = "meeting_type"
	FieldZoomMeetingID = "zoom_meeting_id"
	FieldZoomJoinURL   = "zoom_join_url"
	FieldReminderSent  = "reminder_sent"
)

type Booking struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Email         string         `db:"email"`
	StartAt       time.Time      `db:"start_at"`
	MeetingType   string         `db:"meeting_type"`
	ZoomMeetingID sql.NullString `db:"zoom_meeting_id"`
	ZoomJoinURL   sql.NullString `db:"zoom_join_url"`
	ReminderSent  bool           `db:"reminder_sent"`
	model.Metadata
}

// NeedsProvisioning reports whether this booking's meeting type gets its join
// link from the meeting provider. Other types are expected to carry a link
// from elsewhere and are left pending until one exists.
func (b *Booking) NeedsProvisioning() bool {
	return b.MeetingType == constant.MeetingTypeVideoCallA
}

// HasJoinURL reports whether a usable join link is already stored.
func (b *Booking) HasJoinURL() bool {
	return b.ZoomJoinURL.Valid && b.ZoomJoinURL.String != ""
}

// Topic is the meeting title handed to the provider.
func (b *Booking) Topic() string {
	return fmt.Sprintf("Consultation with %s", b.Name)
}
