package scheduler_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"booking-api/config"
	mailerMocks "booking-api/infras/mailer/mocks"
	"booking-api/infras/otel/mocks"
	"booking-api/infras/zoom"
	zoomMocks "booking-api/infras/zoom/mocks"
	bookingMocks "booking-api/internal/domains/booking/mocks"
	"booking-api/internal/domains/booking/model"
	eventMocks "booking-api/internal/events/mocks"
	"booking-api/internal/scheduler"
	"booking-api/shared/constant"
)

type reminderMocks struct {
	repo      *bookingMocks.MockBooking
	zoom      *zoomMocks.MockClient
	mailer    *mailerMocks.MockMailer
	publisher *eventMocks.MockPublisher
}

func newReminder(t *testing.T) (scheduler.Reminder, reminderMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := reminderMocks{
		repo:      bookingMocks.NewMockBooking(ctrl),
		zoom:      zoomMocks.NewMockClient(ctrl),
		mailer:    mailerMocks.NewMockMailer(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Reminder.CronSpec = "* * * * *"
	cfg.Reminder.LeadMinutes = 30
	cfg.Reminder.LookbackHours = 24
	cfg.Reminder.DurationMinutes = 45

	rem := scheduler.New(cfg, m.repo, m.zoom, m.mailer, m.publisher, mocks.NewOtel())

	return rem, m
}

func linkedBooking(start time.Time) model.Booking {
	return model.Booking{
		ID:          "booking-1",
		Name:        "Ana",
		Email:       "ana@example.com",
		StartAt:     start,
		MeetingType: constant.MeetingTypeVideoCallA,
		ZoomMeetingID: sql.NullString{
			String: "987654321",
			Valid:  true,
		},
		ZoomJoinURL: sql.NullString{
			String: "https://zoom.us/j/987654321",
			Valid:  true,
		},
	}
}

func TestReminder_RunTick_DispatchesLinkedBooking(t *testing.T) {
	rem, m := newReminder(t)

	start := time.Now().UTC().Add(20 * time.Minute)
	booking := linkedBooking(start)

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), 30*time.Minute, 24*time.Hour).
		Return([]model.Booking{booking}, nil)

	m.mailer.EXPECT().
		SendJoinLink(gomock.Any(), "ana@example.com", "Ana", start, constant.MeetingTypeVideoCallA, "https://zoom.us/j/987654321").
		Return(nil)

	m.repo.EXPECT().
		MarkDispatched(gomock.Any(), "booking-1").
		Return(nil)

	m.publisher.EXPECT().
		ReminderSent(gomock.Any(), gomock.Any())

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_ProvisionsMissingLink(t *testing.T) {
	rem, m := newReminder(t)

	start := time.Now().UTC().Add(25 * time.Minute)
	booking := model.Booking{
		ID:          "booking-2",
		Name:        "Budi",
		Email:       "budi@example.com",
		StartAt:     start,
		MeetingType: constant.MeetingTypeVideoCallA,
	}

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{booking}, nil)

	m.zoom.EXPECT().
		CreateMeeting(gomock.Any(), "Consultation with Budi", start, 45).
		Return(zoom.Meeting{ID: "111222333", JoinURL: "https://zoom.us/j/111222333"}, nil)

	m.repo.EXPECT().
		MarkLinked(gomock.Any(), "booking-2", "111222333", "https://zoom.us/j/111222333").
		Return(nil)

	m.mailer.EXPECT().
		SendJoinLink(gomock.Any(), "budi@example.com", "Budi", start, constant.MeetingTypeVideoCallA, "https://zoom.us/j/111222333").
		Return(nil)

	m.repo.EXPECT().
		MarkDispatched(gomock.Any(), "booking-2").
		Return(nil)

	m.publisher.EXPECT().
		ReminderSent(gomock.Any(), gomock.Any())

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_ProvisionFailureLeavesBookingPending(t *testing.T) {
	rem, m := newReminder(t)

	booking := model.Booking{
		ID:          "booking-3",
		Name:        "Ana",
		Email:       "ana@example.com",
		StartAt:     time.Now().UTC().Add(10 * time.Minute),
		MeetingType: constant.MeetingTypeVideoCallA,
	}

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{booking}, nil)

	m.zoom.EXPECT().
		CreateMeeting(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zoom.Meeting{}, errors.New("zoom unavailable"))

	// No MarkLinked, no email, no MarkDispatched: the booking stays pending
	// and is retried on the next tick.
	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_SkipsUnprovisionableBooking(t *testing.T) {
	rem, m := newReminder(t)

	booking := model.Booking{
		ID:          "booking-4",
		Name:        "Citra",
		Email:       "citra@example.com",
		StartAt:     time.Now().UTC().Add(15 * time.Minute),
		MeetingType: constant.MeetingTypeVideoCallB,
	}

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{booking}, nil)

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_SendFailureLeavesBookingUndispatched(t *testing.T) {
	rem, m := newReminder(t)

	booking := linkedBooking(time.Now().UTC().Add(5 * time.Minute))

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{booking}, nil)

	m.mailer.EXPECT().
		SendJoinLink(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout"))

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_OneFailureDoesNotStopTheBatch(t *testing.T) {
	rem, m := newReminder(t)

	failing := linkedBooking(time.Now().UTC().Add(5 * time.Minute))
	failing.ID = "booking-fail"
	failing.Email = "fail@example.com"

	healthy := linkedBooking(time.Now().UTC().Add(10 * time.Minute))
	healthy.ID = "booking-ok"
	healthy.Email = "ok@example.com"

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{failing, healthy}, nil)

	m.mailer.EXPECT().
		SendJoinLink(gomock.Any(), "fail@example.com", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout"))

	m.mailer.EXPECT().
		SendJoinLink(gomock.Any(), "ok@example.com", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	m.repo.EXPECT().
		MarkDispatched(gomock.Any(), "booking-ok").
		Return(nil)

	m.publisher.EXPECT().
		ReminderSent(gomock.Any(), gomock.Any())

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_ScanFailure(t *testing.T) {
	rem, m := newReminder(t)

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	err := rem.RunTick(context.Background())

	assert.Error(t, err)
}

func TestReminder_RunTick_EmptyScan(t *testing.T) {
	rem, m := newReminder(t)

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{}, nil)

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}

func TestReminder_RunTick_WindowBoundsPassedToScan(t *testing.T) {
	rem, m := newReminder(t)

	m.repo.EXPECT().
		FindDue(gomock.Any(), gomock.Any(), 30*time.Minute, 24*time.Hour).
		DoAndReturn(func(_ context.Context, now time.Time, _, _ time.Duration) ([]model.Booking, error) {
			require.WithinDuration(t, time.Now().UTC(), now, 5*time.Second)

			return nil, nil
		})

	err := rem.RunTick(context.Background())

	assert.NoError(t, err)
}
