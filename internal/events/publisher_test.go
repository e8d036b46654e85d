package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"booking-api/config"
	"booking-api/infras/kafka"
	kafkaMocks "booking-api/infras/kafka/mocks"
	"booking-api/infras/otel/mocks"
	"booking-api/internal/events"
)

func newPublisher(t *testing.T, enable bool) (events.Publisher, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = enable
	cfg.Kafka.TopicBookingEvents = "booking.events"

	return events.New(cfg, client, mocks.NewOtel()), client
}

func TestPublisher_BookingCreated(t *testing.T) {
	publisher, client := newPublisher(t, true)

	event := events.BookingCreated{
		BookingID:   "booking-1",
		Email:       "ana@example.com",
		MeetingType: "VideoCallA",
		StartAt:     time.Date(2025, 9, 6, 14, 30, 0, 0, time.UTC),
	}

	client.EXPECT().
		SendMessages(gomock.Any(), "booking.events", kafka.Message{
			Key:   events.KeyBookingCreated,
			Value: event,
		}).
		Return(nil)

	publisher.BookingCreated(context.Background(), event)
}

func TestPublisher_ReminderSent(t *testing.T) {
	publisher, client := newPublisher(t, true)

	event := events.ReminderSent{
		BookingID: "booking-1",
		Email:     "ana@example.com",
		StartAt:   time.Date(2025, 9, 6, 14, 30, 0, 0, time.UTC),
	}

	client.EXPECT().
		SendMessages(gomock.Any(), "booking.events", kafka.Message{
			Key:   events.KeyReminderSent,
			Value: event,
		}).
		Return(nil)

	publisher.ReminderSent(context.Background(), event)
}

func TestPublisher_DisabledSkipsBroker(t *testing.T) {
	publisher, _ := newPublisher(t, false)

	// No SendMessages expectation: a disabled broker means no traffic.
	publisher.BookingCreated(context.Background(), events.BookingCreated{BookingID: "booking-1"})
}

func TestPublisher_BrokerFailureIsSwallowed(t *testing.T) {
	publisher, client := newPublisher(t, true)

	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	// Publishing is best effort; the error must not propagate.
	publisher.ReminderSent(context.Background(), events.ReminderSent{BookingID: "booking-1"})
}
