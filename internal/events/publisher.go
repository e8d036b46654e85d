package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"booking-api/config"
	"booking-api/infras/kafka"
	"booking-api/infras/otel"
	"booking-api/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher emits booking lifecycle events. Publishing is best effort: a
// broker failure is logged and never fails the operation that produced the
// event.
type Publisher interface {
	BookingCreated(ctx context.Context, event BookingCreated)
	ReminderSent(ctx context.Context, event ReminderSent)
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, otl otel.Otel) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
		otel:   otl,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, event BookingCreated) {
	p.publish(ctx, KeyBookingCreated, event.BookingID, event)
}

func (p *publisherImpl) ReminderSent(ctx context.Context, event ReminderSent) {
	p.publish(ctx, KeyReminderSent, event.BookingID, event)
}

func (p *publisherImpl) publish(ctx context.Context, key, bookingID string, payload any) {
	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+key)
	defer scope.End()

	err := p.client.SendMessages(ctx, p.cfg.Kafka.TopicBookingEvents, kafka.Message{
		Key:   key,
		Value: payload,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", key).Str("bookingId", bookingID).Msg("failed to publish booking event")
	}
}
