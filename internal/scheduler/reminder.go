package scheduler

//go:generate go run go.uber.org/mock/mockgen -source=./reminder.go -destination=./mocks/reminder_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"booking-api/config"
	"booking-api/infras/mailer"
	"booking-api/infras/otel"
	"booking-api/infras/zoom"
	"booking-api/internal/domains/booking/model"
	"booking-api/internal/domains/booking/repository"
	"booking-api/internal/events"
	"booking-api/shared/constant"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Reminder runs the periodic dispatch of join-link emails. Each tick scans for
// bookings whose start time falls within the configured lead, provisions a
// meeting link for the ones that still lack one, emails the link, and marks
// the booking dispatched.
type Reminder interface {
	Start() error
	Stop()
	RunTick(ctx context.Context) error
}

type reminderImpl struct {
	cfg       *config.Config
	repo      repository.Booking
	zoom      zoom.Client
	mailer    mailer.Mailer
	publisher events.Publisher
	otel      otel.Otel

	cron *cron.Cron

	// mu serializes ticks so a slow scan never overlaps the next one.
	mu sync.Mutex
}

func New(cfg *config.Config, repo repository.Booking, zoomClient zoom.Client, mail mailer.Mailer, publisher events.Publisher, otel otel.Otel) Reminder {
	return &reminderImpl{
		cfg:       cfg,
		repo:      repo,
		zoom:      zoomClient,
		mailer:    mail,
		publisher: publisher,
		otel:      otel,
		cron:      cron.New(),
	}
}

func (s *reminderImpl) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Reminder.CronSpec, func() {
		if err := s.RunTick(context.Background()); err != nil {
			log.Error().Err(err).Msg("reminder tick failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	s.cron.Start()

	log.Info().
		Str("cron", s.cfg.Reminder.CronSpec).
		Int("leadMinutes", s.cfg.Reminder.LeadMinutes).
		Msg("Reminder scheduler started")

	return nil
}

func (s *reminderImpl) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()

	log.Info().Msg("Reminder scheduler stopped")
}

// RunTick performs one reminder pass. A failure on one booking is logged and
// the pass moves on, so one broken row cannot starve the rest; the booking is
// retried on the next tick because it is only marked dispatched after the
// email went out.
func (s *reminderImpl) RunTick(ctx context.Context) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".RunTick")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := time.Now().UTC()
	lead := time.Duration(s.cfg.Reminder.LeadMinutes) * time.Minute
	lookback := time.Duration(s.cfg.Reminder.LookbackHours) * time.Hour

	due, err := s.repo.FindDue(ctx, now, lead, lookback)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan for due bookings")

		return fmt.Errorf("failed to scan for due bookings: %w", err)
	}

	if len(due) == 0 {
		return nil
	}

	log.Info().Int("count", len(due)).Msg("Processing due bookings")

	for _, booking := range due {
		if err := s.process(ctx, booking); err != nil {
			log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to dispatch reminder")
		}
	}

	return nil
}

func (s *reminderImpl) process(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".process")
	defer scope.End()
	defer scope.TraceIfError(err)

	joinURL := booking.ZoomJoinURL.String

	if !booking.HasJoinURL() {
		if !booking.NeedsProvisioning() {
			// No provider for this meeting type; leave it pending until a
			// link shows up some other way.
			log.Warn().
				Str("bookingId", booking.ID).
				Str("meetingType", booking.MeetingType).
				Msg("booking has no join link and no provider, skipping")

			return nil
		}

		meeting, err := s.zoom.CreateMeeting(ctx, booking.Topic(), booking.StartAt, s.cfg.Reminder.DurationMinutes)
		if err != nil {
			return fmt.Errorf("failed to provision meeting: %w", err)
		}

		if err = s.repo.MarkLinked(ctx, booking.ID, meeting.ID, meeting.JoinURL); err != nil {
			return fmt.Errorf("failed to store meeting link: %w", err)
		}

		joinURL = meeting.JoinURL
	}

	if err = s.mailer.SendJoinLink(ctx, booking.Email, booking.Name, booking.StartAt, booking.MeetingType, joinURL); err != nil {
		return fmt.Errorf("failed to send join link: %w", err)
	}

	if err = s.repo.MarkDispatched(ctx, booking.ID); err != nil {
		// The email is already out; if this update fails the booking will be
		// emailed again next tick. Duplicate links beat missing ones.
		return fmt.Errorf("failed to mark booking dispatched: %w", err)
	}

	s.publisher.ReminderSent(ctx, events.ReminderSent{
		BookingID: booking.ID,
		Email:     booking.Email,
		StartAt:   booking.StartAt,
	})

	return nil
}
