package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"booking-api/infras/otel"
	"booking-api/infras/postgres"
	"booking-api/internal/domains/booking/model"
	"booking-api/shared"
	"booking-api/shared/constant"
	gDto "booking-api/shared/dto"
	gRepo "booking-api/shared/repository"
	"booking-api/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	FindDue(ctx context.Context, now time.Time, lead, lookback time.Duration) ([]model.Booking, error)
	MarkLinked(ctx context.Context, id, meetingID, joinURL string) error
	MarkDispatched(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindDue returns undispatched bookings whose start falls inside the reminder
// window: no later than now+lead, and strictly after now-lookback so stale
// rows are never picked up.
func (repo *repositoryImpl) FindDue(ctx context.Context, now time.Time, lead, lookback time.Duration) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReminderSent,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "horizon",
				Field:    model.FieldStartAt,
				Value:    now.Add(lead),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "floor",
				Field:    model.FieldStartAt,
				Value:    now.Add(-lookback),
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartAt,
		SortDir: constant.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) MarkLinked(ctx context.Context, id, meetingID, joinURL string) error {
	return repo.Update(ctx, map[string]any{
		model.FieldZoomMeetingID: meetingID,
		model.FieldZoomJoinURL:   joinURL,
		constant.FieldModifiedAt: timezone.Now(),
	}, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) MarkDispatched(ctx context.Context, id string) error {
	return repo.Update(ctx, map[string]any{
		model.FieldReminderSent:  true,
		constant.FieldModifiedAt: timezone.Now(),
	}, shared.FilterByID(id, model.FieldID, model.TableName))
}
