//go:build wireinject
// +build wireinject

package di

import (
	"booking-api/config"
	"booking-api/infras/kafka"
	"booking-api/infras/mailer"
	"booking-api/infras/otel"
	"booking-api/infras/postgres"
	"booking-api/infras/redis"
	"booking-api/infras/zoom"
	"booking-api/internal/events"
	"booking-api/internal/scheduler"
	"booking-api/shared/cache"
	"booking-api/transport/http"
	"booking-api/transport/http/middleware"
	"booking-api/transport/http/router"

	bookingRepository "booking-api/internal/domains/booking/repository"
	bookingService "booking-api/internal/domains/booking/service"
	bookingHandler "booking-api/internal/handlers/booking"
	healthHandler "booking-api/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	zoom.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var eventing = wire.NewSet(
	events.New,
)

var scheduling = wire.NewSet(
	scheduler.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventing,
		bookingDomain,
		scheduling,
		routing,
		http.New,
		newApp,
	)

	return &App{}
}
