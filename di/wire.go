//go:build wireinject
// +build wireinject

package di

import (
	"zenstay/config"
	"zenstay/helper"
	"zenstay/infras/jwt"
	"zenstay/infras/kafka"
	"zenstay/infras/mailer"
	"zenstay/infras/otel"
	"zenstay/infras/postgres"
	"zenstay/infras/redis"
	"zenstay/internal/notifier"
	"zenstay/shared/cache"
	"zenstay/transport/http"
	"zenstay/transport/http/middleware"
	"zenstay/transport/http/router"

	bookingRepository "zenstay/internal/domains/booking/repository"
	bookingService "zenstay/internal/domains/booking/service"
	roomRepository "zenstay/internal/domains/room/repository"
	roomService "zenstay/internal/domains/room/service"

	"github.com/google/wire"

	authService "zenstay/internal/domains/auth/service"
	authHandler "zenstay/internal/handlers/auth"
	bookingHandler "zenstay/internal/handlers/booking"
	healthHandler "zenstay/internal/handlers/health"
	paymentHandler "zenstay/internal/handlers/payment"
	roomHandler "zenstay/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	helper.NewSeeder,
)

var notifications = wire.NewSet(
	notifier.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		notifications,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
