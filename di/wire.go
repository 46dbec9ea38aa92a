//go:build wireinject
// +build wireinject

package di

import (
	"hoteloncall/config"
	"hoteloncall/infras/jwt"
	"hoteloncall/infras/mailer"
	"hoteloncall/infras/otel"
	"hoteloncall/infras/payment"
	"hoteloncall/infras/postgres"
	"hoteloncall/infras/redis"
	"hoteloncall/infras/upstream"
	"hoteloncall/internal/events"
	"hoteloncall/permissions"
	"hoteloncall/shared/cache"
	"hoteloncall/transport/http"
	"hoteloncall/transport/http/middleware"
	"hoteloncall/transport/http/router"

	billingRepository "hoteloncall/internal/domains/billing/repository"
	billingService "hoteloncall/internal/domains/billing/service"
	cleaningRepository "hoteloncall/internal/domains/cleaning/repository"
	cleaningService "hoteloncall/internal/domains/cleaning/service"
	maintenanceRepository "hoteloncall/internal/domains/maintenance/repository"
	maintenanceService "hoteloncall/internal/domains/maintenance/service"
	orderRepository "hoteloncall/internal/domains/order/repository"
	orderService "hoteloncall/internal/domains/order/service"
	predictionService "hoteloncall/internal/domains/prediction/service"
	roomRepository "hoteloncall/internal/domains/room/repository"
	roomService "hoteloncall/internal/domains/room/service"
	stayRepository "hoteloncall/internal/domains/stay/repository"
	stayService "hoteloncall/internal/domains/stay/service"
	userRepository "hoteloncall/internal/domains/user/repository"
	userService "hoteloncall/internal/domains/user/service"

	billingHandler "hoteloncall/internal/handlers/billing"
	cleaningHandler "hoteloncall/internal/handlers/cleaning"
	maintenanceHandler "hoteloncall/internal/handlers/maintenance"
	orderHandler "hoteloncall/internal/handlers/order"
	predictionHandler "hoteloncall/internal/handlers/prediction"
	roomHandler "hoteloncall/internal/handlers/room"
	stayHandler "hoteloncall/internal/handlers/stay"
	userHandler "hoteloncall/internal/handlers/user"

	"github.com/google/wire"
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
	mailer.New,
	payment.New,
	upstream.New,
)

var notifications = wire.NewSet(
	events.NewDispatcher,
	wire.Bind(new(events.Publisher), new(*events.Dispatcher)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewStaffRole,
	userRepository.NewVerificationCode,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var stayDomain = wire.NewSet(
	stayRepository.New,
	stayRepository.NewCheckout,
	stayRepository.NewTaxi,
	stayService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var cleaningDomain = wire.NewSet(
	cleaningRepository.NewCleaningTime,
	cleaningRepository.NewCleaningRequest,
	cleaningService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var predictionDomain = wire.NewSet(
	predictionService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	stayDomain,
	orderDomain,
	cleaningDomain,
	maintenanceDomain,
	billingDomain,
	predictionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	roomHandler.New,
	stayHandler.New,
	orderHandler.New,
	cleaningHandler.New,
	maintenanceHandler.New,
	billingHandler.New,
	predictionHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		notifications,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
