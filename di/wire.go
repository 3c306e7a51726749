//go:build wireinject
// +build wireinject

package di

import (
	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/kafka"
	"agenda/infras/metrics"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	"agenda/infras/s3"
	"agenda/permissions"
	"agenda/shared/cache"
	"agenda/transport/event"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	appointmentRepository "agenda/internal/domains/appointment/repository"
	appointmentService "agenda/internal/domains/appointment/service"
	authService "agenda/internal/domains/auth/service"
	blockRuleRepository "agenda/internal/domains/blockrule/repository"
	blockRuleService "agenda/internal/domains/blockrule/service"
	catalogRepository "agenda/internal/domains/catalog/repository"
	catalogService "agenda/internal/domains/catalog/service"
	professionalRepository "agenda/internal/domains/professional/repository"
	professionalService "agenda/internal/domains/professional/service"
	reportService "agenda/internal/domains/report/service"
	waitlistRepository "agenda/internal/domains/waitlist/repository"
	waitlistService "agenda/internal/domains/waitlist/service"

	appointmentHandler "agenda/internal/handlers/appointment"
	authHandler "agenda/internal/handlers/auth"
	blockRuleHandler "agenda/internal/handlers/blockrule"
	catalogHandler "agenda/internal/handlers/catalog"
	healthHandler "agenda/internal/handlers/health"
	professionalHandler "agenda/internal/handlers/professional"
	reportHandler "agenda/internal/handlers/report"
	waitlistHandler "agenda/internal/handlers/waitlist"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	wire.InterfaceValue(new(prometheus.Registerer), prometheus.DefaultRegisterer),
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var professionalDomain = wire.NewSet(
	professionalRepository.New,
	professionalService.New,
)

var blockRuleDomain = wire.NewSet(
	blockRuleRepository.New,
	blockRuleService.New,
)

var waitlistDomain = wire.NewSet(
	waitlistRepository.New,
	waitlistService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	wire.Struct(new(appointmentService.Dependencies), "*"),
	appointmentService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	professionalDomain,
	blockRuleDomain,
	waitlistDomain,
	appointmentDomain,
	authService.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	catalogHandler.New,
	professionalHandler.New,
	blockRuleHandler.New,
	waitlistHandler.New,
	appointmentHandler.New,
	reportHandler.New,
	router.New,
)

var events = wire.NewSet(
	event.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		events,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
