package router

import (
	"agenda/docs"
	"agenda/internal/handlers/appointment"
	"agenda/internal/handlers/auth"
	"agenda/internal/handlers/blockrule"
	"agenda/internal/handlers/catalog"
	"agenda/internal/handlers/health"
	"agenda/internal/handlers/professional"
	"agenda/internal/handlers/report"
	"agenda/internal/handlers/waitlist"
	"agenda/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	Catalog      catalog.Handler
	Professional professional.Handler
	BlockRule    blockrule.Handler
	Waitlist     waitlist.Handler
	Appointment  appointment.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Professional.Router(routerGroup)
		r.DomainHandlers.BlockRule.Router(routerGroup)
		r.DomainHandlers.Waitlist.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
