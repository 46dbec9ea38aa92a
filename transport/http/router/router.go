package router

import (
	"hoteloncall/internal/handlers/billing"
	"hoteloncall/internal/handlers/cleaning"
	"hoteloncall/internal/handlers/maintenance"
	"hoteloncall/internal/handlers/order"
	"hoteloncall/internal/handlers/prediction"
	"hoteloncall/internal/handlers/room"
	"hoteloncall/internal/handlers/stay"
	"hoteloncall/internal/handlers/user"
	"hoteloncall/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hoteloncall/docs"
)

type DomainHandlers struct {
	User        user.Handler
	Room        room.Handler
	Stay        stay.Handler
	Order       order.Handler
	Cleaning    cleaning.Handler
	Maintenance maintenance.Handler
	Billing     billing.Handler
	Prediction  prediction.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

// SetupRoutes mounts every domain at the root. The legacy web client calls
// unprefixed paths, so there is no version segment.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Stay.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Cleaning.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Prediction.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
