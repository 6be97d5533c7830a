package router

import (
	"net/http"

	_ "hotel/docs" //nolint:revive
	"hotel/internal/handlers/ancillary"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/customer"
	"hotel/internal/handlers/diagnostic"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
	"hotel/web"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Room       room.Handler
	Customer   customer.Handler
	Booking    booking.Handler
	Ancillary  ancillary.Handler
	Diagnostic diagnostic.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.CORS())

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.Tracing)
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Diagnostic.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Ancillary.Router(routerGroup)

		routerGroup.NotFound(response.WithNotFound)
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Handle("/*", http.FileServerFS(web.Static()))
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
