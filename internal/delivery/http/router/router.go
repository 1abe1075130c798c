// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homely/internal/delivery/http/middleware"
	"homely/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BookingHandler      *handler.BookingHandler
	SubscriptionHandler *handler.SubscriptionHandler
	CatalogHandler      *handler.CatalogHandler
	SocketHandler       *handler.SocketHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	bookingHandler      *handler.BookingHandler
	subscriptionHandler *handler.SubscriptionHandler
	catalogHandler      *handler.CatalogHandler
	socketHandler       *handler.SocketHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bookingHandler:      params.BookingHandler,
		subscriptionHandler: params.SubscriptionHandler,
		catalogHandler:      params.CatalogHandler,
		socketHandler:       params.SocketHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Push subscription routes; subscribing needs no login so the
		// booking page can register before sign-in completes
		api.GET("/vapidPublicKey", r.subscriptionHandler.VAPIDPublicKey)
		api.POST("/subscribe", r.subscriptionHandler.Subscribe)

		// Service catalog routes
		api.GET("/services", r.catalogHandler.ListServices)
		api.POST("/services", r.catalogHandler.CreateService, r.authMiddleware.Authenticate)

		// Booking routes, always scoped to the authenticated user
		bookings := api.Group("/bookings", r.authMiddleware.Authenticate)
		{
			bookings.POST("", r.bookingHandler.CreateBooking)
			bookings.GET("", r.bookingHandler.ListBookings)
			bookings.GET("/:id", r.bookingHandler.GetBooking)
			bookings.PATCH("/:id", r.bookingHandler.UpdateBooking)
		}
	}

	// Live booking-update socket
	e.GET("/ws", r.socketHandler.Connect, r.authMiddleware.Authenticate)
}
