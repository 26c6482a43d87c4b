package server

import (
	"context"
	"net/http"

	_ "github.com/Temutjin2k/ubar/docs"
	"github.com/Temutjin2k/ubar/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *Handlers, m *middleware.Middleware, mode types.ServiceMode, log logger.Logger) {
	// System Health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux, mode, log)
	setupMetricsRoute(mux)

	switch mode {
	case types.BookingService:
		setupBookingRoutes(mux, routes)
	case types.DriverService:
		setupDriverRoutes(mux, routes, m)
	case types.ContentService:
		setupContentRoutes(mux, routes)
	}
}

// setupBookingRoutes setups routes for booking service
func setupBookingRoutes(mux *http.ServeMux, routes *Handlers) {
	mux.HandleFunc("POST /bookings", routes.Booking.CreateBooking)
	mux.HandleFunc("GET /bookings/{booking_id}", routes.Booking.GetBooking)
	mux.HandleFunc("DELETE /bookings/{booking_id}", routes.Booking.DeleteBooking)
	mux.HandleFunc("PUT /bookings/{booking_id}/pickup", routes.Booking.UpdatePickup)
	mux.HandleFunc("PUT /bookings/{booking_id}/dropoff", routes.Booking.UpdateDropoff)
	mux.HandleFunc("POST /bookings/{booking_id}/request", routes.Booking.RequestRide) // searching, then confirmed after the delay
	mux.HandleFunc("POST /bookings/{booking_id}/cancel", routes.Booking.CancelBooking)
	mux.HandleFunc("POST /bookings/{booking_id}/locate", routes.Booking.LocateMe)

	mux.HandleFunc("GET /bookings/{booking_id}/concierge", routes.Booking.GetConversation)
	mux.HandleFunc("POST /bookings/{booking_id}/concierge", routes.Booking.AskConcierge)
	mux.HandleFunc("POST /bookings/{booking_id}/concierge/select", routes.Booking.SelectSuggestion)

	mux.HandleFunc("GET /ws/bookings/{booking_id}", routes.Booking.HandleWebSocket) // live status, position, map focus, advisories
}

// setupDriverRoutes setups routes for the driver portal
func setupDriverRoutes(mux *http.ServeMux, routes *Handlers, m *middleware.Middleware) {
	mux.HandleFunc("POST /drivers/sessions", routes.Driver.OpenSession)
	mux.HandleFunc("GET /drivers/sessions/{device_id}", routes.Driver.GetSession)
	mux.HandleFunc("DELETE /drivers/sessions/{device_id}", routes.Driver.CloseSession)
	mux.HandleFunc("POST /drivers/sessions/{device_id}/login", routes.Driver.Login)
	mux.HandleFunc("POST /drivers/sessions/{device_id}/login/open", routes.Driver.OpenLogin)
	mux.HandleFunc("POST /drivers/sessions/{device_id}/register", routes.Driver.Register)
	mux.HandleFunc("POST /drivers/sessions/{device_id}/register/open", routes.Driver.OpenRegister)
	mux.HandleFunc("POST /drivers/sessions/{device_id}/register/dismiss", routes.Driver.DismissApplication)

	mux.Handle("POST /drivers/sessions/{device_id}/online", m.RequireRoles(m.RequireDevice(routes.Driver.ToggleOnline), types.DriverRole)) // Driver goes online/offline
	mux.Handle("POST /drivers/sessions/{device_id}/logout", m.RequireRoles(m.RequireDevice(routes.Driver.Logout), types.DriverRole))

	mux.HandleFunc("GET /ws/drivers/{device_id}", routes.Driver.HandleWebSocket) // session view and telemetry
}

// setupContentRoutes setups routes for content service
func setupContentRoutes(mux *http.ServeMux, routes *Handlers) {
	mux.HandleFunc("GET /passes", routes.Content.ListPasses)
	mux.HandleFunc("GET /passes/{pass_id}", routes.Content.GetPass)
	mux.HandleFunc("GET /events", routes.Content.ListEvents)
	mux.HandleFunc("GET /podcast", routes.Content.GetPodcast)
}

// setupSwaggerRoutes configures Swagger UI endpoints based on service mode
func setupSwaggerRoutes(mux *http.ServeMux, mode types.ServiceMode, log logger.Logger) {
	var instanceName string

	switch mode {
	case types.BookingService:
		instanceName = "booking"
	case types.DriverService:
		instanceName = "driver"
	case types.ContentService:
		instanceName = "content"
	default:
		log.Warn(wrap.WithAction(context.Background(), "setup swagger routes"), "unknown service mode for swagger setup", "mode", mode)
		return
	}

	// Swagger UI endpoint
	swaggerURL := httpSwagger.InstanceName(instanceName)
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
