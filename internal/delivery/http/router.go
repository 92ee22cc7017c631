package http

import (
	"net/http"

	"mka-cortes-backend/internal/delivery/http/handler"
	"mka-cortes-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bookingHandler      *handler.BookingHandler
	adminBookingHandler *handler.AdminBookingHandler
	reviewHandler       *handler.ReviewHandler
	planHandler         *handler.PlanHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	adminBookingHandler *handler.AdminBookingHandler,
	reviewHandler *handler.ReviewHandler,
	planHandler *handler.PlanHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		adminBookingHandler: adminBookingHandler,
		reviewHandler:       reviewHandler,
		planHandler:         planHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Prometheus scrape endpoint, outside the versioned prefix
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Booking submission is public, but a logged-in client gets the
	// booking attached to their account
	submit := api.PathPrefix("/bookings").Subrouter()
	submit.Use(r.authMiddleware.AuthenticateOptional)
	submit.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	// Anonymous lookup by confirmation token + phone, rate limited per IP
	lookup := api.PathPrefix("/bookings").Subrouter()
	lookup.Use(r.rateLimitMiddleware.Limit)
	lookup.HandleFunc("/lookup", r.bookingHandler.LookupBooking).Methods(http.MethodPost)

	// Landing page content (public)
	api.HandleFunc("/reviews", r.reviewHandler.ListReviews).Methods(http.MethodGet)
	api.HandleFunc("/plans", r.planHandler.ListPlans).Methods(http.MethodGet)

	// Client self-service (protected)
	me := api.PathPrefix("/me").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("/bookings", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	me.HandleFunc("/bookings/{id}", r.bookingHandler.UpdateMyBooking).Methods(http.MethodPut)

	// Admin dashboard (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", r.adminBookingHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/today", r.adminBookingHandler.GetTodayQueue).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.adminBookingHandler.UpdateBooking).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}", r.adminBookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{id}/arrived", r.adminBookingHandler.MarkArrived).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/completed", r.adminBookingHandler.MarkCompleted).Methods(http.MethodPost)
	admin.HandleFunc("/stats", r.adminBookingHandler.GetStats).Methods(http.MethodGet)

	// Add CORS and metrics middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
