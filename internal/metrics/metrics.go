package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mka_cortes",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mka_cortes",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted through the public form.",
		},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mka_cortes",
			Name:      "booking_status_changes_total",
			Help:      "Booking status transitions by target status.",
		},
		[]string{"status"},
	)

	lookupThrottled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mka_cortes",
			Name:      "lookup_throttled_total",
			Help:      "Booking lookups rejected by the rate limiter.",
		},
	)

	emailFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mka_cortes",
			Name:      "notification_email_failures_total",
			Help:      "Admin notification emails that could not be sent.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, statusChanges, lookupThrottled, emailFailures)
	})
}

// IncHTTP increments the request counter for a route/status pair.
func IncHTTP(route, code string) {
	httpRequests.WithLabelValues(route, code).Inc()
}

// IncBookingCreated counts one accepted booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncStatusChange counts one lifecycle transition.
func IncStatusChange(status string) {
	statusChanges.WithLabelValues(status).Inc()
}

// IncLookupThrottled counts one rate-limited lookup.
func IncLookupThrottled() {
	lookupThrottled.Inc()
}

// IncEmailFailure counts one failed notification email.
func IncEmailFailure() {
	emailFailures.Inc()
}
