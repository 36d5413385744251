// Package metrics holds the service's prometheus collectors. A nil *Metrics
// is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "modular_cv"

// Metrics groups the application collectors.
type Metrics struct {
	registrations   prometheus.Counter
	logins          *prometheus.CounterVec
	refreshes       *prometheus.CounterVec
	entriesCreated  *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates unregistered collectors.
func New() *Metrics {
	return &Metrics{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Accounts registered.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_refreshes_total",
			Help:      "Session refresh attempts by result.",
		}, []string{"result"}),
		entriesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_created_total",
			Help:      "Entries created by entry type.",
		}, []string{"entry_type"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// MustRegister registers every collector with reg.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		m.registrations,
		m.logins,
		m.refreshes,
		m.entriesCreated,
		m.requestsTotal,
		m.requestDuration,
	)
}

// Registration counts a successful registration.
func (m *Metrics) Registration() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

// Login counts a login attempt with result ok or a failure reason.
func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// Refresh counts a refresh attempt with result ok or a failure reason.
func (m *Metrics) Refresh(result string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(result).Inc()
}

// EntryCreated counts a created entry of entryType.
func (m *Metrics) EntryCreated(entryType string) {
	if m == nil {
		return
	}
	m.entriesCreated.WithLabelValues(entryType).Inc()
}

// Middleware records request totals and latency by route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			// Render the error here so the recorded status is the one sent.
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
