package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LoginAttempts       *prometheus.CounterVec
	MagicLinksIssued    prometheus.Counter
	LeadsImported       prometheus.Counter
	TasksCreated        prometheus.Counter
	SubmissionsReviewed *prometheus.CounterVec
	ExportsCreated      prometheus.Counter
	FilesRegistered     prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		MagicLinksIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "magic_links_issued_total",
			Help: "Total number of magic links issued",
		}),
		LeadsImported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_imported_total",
			Help: "Total number of leads imported from CSV",
		}),
		TasksCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Total number of tasks created",
		}),
		SubmissionsReviewed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "submissions_reviewed_total",
				Help: "Total number of submission reviews recorded",
			},
			[]string{"verdict"}, // approved, rejected, changes_requested
		),
		ExportsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exports_created_total",
			Help: "Total number of exports created",
		}),
		FilesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "files_registered_total",
			Help: "Total number of files registered",
		}),

		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"operation"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw URL

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordMagicLinkIssued increments magic links issued counter
func (m *Metrics) RecordMagicLinkIssued() {
	m.MagicLinksIssued.Inc()
}

// RecordLeadsImported adds to the imported lead counter
func (m *Metrics) RecordLeadsImported(n int) {
	m.LeadsImported.Add(float64(n))
}

// RecordTaskCreated increments tasks created counter
func (m *Metrics) RecordTaskCreated() {
	m.TasksCreated.Inc()
}

// RecordSubmissionReviewed increments the review counter for a verdict
func (m *Metrics) RecordSubmissionReviewed(verdict string) {
	m.SubmissionsReviewed.WithLabelValues(verdict).Inc()
}

// RecordExportCreated increments exports created counter
func (m *Metrics) RecordExportCreated() {
	m.ExportsCreated.Inc()
}

// RecordFileRegistered increments files registered counter
func (m *Metrics) RecordFileRegistered() {
	m.FilesRegistered.Inc()
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}
