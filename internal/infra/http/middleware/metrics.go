package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	draftsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drafts_generated_total",
			Help: "Total number of email drafts generated",
		},
	)

	draftRefinements = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "draft_refinements_total",
			Help: "Total number of feedback refinement passes",
		},
	)

	emailSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sends_total",
			Help: "Total number of email dispatch attempts",
		},
		[]string{"status"},
	)

	completionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "completion_errors_total",
			Help: "Total number of failed language-model completions",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordDraftGenerated() {
	draftsGenerated.Inc()
}

func RecordDraftRefinement() {
	draftRefinements.Inc()
}

func RecordEmailSend(status string) {
	emailSends.WithLabelValues(status).Inc()
}

func RecordCompletionError() {
	completionErrors.Inc()
}
