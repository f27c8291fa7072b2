// Package metrics holds the Prometheus collectors of the service. They are
// registered on the default registry and exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application actions.
const (
	ActionSubmitted = "submitted"
	ActionAccepted  = "accepted"
	ActionRejected  = "rejected"
)

// Category sync results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workify_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workify_orders_created_total",
			Help: "Total number of orders posted",
		},
	)

	OrderStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workify_order_status_changes_total",
			Help: "Total number of order status transitions",
		},
		[]string{"from", "to"},
	)

	Applications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workify_applications_total",
			Help: "Total number of application actions",
		},
		[]string{"action"},
	)

	ReviewsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workify_reviews_created_total",
			Help: "Total number of reviews created",
		},
	)

	AggregatesCommitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workify_aggregates_committed_total",
			Help: "Total number of aggregates written by committed transactions",
		},
		[]string{"aggregate"},
	)

	CategorySyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workify_category_sync_total",
			Help: "Total number of category counter resyncs",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementOrdersCreated() {
	OrdersCreated.Inc()
}

func IncrementOrderStatusChange(from, to string) {
	OrderStatusChanges.WithLabelValues(from, to).Inc()
}

// IncrementApplications counts one application action (ActionSubmitted, ActionAccepted, ActionRejected).
func IncrementApplications(action string) {
	Applications.WithLabelValues(action).Inc()
}

func IncrementReviewsCreated() {
	ReviewsCreated.Inc()
}

// IncrementCategorySync counts one resync run (ResultSuccess or ResultFailure).
func IncrementCategorySync(result string) {
	CategorySyncs.WithLabelValues(result).Inc()
}

func IncrementAggregatesCommitted(aggregate string) {
	AggregatesCommitted.WithLabelValues(aggregate).Inc()
}
