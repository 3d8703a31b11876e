package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the prometheus collectors exported by the service
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec
}

// New registers and returns the service collectors on the default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "result"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
	}
}

// ObserveHTTPRequest records one served HTTP request
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}

// ObserveDBQuery records one executed database query
func (m *Metrics) ObserveDBQuery(operation, result string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, result).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// SetDBConnections records a connection pool gauge value
func (m *Metrics) SetDBConnections(state string, value float64) {
	m.DBConnections.WithLabelValues(m.serviceName, state).Set(value)
}
