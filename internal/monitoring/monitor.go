// Package monitoring exposes operational metrics over Prometheus.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitor collects and exposes the business metrics of the back office.
type Monitor struct {
	registry *prometheus.Registry

	ordersCreated   *prometheus.CounterVec
	orderRevenue    prometheus.Counter
	ordersByStatus  *prometheus.GaugeVec
	stockByStatus   *prometheus.GaugeVec
	chatRequests    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMonitor creates a monitor with its own registry so tests can run
// several instances side by side.
func NewMonitor() *Monitor {
	registry := prometheus.NewRegistry()

	m := &Monitor{
		registry: registry,

		ordersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created, by payment method",
			},
			[]string{"payment_method"},
		),

		orderRevenue: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "order_revenue_total",
				Help: "Cumulative order totals, tax included",
			},
		),

		ordersByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orders_by_status",
				Help: "Current order count per lifecycle status",
			},
			[]string{"status"},
		),

		stockByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_items_by_status",
				Help: "Inventory item count per derived stock status",
			},
			[]string{"status"},
		),

		chatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_requests_total",
				Help: "Assistant chat requests, by outcome",
			},
			[]string{"outcome"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "API request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		m.ordersCreated,
		m.orderRevenue,
		m.ordersByStatus,
		m.stockByStatus,
		m.chatRequests,
		m.requestDuration,
	)

	return m
}

// RecordOrderCreated records a newly accepted order.
func (m *Monitor) RecordOrderCreated(paymentMethod string, total float64) {
	m.ordersCreated.WithLabelValues(paymentMethod).Inc()
	m.orderRevenue.Add(total)
}

// SetOrderCount sets the gauge for one lifecycle status.
func (m *Monitor) SetOrderCount(status string, count int) {
	m.ordersByStatus.WithLabelValues(status).Set(float64(count))
}

// SetStockCount sets the gauge for one derived stock status.
func (m *Monitor) SetStockCount(status string, count int) {
	m.stockByStatus.WithLabelValues(status).Set(float64(count))
}

// RecordChatRequest records an assistant request by outcome
// ("ok" or "error").
func (m *Monitor) RecordChatRequest(outcome string) {
	m.chatRequests.WithLabelValues(outcome).Inc()
}

// ObserveRequest records the latency of an API request.
func (m *Monitor) ObserveRequest(method, path string, seconds float64) {
	m.requestDuration.WithLabelValues(method, path).Observe(seconds)
}

// Handler returns the HTTP handler serving this monitor's registry.
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
