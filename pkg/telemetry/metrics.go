// Package telemetry exposes Prometheus observability primitives for the
// rental back office.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the registered collectors. All observe methods tolerate
// a nil receiver so unwired callers stay silent.
type Metrics struct {
	apiRequests    *prometheus.CounterVec
	apiDuration    *prometheus.HistogramVec
	invoicesIssued *prometheus.CounterVec
	invoiceAmount  prometheus.Histogram
	paymentsTaken  *prometheus.CounterVec
	receiptsIssued prometheus.Counter
	usageEvents    *prometheus.CounterVec
}

// NewMetrics registers and returns the application collectors.
func NewMetrics() *Metrics {
	apiRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalops_api_requests_total",
		Help: "Counts API requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	apiDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rentalops_api_duration_seconds",
		Help:    "API request latency per method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	invoicesIssued := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalops_invoices_total",
		Help: "Invoices created by type.",
	}, []string{"type"})

	invoiceAmount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rentalops_invoice_amount",
		Help:    "Invoice total distribution.",
		Buckets: []float64{100, 500, 1000, 5000, 10000, 50000},
	})

	paymentsTaken := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalops_invoice_payments_total",
		Help: "Payments applied to invoices by resulting status.",
	}, []string{"status"})

	receiptsIssued := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rentalops_receipts_total",
		Help: "Receipts issued.",
	})

	usageEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalops_usage_events_total",
		Help: "Metered usage events recorded by type.",
	}, []string{"usage_type"})

	prometheus.MustRegister(
		apiRequests,
		apiDuration,
		invoicesIssued,
		invoiceAmount,
		paymentsTaken,
		receiptsIssued,
		usageEvents,
	)

	return &Metrics{
		apiRequests:    apiRequests,
		apiDuration:    apiDuration,
		invoicesIssued: invoicesIssued,
		invoiceAmount:  invoiceAmount,
		paymentsTaken:  paymentsTaken,
		receiptsIssued: receiptsIssued,
		usageEvents:    usageEvents,
	}
}

// ObserveAPIRequest records one API request and its latency.
func (m *Metrics) ObserveAPIRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveInvoiceCreated records one created invoice and its total.
func (m *Metrics) ObserveInvoiceCreated(invoiceType string, total float64) {
	if m == nil {
		return
	}
	m.invoicesIssued.WithLabelValues(invoiceType).Inc()
	m.invoiceAmount.Observe(total)
}

// ObservePayment records a payment by the invoice status it produced.
func (m *Metrics) ObservePayment(status string) {
	if m == nil {
		return
	}
	m.paymentsTaken.WithLabelValues(status).Inc()
}

// ObserveReceiptIssued counts one issued receipt.
func (m *Metrics) ObserveReceiptIssued() {
	if m == nil {
		return
	}
	m.receiptsIssued.Inc()
}

// ObserveUsageEvent counts one metered usage event.
func (m *Metrics) ObserveUsageEvent(usageType string) {
	if m == nil {
		return
	}
	m.usageEvents.WithLabelValues(usageType).Inc()
}
