// Package metrics defines the Prometheus metrics of the tax compliance API.
// All metrics register with the default registry through promauto and are
// served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taxadmin"

// LedgerRecordsSubmitted counts records appended to a ledger.
// Label:
//   - ledger: e.g. "compliance", "tax_returns"
var LedgerRecordsSubmitted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_records_submitted_total",
		Help:      "Total number of records submitted, by ledger.",
	},
	[]string{"ledger"},
)

// TaxCalculations counts calculations served.
// Labels:
//   - kind: "vat", "gst" or "gst_bulk"
//   - result: "ok" or "rejected"
var TaxCalculations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tax_calculations_total",
		Help:      "Total number of VAT/GST calculations, by kind and result.",
	},
	[]string{"kind", "result"},
)

// AuthAttempts counts sign-in attempts.
// Labels:
//   - method: "password" or "google"
//   - result: "success" or "failure"
var AuthAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of sign-in attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// AccessDenied counts requests stopped by the role gate.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AccessDenied = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by the role gate.",
	},
	[]string{"reason"},
)

// Exports counts ledger exports written.
var Exports = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of ledger exports written, by ledger and format.",
	},
	[]string{"ledger", "format"},
)

// ExportDuration measures how long a ledger export takes end-to-end.
var ExportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of ledger exports from snapshot to written file.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"ledger"},
)
