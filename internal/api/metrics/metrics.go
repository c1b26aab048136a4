// Package metrics defines and registers all custom Prometheus metrics for the
// inventory system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the HTTP layer exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// ── Stock ledger metrics ──────────────────────────────────────────────────────

// StockProcessedTotal counts movements that completed processing successfully.
// Label:
//   - kind: "sale", "adjustment", or "restock"
var StockProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movements_processed_total",
		Help:      "Total number of stock movements successfully processed.",
	},
	[]string{"kind"},
)

// StockErrorsTotal counts movements that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "process_failed")
var StockErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movements_errors_total",
		Help:      "Total number of stock movements that failed processing.",
	},
	[]string{"reason"},
)

// StockQueueDepth tracks the current number of movements waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var StockQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stock_queue_depth",
		Help:      "Current number of movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// StockProcessingDuration measures how long a single movement takes end-to-end.
// Label:
//   - kind: the movement kind
var StockProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stock_processing_duration_seconds",
		Help:      "Duration of stock movement processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Sales metrics ─────────────────────────────────────────────────────────────

// SalesCreatedTotal counts newly recorded sales by category.
var SalesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Total number of sales recorded, by item category.",
	},
	[]string{"category"},
)
