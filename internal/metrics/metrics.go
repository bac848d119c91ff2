// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_http_requests_total",
		Help: "HTTP requests processed, by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks HTTP request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// VouchersPosted counts successfully posted vouchers by type.
	VouchersPosted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_vouchers_posted_total",
		Help: "Vouchers posted successfully, by voucher type.",
	}, []string{"type"})

	// PostingConflicts counts optimistic-lock conflicts on the posting path.
	PostingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_posting_conflicts_total",
		Help: "Optimistic concurrency conflicts encountered while posting.",
	})
)
