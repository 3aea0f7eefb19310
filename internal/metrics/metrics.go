// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors of the server and the
// handler that exposes them.
//
// Collectors are registered in the default registry at package
// initialisation, so every package can record values without wiring.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shipment_tracker"

// Audit delivery results recorded by AuditJobs.
const (
	AuditDelivered   = "delivered"
	AuditRescheduled = "rescheduled"
	AuditDropped     = "dropped"
)

var (
	geocodeLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_lookups_total",
		Help:      "Address lookups by outcome.",
	}, []string{"outcome"})

	auditJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_jobs_total",
		Help:      "Audit job delivery attempts by result.",
	}, []string{"result"})

	tokensPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_pruned_total",
		Help:      "Expired access tokens removed by the pruner.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// ObserveGeocode counts one address lookup.
func ObserveGeocode(outcome models.GeocodeOutcome) {
	geocodeLookups.WithLabelValues(string(outcome)).Inc()
}

// ObserveAuditJob counts one audit delivery attempt.
func ObserveAuditJob(result string) {
	auditJobs.WithLabelValues(result).Inc()
}

// ObserveTokensPruned adds n removed tokens.
func ObserveTokensPruned(n int64) {
	if n > 0 {
		tokensPruned.Add(float64(n))
	}
}

// ObserveHTTPRequest records a finished request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
