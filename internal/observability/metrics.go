// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for GraphQL operations.
const (
	OutcomeOK          = "ok"
	OutcomeFieldErrors = "field_errors"
	OutcomeError       = "error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	GraphQLRequests *prometheus.CounterVec
	GraphQLDuration *prometheus.HistogramVec
	AuthEvents      *prometheus.CounterVec
	HTTPResponses   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GraphQLRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentone_graphql_requests_total",
				Help: "GraphQL operations by root field and outcome",
			},
			[]string{"operation", "outcome"},
		),
		GraphQLDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contentone_graphql_duration_seconds",
				Help:    "GraphQL operation latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentone_auth_events_total",
				Help: "Authentication events by kind and result",
			},
			[]string{"event", "result"},
		),
		HTTPResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentone_http_responses_total",
				Help: "HTTP responses by method and status code",
			},
			[]string{"method", "code"},
		),
	}

	reg.MustRegister(m.GraphQLRequests, m.GraphQLDuration, m.AuthEvents, m.HTTPResponses)
	return m
}

// ObserveGraphQL records one executed operation. A nil receiver is a no-op
// so callers can run without metrics.
func (m *Metrics) ObserveGraphQL(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if operation == "" {
		operation = "unknown"
	}
	m.GraphQLRequests.WithLabelValues(operation, outcome).Inc()
	m.GraphQLDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// AuthEvent records an authentication event such as login or register.
func (m *Metrics) AuthEvent(event, result string) {
	if m == nil {
		return
	}
	m.AuthEvents.WithLabelValues(event, result).Inc()
}
