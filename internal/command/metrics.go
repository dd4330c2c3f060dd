// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for dispatch metrics.
const (
	StatusSuccess        = "success"
	StatusError          = "error"
	StatusNotFound       = "not_found"
	StatusEmptyInput     = "empty_input"
	StatusModeRestricted = "mode_restricted"
)

// Dispatches is the counter for command dispatches.
// Use RegisterMetrics to register this with a Prometheus registry.
var Dispatches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loreline_command_dispatches_total",
		Help: "Total number of command dispatches",
	},
	[]string{"command", "status"},
)

// DispatchDuration is the histogram for dispatch duration.
var DispatchDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "loreline_command_dispatch_duration_seconds",
		Help:    "Command dispatch duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"command"},
)

// SuggestionQueries counts fuzzy suggestion lookups by outcome.
var SuggestionQueries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loreline_suggestion_queries_total",
		Help: "Total number of fuzzy suggestion queries",
	},
	[]string{"outcome"},
)

// CompletionQueries counts autocomplete queries by kind.
var CompletionQueries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loreline_completion_queries_total",
		Help: "Total number of autocomplete queries",
	},
	[]string{"kind"},
)

// RegisterMetrics registers command package metrics with the given
// Prometheus registry. Panics if registration fails, following
// prometheus convention.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Dispatches)
	reg.MustRegister(DispatchDuration)
	reg.MustRegister(SuggestionQueries)
	reg.MustRegister(CompletionQueries)
}

// RecordDispatch increments the dispatch counter.
func RecordDispatch(command, status string) {
	Dispatches.WithLabelValues(command, status).Inc()
}

// RecordDispatchDuration records how long a dispatch took.
func RecordDispatchDuration(command string, duration time.Duration) {
	DispatchDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordSuggestionQuery increments the suggestion counter with outcome
// "hit" or "miss".
func RecordSuggestionQuery(outcome string) {
	SuggestionQueries.WithLabelValues(outcome).Inc()
}

// RecordCompletionQuery increments the completion counter with kind
// "command" or "argument".
func RecordCompletionQuery(kind string) {
	CompletionQueries.WithLabelValues(kind).Inc()
}
