// Package metrics exposes the service's Prometheus metric families:
// swarm execution duration, decision confidence, dedup actions, human
// overrides and semantic similarity scores.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the registered collectors.
type Metrics struct {
	executionDuration  *prometheus.HistogramVec
	decisionConfidence *prometheus.HistogramVec
	dedupEvents        *prometheus.CounterVec
	humanOverrides     *prometheus.CounterVec
	semanticSimilarity *prometheus.HistogramVec
}

// New registers the metric families on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		executionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "swarmsre_swarm_execution_seconds",
			Help: "Time spent executing a swarm run.",
		}, []string{"domain", "severity"}),
		decisionConfidence: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swarmsre_decision_confidence_score",
			Help:    "Confidence scores of produced decisions.",
			Buckets: []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		}, []string{"action"}),
		dedupEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swarmsre_deduplication_total",
			Help: "Events processed by the deduplicator, by action.",
		}, []string{"action"}),
		humanOverrides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swarmsre_human_override_total",
			Help: "Human review verdicts on proposed decisions.",
		}, []string{"action"}),
		semanticSimilarity: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "swarmsre_semantic_similarity_score",
			Help: "Similarity scores of semantic recovery matches.",
		}, []string{"source"}),
	}
	reg.MustRegister(
		m.executionDuration,
		m.decisionConfidence,
		m.dedupEvents,
		m.humanOverrides,
		m.semanticSimilarity,
	)
	return m
}

// RecordExecution observes one run's duration.
func (m *Metrics) RecordExecution(duration time.Duration, domain, severity string) {
	m.executionDuration.WithLabelValues(domain, severity).Observe(duration.Seconds())
}

// RecordDecision observes a decision's confidence by proposed action.
func (m *Metrics) RecordDecision(confidence float64, action string) {
	if action == "" {
		action = "none"
	}
	m.decisionConfidence.WithLabelValues(action).Observe(confidence)
}

// RecordDedup counts a dedup verdict.
func (m *Metrics) RecordDedup(action string) {
	m.dedupEvents.WithLabelValues(action).Inc()
}

// RecordOverride counts a human verdict.
func (m *Metrics) RecordOverride(action string) {
	m.humanOverrides.WithLabelValues(action).Inc()
}

// RecordSimilarity observes a semantic match score.
func (m *Metrics) RecordSimilarity(score float64, source string) {
	m.semanticSimilarity.WithLabelValues(source).Observe(score)
}
