package triage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/decision"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/rules"
	"github.com/swarmops/swarmsre/pkg/vector"
)

var now = time.Now().UTC()

type staticSource struct {
	series map[string][]models.DataPoint
}

func (s *staticSource) FetchSeries(context.Context, string, time.Duration, time.Duration) (map[string][]models.DataPoint, error) {
	return s.series, nil
}

func series(values ...float64) []models.DataPoint {
	dps := make([]models.DataPoint, len(values))
	for i, v := range values {
		dps[i] = models.DataPoint{Timestamp: now.Add(time.Duration(i) * 30 * time.Second), Value: v}
	}
	return dps
}

func rawAlert(fingerprint, service, severity, description string, offset time.Duration) models.RawAlert {
	return models.RawAlert{
		Timestamp:   now.Add(offset - time.Hour),
		Fingerprint: fingerprint,
		Service:     service,
		Severity:    severity,
		Description: description,
		Source:      models.SourceGrafana,
	}
}

func newService(source MetricSource, store vector.Store) *Service {
	decider := decision.NewEngine(decision.DefaultConfig(), store,
		decision.NewHashingEmbedder(0), nil)
	return NewService(decider, nil, agent.NewRegistry(), source, nil, Config{
		Domain: models.Domain{ID: "sre", Name: "site-reliability"},
	})
}

func TestTriage_CriticalDegradingEscalates(t *testing.T) {
	// Scenario A: critical DB cluster with degrading cpu and memory.
	source := &staticSource{series: map[string][]models.DataPoint{
		"cpu_usage":    series(80, 82, 85, 88, 92, 95, 97, 98, 98, 99),
		"memory_usage": series(70, 72, 75, 78, 80, 82, 84, 85, 86, 87),
	}}
	svc := newService(source, nil)

	outcomes, err := svc.Triage(context.Background(), []models.RawAlert{
		rawAlert("db-cpu-1", "postgres-primary", "critical", "CPU saturation", 0),
		rawAlert("db-mem-1", "postgres-primary", "critical", "memory pressure", 30*time.Second),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	out := outcomes[0]
	assert.Equal(t, 2, out.Cluster.AlertCount)
	assert.Equal(t, "critical", out.Cluster.PrimarySeverity)
	assert.InDelta(t, 0.8, out.Cluster.CorrelationScore, 0.1)

	for name, tr := range out.Trends {
		assert.Equal(t, models.TrendDegrading, tr.State, name)
		assert.GreaterOrEqual(t, tr.Confidence, 0.7, name)
	}
	assert.Equal(t, models.TrendDegrading, out.FusedState)

	assert.Equal(t, models.DecisionEscalate, out.Decision.State)
	assert.Equal(t, 0.85, out.Decision.Confidence)
	assert.Equal(t, []string{rules.RuleCriticalDegrading}, out.Decision.RulesApplied)
	assert.False(t, out.Decision.LLMContribution)
}

func TestTriage_RecoveringSystemCloses(t *testing.T) {
	// Scenario B: three metrics all decreasing 20%+.
	recovering := series(100, 95, 90, 85, 80, 75, 70, 65, 60, 55)
	source := &staticSource{series: map[string][]models.DataPoint{
		"cpu_usage":    recovering,
		"memory_usage": recovering,
		"error_rate":   recovering,
	}}
	svc := newService(source, nil)

	outcomes, err := svc.Triage(context.Background(), []models.RawAlert{
		rawAlert("api-lat-1", "checkout", "warning", "latency recovering", 0),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	out := outcomes[0]
	for name, tr := range out.Trends {
		assert.Equal(t, models.TrendRecovering, tr.State, name)
		assert.GreaterOrEqual(t, tr.Confidence, 0.7, name)
	}
	assert.Equal(t, models.TrendRecovering, out.FusedState)

	assert.Equal(t, models.DecisionClose, out.Decision.State)
	assert.LessOrEqual(t, out.Decision.Confidence, 0.85)
	assert.Contains(t, out.Decision.RulesApplied, rules.RuleRecoveryDetected)
}

func TestTriage_LowConfidenceRulesRecoverSemantically(t *testing.T) {
	// Scenario C: a single noisy-stable metric leaves the rules at the
	// default observe (0.5); semantic recovery mirrors a historical
	// close at 0.91.
	source := &staticSource{series: map[string][]models.DataPoint{
		"cpu_usage": series(10, 11, 9, 12, 8, 13, 7, 14, 9, 11),
	}}
	store := &fixedStore{hits: []vector.Point{{
		ID:    "d-hist",
		Score: 0.91,
		Payload: map[string]any{
			"summary": "incident closed after auto-scale",
		},
	}}}
	svc := newService(source, store)

	outcomes, err := svc.Triage(context.Background(), []models.RawAlert{
		rawAlert("api-req-1", "checkout", "warning", "request rate wobble", 0),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	d := outcomes[0].Decision
	assert.Equal(t, models.DecisionClose, d.State)
	assert.Equal(t, 0.91, d.Confidence)
	assert.False(t, d.LLMContribution)
	assert.Equal(t, models.LLMReasonSemanticRecovery, d.LLMReason)
}

type fixedStore struct {
	hits []vector.Point
}

func (s *fixedStore) EnsureCollection(context.Context, string, int) error { return nil }
func (s *fixedStore) Upsert(context.Context, string, string, []float64, map[string]any) error {
	return nil
}
func (s *fixedStore) Search(context.Context, string, []float64, int, float64) ([]vector.Point, error) {
	return s.hits, nil
}

func TestTriage_NoMetricsGoesToManualReview(t *testing.T) {
	svc := newService(nil, nil)

	outcomes, err := svc.Triage(context.Background(), []models.RawAlert{
		rawAlert("x-1", "billing", "warning", "something odd", 0),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionManualReview, outcomes[0].Decision.State)
}

func TestBuildPlan_SkipsUnregisteredAgents(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(agent.NewLogAnalysisAgent())
	decider := decision.NewEngine(decision.DefaultConfig(), nil, nil, nil)
	svc := NewService(decider, nil, registry, nil, nil, Config{
		SwarmAgentIDs: []string{"loganalysis", "ghost"},
	})

	plan := svc.buildPlan()
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "loganalysis", plan.Steps[0].AgentID)
	assert.True(t, plan.Steps[0].Mandatory)
	assert.Equal(t, "exponential_backoff", plan.Steps[0].PolicyName)
	assert.NotNil(t, plan.Steps[0].RetryPolicy)
}
