package decision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/llm"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/rules"
	"github.com/swarmops/swarmsre/pkg/vector"
)

type stubStore struct {
	hits []vector.Point
	err  error
}

func (s *stubStore) EnsureCollection(context.Context, string, int) error { return nil }
func (s *stubStore) Upsert(context.Context, string, string, []float64, map[string]any) error {
	return nil
}
func (s *stubStore) Search(context.Context, string, []float64, int, float64) ([]vector.Point, error) {
	return s.hits, s.err
}

type stubLLM struct {
	response string
	err      error
	called   bool
}

func (s *stubLLM) Complete(context.Context, string, llm.Options) (string, error) {
	s.called = true
	return s.response, s.err
}

func criticalCluster(t *testing.T) models.AlertCluster {
	t.Helper()
	c, err := models.NewAlertCluster([]models.NormalizedAlert{
		{Fingerprint: "db-cpu-1", Service: "postgres-primary", Severity: "critical",
			Description: "CPU saturation", ValidationStatus: models.ValidationValid},
		{Fingerprint: "db-mem-1", Service: "postgres-primary", Severity: "critical",
			Description: "memory pressure", ValidationStatus: models.ValidationValid},
	}, 0.8)
	require.NoError(t, err)
	return c
}

func stableCluster(t *testing.T) models.AlertCluster {
	t.Helper()
	c, err := models.NewAlertCluster([]models.NormalizedAlert{
		{Fingerprint: "fp-1", Service: "api", Severity: "warning",
			Description: "request rate wobble", ValidationStatus: models.ValidationValid},
	}, 0.7)
	require.NoError(t, err)
	return c
}

func degradingTrends() map[string]models.MetricTrend {
	return map[string]models.MetricTrend{
		"cpu":    {MetricName: "cpu", State: models.TrendDegrading, Confidence: 0.9},
		"memory": {MetricName: "memory", State: models.TrendDegrading, Confidence: 0.85},
	}
}

func singleStableTrend() map[string]models.MetricTrend {
	return map[string]models.MetricTrend{
		"requests": {MetricName: "requests", State: models.TrendStable, Confidence: 0.55},
	}
}

func TestDecide_HighConfidenceRulesSkipFallback(t *testing.T) {
	client := &stubLLM{}
	engine := NewEngine(DefaultConfig(), nil, nil, client)

	d := engine.Decide(context.Background(), criticalCluster(t), degradingTrends(), nil)

	assert.Equal(t, models.DecisionEscalate, d.State)
	assert.Equal(t, 0.85, d.Confidence)
	assert.Equal(t, []string{rules.RuleCriticalDegrading}, d.RulesApplied)
	assert.False(t, d.LLMContribution)
	assert.Empty(t, d.LLMReason)
	assert.False(t, client.called)
}

func TestDecide_SemanticRecoveryWins(t *testing.T) {
	// Low-confidence default rule, historical close at 0.91.
	store := &stubStore{hits: []vector.Point{{
		ID:    "d-hist",
		Score: 0.91,
		Payload: map[string]any{
			"summary": "incident closed after auto-scale",
		},
	}}}
	client := &stubLLM{}
	engine := NewEngine(DefaultConfig(), store, NewHashingEmbedder(0), client)

	d := engine.Decide(context.Background(), stableCluster(t), singleStableTrend(), nil)

	assert.Equal(t, models.DecisionClose, d.State)
	assert.Equal(t, 0.91, d.Confidence)
	assert.False(t, d.LLMContribution)
	assert.Equal(t, models.LLMReasonSemanticRecovery, d.LLMReason)
	assert.False(t, client.called, "semantic recovery must preempt the LLM call")
}

func TestDecide_LLMFallbackParsesVerdict(t *testing.T) {
	client := &stubLLM{response: `Here you go: {"state":"OBSERVE","confidence":0.72,"justification":"transient load"}`}
	engine := NewEngine(DefaultConfig(), nil, nil, client)

	d := engine.Decide(context.Background(), stableCluster(t), singleStableTrend(), nil)

	assert.Equal(t, models.DecisionObserve, d.State)
	assert.Equal(t, 0.72, d.Confidence)
	assert.True(t, d.LLMContribution)
	assert.Equal(t, models.LLMReasonFallback, d.LLMReason)
	assert.Contains(t, d.Justification, "transient load")
}

func TestDecide_LLMFailureSimulatesManualReview(t *testing.T) {
	cases := []struct {
		name   string
		client *stubLLM
	}{
		{"network error", &stubLLM{err: errors.New("connection refused")}},
		{"missing token", &stubLLM{err: llm.ErrMissingToken}},
		{"garbage output", &stubLLM{response: "no json here"}},
		{"invalid state", &stubLLM{response: `{"state":"PANIC","confidence":0.9,"justification":"x"}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(DefaultConfig(), nil, nil, tc.client)
			d := engine.Decide(context.Background(), stableCluster(t), singleStableTrend(), nil)

			assert.Equal(t, models.DecisionManualReview, d.State)
			assert.Equal(t, 0.70, d.Confidence)
			assert.True(t, d.LLMContribution)
			assert.Equal(t, models.LLMReasonFallbackSimulated, d.LLMReason)
			assert.Contains(t, d.Justification, "Simulated LLM analysis")
		})
	}
}

func TestDecide_ManualReviewNeverTriggersFallback(t *testing.T) {
	client := &stubLLM{}
	engine := NewEngine(DefaultConfig(), nil, nil, client)

	// No trends: INSUFFICIENT_DATA fires MANUAL_REVIEW at 0.70.
	d := engine.Decide(context.Background(), stableCluster(t), nil, nil)

	assert.Equal(t, models.DecisionManualReview, d.State)
	assert.False(t, client.called)
}

func TestDecide_ConfidenceClamped(t *testing.T) {
	client := &stubLLM{response: `{"state":"CLOSE","confidence":3.5,"justification":"sure"}`}
	engine := NewEngine(DefaultConfig(), nil, nil, client)

	d := engine.Decide(context.Background(), stableCluster(t), singleStableTrend(), nil)

	assert.Equal(t, 1.0, d.Confidence)
}

func TestDecideSync_NeverCallsFallback(t *testing.T) {
	client := &stubLLM{}
	engine := NewEngine(DefaultConfig(), nil, nil, client)

	d := engine.DecideSync(stableCluster(t), singleStableTrend(), nil)

	assert.Equal(t, models.DecisionObserve, d.State)
	assert.Equal(t, 0.50, d.Confidence)
	assert.False(t, d.LLMContribution)
	assert.False(t, client.called)
}

func TestParseVerdict_RejectsMissingObject(t *testing.T) {
	_, err := parseVerdict("plain text")
	assert.Error(t, err)
}

func TestHashingEmbedder_Deterministic(t *testing.T) {
	e := NewHashingEmbedder(64)
	a := e.Embed("postgres critical cpu saturation")
	b := e.Embed("postgres critical cpu saturation")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}
