package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swarmops/swarmsre/pkg/models"
)

func cluster(severity string) models.AlertCluster {
	c, _ := models.NewAlertCluster([]models.NormalizedAlert{
		{Fingerprint: "fp", Service: "db", Severity: severity, ValidationStatus: models.ValidationValid},
	}, 1.0)
	return c
}

func trend(state models.TrendState, confidence float64) models.MetricTrend {
	return models.MetricTrend{State: state, Confidence: confidence}
}

func TestEvaluate_CriticalDegradingEscalates(t *testing.T) {
	result, fired := NewEngine(0).Evaluate(Input{
		Cluster: cluster("critical"),
		Trends: map[string]models.MetricTrend{
			"cpu":    trend(models.TrendDegrading, 0.9),
			"memory": trend(models.TrendDegrading, 0.8),
		},
	})

	assert.Equal(t, models.DecisionEscalate, result.State)
	assert.Equal(t, HighConfidence, result.Confidence)
	assert.Equal(t, []string{RuleCriticalDegrading}, fired)
	assert.Contains(t, result.Justification, "cpu")
}

func TestEvaluate_CriticalDegradingNeedsConfidentTrend(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("critical"),
		Trends: map[string]models.MetricTrend{
			"cpu": trend(models.TrendDegrading, 0.5),
		},
	})
	assert.NotEqual(t, RuleCriticalDegrading, result.RuleID)
}

func TestEvaluate_RecoveryCloses(t *testing.T) {
	result, fired := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu":     trend(models.TrendRecovering, 0.7),
			"memory":  trend(models.TrendRecovering, 0.8),
			"latency": trend(models.TrendRecovering, 0.9),
		},
	})

	assert.Equal(t, models.DecisionClose, result.State)
	assert.InDelta(t, 0.85, result.Confidence, 1e-9) // min(0.85, 0.8+0.1)
	assert.Contains(t, fired, RuleRecoveryDetected)
}

func TestEvaluate_RecoveryRequiresAllRecovering(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu":    trend(models.TrendRecovering, 0.9),
			"memory": trend(models.TrendStable, 0.9),
		},
	})
	assert.NotEqual(t, RuleRecoveryDetected, result.RuleID)
}

func TestEvaluate_EmptyTrendsManualReview(t *testing.T) {
	result, fired := NewEngine(0).Evaluate(Input{Cluster: cluster("warning")})

	assert.Equal(t, models.DecisionManualReview, result.State)
	assert.Equal(t, MediumConfidence, result.Confidence)
	assert.Contains(t, fired, RuleInsufficientData)
}

func TestEvaluate_HalfUnknownManualReview(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu":    trend(models.TrendUnknown, 0),
			"memory": trend(models.TrendStable, 0.8),
		},
	})
	assert.Equal(t, RuleInsufficientData, result.RuleID)
	assert.Equal(t, models.DecisionManualReview, result.State)
}

func TestEvaluate_HistoricalCloseKeyword(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu": trend(models.TrendStable, 0.8),
		},
		SemanticEvidence: []models.SemanticEvidence{
			{SourceDecisionID: "d-1", SimilarityScore: 0.91, Summary: "Incident closed after auto-scale"},
		},
	})

	assert.Equal(t, models.DecisionClose, result.State)
	assert.Equal(t, 0.91, result.Confidence)
	assert.Equal(t, RuleHistoricalClose, result.RuleID)
}

func TestEvaluate_HistoricalEscalateKeyword(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu": trend(models.TrendStable, 0.8),
		},
		SemanticEvidence: []models.SemanticEvidence{
			{SourceDecisionID: "d-2", SimilarityScore: 0.9, Summary: "Escalated to on-call, urgent"},
		},
	})
	assert.Equal(t, models.DecisionEscalate, result.State)
	assert.Equal(t, RuleHistoricalEscalate, result.RuleID)
}

func TestEvaluate_HistoricalUnclearReducedConfidence(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu": trend(models.TrendStable, 0.8),
		},
		SemanticEvidence: []models.SemanticEvidence{
			{SourceDecisionID: "d-3", SimilarityScore: 0.9, Summary: "similar alert seen before"},
		},
	})
	assert.Equal(t, models.DecisionObserve, result.State)
	assert.InDelta(t, 0.72, result.Confidence, 1e-9)
}

func TestEvaluate_HistoricalBelowThresholdIgnored(t *testing.T) {
	result, fired := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu":    trend(models.TrendStable, 0.8),
			"memory": trend(models.TrendStable, 0.8),
		},
		SemanticEvidence: []models.SemanticEvidence{
			{SourceDecisionID: "d-4", SimilarityScore: 0.5, Summary: "closed"},
		},
	})
	assert.Equal(t, RuleStableMetrics, result.RuleID)
	assert.NotContains(t, fired, RuleHistoricalClose)
}

func TestEvaluate_StableMetricsObserve(t *testing.T) {
	result, _ := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu":    trend(models.TrendStable, 0.8),
			"memory": trend(models.TrendStable, 0.7),
		},
	})
	assert.Equal(t, models.DecisionObserve, result.State)
	assert.Equal(t, MediumConfidence, result.Confidence)
	assert.Equal(t, RuleStableMetrics, result.RuleID)
}

func TestEvaluate_DefaultObserve(t *testing.T) {
	// One stable metric: no rule fires, default applies.
	result, fired := NewEngine(0).Evaluate(Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu": trend(models.TrendStable, 0.6),
		},
	})

	assert.Equal(t, models.DecisionObserve, result.State)
	assert.Equal(t, LowConfidence, result.Confidence)
	assert.Equal(t, []string{RuleDefaultObserve}, fired)
}

func TestEvaluate_WinnerHasHighestConfidenceAmongFired(t *testing.T) {
	in := Input{
		Cluster: cluster("critical"),
		Trends: map[string]models.MetricTrend{
			"cpu": trend(models.TrendDegrading, 0.9),
		},
		SemanticEvidence: []models.SemanticEvidence{
			{SourceDecisionID: "d-5", SimilarityScore: 0.99, Summary: "closed"},
		},
	}
	// CRITICAL_DEGRADING fires first at 0.85 >= threshold and short-circuits.
	result, fired := NewEngine(0).Evaluate(in)
	assert.Equal(t, []string{RuleCriticalDegrading}, fired)
	assert.Equal(t, HighConfidence, result.Confidence)
}

func TestEvaluate_Deterministic(t *testing.T) {
	in := Input{
		Cluster: cluster("warning"),
		Trends: map[string]models.MetricTrend{
			"cpu":    trend(models.TrendStable, 0.8),
			"memory": trend(models.TrendStable, 0.7),
		},
	}
	r1, f1 := NewEngine(0).Evaluate(in)
	r2, f2 := NewEngine(0).Evaluate(in)
	assert.Equal(t, r1, r2)
	assert.Equal(t, f1, f2)
}
