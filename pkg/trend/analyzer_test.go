package trend

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/swarmops/swarmsre/pkg/models"
)

var base = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func points(values ...float64) []models.DataPoint {
	dps := make([]models.DataPoint, len(values))
	for i, v := range values {
		dps[i] = models.DataPoint{Timestamp: base.Add(time.Duration(i) * 30 * time.Second), Value: v}
	}
	return dps
}

func TestAnalyze_InsufficientData(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("cpu_usage", points(1, 2, 3, 4), nil)

	assert.Equal(t, models.TrendUnknown, got.State)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Equal(t, "insufficient data (<5 valid)", got.Reasoning)
	assert.Equal(t, 4, got.DataPointsTotal)
	assert.Equal(t, 0, got.DataPointsUsed)
}

func TestAnalyze_NonFiniteStrippedBeforeCount(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("cpu_usage",
		points(1, 2, math.NaN(), 3, math.Inf(1), 4), nil)

	assert.Equal(t, models.TrendUnknown, got.State)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestAnalyze_DegradingCritical(t *testing.T) {
	// Scenario A cpu series: steep monotone increase.
	got := NewAnalyzer(DefaultConfig()).Analyze("cpu_usage",
		points(80, 82, 85, 88, 92, 95, 97, 98, 98, 99), nil)

	assert.Equal(t, models.TrendDegrading, got.State)
	assert.GreaterOrEqual(t, got.Confidence, 0.7)
	assert.Contains(t, got.Reasoning, "Trend: increasing")
}

func TestAnalyze_Recovering(t *testing.T) {
	// Scenario B series: 20%+ decrease across the window.
	got := NewAnalyzer(DefaultConfig()).Analyze("latency",
		points(100, 95, 90, 85, 80, 75, 70, 65, 60, 55), nil)

	assert.Equal(t, models.TrendRecovering, got.State)
	assert.GreaterOrEqual(t, got.Confidence, 0.7)
	assert.Contains(t, got.Reasoning, "Trend: decreasing")
}

func TestAnalyze_StableWithFloor(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("requests",
		points(10, 11, 9, 12, 8, 13, 7, 14, 9, 11), nil)

	assert.Equal(t, models.TrendStable, got.State)
	// Low r² but the low-variance stable floor applies.
	assert.GreaterOrEqual(t, got.Confidence, 0.5)
	assert.Contains(t, got.Reasoning, "Trend: stable")
}

func TestAnalyze_OutlierFilteredAndMarked(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("cpu_usage",
		points(10, 10, 11, 10, 10, 11, 10, 11, 10, 500), nil)

	assert.Equal(t, 1, got.OutliersRemoved)
	assert.Equal(t, 9, got.DataPointsUsed)
	assert.Equal(t, 10, got.DataPointsTotal)
	assert.True(t, got.DataPoints[len(got.DataPoints)-1].IsOutlier)
	assert.LessOrEqual(t, got.DataPointsUsed+got.OutliersRemoved, got.DataPointsTotal)
}

func TestAnalyze_FilterSkippedAtExactlyFivePoints(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("cpu_usage", points(1, 2, 3, 4, 100), nil)

	assert.Equal(t, 0, got.OutliersRemoved)
	assert.Equal(t, 5, got.DataPointsUsed)
}

func TestAnalyze_Deterministic(t *testing.T) {
	dps := points(80, 82, 85, 88, 92, 95, 97, 98, 98, 99)
	a := NewAnalyzer(DefaultConfig())

	first := a.Analyze("cpu_usage", dps, nil)
	second := a.Analyze("cpu_usage", dps, nil)

	assert.Equal(t, first.Reasoning, second.Reasoning)
	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestAnalyze_ReasoningPinned(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("cpu_usage",
		points(100, 95, 90, 85, 80, 75, 70, 65, 60, 55), nil)

	// 100 is above the p95 threshold: 9 points survive, medium tier.
	assert.Equal(t,
		"Trend: decreasing (slope=-5.0000). Confidence: 0.70 (R2=1.00, data_quality=medium (5-9 points), cv=0.17). "+
			"Thresholds: degrading=0.15, recovering=0.1. Points: 9 used from 10 valid.",
		got.Reasoning)
}

func TestAnalyze_ZeroFirstValueClassifiesFromSignOfLast(t *testing.T) {
	got := NewAnalyzer(DefaultConfig()).Analyze("errors", points(0, 1, 2, 3, 4, 5), nil)
	assert.Equal(t, models.TrendDegrading, got.State)
}

func TestFuse_EmptyInput(t *testing.T) {
	state, conf := Fuse(nil)
	assert.Equal(t, models.TrendUnknown, state)
	assert.Equal(t, 0.0, conf)
}

func TestFuse_WeightedConfidence(t *testing.T) {
	state, conf := Fuse([]StateConfidence{
		{models.TrendDegrading, 0.9},
		{models.TrendStable, 0.8},
	})
	assert.Equal(t, models.TrendDegrading, state)
	assert.InDelta(t, 0.9*0.7+0.8*0.3, conf, 1e-9)
}

func TestFuse_SingleSideRenormalized(t *testing.T) {
	state, conf := Fuse([]StateConfidence{
		{models.TrendStable, 0.7},
		{models.TrendStable, 0.8},
	})
	assert.Equal(t, models.TrendStable, state)
	assert.InDelta(t, 0.75, conf, 1e-9)
}

func TestFuse_PriorityMonotone(t *testing.T) {
	inputs := []StateConfidence{
		{models.TrendStable, 0.9},
		{models.TrendRecovering, 0.8},
	}
	before, _ := Fuse(inputs)
	after, _ := Fuse(append(inputs, StateConfidence{models.TrendDegrading, 0.1}))
	assert.GreaterOrEqual(t, int(after), int(before))
	assert.Equal(t, models.TrendDegrading, after)
}

func TestFuse_UnknownOnly(t *testing.T) {
	state, conf := Fuse([]StateConfidence{{models.TrendUnknown, 0}})
	assert.Equal(t, models.TrendUnknown, state)
	assert.Equal(t, 0.0, conf)
}
