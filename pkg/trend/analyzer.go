// Package trend classifies per-metric time series and fuses the
// per-metric states of a cluster into a single signal.
package trend

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/stats"
)

// Default classification thresholds.
const (
	DefaultDegradingThreshold  = 0.15
	DefaultRecoveringThreshold = 0.10
	DefaultLookbackMinutes     = 15

	minAnalysisPoints = 5
)

// Config tunes trend classification.
type Config struct {
	DegradingThreshold  float64
	RecoveringThreshold float64
	LookbackMinutes     int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		DegradingThreshold:  DefaultDegradingThreshold,
		RecoveringThreshold: DefaultRecoveringThreshold,
		LookbackMinutes:     DefaultLookbackMinutes,
	}
}

// Analyzer classifies a metric's direction over a lookback window.
// Deterministic: identical input yields byte-identical reasoning.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer; zero config fields use defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.DegradingThreshold <= 0 {
		cfg.DegradingThreshold = DefaultDegradingThreshold
	}
	if cfg.RecoveringThreshold <= 0 {
		cfg.RecoveringThreshold = DefaultRecoveringThreshold
	}
	if cfg.LookbackMinutes <= 0 {
		cfg.LookbackMinutes = DefaultLookbackMinutes
	}
	return &Analyzer{cfg: cfg}
}

// Analyze classifies one metric from its timestamp-ordered data points.
// Pipeline: strip non-finite values, p95 outlier filter (skipped at or
// below 5 valid points), relative-change classification, tiered
// confidence from the regression fit.
func (a *Analyzer) Analyze(metricName string, dataPoints []models.DataPoint, threshold *float64) models.MetricTrend {
	values := make([]float64, len(dataPoints))
	for i, dp := range dataPoints {
		values[i] = dp.Value
	}
	valid, stripped := stats.StripNonFinite(values)
	if stripped > 0 {
		slog.Warn("Removed non-finite metric samples",
			"metric", metricName, "removed", stripped, "valid", len(valid))
	}

	if len(valid) < minAnalysisPoints {
		return a.unknownTrend(metricName, dataPoints, threshold, "insufficient data (<5 valid)")
	}

	filtered, outliers := valid, []float64(nil)
	if len(valid) > minAnalysisPoints {
		filtered, outliers = stats.FilterOutliersP95(valid)
	}

	state, confidence, reasoning := a.classify(filtered, len(valid))
	marked := markOutliers(dataPoints, outliers)

	var current *float64
	if len(marked) > 0 {
		v := marked[len(marked)-1].Value
		current = &v
	}

	return models.MetricTrend{
		MetricName:      metricName,
		State:           state,
		Confidence:      confidence,
		DataPoints:      marked,
		LookbackSeconds: a.cfg.LookbackMinutes * 60,
		ThresholdValue:  threshold,
		CurrentValue:    current,
		DataPointsTotal: len(dataPoints),
		DataPointsUsed:  len(filtered),
		OutliersRemoved: len(outliers),
		Reasoning:       reasoning,
	}
}

// AnalyzeAll classifies a set of metrics.
func (a *Analyzer) AnalyzeAll(metrics map[string][]models.DataPoint) map[string]models.MetricTrend {
	trends := make(map[string]models.MetricTrend, len(metrics))
	for name, points := range metrics {
		trends[name] = a.Analyze(name, points, nil)
	}
	return trends
}

func (a *Analyzer) unknownTrend(metricName string, dataPoints []models.DataPoint, threshold *float64, reasoning string) models.MetricTrend {
	var current *float64
	if len(dataPoints) > 0 {
		v := dataPoints[len(dataPoints)-1].Value
		current = &v
	}
	return models.MetricTrend{
		MetricName:      metricName,
		State:           models.TrendUnknown,
		Confidence:      0,
		DataPoints:      dataPoints,
		LookbackSeconds: a.cfg.LookbackMinutes * 60,
		ThresholdValue:  threshold,
		CurrentValue:    current,
		DataPointsTotal: len(dataPoints),
		Reasoning:       reasoning,
	}
}

// classify determines direction from the relative change over the window
// and scores confidence from the regression fit, data volume and variance.
func (a *Analyzer) classify(values []float64, totalValid int) (models.TrendState, float64, string) {
	if len(values) < minAnalysisPoints {
		return models.TrendUnknown, 0,
			fmt.Sprintf("insufficient filtered data: %d points after p95 filtering", len(values))
	}

	first, last := values[0], values[len(values)-1]
	var change float64
	if first != 0 {
		change = (last - first) / math.Abs(first)
	} else {
		// Relative change is undefined at zero: classify from the sign of
		// the last sample.
		switch {
		case last > 0:
			change = a.cfg.DegradingThreshold + 1
		case last < 0:
			change = -a.cfg.RecoveringThreshold - 1
		}
	}

	var state models.TrendState
	var direction string
	switch {
	case change > a.cfg.DegradingThreshold:
		state, direction = models.TrendDegrading, "increasing"
	case change < -a.cfg.RecoveringThreshold:
		state, direction = models.TrendRecovering, "decreasing"
	default:
		state, direction = models.TrendStable, "stable"
	}

	slope, r2, _ := stats.LinearTrend(values)
	cv, _ := stats.CoefVariation(values)

	var confidence float64
	var dataQuality string
	if len(values) >= 10 {
		confidence = math.Min(r2+0.15, 0.95)
		dataQuality = "high (>=10 points)"
	} else {
		confidence = math.Min(r2, 0.70)
		dataQuality = "medium (5-9 points)"
	}

	varianceNote := ""
	if cv > 0.5 {
		confidence *= 0.85
		varianceNote = " (high variance penalty applied)"
	}

	// Stable series with low variance are trustworthy even when the flat
	// fit gives a poor r².
	if state == models.TrendStable {
		cvCapped := math.Min(cv, 1.0)
		if len(values) >= 10 {
			confidence = math.Max(confidence, math.Min(0.95, 0.6+(1-cvCapped)*0.3))
		} else {
			confidence = math.Max(confidence, math.Min(0.75, 0.5+(1-cvCapped)*0.2))
		}
	}

	reasoning := fmt.Sprintf(
		"Trend: %s (slope=%.4f). Confidence: %.2f (R2=%.2f, data_quality=%s, cv=%.2f%s). "+
			"Thresholds: degrading=%g, recovering=%g. Points: %d used from %d valid.",
		direction, slope, confidence, r2, dataQuality, cv, varianceNote,
		a.cfg.DegradingThreshold, a.cfg.RecoveringThreshold, len(values), totalValid)

	return state, confidence, reasoning
}

// markOutliers flags data points whose value was filtered out.
func markOutliers(dataPoints []models.DataPoint, outliers []float64) []models.DataPoint {
	if len(dataPoints) == 0 {
		return nil
	}
	outlierSet := make(map[float64]struct{}, len(outliers))
	for _, v := range outliers {
		outlierSet[v] = struct{}{}
	}
	marked := make([]models.DataPoint, len(dataPoints))
	for i, dp := range dataPoints {
		_, isOutlier := outlierSet[dp.Value]
		marked[i] = models.DataPoint{Timestamp: dp.Timestamp, Value: dp.Value, IsOutlier: isOutlier}
	}
	return marked
}
