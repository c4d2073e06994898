// Package rules implements the deterministic decision rules evaluated
// before any LLM involvement. Rules are pure over (cluster, trends,
// semantic evidence) and never use errors for control flow.
package rules

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/swarmops/swarmsre/pkg/models"
)

// Rule identifiers recorded in the audit trail.
const (
	RuleCriticalDegrading  = "rule_critical_degrading"
	RuleRecoveryDetected   = "rule_recovery_detected"
	RuleInsufficientData   = "rule_insufficient_data"
	RuleHistoricalClose    = "rule_historical_close"
	RuleHistoricalEscalate = "rule_historical_escalate"
	RuleStableMetrics      = "rule_stable_metrics"
	RuleDefaultObserve     = "rule_default_observe"
)

// Confidence bands used by the rules.
const (
	HighConfidence   = 0.85
	MediumConfidence = 0.70
	LowConfidence    = 0.50

	// DefaultAcceptThreshold stops evaluation once a firing rule reaches it.
	DefaultAcceptThreshold = 0.60

	minStableCount            = 2
	historicalMinScore        = 0.85
	degradingTrendConfidence  = 0.7
	recoveringTrendConfidence = 0.6
)

// Result is the outcome of one rule evaluation.
type Result struct {
	Fires         bool
	State         models.DecisionState
	Confidence    float64
	RuleID        string
	Justification string
}

// Input is the immutable context a rule evaluates over.
type Input struct {
	Cluster          models.AlertCluster
	Trends           map[string]models.MetricTrend
	SemanticEvidence []models.SemanticEvidence
}

// Engine evaluates the decision rules in fixed order.
type Engine struct {
	acceptThreshold float64
}

// NewEngine creates an engine; a non-positive threshold uses the default.
func NewEngine(acceptThreshold float64) *Engine {
	if acceptThreshold <= 0 {
		acceptThreshold = DefaultAcceptThreshold
	}
	return &Engine{acceptThreshold: acceptThreshold}
}

// Evaluate runs all rules in order, short-circuiting once a firing rule
// reaches the accept threshold. It returns the highest-confidence firing
// rule and the ordered ids of every rule that fired.
func (e *Engine) Evaluate(in Input) (Result, []string) {
	ruleFns := []func(Input) Result{
		checkCriticalDegrading,
		checkRecoveryDetected,
		checkInsufficientData,
		checkHistoricalPatterns,
		checkStableMetrics,
	}

	var fired []string
	var best *Result
	for _, rule := range ruleFns {
		result := rule(in)
		if !result.Fires {
			continue
		}
		fired = append(fired, result.RuleID)
		if best == nil || result.Confidence > best.Confidence {
			r := result
			best = &r
		}
		if result.Confidence >= e.acceptThreshold {
			break
		}
	}

	if best == nil {
		d := defaultObserve()
		best = &d
		fired = append(fired, d.RuleID)
	}

	slog.Info("Rule engine evaluated",
		"fired", len(fired), "decision", best.State, "confidence", best.Confidence)
	return *best, fired
}

// checkCriticalDegrading: critical severity with a confidently degrading
// metric escalates.
func checkCriticalDegrading(in Input) Result {
	if in.Cluster.PrimarySeverity != "critical" {
		return Result{RuleID: RuleCriticalDegrading}
	}

	var degrading []string
	for name, t := range in.Trends {
		if t.State == models.TrendDegrading && t.Confidence >= degradingTrendConfidence {
			degrading = append(degrading, name)
		}
	}
	if len(degrading) == 0 {
		return Result{RuleID: RuleCriticalDegrading}
	}
	sort.Strings(degrading)

	return Result{
		Fires:         true,
		State:         models.DecisionEscalate,
		Confidence:    HighConfidence,
		RuleID:        RuleCriticalDegrading,
		Justification: fmt.Sprintf("Critical alert with degrading metrics: %s", strings.Join(degrading, ", ")),
	}
}

// checkRecoveryDetected: every metric confidently recovering closes.
func checkRecoveryDetected(in Input) Result {
	if len(in.Trends) == 0 {
		return Result{RuleID: RuleRecoveryDetected}
	}

	var sum float64
	for _, t := range in.Trends {
		if t.State != models.TrendRecovering || t.Confidence < recoveringTrendConfidence {
			return Result{RuleID: RuleRecoveryDetected}
		}
		sum += t.Confidence
	}
	avg := sum / float64(len(in.Trends))
	confidence := avg + 0.10
	if confidence > HighConfidence {
		confidence = HighConfidence
	}

	return Result{
		Fires:         true,
		State:         models.DecisionClose,
		Confidence:    confidence,
		RuleID:        RuleRecoveryDetected,
		Justification: fmt.Sprintf("All %d metric(s) showing recovery", len(in.Trends)),
	}
}

// checkInsufficientData: no trends, or at least half unknown, goes to a
// human.
func checkInsufficientData(in Input) Result {
	if len(in.Trends) == 0 {
		return Result{
			Fires:         true,
			State:         models.DecisionManualReview,
			Confidence:    MediumConfidence,
			RuleID:        RuleInsufficientData,
			Justification: "No metric data available for analysis",
		}
	}

	unknown := 0
	for _, t := range in.Trends {
		if t.State == models.TrendUnknown {
			unknown++
		}
	}
	if float64(unknown) >= float64(len(in.Trends))/2 {
		return Result{
			Fires:         true,
			State:         models.DecisionManualReview,
			Confidence:    MediumConfidence,
			RuleID:        RuleInsufficientData,
			Justification: fmt.Sprintf("%d/%d metrics have insufficient data", unknown, len(in.Trends)),
		}
	}
	return Result{RuleID: RuleInsufficientData}
}

// checkHistoricalPatterns: a strong semantic match follows the historical
// outcome, classified from its summary keywords.
func checkHistoricalPatterns(in Input) Result {
	if len(in.SemanticEvidence) == 0 {
		return Result{RuleID: RuleHistoricalClose}
	}

	best := in.SemanticEvidence[0]
	for _, ev := range in.SemanticEvidence[1:] {
		if ev.SimilarityScore > best.SimilarityScore {
			best = ev
		}
	}
	if best.SimilarityScore < historicalMinScore {
		return Result{RuleID: RuleHistoricalClose}
	}

	summary := strings.ToLower(best.Summary)
	switch {
	case containsAny(summary, "closed", "resolved", "recovered"):
		return Result{
			Fires:         true,
			State:         models.DecisionClose,
			Confidence:    best.SimilarityScore,
			RuleID:        RuleHistoricalClose,
			Justification: fmt.Sprintf("Historical match (%.2f): similar alert was closed", best.SimilarityScore),
		}
	case containsAny(summary, "escalated", "critical", "urgent"):
		return Result{
			Fires:         true,
			State:         models.DecisionEscalate,
			Confidence:    best.SimilarityScore,
			RuleID:        RuleHistoricalEscalate,
			Justification: fmt.Sprintf("Historical match (%.2f): similar alert was escalated", best.SimilarityScore),
		}
	default:
		return Result{
			Fires:         true,
			State:         models.DecisionObserve,
			Confidence:    best.SimilarityScore * 0.8,
			RuleID:        RuleHistoricalClose,
			Justification: fmt.Sprintf("Historical match (%.2f): pattern unclear, recommending observation", best.SimilarityScore),
		}
	}
}

// checkStableMetrics: two or more stable metrics with nothing degrading
// keeps observing.
func checkStableMetrics(in Input) Result {
	if len(in.Trends) == 0 {
		return Result{RuleID: RuleStableMetrics}
	}

	stable := 0
	for _, t := range in.Trends {
		switch t.State {
		case models.TrendDegrading:
			return Result{RuleID: RuleStableMetrics}
		case models.TrendStable:
			stable++
		}
	}
	if stable < minStableCount {
		return Result{RuleID: RuleStableMetrics}
	}

	return Result{
		Fires:         true,
		State:         models.DecisionObserve,
		Confidence:    MediumConfidence,
		RuleID:        RuleStableMetrics,
		Justification: fmt.Sprintf("%d metric(s) stable, continuing observation", stable),
	}
}

func defaultObserve() Result {
	return Result{
		Fires:         true,
		State:         models.DecisionObserve,
		Confidence:    LowConfidence,
		RuleID:        RuleDefaultObserve,
		Justification: "No deterministic rule matched, defaulting to observation",
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
