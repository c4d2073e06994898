// Package decision composes the rule engine with the bounded semantic and
// LLM fallback into a governed Decision.
package decision

import (
	"context"
	"log/slog"

	"github.com/swarmops/swarmsre/pkg/llm"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/rules"
	"github.com/swarmops/swarmsre/pkg/vector"
)

// DefaultLLMThreshold is the rule confidence below which the fallback is
// consulted.
const DefaultLLMThreshold = 0.60

// DefaultSemanticThreshold is the minimum similarity for semantic
// recovery to mirror a historical decision.
const DefaultSemanticThreshold = 0.60

// Config tunes the engine.
type Config struct {
	AcceptThreshold   float64
	LLMThreshold      float64
	SemanticThreshold float64
	LLMEnabled        bool
}

// DefaultConfig returns the standard thresholds with the fallback
// enabled.
func DefaultConfig() Config {
	return Config{
		AcceptThreshold:   rules.DefaultAcceptThreshold,
		LLMThreshold:      DefaultLLMThreshold,
		SemanticThreshold: DefaultSemanticThreshold,
		LLMEnabled:        true,
	}
}

// Engine produces decisions for alert clusters.
type Engine struct {
	ruleEngine *rules.Engine
	recovery   *recoverer
	cfg        Config
}

// NewEngine creates an engine. store, embedder and client may be nil:
// semantic recovery is skipped without a store, and the LLM stage
// degrades to the simulated result without a client.
func NewEngine(cfg Config, store vector.Store, embedder Embedder, client llm.Client) *Engine {
	if cfg.LLMThreshold <= 0 {
		cfg.LLMThreshold = DefaultLLMThreshold
	}
	if cfg.SemanticThreshold <= 0 {
		cfg.SemanticThreshold = DefaultSemanticThreshold
	}
	return &Engine{
		ruleEngine: rules.NewEngine(cfg.AcceptThreshold),
		recovery: &recoverer{
			store:             store,
			embedder:          embedder,
			client:            client,
			semanticThreshold: cfg.SemanticThreshold,
		},
		cfg: cfg,
	}
}

// Decide evaluates the rules and, when their confidence is below the LLM
// threshold and the state is not already MANUAL_REVIEW, runs the bounded
// fallback. The returned decision records every fired rule and whether
// the fallback produced the winning result.
func (e *Engine) Decide(ctx context.Context, cluster models.AlertCluster,
	trends map[string]models.MetricTrend, evidence []models.SemanticEvidence) models.Decision {

	ruleResult, fired := e.ruleEngine.Evaluate(rules.Input{
		Cluster:          cluster,
		Trends:           trends,
		SemanticEvidence: evidence,
	})

	llmContribution := false
	llmReason := ""

	if ruleResult.Confidence < e.cfg.LLMThreshold && ruleResult.State != models.DecisionManualReview {
		outcome := e.runFallback(ctx, cluster, trends, evidence, ruleResult)
		ruleResult = outcome.result
		llmContribution = outcome.llmUsed
		llmReason = outcome.llmReason
	}

	d := models.NewDecision(ruleResult.State, ruleResult.Confidence, ruleResult.Justification)
	d.RulesApplied = fired
	d.SemanticEvidence = evidence
	d.LLMContribution = llmContribution
	d.LLMReason = llmReason

	slog.Info("Decision produced",
		"decision_id", d.DecisionID,
		"cluster_id", cluster.ClusterID,
		"state", d.State,
		"confidence", d.Confidence,
		"llm_contribution", llmContribution)
	return d
}

func (e *Engine) runFallback(ctx context.Context, cluster models.AlertCluster,
	trends map[string]models.MetricTrend, evidence []models.SemanticEvidence,
	ruleResult rules.Result) recoveryOutcome {

	if !e.cfg.LLMEnabled {
		// Semantic stage only; never call the provider.
		if outcome, ok := e.recovery.recoverSemanticOnly(ctx, cluster); ok {
			return outcome
		}
		return recoveryOutcome{result: ruleResult}
	}
	return e.recovery.recover(ctx, cluster, trends, evidence, ruleResult)
}

// DecideSync evaluates the rules only, never consulting the fallback.
// Used by tests and offline pipelines.
func (e *Engine) DecideSync(cluster models.AlertCluster,
	trends map[string]models.MetricTrend, evidence []models.SemanticEvidence) models.Decision {

	ruleResult, fired := e.ruleEngine.Evaluate(rules.Input{
		Cluster:          cluster,
		Trends:           trends,
		SemanticEvidence: evidence,
	})

	d := models.NewDecision(ruleResult.State, ruleResult.Confidence, ruleResult.Justification)
	d.RulesApplied = fired
	d.SemanticEvidence = evidence
	return d
}

// IndexDecision stores a decision summary in the vector store so future
// semantic recovery can find it. Best-effort: failures are logged.
func (e *Engine) IndexDecision(ctx context.Context, cluster models.AlertCluster, d models.Decision) {
	if e.recovery.store == nil || e.recovery.embedder == nil {
		return
	}
	vec := e.recovery.embedder.Embed(clusterSummaryText(cluster))
	payload := map[string]any{
		"state":   string(d.State),
		"summary": d.Justification,
		"service": cluster.PrimaryService,
	}
	if err := e.recovery.store.Upsert(ctx, DecisionsCollection, d.DecisionID, vec, payload); err != nil {
		slog.Warn("Failed to index decision for semantic recovery",
			"decision_id", d.DecisionID, "error", err)
	}
}
