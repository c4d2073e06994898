package decision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/swarmops/swarmsre/pkg/llm"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/rules"
	"github.com/swarmops/swarmsre/pkg/vector"
)

// DecisionsCollection is the vector-store collection of past decisions.
const DecisionsCollection = "decisions"

const (
	recoveryTopK = 3

	// fallbackDeadline bounds the whole two-stage fallback: the vector
	// search and the single LLM call share it.
	fallbackDeadline = 30 * time.Second
)

// recoveryOutcome is what C7 hands back to the engine.
type recoveryOutcome struct {
	result    rules.Result
	llmUsed   bool
	llmReason string
}

// recoverer implements the two-stage fallback: semantic recovery from the
// vector store, then one bounded LLM call.
type recoverer struct {
	store             vector.Store
	embedder          Embedder
	client            llm.Client
	semanticThreshold float64
}

// recover runs the fallback for a low-confidence rule result under one
// overall deadline covering both stages. It always returns a usable
// outcome: LLM failure modes degrade to a simulated MANUAL_REVIEW result
// rather than an error.
func (r *recoverer) recover(ctx context.Context, cluster models.AlertCluster,
	trends map[string]models.MetricTrend, evidence []models.SemanticEvidence,
	ruleResult rules.Result) recoveryOutcome {

	ctx, cancel := context.WithTimeout(ctx, fallbackDeadline)
	defer cancel()

	if outcome, ok := r.semanticRecover(ctx, cluster); ok {
		return outcome
	}
	return r.llmFallback(ctx, cluster, trends, evidence, ruleResult)
}

// recoverSemanticOnly runs just the semantic stage under the fallback
// deadline, for configurations with the LLM disabled.
func (r *recoverer) recoverSemanticOnly(ctx context.Context, cluster models.AlertCluster) (recoveryOutcome, bool) {
	ctx, cancel := context.WithTimeout(ctx, fallbackDeadline)
	defer cancel()
	return r.semanticRecover(ctx, cluster)
}

// semanticRecover mirrors the strongest historical decision when it beats
// the semantic threshold.
func (r *recoverer) semanticRecover(ctx context.Context, cluster models.AlertCluster) (recoveryOutcome, bool) {
	if r.store == nil || r.embedder == nil {
		return recoveryOutcome{}, false
	}

	query := r.embedder.Embed(clusterSummaryText(cluster))
	hits, err := r.store.Search(ctx, DecisionsCollection, query, recoveryTopK, r.semanticThreshold)
	if err != nil {
		slog.Warn("Semantic recovery search failed", "error", err)
		return recoveryOutcome{}, false
	}
	if len(hits) == 0 {
		return recoveryOutcome{}, false
	}

	best := hits[0]
	state := historicalState(best.Payload)
	if state == "" {
		return recoveryOutcome{}, false
	}

	summary, _ := best.Payload["summary"].(string)
	slog.Info("Semantic recovery matched historical decision",
		"decision_id", best.ID, "score", best.Score, "state", state)

	return recoveryOutcome{
		result: rules.Result{
			Fires:         true,
			State:         state,
			Confidence:    best.Score,
			RuleID:        "semantic_recovery",
			Justification: fmt.Sprintf("Historical decision %s (similarity %.2f): %s", best.ID, best.Score, summary),
		},
		llmUsed:   false,
		llmReason: models.LLMReasonSemanticRecovery,
	}, true
}

// historicalState reads the persisted state from a payload, falling back
// to summary keyword classification.
func historicalState(payload map[string]any) models.DecisionState {
	if s, ok := payload["state"].(string); ok && models.ValidDecisionState(s) {
		return models.DecisionState(s)
	}
	summary, _ := payload["summary"].(string)
	summary = strings.ToLower(summary)
	switch {
	case strings.Contains(summary, "closed"), strings.Contains(summary, "resolved"),
		strings.Contains(summary, "recovered"):
		return models.DecisionClose
	case strings.Contains(summary, "escalated"), strings.Contains(summary, "urgent"):
		return models.DecisionEscalate
	case summary != "":
		return models.DecisionObserve
	}
	return ""
}

type llmVerdict struct {
	State         string  `json:"state"`
	Confidence    float64 `json:"confidence"`
	Justification string  `json:"justification"`
}

// llmFallback makes exactly one LLM call within the residual fallback
// deadline. Any failure mode (missing token, network, parse, invalid
// state) synthesizes a MANUAL_REVIEW result so the pipeline never stalls
// on the provider.
func (r *recoverer) llmFallback(ctx context.Context, cluster models.AlertCluster,
	trends map[string]models.MetricTrend, evidence []models.SemanticEvidence,
	ruleResult rules.Result) recoveryOutcome {

	if r.client == nil {
		return simulated(ruleResult)
	}

	prompt := buildPrompt(cluster, trends, evidence, ruleResult)
	text, err := r.client.Complete(ctx, prompt, llm.Options{Temperature: 0.2, MaxTokens: 512})
	if err != nil {
		slog.Warn("LLM fallback call failed, using simulated result", "error", err)
		return simulated(ruleResult)
	}

	verdict, err := parseVerdict(text)
	if err != nil {
		slog.Warn("LLM fallback output rejected, using simulated result",
			"error", err, "output_len", len(text))
		return simulated(ruleResult)
	}

	return recoveryOutcome{
		result: rules.Result{
			Fires:         true,
			State:         models.DecisionState(verdict.State),
			Confidence:    clamp01(verdict.Confidence),
			RuleID:        "llm_fallback",
			Justification: "LLM: " + verdict.Justification,
		},
		llmUsed:   true,
		llmReason: models.LLMReasonFallback,
	}
}

func simulated(ruleResult rules.Result) recoveryOutcome {
	return recoveryOutcome{
		result: rules.Result{
			Fires:         true,
			State:         models.DecisionManualReview,
			Confidence:    0.70,
			RuleID:        "llm_fallback_simulated",
			Justification: fmt.Sprintf("Simulated LLM analysis: %s. Recommend manual review.", ruleResult.Justification),
		},
		llmUsed:   true,
		llmReason: models.LLMReasonFallbackSimulated,
	}
}

// parseVerdict extracts and validates the JSON object from the model
// output, tolerating surrounding prose.
func parseVerdict(text string) (llmVerdict, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return llmVerdict{}, fmt.Errorf("no JSON object in output")
	}

	var verdict llmVerdict
	if err := json.Unmarshal([]byte(text[start:end+1]), &verdict); err != nil {
		return llmVerdict{}, fmt.Errorf("decode verdict: %w", err)
	}
	if !models.ValidDecisionState(verdict.State) {
		return llmVerdict{}, fmt.Errorf("invalid state %q", verdict.State)
	}
	return verdict, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
