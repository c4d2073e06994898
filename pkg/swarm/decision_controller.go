package swarm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

// autoRemediateThreshold is the mean evidence confidence above which the
// controller proposes automatic remediation.
const autoRemediateThreshold = 0.8

// HumanHook reviews a provisional decision. Returning nil leaves the
// decision pending human input without blocking the run.
type HumanHook func(models.Decision) *models.HumanDecision

// OverridePenalizer is the slice of the confidence service the decision
// controller invokes on a human override.
type OverridePenalizer interface {
	PenalizeForOverride(ctx context.Context, agentID, decisionID string, pol policy.ConfidencePolicy) error
}

// DecisionController aggregates agent evidence into the final proposed
// action and routes it through the optional human review hook.
// Stateless.
type DecisionController struct {
	penalizer OverridePenalizer
}

// NewDecisionController creates the controller.
func NewDecisionController(penalizer OverridePenalizer) *DecisionController {
	return &DecisionController{penalizer: penalizer}
}

// Decide formulates the decision from successful executions and runs the
// human hook. An OVERRIDE penalizes every evidence-producing agent.
func (c *DecisionController) Decide(ctx context.Context, plan models.SwarmPlan,
	successful []models.AgentExecution, alert models.AlertEvent,
	confidencePolicy policy.ConfidencePolicy, hook HumanHook) models.Decision {

	decision := c.formulate(successful)

	if hook != nil {
		human := hook(decision)
		decision.HumanDecision = human
		if human != nil && human.Action == models.HumanOverride {
			c.applyOverridePenalties(ctx, decision, confidencePolicy)
		}
	}

	return decision
}

// formulate builds the proposal from the evidence set. A hypothesis from
// the LLM agent dominates; otherwise the mean evidence confidence picks
// between automatic remediation and human review.
func (c *DecisionController) formulate(successful []models.AgentExecution) models.Decision {
	var evidence []models.Evidence
	for _, ex := range successful {
		evidence = append(evidence, ex.OutputEvidence...)
	}

	if len(evidence) == 0 {
		d := models.NewDecision(models.DecisionManualReview, 0, "No evidence produced.")
		d.ActionProposed = models.ActionManualReview
		return d
	}

	var sum float64
	var summaries []string
	var lastHypothesis *models.Evidence
	for i, ev := range evidence {
		sum += ev.Confidence
		summaries = append(summaries, evidenceSummary(ev))
		if ev.Type == models.EvidenceHypothesis {
			lastHypothesis = &evidence[i]
		}
	}
	avgConfidence := sum / float64(len(evidence))
	joined := strings.Join(summaries, "; ")

	if lastHypothesis != nil {
		rootCause := contentString(lastHypothesis.Content, "root_cause", "LLM fallback analysis")
		procedure := contentString(lastHypothesis.Content, "recommended_procedure", models.ActionManualReview)

		d := models.NewDecision(models.DecisionManualReview, avgConfidence,
			fmt.Sprintf("LLM-enriched analysis: %s; suggested procedure: %s; evidence=%s",
				rootCause, procedure, joined))
		d.ActionProposed = models.ActionHumanReviewRequired
		d.SupportingEvidence = evidence
		d.LLMContribution = true
		d.LLMReason = models.LLMReasonFallback
		d.Metadata["llm_enriched"] = true
		d.Metadata["llm_procedure"] = procedure
		return d
	}

	action := models.ActionHumanReviewRequired
	state := models.DecisionManualReview
	if avgConfidence > autoRemediateThreshold {
		action = models.ActionAutoRemediate
		state = models.DecisionEscalate
	}

	d := models.NewDecision(state, avgConfidence, "Aggregated evidence: "+joined)
	d.ActionProposed = action
	d.SupportingEvidence = evidence
	d.Metadata["aggregated"] = true
	d.Metadata["evidence_count"] = len(evidence)
	return d
}

func (c *DecisionController) applyOverridePenalties(ctx context.Context, decision models.Decision,
	confidencePolicy policy.ConfidencePolicy) {

	if c.penalizer == nil {
		return
	}
	penalized := make(map[string]struct{})
	for _, ev := range decision.SupportingEvidence {
		if _, done := penalized[ev.AgentID]; done {
			continue
		}
		penalized[ev.AgentID] = struct{}{}
		if err := c.penalizer.PenalizeForOverride(ctx, ev.AgentID, decision.DecisionID, confidencePolicy); err != nil {
			slog.Warn("Failed to penalize agent for override",
				"agent_id", ev.AgentID, "decision_id", decision.DecisionID, "error", err)
		}
	}
}

func evidenceSummary(ev models.Evidence) string {
	if s, ok := ev.Content["summary"].(string); ok && s != "" {
		return s
	}
	return fmt.Sprintf("%s evidence from %s", strings.ToLower(string(ev.Type)), ev.AgentID)
}

func contentString(content map[string]any, key, fallback string) string {
	if s, ok := content[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
