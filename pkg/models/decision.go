package models

import (
	"time"

	"github.com/google/uuid"
)

// DecisionState is the triage outcome proposed for a cluster.
type DecisionState string

const (
	DecisionClose        DecisionState = "CLOSE"
	DecisionObserve      DecisionState = "OBSERVE"
	DecisionEscalate     DecisionState = "ESCALATE"
	DecisionManualReview DecisionState = "MANUAL_REVIEW"
)

// ValidDecisionState reports whether s is a member of the DecisionState set.
// Used to validate LLM output before it is trusted.
func ValidDecisionState(s string) bool {
	switch DecisionState(s) {
	case DecisionClose, DecisionObserve, DecisionEscalate, DecisionManualReview:
		return true
	}
	return false
}

// Proposed actions produced by the swarm decision controller.
const (
	ActionAutoRemediate       = "auto_remediate"
	ActionHumanReviewRequired = "human_review_required"
	ActionManualReview        = "manual_review"
)

// LLMReason values recorded on a decision when enrichment ran.
const (
	LLMReasonSemanticRecovery  = "semantic_recovery"
	LLMReasonFallback          = "llm_fallback"
	LLMReasonFallbackSimulated = "llm_fallback_simulated"
)

// SemanticEvidence is a historical decision retrieved by similarity search.
type SemanticEvidence struct {
	SourceDecisionID string  `json:"source_decision_id"`
	SimilarityScore  float64 `json:"similarity_score"`
	Summary          string  `json:"summary"`
}

// HumanAction is a reviewer's verdict on a proposed decision.
type HumanAction string

const (
	HumanAccept   HumanAction = "ACCEPT"
	HumanReject   HumanAction = "REJECT"
	HumanOverride HumanAction = "OVERRIDE"
)

// HumanDecision records a reviewer's verdict. An OVERRIDE penalizes every
// agent that contributed supporting evidence.
type HumanDecision struct {
	Action                   HumanAction `json:"action"`
	Author                   string      `json:"author"`
	OverrideReason           string      `json:"override_reason,omitempty"`
	OverriddenActionProposed string      `json:"overridden_action_proposed,omitempty"`
	Timestamp                time.Time   `json:"timestamp"`
}

// Decision is the governed outcome of a run. The rules path fills State;
// the swarm path fills ActionProposed and maps it onto State
// (auto_remediate -> ESCALATE, otherwise -> MANUAL_REVIEW).
type Decision struct {
	DecisionID         string             `json:"decision_id"`
	State              DecisionState      `json:"state"`
	ActionProposed     string             `json:"action_proposed,omitempty"`
	Confidence         float64            `json:"confidence"`
	Justification      string             `json:"justification"`
	RulesApplied       []string           `json:"rules_applied,omitempty"`
	SemanticEvidence   []SemanticEvidence `json:"semantic_evidence,omitempty"`
	LLMContribution    bool               `json:"llm_contribution"`
	LLMReason          string             `json:"llm_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	HumanDecision      *HumanDecision     `json:"human_decision,omitempty"`
	SupportingEvidence []Evidence         `json:"supporting_evidence,omitempty"`
	Metadata           map[string]any     `json:"metadata,omitempty"`
}

// NewDecision creates a decision with a fresh id and timestamp.
func NewDecision(state DecisionState, confidence float64, justification string) Decision {
	return Decision{
		DecisionID:    uuid.New().String(),
		State:         state,
		Confidence:    confidence,
		Justification: justification,
		CreatedAt:     time.Now().UTC(),
		Metadata:      map[string]any{},
	}
}

// OperationalOutcome is the real-world result recorded after an action.
type OperationalOutcome struct {
	OutcomeID             string  `json:"outcome_id"`
	Status                string  `json:"status"`
	ImpactLevel           string  `json:"impact_level"`
	ResolutionTimeSeconds float64 `json:"resolution_time_seconds,omitempty"`
	Details               string  `json:"details,omitempty"`
}
