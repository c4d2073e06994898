package models

import "time"

// ConfidenceSource is the event kind that produced a snapshot.
type ConfidenceSource string

const (
	ConfidenceInitial           ConfidenceSource = "initial"
	ConfidenceTimeDecay         ConfidenceSource = "time_decay"
	ConfidenceHumanOverride     ConfidenceSource = "human_override"
	ConfidenceSuccessfulOutcome ConfidenceSource = "successful_outcome"
)

// ConfidenceSnapshot is an immutable, point-in-time credibility value for
// an agent. SequenceID is strictly monotonic per agent; snapshots are
// appended, never rewritten.
type ConfidenceSnapshot struct {
	SnapshotID  string           `json:"snapshot_id"`
	AgentID     string           `json:"agent_id"`
	Value       float64          `json:"value"`
	SourceEvent ConfidenceSource `json:"source_event"`
	SequenceID  int64            `json:"sequence_id"`
	CauseRef    string           `json:"cause_ref,omitempty"`
	CauseType   string           `json:"cause_type,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ReplayReport compares a replayed run against the original.
type ReplayReport struct {
	ReportID           string    `json:"report_id"`
	OriginalDecisionID string    `json:"original_decision_id"`
	ReplayedDecisionID string    `json:"replayed_decision_id"`
	CausalDivergences  []string  `json:"causal_divergences,omitempty"`
	ConfidenceDelta    float64   `json:"confidence_delta"`
	CreatedAt          time.Time `json:"created_at"`
}

// RunContext is the complete persisted context of a run, sufficient for a
// deterministic replay.
type RunContext struct {
	Run            SwarmRun             `json:"run"`
	Alert          AlertEvent           `json:"alert"`
	RetryAttempts  []RetryAttempt       `json:"retry_attempts,omitempty"`
	RetryDecisions []RetryDecision      `json:"retry_decisions,omitempty"`
	Snapshots      []ConfidenceSnapshot `json:"snapshots,omitempty"`
}
