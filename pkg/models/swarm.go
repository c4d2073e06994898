package models

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceType classifies what an agent produced.
type EvidenceType string

const (
	EvidenceMetric     EvidenceType = "METRIC"
	EvidenceLog        EvidenceType = "LOG"
	EvidenceTrace      EvidenceType = "TRACE"
	EvidenceHypothesis EvidenceType = "HYPOTHESIS"
	EvidenceDocument   EvidenceType = "DOCUMENT"
	EvidenceRawData    EvidenceType = "RAW_DATA"
)

// Evidence is a single finding emitted by an agent execution.
type Evidence struct {
	EvidenceID        string         `json:"evidence_id"`
	SourceExecutionID string         `json:"source_execution_id"`
	AgentID           string         `json:"agent_id"`
	Content           map[string]any `json:"content"`
	Confidence        float64        `json:"confidence"`
	Type              EvidenceType   `json:"evidence_type"`
}

// NewEvidence creates evidence with a fresh id.
func NewEvidence(executionID, agentID string, evidenceType EvidenceType, confidence float64, content map[string]any) Evidence {
	return Evidence{
		EvidenceID:        uuid.New().String(),
		SourceExecutionID: executionID,
		AgentID:           agentID,
		Content:           content,
		Confidence:        confidence,
		Type:              evidenceType,
	}
}

// AgentExecution is one auditable run of an agent for a step.
type AgentExecution struct {
	ExecutionID     string         `json:"execution_id"`
	AgentID         string         `json:"agent_id"`
	AgentVersion    string         `json:"agent_version"`
	LogicHash       string         `json:"logic_hash"`
	StepID          string         `json:"step_id"`
	InputParameters map[string]any `json:"input_parameters,omitempty"`
	OutputEvidence  []Evidence     `json:"output_evidence,omitempty"`
	Error           string         `json:"error,omitempty"`
	StartedAt       time.Time      `json:"started_at"`
	FinishedAt      time.Time      `json:"finished_at"`
}

// IsSuccessful reports whether the execution completed without error.
func (e AgentExecution) IsSuccessful() bool {
	return e.Error == ""
}

// RetryContext carries everything a retry policy needs to decide.
// Seed is masterSeed+attempt so delay jitter replays deterministically.
type RetryContext struct {
	RunID          string
	StepID         string
	AgentID        string
	Attempt        int
	Err            string
	Seed           int64
	LastConfidence float64
	DomainHints    []string
}

// RetryPolicy decides whether and when a failed step is retried.
// Name/Version/LogicHash identify the policy in the audit ledger so replay
// can reconstruct it from a registry instead of deserializing code.
type RetryPolicy interface {
	ShouldRetry(ctx RetryContext) bool
	NextDelay(ctx RetryContext) time.Duration
	Name() string
	Version() string
	LogicHash() string
}

// SwarmStep is one unit of work in a plan. The live RetryPolicy is not
// serialized; its identity fields are, so replay can rebind the policy
// from a registry.
type SwarmStep struct {
	StepID        string         `json:"step_id"`
	AgentID       string         `json:"agent_id"`
	Mandatory     bool           `json:"mandatory"`
	MinConfidence float64        `json:"min_confidence"`
	Parameters    map[string]any `json:"parameters,omitempty"`

	PolicyName      string `json:"policy_name,omitempty"`
	PolicyVersion   string `json:"policy_version,omitempty"`
	PolicyLogicHash string `json:"policy_logic_hash,omitempty"`

	RetryPolicy RetryPolicy `json:"-"`
}

// WithRetryPolicy attaches a retry policy and records its identity for
// the audit ledger.
func (s SwarmStep) WithRetryPolicy(p RetryPolicy) SwarmStep {
	s.RetryPolicy = p
	s.PolicyName = p.Name()
	s.PolicyVersion = p.Version()
	s.PolicyLogicHash = p.LogicHash()
	return s
}

// NewSwarmStep creates a step with a fresh id and the default minimum
// confidence.
func NewSwarmStep(agentID string, mandatory bool) SwarmStep {
	return SwarmStep{
		StepID:        uuid.New().String(),
		AgentID:       agentID,
		Mandatory:     mandatory,
		MinConfidence: 0.7,
		Parameters:    map[string]any{},
	}
}

// SwarmPlan is the objective and ordered steps for one run.
type SwarmPlan struct {
	PlanID    string      `json:"plan_id"`
	Objective string      `json:"objective"`
	Steps     []SwarmStep `json:"steps"`
}

// NewSwarmPlan creates a plan with a fresh id.
func NewSwarmPlan(objective string, steps []SwarmStep) SwarmPlan {
	return SwarmPlan{
		PlanID:    uuid.New().String(),
		Objective: objective,
		Steps:     steps,
	}
}

// Domain tags a run with its operational area.
type Domain struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RiskLevel   string `json:"risk_level,omitempty"`
}

// RetryAttempt is the audit record of a single retry event.
type RetryAttempt struct {
	AttemptID         string  `json:"attempt_id"`
	StepID            string  `json:"step_id"`
	AttemptNumber     int     `json:"attempt_number"`
	DelaySeconds      float64 `json:"delay_seconds"`
	Reason            string  `json:"reason"`
	FailedExecutionID string  `json:"failed_execution_id"`
}

// RetryDecision is the audit record of the policy rationale for a retry.
type RetryDecision struct {
	DecisionID      string `json:"decision_id"`
	StepID          string `json:"step_id"`
	AttemptID       string `json:"attempt_id"`
	Reason          string `json:"reason"`
	PolicyName      string `json:"policy_name"`
	PolicyVersion   string `json:"policy_version"`
	PolicyLogicHash string `json:"policy_logic_hash"`
}

// RunStatus is the lifecycle state of a swarm run. Terminal states are
// immutable.
type RunStatus string

const (
	RunCreated          RunStatus = "CREATED"
	RunRunning          RunStatus = "RUNNING"
	RunFinished         RunStatus = "FINISHED"
	RunAbortedByLimit   RunStatus = "ABORTED_BY_LIMIT"
	RunDuplicateSkipped RunStatus = "DUPLICATE_SKIPPED"
)

// RunMetadata summarizes the coordinator's bookkeeping for a run.
type RunMetadata struct {
	TotalRounds    int  `json:"total_rounds"`
	TotalAttempts  int  `json:"total_attempts"`
	AbortedByLimit bool `json:"aborted_by_limit"`
	Fatal          bool `json:"fatal,omitempty"`
	LLMFallback    bool `json:"llm_fallback,omitempty"`
	Deduplicated   bool `json:"deduplicated,omitempty"`
}

// AlertEvent is the raw trigger for a swarm run: an id plus the source
// payload as delivered. Typed views are extracted at the components that
// need them; unknown keys are preserved.
type AlertEvent struct {
	AlertID string         `json:"alert_id"`
	Data    map[string]any `json:"data"`
}

func (a AlertEvent) stringField(key, fallback string) string {
	if v, ok := a.Data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Severity returns the payload severity, defaulting to "warning".
func (a AlertEvent) Severity() string { return a.stringField("severity", "warning") }

// Service returns the payload service, defaulting to "unknown".
func (a AlertEvent) Service() string { return a.stringField("service", "unknown") }

// SourceSystem returns the payload source, defaulting to "grafana".
func (a AlertEvent) SourceSystem() string { return a.stringField("source", "grafana") }

// SwarmRun is one complete execution of a plan against an alert.
type SwarmRun struct {
	RunID         string           `json:"run_id"`
	Domain        Domain           `json:"domain"`
	Plan          SwarmPlan        `json:"plan"`
	MasterSeed    int64            `json:"master_seed"`
	Executions    []AgentExecution `json:"executions,omitempty"`
	FinalDecision *Decision        `json:"final_decision,omitempty"`
	Metadata      RunMetadata      `json:"metadata"`
	Status        RunStatus        `json:"status"`
	StartedAt     time.Time        `json:"started_at"`
	FinishedAt    time.Time        `json:"finished_at,omitempty"`
}
