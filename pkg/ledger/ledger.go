// Package ledger defines the append-only audit/causal ledger port the
// core persists through. Implementations: ent/Postgres and in-memory.
package ledger

import (
	"context"
	"errors"

	"github.com/swarmops/swarmsre/pkg/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("ledger: record not found")

// Procedure is a known remediation procedure suggested on intake when an
// alert signature matches.
type Procedure struct {
	Signature   string `json:"signature"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RunbookURL  string `json:"runbook_url,omitempty"`
}

// Ledger is the append-only causal record of runs, executions, evidence,
// decisions and confidence snapshots. All operations are atomic per call;
// persisted entities are immutable.
type Ledger interface {
	// SaveSwarmRun persists a complete run with its executions, retry
	// records and final decision, atomically.
	SaveSwarmRun(ctx context.Context, run models.SwarmRun, alert models.AlertEvent,
		retries []models.RetryAttempt, retryDecisions []models.RetryDecision) error

	// SaveHumanOverride links a human override and the operational
	// outcome to the decision it overrode.
	SaveHumanOverride(ctx context.Context, decision models.Decision,
		human models.HumanDecision, outcome models.OperationalOutcome) error

	// CreateConfidenceSnapshot appends one snapshot. SequenceIDs per
	// agent must be strictly increasing; violations are an error.
	CreateConfidenceSnapshot(ctx context.Context, snapshot models.ConfidenceSnapshot) error

	// LinkSnapshotToCause records the causal edge from a snapshot to the
	// decision or event that produced it.
	LinkSnapshotToCause(ctx context.Context, snapshotID, causeID, causeType string) error

	// LastConfidenceSnapshot returns the most recent snapshot for an
	// agent, or ErrNotFound.
	LastConfidenceSnapshot(ctx context.Context, agentID string) (models.ConfidenceSnapshot, error)

	// FetchFullRunContext loads everything needed to replay a run.
	FetchFullRunContext(ctx context.Context, runID string) (models.RunContext, error)

	// GetRun returns a persisted run, or ErrNotFound.
	GetRun(ctx context.Context, runID string) (models.SwarmRun, error)

	// FindProcedureBySignature returns a known procedure for an alert
	// signature, or ErrNotFound.
	FindProcedureBySignature(ctx context.Context, signature string) (Procedure, error)

	// RegisterProcedure stores a known procedure.
	RegisterProcedure(ctx context.Context, procedure Procedure) error
}
