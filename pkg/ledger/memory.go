package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/swarmops/swarmsre/pkg/models"
)

// MemoryLedger is an in-process Ledger for tests and offline pipelines.
// It enforces the same append-only and sequence invariants as the
// database implementation.
type MemoryLedger struct {
	mu         sync.RWMutex
	runs       map[string]models.RunContext
	overrides  map[string]models.HumanDecision
	outcomes   map[string]models.OperationalOutcome
	snapshots  map[string][]models.ConfidenceSnapshot // agentID -> ordered snapshots
	links      map[string][2]string                   // snapshotID -> (causeID, causeType)
	procedures map[string]Procedure
}

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		runs:       make(map[string]models.RunContext),
		overrides:  make(map[string]models.HumanDecision),
		outcomes:   make(map[string]models.OperationalOutcome),
		snapshots:  make(map[string][]models.ConfidenceSnapshot),
		links:      make(map[string][2]string),
		procedures: make(map[string]Procedure),
	}
}

// SaveSwarmRun persists the run context. A run id can only be written
// once; terminal records are immutable.
func (l *MemoryLedger) SaveSwarmRun(_ context.Context, run models.SwarmRun, alert models.AlertEvent,
	retries []models.RetryAttempt, retryDecisions []models.RetryDecision) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.runs[run.RunID]; exists {
		return fmt.Errorf("ledger: run %s already persisted", run.RunID)
	}
	l.runs[run.RunID] = models.RunContext{
		Run:            run,
		Alert:          alert,
		RetryAttempts:  retries,
		RetryDecisions: retryDecisions,
	}
	return nil
}

// SaveHumanOverride records the override and outcome for a decision.
func (l *MemoryLedger) SaveHumanOverride(_ context.Context, decision models.Decision,
	human models.HumanDecision, outcome models.OperationalOutcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.overrides[decision.DecisionID] = human
	l.outcomes[decision.DecisionID] = outcome
	return nil
}

// CreateConfidenceSnapshot appends a snapshot, enforcing per-agent
// sequence monotonicity.
func (l *MemoryLedger) CreateConfidenceSnapshot(_ context.Context, snapshot models.ConfidenceSnapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	existing := l.snapshots[snapshot.AgentID]
	if len(existing) > 0 && snapshot.SequenceID <= existing[len(existing)-1].SequenceID {
		return fmt.Errorf("ledger: non-monotonic sequence %d for agent %s",
			snapshot.SequenceID, snapshot.AgentID)
	}
	l.snapshots[snapshot.AgentID] = append(existing, snapshot)
	return nil
}

// LinkSnapshotToCause records the causal edge.
func (l *MemoryLedger) LinkSnapshotToCause(_ context.Context, snapshotID, causeID, causeType string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.links[snapshotID] = [2]string{causeID, causeType}
	return nil
}

// LastConfidenceSnapshot returns the newest snapshot for the agent.
func (l *MemoryLedger) LastConfidenceSnapshot(_ context.Context, agentID string) (models.ConfidenceSnapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snaps := l.snapshots[agentID]
	if len(snaps) == 0 {
		return models.ConfidenceSnapshot{}, ErrNotFound
	}
	return snaps[len(snaps)-1], nil
}

// FetchFullRunContext loads a run with its frozen snapshots.
func (l *MemoryLedger) FetchFullRunContext(_ context.Context, runID string) (models.RunContext, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rc, ok := l.runs[runID]
	if !ok {
		return models.RunContext{}, ErrNotFound
	}
	// Attach the snapshots of every agent that executed, frozen as of now.
	seen := map[string]struct{}{}
	for _, ex := range rc.Run.Executions {
		if _, dup := seen[ex.AgentID]; dup {
			continue
		}
		seen[ex.AgentID] = struct{}{}
		rc.Snapshots = append(rc.Snapshots, l.snapshots[ex.AgentID]...)
	}
	return rc, nil
}

// GetRun returns a persisted run.
func (l *MemoryLedger) GetRun(_ context.Context, runID string) (models.SwarmRun, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rc, ok := l.runs[runID]
	if !ok {
		return models.SwarmRun{}, ErrNotFound
	}
	return rc.Run, nil
}

// FindProcedureBySignature looks up a known procedure.
func (l *MemoryLedger) FindProcedureBySignature(_ context.Context, signature string) (Procedure, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.procedures[signature]
	if !ok {
		return Procedure{}, ErrNotFound
	}
	return p, nil
}

// RegisterProcedure stores a procedure under its signature.
func (l *MemoryLedger) RegisterProcedure(_ context.Context, procedure Procedure) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.procedures[procedure.Signature] = procedure
	return nil
}

// Override returns the recorded human decision for a decision id, for
// tests and the API layer.
func (l *MemoryLedger) Override(decisionID string) (models.HumanDecision, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h, ok := l.overrides[decisionID]
	return h, ok
}

// SnapshotsFor returns the snapshot history of one agent.
func (l *MemoryLedger) SnapshotsFor(agentID string) []models.ConfidenceSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.ConfidenceSnapshot, len(l.snapshots[agentID]))
	copy(out, l.snapshots[agentID])
	return out
}
