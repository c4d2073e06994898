// Package confidence tracks per-agent credibility as an append-only
// series of snapshots: time decay, override penalties and success
// reinforcement.
package confidence

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

// DefaultConfidence is assumed for an agent with no snapshot history.
const DefaultConfidence = 1.0

// Service manages agent credibility. Reads hit an in-memory cache; the
// authoritative store is the ledger. A per-agent mutex serializes
// mutations so sequence ids stay strictly monotonic, and the snapshot
// append completes before the lock is released.
type Service struct {
	store ledger.Ledger

	mu     sync.Mutex
	agents map[string]*agentState
}

type agentState struct {
	mu      sync.Mutex
	value   float64
	lastSeq int64
	loaded  bool
}

// NewService creates a confidence service over the given ledger.
func NewService(store ledger.Ledger) *Service {
	return &Service{store: store, agents: make(map[string]*agentState)}
}

func (s *Service) state(agentID string) *agentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.agents[agentID]
	if !ok {
		st = &agentState{value: DefaultConfidence}
		s.agents[agentID] = st
	}
	return st
}

// load pulls the latest snapshot from the ledger on first touch.
// Caller holds st.mu.
func (s *Service) load(ctx context.Context, agentID string, st *agentState) {
	if st.loaded {
		return
	}
	st.loaded = true
	snap, err := s.store.LastConfidenceSnapshot(ctx, agentID)
	if err != nil {
		if !errors.Is(err, ledger.ErrNotFound) {
			slog.Warn("Failed to load confidence snapshot", "agent_id", agentID, "error", err)
		}
		return
	}
	st.value = snap.Value
	st.lastSeq = snap.SequenceID
}

// GetLastConfidence returns the agent's most recent confidence, defaulting
// to 1.0 with no history.
func (s *Service) GetLastConfidence(ctx context.Context, agentID string) float64 {
	st := s.state(agentID)
	st.mu.Lock()
	defer st.mu.Unlock()
	s.load(ctx, agentID, st)
	return st.value
}

// ApplyTimeDecay multiplies the agent's confidence by (1 - rate).
func (s *Service) ApplyTimeDecay(ctx context.Context, agentID string, rate float64) error {
	return s.append(ctx, agentID, models.ConfidenceTimeDecay, agentID, "SystemEvent",
		func(last float64) float64 { return last * (1 - rate) })
}

// PenalizeForOverride subtracts the policy penalty after a human
// override, floored at 0.
func (s *Service) PenalizeForOverride(ctx context.Context, agentID, decisionID string, pol policy.ConfidencePolicy) error {
	return s.append(ctx, agentID, models.ConfidenceHumanOverride, decisionID, "Decision",
		func(last float64) float64 { return last - pol.PenaltyForOverride() })
}

// ReinforceForSuccess adds the policy reinforcement after a confirmed
// good outcome, capped at 1.
func (s *Service) ReinforceForSuccess(ctx context.Context, agentID, decisionID string, pol policy.ConfidencePolicy) error {
	return s.append(ctx, agentID, models.ConfidenceSuccessfulOutcome, decisionID, "Decision",
		func(last float64) float64 { return last + pol.ReinforcementForSuccess() })
}

// append computes the new value under the per-agent lock, writes the
// snapshot to the ledger, then updates the cache. The ledger write must
// succeed before the cached value moves.
func (s *Service) append(ctx context.Context, agentID string, source models.ConfidenceSource,
	causeRef, causeType string, update func(float64) float64) error {

	st := s.state(agentID)
	st.mu.Lock()
	defer st.mu.Unlock()
	s.load(ctx, agentID, st)

	newValue := clamp01(update(st.value))
	snapshot := models.ConfidenceSnapshot{
		SnapshotID:  uuid.New().String(),
		AgentID:     agentID,
		Value:       newValue,
		SourceEvent: source,
		SequenceID:  st.lastSeq + 1,
		CauseRef:    causeRef,
		CauseType:   causeType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateConfidenceSnapshot(ctx, snapshot); err != nil {
		return err
	}
	if causeRef != "" {
		if err := s.store.LinkSnapshotToCause(ctx, snapshot.SnapshotID, causeRef, causeType); err != nil {
			slog.Warn("Failed to link confidence snapshot to cause",
				"snapshot_id", snapshot.SnapshotID, "cause_id", causeRef, "error", err)
		}
	}

	st.value = newValue
	st.lastSeq = snapshot.SequenceID

	slog.Debug("Confidence snapshot appended",
		"agent_id", agentID, "value", newValue, "source", source, "sequence", snapshot.SequenceID)
	return nil
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
