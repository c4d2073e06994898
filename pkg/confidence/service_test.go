package confidence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

func TestGetLastConfidence_DefaultsToOne(t *testing.T) {
	s := NewService(ledger.NewMemoryLedger())
	assert.Equal(t, 1.0, s.GetLastConfidence(context.Background(), "loganalysis"))
}

func TestApplyTimeDecay(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemoryLedger()
	s := NewService(store)

	require.NoError(t, s.ApplyTimeDecay(ctx, "loganalysis", 0.001))

	assert.InDelta(t, 0.999, s.GetLastConfidence(ctx, "loganalysis"), 1e-9)
	snaps := store.SnapshotsFor("loganalysis")
	require.Len(t, snaps, 1)
	assert.Equal(t, models.ConfidenceTimeDecay, snaps[0].SourceEvent)
	assert.Equal(t, int64(1), snaps[0].SequenceID)
}

func TestPenalizeForOverride_FlooredAtZero(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemoryLedger()
	s := NewService(store)
	pol := policy.StaticConfidencePolicy{PenaltyOverride: 0.8, ReinforcementSuccess: 0.05}

	require.NoError(t, s.PenalizeForOverride(ctx, "agent", "d-1", pol))
	require.NoError(t, s.PenalizeForOverride(ctx, "agent", "d-2", pol))

	assert.Equal(t, 0.0, s.GetLastConfidence(ctx, "agent"))
}

func TestReinforceForSuccess_CappedAtOne(t *testing.T) {
	ctx := context.Background()
	s := NewService(ledger.NewMemoryLedger())
	pol := policy.DefaultConfidencePolicy()

	require.NoError(t, s.ReinforceForSuccess(ctx, "agent", "d-1", pol))

	assert.Equal(t, 1.0, s.GetLastConfidence(ctx, "agent"))
}

func TestSequenceIDsStrictlyMonotonic(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemoryLedger()
	s := NewService(store)
	pol := policy.DefaultConfidencePolicy()

	require.NoError(t, s.ApplyTimeDecay(ctx, "agent", 0.001))
	require.NoError(t, s.PenalizeForOverride(ctx, "agent", "d-1", pol))
	require.NoError(t, s.ReinforceForSuccess(ctx, "agent", "d-2", pol))

	snaps := store.SnapshotsFor("agent")
	require.Len(t, snaps, 3)
	for i, snap := range snaps {
		assert.Equal(t, int64(i+1), snap.SequenceID)
		assert.GreaterOrEqual(t, snap.Value, 0.0)
		assert.LessOrEqual(t, snap.Value, 1.0)
	}
}

func TestLoadsAuthoritativeValueFromLedger(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemoryLedger()
	require.NoError(t, store.CreateConfidenceSnapshot(ctx, models.ConfidenceSnapshot{
		SnapshotID: "s-1", AgentID: "agent", Value: 0.42,
		SourceEvent: models.ConfidenceInitial, SequenceID: 7,
	}))

	s := NewService(store)
	assert.Equal(t, 0.42, s.GetLastConfidence(ctx, "agent"))

	// Next mutation continues the ledger sequence.
	require.NoError(t, s.ApplyTimeDecay(ctx, "agent", 0.5))
	snaps := store.SnapshotsFor("agent")
	assert.Equal(t, int64(8), snaps[len(snaps)-1].SequenceID)
}

func TestConcurrentMutationsKeepInvariant(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemoryLedger()
	s := NewService(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.ApplyTimeDecay(ctx, "agent", 0.01)
		}()
	}
	wg.Wait()

	snaps := store.SnapshotsFor("agent")
	require.Len(t, snaps, 20)
	for i := 1; i < len(snaps); i++ {
		assert.Greater(t, snaps[i].SequenceID, snaps[i-1].SequenceID)
	}
}
