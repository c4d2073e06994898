package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/models"
)

func sampleRun(runID string) (models.SwarmRun, models.AlertEvent) {
	d := models.NewDecision(models.DecisionEscalate, 0.85, "critical degrading")
	run := models.SwarmRun{
		RunID:      runID,
		Domain:     models.Domain{ID: "sre", Name: "site-reliability"},
		Plan:       models.NewSwarmPlan("triage", nil),
		MasterSeed: 42,
		Executions: []models.AgentExecution{
			{ExecutionID: "e1", AgentID: "loganalysis", StepID: "s1"},
		},
		FinalDecision: &d,
		Status:        models.RunFinished,
	}
	alert := models.AlertEvent{AlertID: "alert-1", Data: map[string]any{"service": "db"}}
	return run, alert
}

func TestMemoryLedger_SaveAndFetchRun(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	run, alert := sampleRun("run-1")

	require.NoError(t, l.SaveSwarmRun(ctx, run, alert,
		[]models.RetryAttempt{{AttemptID: "a1", StepID: "s1", AttemptNumber: 1}}, nil))

	rc, err := l.FetchFullRunContext(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", rc.Run.RunID)
	assert.Equal(t, "alert-1", rc.Alert.AlertID)
	assert.Len(t, rc.RetryAttempts, 1)
}

func TestMemoryLedger_RunsWrittenOnce(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	run, alert := sampleRun("run-1")

	require.NoError(t, l.SaveSwarmRun(ctx, run, alert, nil, nil))
	assert.Error(t, l.SaveSwarmRun(ctx, run, alert, nil, nil))
}

func TestMemoryLedger_SnapshotMonotonicityEnforced(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.CreateConfidenceSnapshot(ctx, models.ConfidenceSnapshot{
		SnapshotID: "s1", AgentID: "a", Value: 0.9, SequenceID: 1,
	}))
	assert.Error(t, l.CreateConfidenceSnapshot(ctx, models.ConfidenceSnapshot{
		SnapshotID: "s2", AgentID: "a", Value: 0.8, SequenceID: 1,
	}))
	require.NoError(t, l.CreateConfidenceSnapshot(ctx, models.ConfidenceSnapshot{
		SnapshotID: "s3", AgentID: "a", Value: 0.8, SequenceID: 2,
	}))

	last, err := l.LastConfidenceSnapshot(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "s3", last.SnapshotID)
}

func TestMemoryLedger_ProcedureLookup(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	_, err := l.FindProcedureBySignature(ctx, "sig-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, l.RegisterProcedure(ctx, Procedure{
		Signature: "sig-1", Name: "restart-db", RunbookURL: "https://runbooks/restart-db",
	}))

	p, err := l.FindProcedureBySignature(ctx, "sig-1")
	require.NoError(t, err)
	assert.Equal(t, "restart-db", p.Name)
}
