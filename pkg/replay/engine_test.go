package replay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
	"github.com/swarmops/swarmsre/pkg/swarm"
)

// flakyAgent fails a configured number of times, then succeeds.
type flakyAgent struct {
	id         string
	mu         sync.Mutex
	failures   int
	executions int
}

func (a *flakyAgent) ID() string        { return a.id }
func (a *flakyAgent) Version() string   { return "1.0" }
func (a *flakyAgent) LogicHash() string { return "test-" + a.id }

func (a *flakyAgent) Execute(_ context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	a.mu.Lock()
	a.executions++
	fail := a.executions <= a.failures
	a.mu.Unlock()

	exec := agent.NewExecution(a, stepID, params)
	if fail {
		exec.Error = "connection refused"
	} else {
		exec.OutputEvidence = []models.Evidence{
			models.NewEvidence(exec.ExecutionID, a.id, models.EvidenceLog, 0.9, map[string]any{
				"summary": a.id + " completed",
			}),
		}
	}
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

func runOnce(t *testing.T, store *ledger.MemoryLedger, runID string) (*swarm.Coordinator, models.SwarmRun) {
	t.Helper()
	registry := agent.NewRegistry()
	registry.Register(&flakyAgent{id: "loganalysis", failures: 1})
	registry.Register(&flakyAgent{id: "networkscanner"})
	conf := confidence.NewService(store)

	cfg := swarm.DefaultConfig()
	cfg.UseLLMFallback = false
	cfg.StepTimeout = time.Second
	coordinator := swarm.NewCoordinator(registry, conf, conf, nil, store, nil, cfg)

	logStep := models.NewSwarmStep("loganalysis", true)
	logStep.RetryPolicy = policy.NewExponentialBackoff(time.Millisecond, 10*time.Millisecond, 3)
	netStep := models.NewSwarmStep("networkscanner", true)
	netStep.RetryPolicy = policy.NewExponentialBackoff(time.Millisecond, 10*time.Millisecond, 3)
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{logStep, netStep})

	alert := models.AlertEvent{AlertID: "alert-R", Data: map[string]any{
		"severity": "critical", "service": "postgres-primary", "source": "grafana",
	}}
	seed := int64(42)
	run, _, _, err := coordinator.Execute(context.Background(),
		models.Domain{ID: "sre", Name: "site-reliability"}, plan, alert, runID,
		swarm.ExecuteOptions{MasterSeed: &seed})
	require.NoError(t, err)
	require.Equal(t, models.RunFinished, run.Status)
	return coordinator, run
}

func TestReplay_UnchangedRunHasZeroDivergences(t *testing.T) {
	store := ledger.NewMemoryLedger()
	coordinator, original := runOnce(t, store, "run-replay")

	report, err := NewEngine(store, nil).Replay(context.Background(), "run-replay", coordinator, nil)
	require.NoError(t, err)

	assert.Empty(t, report.CausalDivergences)
	assert.Equal(t, 0.0, report.ConfidenceDelta)
	assert.Equal(t, original.FinalDecision.DecisionID, report.OriginalDecisionID)
	assert.NotEqual(t, report.OriginalDecisionID, report.ReplayedDecisionID)
}

func TestReplay_ReplayDoesNotMutateLedger(t *testing.T) {
	store := ledger.NewMemoryLedger()
	coordinator, _ := runOnce(t, store, "run-immutable")

	before := len(store.SnapshotsFor("loganalysis"))
	_, err := NewEngine(store, nil).Replay(context.Background(), "run-immutable", coordinator, nil)
	require.NoError(t, err)

	assert.Equal(t, before, len(store.SnapshotsFor("loganalysis")))
}

func TestReplay_UnknownRun(t *testing.T) {
	store := ledger.NewMemoryLedger()
	coordinator, _ := runOnce(t, store, "run-x")

	_, err := NewEngine(store, nil).Replay(context.Background(), "run-missing", coordinator, nil)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestReplay_PlanChangeSurfacesDivergence(t *testing.T) {
	store := ledger.NewMemoryLedger()
	coordinator, original := runOnce(t, store, "run-newplan")

	// Drop the second step: the replayed evidence set shrinks.
	newPlan := original.Plan
	newPlan.Steps = newPlan.Steps[:1]

	report, err := NewEngine(store, nil).Replay(context.Background(), "run-newplan", coordinator, &newPlan)
	require.NoError(t, err)

	assert.NotEmpty(t, report.CausalDivergences)
}
