package swarm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/dedup"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

type coordinatorFixture struct {
	coordinator *Coordinator
	registry    *agent.Registry
	store       *ledger.MemoryLedger
	confidence  *confidence.Service
	dedup       *dedup.MemoryDeduplicator
}

func newFixture(t *testing.T, cfg Config) *coordinatorFixture {
	t.Helper()
	registry := agent.NewRegistry()
	store := ledger.NewMemoryLedger()
	conf := confidence.NewService(store)
	dd := dedup.NewMemoryDeduplicator(time.Minute, time.Minute)
	if cfg.StepTimeout == 0 {
		cfg.StepTimeout = time.Second
	}
	return &coordinatorFixture{
		coordinator: NewCoordinator(registry, conf, conf, dd, store, nil, cfg),
		registry:    registry,
		store:       store,
		confidence:  conf,
		dedup:       dd,
	}
}

func testAlert() models.AlertEvent {
	return models.AlertEvent{
		AlertID: "alert-X",
		Data: map[string]any{
			"alertname": "HighCPU",
			"severity":  "critical",
			"service":   "postgres-primary",
			"source":    "grafana",
		},
	}
}

func testDomain() models.Domain {
	return models.Domain{ID: "sre", Name: "site-reliability", RiskLevel: "high"}
}

func seed(v int64) *int64 { return &v }

func noLLM() Config {
	cfg := DefaultConfig()
	cfg.UseLLMFallback = false
	cfg.StepTimeout = time.Second
	return cfg
}

func TestCoordinator_TransientFailureRecoversViaRetry(t *testing.T) {
	// Scenario: loganalysis fails once then succeeds, networkscanner
	// succeeds immediately.
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis", failures: 1})
	f.registry.Register(&flakyAgent{id: "networkscanner"})

	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
		stepFor("networkscanner", fastBackoff(3)),
	})

	run, attempts, decisions, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-d", ExecuteOptions{MasterSeed: seed(42)})
	require.NoError(t, err)

	assert.Len(t, run.Executions, 3)
	require.Len(t, attempts, 1)
	assert.Equal(t, "loganalysis", mustFindStepAgent(t, plan, attempts[0].StepID))
	assert.Len(t, decisions, 0) // retry decided in-step, round controller added none
	assert.False(t, run.Metadata.AbortedByLimit)
	assert.LessOrEqual(t, run.Metadata.TotalRounds, 2)
	assert.Equal(t, models.RunFinished, run.Status)

	require.NotNil(t, run.FinalDecision)
	assert.Equal(t, models.ActionAutoRemediate, run.FinalDecision.ActionProposed)

	// The run is persisted with its full context.
	persisted, err := f.store.GetRun(context.Background(), "run-d")
	require.NoError(t, err)
	assert.Equal(t, run.RunID, persisted.RunID)
}

func mustFindStepAgent(t *testing.T, plan models.SwarmPlan, stepID string) string {
	t.Helper()
	for _, s := range plan.Steps {
		if s.StepID == stepID {
			return s.AgentID
		}
	}
	t.Fatalf("step %s not in plan", stepID)
	return ""
}

func TestCoordinator_MandatoryFailureTriggersLLMFallback(t *testing.T) {
	// Scenario: threatintel always fails; the LLM agent enriches the run.
	cfg := DefaultConfig()
	cfg.StepTimeout = time.Second
	f := newFixture(t, cfg)
	f.registry.Register(&flakyAgent{id: "threatintel", failures: 100})
	f.registry.Register(agent.NewLLMAgent(nil))

	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("threatintel", fastBackoff(3)),
	})

	run, attempts, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-e", ExecuteOptions{MasterSeed: seed(7)})
	require.NoError(t, err)

	// All configured attempts performed: 3 executions, 2 retries.
	threatExecs := 0
	for _, ex := range run.Executions {
		if ex.AgentID == "threatintel" {
			threatExecs++
		}
	}
	assert.Equal(t, 3, threatExecs)
	assert.Len(t, attempts, 2)
	assert.True(t, run.Metadata.LLMFallback)

	require.NotNil(t, run.FinalDecision)
	d := run.FinalDecision
	assert.Equal(t, models.ActionHumanReviewRequired, d.ActionProposed)
	assert.Equal(t, true, d.Metadata["llm_enriched"])
	assert.True(t, d.LLMContribution)
}

func TestCoordinator_DuplicateWithinTTLSkipsExecution(t *testing.T) {
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis"})
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})

	first, _, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-1", ExecuteOptions{MasterSeed: seed(1)})
	require.NoError(t, err)
	require.Equal(t, models.RunFinished, first.Status)

	second, _, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-2", ExecuteOptions{MasterSeed: seed(2)})
	require.NoError(t, err)

	assert.Equal(t, models.RunDuplicateSkipped, second.Status)
	assert.Equal(t, "run-1", second.RunID)
	assert.True(t, second.Metadata.Deduplicated)

	// Exactly one run in the ledger.
	_, err = f.store.GetRun(context.Background(), "run-2")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestCoordinator_LockContentionReturnsErrRunInFlight(t *testing.T) {
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis"})
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})

	ok, err := f.dedup.AcquireLock(context.Background(), "swarm_run:alert-X")
	require.NoError(t, err)
	require.True(t, ok)

	_, _, _, err = f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-blocked", ExecuteOptions{MasterSeed: seed(1)})
	assert.ErrorIs(t, err, ErrRunInFlight)
}

// alwaysRetryPolicy never gives up; the run-level bounds must stop it.
type alwaysRetryPolicy struct{}

func (alwaysRetryPolicy) ShouldRetry(models.RetryContext) bool        { return true }
func (alwaysRetryPolicy) NextDelay(models.RetryContext) time.Duration { return time.Millisecond }
func (alwaysRetryPolicy) Name() string                                { return "always_retry" }
func (alwaysRetryPolicy) Version() string                             { return "1.0" }
func (alwaysRetryPolicy) LogicHash() string                           { return "test-always" }

func TestCoordinator_AttemptLimitAborts(t *testing.T) {
	cfg := noLLM()
	cfg.Limits = Limits{MaxRetryRounds: 10, MaxTotalAttempts: 3, MaxRuntime: time.Minute}
	f := newFixture(t, cfg)
	f.registry.Register(&flakyAgent{id: "loganalysis", failures: 1000})

	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", alwaysRetryPolicy{}),
	})

	run, _, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-limit", ExecuteOptions{MasterSeed: seed(3)})
	require.NoError(t, err)

	assert.Equal(t, models.RunAbortedByLimit, run.Status)
	assert.True(t, run.Metadata.AbortedByLimit)
	assert.LessOrEqual(t, run.Metadata.TotalAttempts, 3)
}

func TestCoordinator_TimeDecayAppliedBeforeExecution(t *testing.T) {
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis"})
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})

	_, _, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-decay", ExecuteOptions{MasterSeed: seed(4)})
	require.NoError(t, err)

	snaps := f.store.SnapshotsFor("loganalysis")
	require.NotEmpty(t, snaps)
	assert.Equal(t, models.ConfidenceTimeDecay, snaps[0].SourceEvent)
	assert.InDelta(t, 0.999, snaps[0].Value, 1e-9)
}

func TestCoordinator_HumanOverridePenalizesAgents(t *testing.T) {
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis"})
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})

	hook := func(d models.Decision) *models.HumanDecision {
		return &models.HumanDecision{
			Action:                   models.HumanOverride,
			Author:                   "oncall@example.com",
			OverrideReason:           "known noisy alert",
			OverriddenActionProposed: d.ActionProposed,
			Timestamp:                time.Now().UTC(),
		}
	}

	run, _, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-override",
		ExecuteOptions{MasterSeed: seed(5), HumanHook: hook,
			ConfidencePolicy: policy.DefaultConfidencePolicy()})
	require.NoError(t, err)

	require.NotNil(t, run.FinalDecision.HumanDecision)

	// Decay (x0.999) then override penalty (-0.10).
	last := f.confidence.GetLastConfidence(context.Background(), "loganalysis")
	assert.InDelta(t, 0.899, last, 1e-9)

	// Override persisted alongside the run.
	_, ok := f.store.Override(run.FinalDecision.DecisionID)
	assert.True(t, ok)
}

func TestCoordinator_NoEvidenceProposesManualReview(t *testing.T) {
	// Non-mandatory step fails, no retry, no evidence, LLM disabled.
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis", failures: 100})
	step := models.NewSwarmStep("loganalysis", false)
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{step})

	run, _, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-empty", ExecuteOptions{MasterSeed: seed(6)})
	require.NoError(t, err)

	require.NotNil(t, run.FinalDecision)
	assert.Equal(t, models.ActionManualReview, run.FinalDecision.ActionProposed)
	assert.Equal(t, 0.0, run.FinalDecision.Confidence)
}

func TestCoordinator_RunsArePersistedWithRetryRecords(t *testing.T) {
	f := newFixture(t, noLLM())
	f.registry.Register(&flakyAgent{id: "loganalysis", failures: 1})
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})

	_, attempts, _, err := f.coordinator.Execute(context.Background(),
		testDomain(), plan, testAlert(), "run-persist", ExecuteOptions{MasterSeed: seed(8)})
	require.NoError(t, err)

	rc, err := f.store.FetchFullRunContext(context.Background(), "run-persist")
	require.NoError(t, err)
	assert.Equal(t, "run-persist", rc.Run.RunID)
	assert.Len(t, rc.RetryAttempts, len(attempts))
	assert.Equal(t, "alert-X", rc.Alert.AlertID)
	assert.Equal(t, int64(8), rc.Run.MasterSeed)
}
