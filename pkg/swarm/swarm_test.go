package swarm

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

// slowAgent blocks until its context is cancelled.
type slowAgent struct{ id string }

func (a *slowAgent) ID() string        { return a.id }
func (a *slowAgent) Version() string   { return "1.0" }
func (a *slowAgent) LogicHash() string { return "test-slow" }

func (a *slowAgent) Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	<-ctx.Done()
	exec := agent.NewExecution(a, stepID, params)
	exec.Error = ctx.Err().Error()
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

func fastBackoff(maxAttempts int) models.RetryPolicy {
	return policy.NewExponentialBackoff(time.Millisecond, 10*time.Millisecond, maxAttempts)
}

func stepFor(agentID string, pol models.RetryPolicy) models.SwarmStep {
	step := models.NewSwarmStep(agentID, true)
	step.RetryPolicy = pol
	return step
}

func testInfo(seed int64) RunInfo {
	return RunInfo{RunID: "run-test", MasterSeed: seed}
}

func TestOrchestrator_AllStepsSucceed(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(&flakyAgent{id: "loganalysis"})
	registry.Register(&flakyAgent{id: "networkscanner"})

	orch := NewOrchestrator(&LiveExecutor{Registry: registry}, time.Second)
	steps := []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
		stepFor("networkscanner", fastBackoff(3)),
	}

	execs, retries := orch.ExecuteSwarm(context.Background(), steps, testInfo(42))

	assert.Len(t, execs, 2)
	assert.Empty(t, retries)
	for _, ex := range execs {
		assert.True(t, ex.IsSuccessful())
	}
}

func TestOrchestrator_RetriesTransientFailure(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(&flakyAgent{id: "loganalysis", failures: 1})

	orch := NewOrchestrator(&LiveExecutor{Registry: registry}, time.Second)
	steps := []models.SwarmStep{stepFor("loganalysis", fastBackoff(3))}

	execs, retries := orch.ExecuteSwarm(context.Background(), steps, testInfo(42))

	require.Len(t, execs, 2)
	assert.False(t, execs[0].IsSuccessful())
	assert.True(t, execs[1].IsSuccessful())

	require.Len(t, retries, 1)
	assert.Equal(t, 1, retries[0].AttemptNumber)
	assert.Equal(t, execs[0].ExecutionID, retries[0].FailedExecutionID)
	assert.Equal(t, "connection refused", retries[0].Reason)
}

func TestOrchestrator_RetryInvariant(t *testing.T) {
	// Attempts recorded == executions - 1, numbered 1..N without gaps.
	registry := agent.NewRegistry()
	registry.Register(&flakyAgent{id: "loganalysis", failures: 10})

	orch := NewOrchestrator(&LiveExecutor{Registry: registry}, time.Second)
	steps := []models.SwarmStep{stepFor("loganalysis", fastBackoff(4))}

	execs, retries := orch.ExecuteSwarm(context.Background(), steps, testInfo(42))

	assert.Len(t, execs, 4)
	require.Len(t, retries, 3)
	for i, r := range retries {
		assert.Equal(t, i+1, r.AttemptNumber)
	}
}

func TestOrchestrator_UnknownAgentFails(t *testing.T) {
	orch := NewOrchestrator(&LiveExecutor{Registry: agent.NewRegistry()}, time.Second)
	steps := []models.SwarmStep{models.NewSwarmStep("ghost", true)}

	execs, _ := orch.ExecuteSwarm(context.Background(), steps, testInfo(1))

	require.Len(t, execs, 1)
	assert.False(t, execs[0].IsSuccessful())
	assert.Contains(t, execs[0].Error, "not registered")
}

func TestOrchestrator_StepTimeoutTypedError(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(&slowAgent{id: "slow"})

	orch := NewOrchestrator(&LiveExecutor{Registry: registry}, 20*time.Millisecond)
	steps := []models.SwarmStep{models.NewSwarmStep("slow", true)}

	execs, _ := orch.ExecuteSwarm(context.Background(), steps, testInfo(1))

	require.Len(t, execs, 1)
	assert.False(t, execs[0].IsSuccessful())
	assert.Contains(t, execs[0].Error, "timeout")
}

func TestOrchestrator_AttemptNumbersContinueAcrossRounds(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(&flakyAgent{id: "loganalysis", failures: 10})

	orch := NewOrchestrator(&LiveExecutor{Registry: registry}, time.Second)
	step := stepFor("loganalysis", fastBackoff(5))
	info := testInfo(42)
	info.PriorAttempts = map[string]int{step.StepID: 2}

	_, retries := orch.ExecuteSwarm(context.Background(), []models.SwarmStep{step}, info)

	require.NotEmpty(t, retries)
	assert.Equal(t, 3, retries[0].AttemptNumber)
}

func TestReplayExecutor_ReturnsHistoricalExecutions(t *testing.T) {
	history := []models.AgentExecution{
		{ExecutionID: "e1", StepID: "s1", AgentID: "a", Error: "boom"},
		{ExecutionID: "e2", StepID: "s1", AgentID: "a"},
	}
	exec := NewReplayExecutor(history)
	step := models.SwarmStep{StepID: "s1", AgentID: "a"}

	first := exec.ExecuteStep(context.Background(), step)
	second := exec.ExecuteStep(context.Background(), step)
	third := exec.ExecuteStep(context.Background(), step)

	assert.Equal(t, "e1", first.ExecutionID)
	assert.Equal(t, "e2", second.ExecutionID)
	assert.Contains(t, third.Error, "replay")
}

func TestRetryController_MarksNewlySuccessful(t *testing.T) {
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})
	execs := []models.AgentExecution{
		{ExecutionID: "e1", StepID: plan.Steps[0].StepID, AgentID: "loganalysis"},
	}
	conf := confidence.NewService(ledger.NewMemoryLedger())

	result := NewRetryController().Evaluate(context.Background(), plan, execs, nil,
		conf, "run-1", 42, map[string]struct{}{})

	assert.Empty(t, result.StepsToRetry)
	assert.Contains(t, result.NewlySuccessfulStepIDs, plan.Steps[0].StepID)
}

func TestRetryController_SchedulesRetryForFailedMandatoryStep(t *testing.T) {
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})
	stepID := plan.Steps[0].StepID
	execs := []models.AgentExecution{
		{ExecutionID: "e1", StepID: stepID, AgentID: "loganalysis", Error: "boom"},
	}
	conf := confidence.NewService(ledger.NewMemoryLedger())

	result := NewRetryController().Evaluate(context.Background(), plan, execs, nil,
		conf, "run-1", 42, map[string]struct{}{})

	require.Len(t, result.StepsToRetry, 1)
	require.Len(t, result.RetryAttempts, 1)
	require.Len(t, result.RetryDecisions, 1)
	assert.Equal(t, 1, result.RetryAttempts[0].AttemptNumber)
	assert.Equal(t, "exponential_backoff", result.RetryDecisions[0].PolicyName)
	assert.Equal(t, result.RetryAttempts[0].AttemptID, result.RetryDecisions[0].AttemptID)
	assert.Greater(t, result.MaxDelay, time.Duration(0))
}

func TestRetryController_ExhaustedPolicyStopsRetrying(t *testing.T) {
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(2)),
	})
	stepID := plan.Steps[0].StepID
	execs := []models.AgentExecution{
		{ExecutionID: "e1", StepID: stepID, AgentID: "loganalysis", Error: "boom"},
	}
	prior := []models.RetryAttempt{
		{AttemptID: "a1", StepID: stepID, AttemptNumber: 1},
	}
	conf := confidence.NewService(ledger.NewMemoryLedger())

	result := NewRetryController().Evaluate(context.Background(), plan, execs, prior,
		conf, "run-1", 42, map[string]struct{}{})

	assert.Empty(t, result.StepsToRetry)
	assert.Empty(t, result.RetryAttempts)
}

func TestRetryController_NonMandatoryStepNotRetried(t *testing.T) {
	step := models.NewSwarmStep("loganalysis", false)
	step.RetryPolicy = fastBackoff(3)
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{step})
	execs := []models.AgentExecution{
		{ExecutionID: "e1", StepID: step.StepID, AgentID: "loganalysis", Error: "boom"},
	}
	conf := confidence.NewService(ledger.NewMemoryLedger())

	result := NewRetryController().Evaluate(context.Background(), plan, execs, nil,
		conf, "run-1", 42, map[string]struct{}{})

	assert.Empty(t, result.StepsToRetry)
}

func TestRetryController_Deterministic(t *testing.T) {
	plan := models.NewSwarmPlan("triage", []models.SwarmStep{
		stepFor("loganalysis", fastBackoff(3)),
	})
	stepID := plan.Steps[0].StepID
	execs := []models.AgentExecution{
		{ExecutionID: "e1", StepID: stepID, AgentID: "loganalysis", Error: "boom"},
	}
	conf := confidence.NewService(ledger.NewMemoryLedger())

	a := NewRetryController().Evaluate(context.Background(), plan, execs, nil,
		conf, "run-1", 42, map[string]struct{}{})
	b := NewRetryController().Evaluate(context.Background(), plan, execs, nil,
		conf, "run-1", 42, map[string]struct{}{})

	assert.Equal(t, a.MaxDelay, b.MaxDelay)
	assert.Len(t, b.RetryAttempts, len(a.RetryAttempts))
}
