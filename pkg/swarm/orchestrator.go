// Package swarm contains the parallel execution engine, the retry and
// decision controllers, and the run coordinator that drives them under
// run-level bounds.
package swarm

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/models"
)

// DefaultStepTimeout bounds one agent execution.
const DefaultStepTimeout = 30 * time.Second

// orchestrator-level jitter applied on top of the policy delay.
const stepRetryJitter = 0.1

var tracer = otel.Tracer("github.com/swarmops/swarmsre/pkg/swarm")

// StepExecutor produces one AgentExecution per call for a step. The live
// executor dispatches to registered agents; the replay executor returns
// historical executions.
type StepExecutor interface {
	ExecuteStep(ctx context.Context, step models.SwarmStep) models.AgentExecution
}

// LiveExecutor dispatches steps to agents via the registry.
type LiveExecutor struct {
	Registry *agent.Registry
}

// ExecuteStep runs the step's agent. An unregistered agent and an error
// returned by the agent both become failed executions; a panic inside the
// agent is not recovered here.
func (e *LiveExecutor) ExecuteStep(ctx context.Context, step models.SwarmStep) models.AgentExecution {
	a, err := e.Registry.Get(step.AgentID)
	if err != nil {
		return agent.FailedExecution(step.AgentID, step.StepID, step.Parameters, err.Error())
	}

	params := deepCopyParams(step.Parameters)
	exec, err := a.Execute(ctx, params, step.StepID)
	if err != nil {
		return agent.FailedExecution(step.AgentID, step.StepID, params, err.Error())
	}
	return exec
}

// ReplayExecutor hands back the historical executions of a past run, in
// recorded order per step, without touching real agents.
type ReplayExecutor struct {
	mu      sync.Mutex
	history map[string][]models.AgentExecution
	cursor  map[string]int
}

// NewReplayExecutor builds an executor over a run's recorded executions.
func NewReplayExecutor(executions []models.AgentExecution) *ReplayExecutor {
	history := make(map[string][]models.AgentExecution)
	for _, ex := range executions {
		history[ex.StepID] = append(history[ex.StepID], ex)
	}
	return &ReplayExecutor{history: history, cursor: make(map[string]int)}
}

// ExecuteStep returns the next recorded execution for the step. Running
// past the recorded history is a failure, surfaced as a divergence.
func (e *ReplayExecutor) ExecuteStep(_ context.Context, step models.SwarmStep) models.AgentExecution {
	e.mu.Lock()
	defer e.mu.Unlock()
	recorded := e.history[step.StepID]
	idx := e.cursor[step.StepID]
	if idx >= len(recorded) {
		return agent.FailedExecution(step.AgentID, step.StepID, step.Parameters,
			fmt.Sprintf("replay: no recorded execution for step %s attempt %d", step.StepID, idx+1))
	}
	e.cursor[step.StepID] = idx + 1
	return recorded[idx]
}

// RunInfo carries the run-scoped context the orchestrator threads into
// retry policies.
type RunInfo struct {
	RunID          string
	MasterSeed     int64
	LastConfidence map[string]float64 // by agent id
	DomainHints    []string
	PriorAttempts  map[string]int // retry attempts already recorded, by step id

	// MaxExecutions caps one step's executions this round so a policy
	// that never gives up cannot starve the run-level attempt bound.
	// Zero means unbounded.
	MaxExecutions int
}

// Orchestrator executes swarm steps concurrently with per-step timeouts
// and per-step retry policies. It returns every execution (not only the
// last) and every retry attempt, ordered within each step and flattened
// in plan order across steps.
type Orchestrator struct {
	executor    StepExecutor
	stepTimeout time.Duration
	sleep       func(ctx context.Context, d time.Duration) bool
}

// NewOrchestrator creates an orchestrator. A non-positive timeout uses
// the default.
func NewOrchestrator(executor StepExecutor, stepTimeout time.Duration) *Orchestrator {
	if stepTimeout <= 0 {
		stepTimeout = DefaultStepTimeout
	}
	return &Orchestrator{
		executor:    executor,
		stepTimeout: stepTimeout,
		sleep:       sleepCtx,
	}
}

// NewReplayOrchestrator creates an orchestrator that never sleeps,
// for deterministic replay.
func NewReplayOrchestrator(executor StepExecutor) *Orchestrator {
	o := NewOrchestrator(executor, DefaultStepTimeout)
	o.sleep = func(context.Context, time.Duration) bool { return true }
	return o
}

// ExecuteSwarm runs the steps concurrently. Each step's retry chain is
// strictly sequential with attempt numbers continuing from
// info.PriorAttempts.
func (o *Orchestrator) ExecuteSwarm(ctx context.Context, steps []models.SwarmStep, info RunInfo) ([]models.AgentExecution, []models.RetryAttempt) {
	if len(steps) == 0 {
		return nil, nil
	}

	type stepResult struct {
		executions []models.AgentExecution
		retries    []models.RetryAttempt
	}

	results := make([]stepResult, len(steps))
	var g errgroup.Group
	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			execs, retries := o.executeStepWithRetries(ctx, step, info)
			results[i] = stepResult{executions: execs, retries: retries}
			return nil
		})
	}
	_ = g.Wait()

	var executions []models.AgentExecution
	var retries []models.RetryAttempt
	for _, r := range results {
		executions = append(executions, r.executions...)
		retries = append(retries, r.retries...)
	}
	return executions, retries
}

// executeStepWithRetries runs one step until success, retry exhaustion,
// or cancellation.
func (o *Orchestrator) executeStepWithRetries(ctx context.Context, step models.SwarmStep, info RunInfo) ([]models.AgentExecution, []models.RetryAttempt) {
	var executions []models.AgentExecution
	var retries []models.RetryAttempt

	priorAttempts := info.PriorAttempts[step.StepID]
	inStepRetries := 0

	for {
		execution := o.executeOnce(ctx, step)
		executions = append(executions, execution)

		if execution.IsSuccessful() || step.RetryPolicy == nil {
			break
		}
		if info.MaxExecutions > 0 && len(executions) >= info.MaxExecutions {
			break
		}

		attemptNumber := priorAttempts + inStepRetries + 1
		retryCtx := models.RetryContext{
			RunID:          info.RunID,
			StepID:         step.StepID,
			AgentID:        step.AgentID,
			Attempt:        attemptNumber,
			Err:            execution.Error,
			Seed:           info.MasterSeed + int64(attemptNumber),
			LastConfidence: lastConfidence(info, step.AgentID),
			DomainHints:    info.DomainHints,
		}

		if !step.RetryPolicy.ShouldRetry(retryCtx) {
			break
		}

		delay := jitterDelay(step.RetryPolicy.NextDelay(retryCtx), retryCtx.Seed)
		retries = append(retries, models.RetryAttempt{
			AttemptID:         newAttemptID(),
			StepID:            step.StepID,
			AttemptNumber:     attemptNumber,
			DelaySeconds:      delay.Seconds(),
			Reason:            execution.Error,
			FailedExecutionID: execution.ExecutionID,
		})
		inStepRetries++

		slog.Info("Retrying step",
			"run_id", info.RunID, "step_id", step.StepID,
			"attempt", attemptNumber, "delay", delay)

		if !o.sleep(ctx, delay) {
			break
		}
	}

	return executions, retries
}

// executeOnce runs the step's agent under the step deadline. A blown
// deadline is converted into a failed execution with a timeout error.
func (o *Orchestrator) executeOnce(ctx context.Context, step models.SwarmStep) models.AgentExecution {
	stepCtx, cancel := context.WithTimeout(ctx, o.stepTimeout)
	defer cancel()

	stepCtx, span := tracer.Start(stepCtx, "swarm.step",
		trace.WithAttributes(
			attribute.String("agent.id", step.AgentID),
			attribute.String("step.id", step.StepID),
		))
	defer span.End()

	done := make(chan models.AgentExecution, 1)
	go func() {
		done <- o.executor.ExecuteStep(stepCtx, step)
	}()

	select {
	case execution := <-done:
		return execution
	case <-stepCtx.Done():
		errMsg := fmt.Sprintf("timeout: step deadline exceeded after %s", o.stepTimeout)
		if ctx.Err() != nil {
			errMsg = fmt.Sprintf("cancelled: %v", ctx.Err())
		}
		return agent.FailedExecution(step.AgentID, step.StepID, step.Parameters, errMsg)
	}
}

func newAttemptID() string { return uuid.New().String() }

func lastConfidence(info RunInfo, agentID string) float64 {
	if c, ok := info.LastConfidence[agentID]; ok {
		return c
	}
	return 1.0
}

// jitterDelay applies the orchestrator's ±10% jitter on top of the policy
// delay, drawn from the retry seed so replay reproduces it.
func jitterDelay(delay time.Duration, seed int64) time.Duration {
	rng := rand.New(rand.NewPCG(uint64(seed), 1))
	factor := 1 + stepRetryJitter*(2*rng.Float64()-1)
	return time.Duration(float64(delay) * factor)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func deepCopyParams(params map[string]any) map[string]any {
	if params == nil {
		return map[string]any{}
	}
	copied := make(map[string]any, len(params))
	for k, v := range params {
		copied[k] = deepCopyValue(v)
	}
	return copied
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyParams(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
