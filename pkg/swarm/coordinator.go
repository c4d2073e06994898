package swarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/dedup"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

// ErrRunInFlight is returned when the dedup lock for the alert's source
// is already held; the webhook surfaces it as 429.
var ErrRunInFlight = errors.New("swarm: run already in flight for source")

// Limits bound one run.
type Limits struct {
	MaxRetryRounds   int
	MaxTotalAttempts int
	MaxRuntime       time.Duration
}

// DefaultLimits returns the standard run bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxRetryRounds:   10,
		MaxTotalAttempts: 50,
		MaxRuntime:       3000 * time.Second,
	}
}

// Config tunes the coordinator.
type Config struct {
	Limits               Limits
	StepTimeout          time.Duration
	DecayRate            float64
	UseLLMFallback       bool
	LLMFallbackThreshold float64
	LLMAgentID           string
}

// DefaultConfig returns the standard coordinator configuration.
func DefaultConfig() Config {
	return Config{
		Limits:               DefaultLimits(),
		StepTimeout:          DefaultStepTimeout,
		DecayRate:            0.001,
		UseLLMFallback:       true,
		LLMFallbackThreshold: 0.5,
		LLMAgentID:           agent.LLMAgentID,
	}
}

// ConfidenceManager is the slice of the confidence service the
// coordinator drives.
type ConfidenceManager interface {
	ConfidenceReader
	ApplyTimeDecay(ctx context.Context, agentID string, rate float64) error
}

// Metrics receives operational measurements from the coordinator. The
// prometheus implementation lives in pkg/metrics.
type Metrics interface {
	RecordExecution(duration time.Duration, domain, severity string)
	RecordDecision(confidence float64, action string)
	RecordDedup(action string)
}

type noopMetrics struct{}

func (noopMetrics) RecordExecution(time.Duration, string, string) {}
func (noopMetrics) RecordDecision(float64, string)                {}
func (noopMetrics) RecordDedup(string)                            {}

// ExecuteOptions carry per-run knobs.
type ExecuteOptions struct {
	MasterSeed       *int64
	ConfidencePolicy policy.ConfidencePolicy
	HumanHook        HumanHook
	Replay           bool
	ReplayExecutions []models.AgentExecution
}

// Coordinator drives the orchestrator, the retry controller and the
// decision controller for one run under run-level bounds. Stateful per
// run; safe for concurrent runs.
type Coordinator struct {
	registry           *agent.Registry
	retryController    *RetryController
	decisionController *DecisionController
	confidence         ConfidenceManager
	deduplicator       dedup.Deduplicator
	store              ledger.Ledger
	metrics            Metrics
	cfg                Config
}

// NewCoordinator wires a coordinator. deduplicator may be nil (dedup
// disabled); metrics may be nil (no-op).
func NewCoordinator(registry *agent.Registry, confidence ConfidenceManager,
	penalizer OverridePenalizer, deduplicator dedup.Deduplicator,
	store ledger.Ledger, metrics Metrics, cfg Config) *Coordinator {

	if metrics == nil {
		metrics = noopMetrics{}
	}
	if cfg.Limits.MaxRetryRounds <= 0 {
		cfg.Limits = DefaultLimits()
	}
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = DefaultStepTimeout
	}
	return &Coordinator{
		registry:           registry,
		retryController:    NewRetryController(),
		decisionController: NewDecisionController(penalizer),
		confidence:         confidence,
		deduplicator:       deduplicator,
		store:              store,
		metrics:            metrics,
		cfg:                cfg,
	}
}

// Execute runs a plan against an alert. It returns the persisted run plus
// every retry attempt and retry decision. A duplicate within the dedup
// TTL returns the existing run with status DUPLICATE_SKIPPED and no
// error; a held source lock returns ErrRunInFlight.
func (c *Coordinator) Execute(ctx context.Context, domain models.Domain, plan models.SwarmPlan,
	alert models.AlertEvent, runID string, opts ExecuteOptions) (_ models.SwarmRun, _ []models.RetryAttempt, _ []models.RetryDecision, err error) {

	// An invariant violation aborts the run; the partial state is still
	// recorded so the ledger shows the run existed.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = fmt.Errorf("swarm: fatal: run %s: %v", runID, r)
		slog.Error("Run aborted by fatal error", "run_id", runID, "panic", r)
		if !opts.Replay && c.store != nil {
			partial := models.SwarmRun{
				RunID:    runID,
				Domain:   domain,
				Plan:     plan,
				Status:   models.RunAbortedByLimit,
				Metadata: models.RunMetadata{Fatal: true},
			}
			if saveErr := c.store.SaveSwarmRun(context.WithoutCancel(ctx), partial, alert, nil, nil); saveErr != nil {
				slog.Error("Failed to record fatal run", "run_id", runID, "error", saveErr)
			}
		}
	}()

	ctx, span := tracer.Start(ctx, "swarm.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("domain", domain.Name),
		))
	defer span.End()

	log := slog.With("run_id", runID, "domain", domain.Name)
	startedAt := time.Now().UTC()

	// Deduplication: the deduplicator is the single arbiter of whether
	// this alert already owns a run.
	if !opts.Replay && c.deduplicator != nil {
		lockName := "swarm_run:" + alert.AlertID
		acquired, err := c.deduplicator.AcquireLock(ctx, lockName)
		if err != nil {
			return models.SwarmRun{}, nil, nil, fmt.Errorf("swarm: acquire run lock: %w", err)
		}
		if !acquired {
			return models.SwarmRun{}, nil, nil, ErrRunInFlight
		}
		defer func() {
			if err := c.deduplicator.ReleaseLock(context.WithoutCancel(ctx), lockName); err != nil {
				log.Warn("Failed to release run lock", "error", err)
			}
		}()

		action, existingRunID, err := c.deduplicator.CheckDuplicate(
			ctx, alert.AlertID, alert.Data, alert.Severity(), alert.SourceSystem())
		if err != nil {
			log.Warn("Dedup check failed, continuing as new run", "error", err)
		}
		if action == dedup.ActionUpdateExisting {
			c.metrics.RecordDedup("update_existing")
			log.Info("Duplicate alert within TTL, skipping execution", "existing_run_id", existingRunID)
			return models.SwarmRun{
				RunID:     existingRunID,
				Domain:    domain,
				Plan:      plan,
				Status:    models.RunDuplicateSkipped,
				Metadata:  models.RunMetadata{Deduplicated: true},
				StartedAt: startedAt,
			}, nil, nil, nil
		}
		c.metrics.RecordDedup("new_execution")
	}

	masterSeed := drawSeed(opts.MasterSeed)
	runRNG := rand.New(rand.NewPCG(uint64(masterSeed), 2))
	log.Info("Run started", "master_seed", masterSeed, "steps", len(plan.Steps), "replay", opts.Replay)

	// Stale credibility decays before execution so retry decisions see
	// current confidence. Replay must not mutate the ledger.
	if !opts.Replay {
		seen := map[string]struct{}{}
		for _, step := range plan.Steps {
			if _, dup := seen[step.AgentID]; dup {
				continue
			}
			seen[step.AgentID] = struct{}{}
			if err := c.confidence.ApplyTimeDecay(ctx, step.AgentID, c.cfg.DecayRate); err != nil {
				log.Warn("Time decay failed", "agent_id", step.AgentID, "error", err)
			}
		}
	}

	orch := c.newOrchestrator(opts)

	runCtx, cancelRun := context.WithTimeout(ctx, c.cfg.Limits.MaxRuntime)
	defer cancelRun()

	var (
		allExecutions  []models.AgentExecution
		allAttempts    []models.RetryAttempt
		allDecisions   []models.RetryDecision
		successful     = make(map[string]struct{})
		rounds         int
		totalAttempts  int
		abortedByLimit bool
	)

	stepsToProcess := plan.Steps
	for len(stepsToProcess) > 0 {
		if rounds >= c.cfg.Limits.MaxRetryRounds || totalAttempts >= c.cfg.Limits.MaxTotalAttempts {
			abortedByLimit = true
			break
		}
		rounds++

		info := RunInfo{
			RunID:          runID,
			MasterSeed:     masterSeed,
			LastConfidence: c.confidenceSnapshotFor(runCtx, stepsToProcess),
			PriorAttempts:  attemptCounts(allAttempts),
			MaxExecutions:  c.cfg.Limits.MaxTotalAttempts - totalAttempts,
		}
		executions, stepRetries := orch.ExecuteSwarm(runCtx, stepsToProcess, info)
		allExecutions = append(allExecutions, executions...)
		allAttempts = append(allAttempts, stepRetries...)
		totalAttempts += len(executions)

		eval := c.retryController.Evaluate(runCtx, plan, allExecutions, allAttempts,
			c.confidence, runID, masterSeed, successful)
		allAttempts = append(allAttempts, eval.RetryAttempts...)
		allDecisions = append(allDecisions, eval.RetryDecisions...)
		for id := range eval.NewlySuccessfulStepIDs {
			successful[id] = struct{}{}
		}
		stepsToProcess = eval.StepsToRetry

		if runCtx.Err() != nil {
			abortedByLimit = true
			break
		}
		if len(stepsToProcess) > 0 && eval.MaxDelay > 0 && !opts.Replay {
			jitter := 1 + 0.1*(2*runRNG.Float64()-1)
			if !sleepCtx(runCtx, time.Duration(float64(eval.MaxDelay)*jitter)) {
				abortedByLimit = true
				break
			}
		}
	}
	if runCtx.Err() != nil {
		abortedByLimit = true
	}

	successfulExecutions := filterSuccessful(allExecutions, successful)

	// LLM fallback gate: fires when a mandatory step stayed failed or the
	// gathered evidence is weak. Its deadline is independent of the run
	// budget so it cannot starve persistence.
	allMandatoryOK := allMandatorySucceeded(plan, successful)
	meanConfidence := meanEvidenceConfidence(successfulExecutions)
	llmFired := false
	if c.cfg.UseLLMFallback && c.cfg.LLMAgentID != "" &&
		(!allMandatoryOK || meanConfidence <= c.cfg.LLMFallbackThreshold) {

		llmFired = true
		llmExecs := c.runLLMFallback(ctx, orch, plan, alert, runID,
			successfulExecutions, meanConfidence, allMandatoryOK)
		allExecutions = append(allExecutions, llmExecs...)
		for _, ex := range llmExecs {
			if ex.IsSuccessful() {
				successful[ex.StepID] = struct{}{}
				successfulExecutions = append(successfulExecutions, ex)
			}
		}
	}

	confidencePolicy := opts.ConfidencePolicy
	if confidencePolicy == nil {
		confidencePolicy = policy.DefaultConfidencePolicy()
	}
	decision := c.decisionController.Decide(ctx, plan, successfulExecutions, alert,
		confidencePolicy, opts.HumanHook)

	status := models.RunFinished
	if abortedByLimit {
		status = models.RunAbortedByLimit
	}
	run := models.SwarmRun{
		RunID:         runID,
		Domain:        domain,
		Plan:          plan,
		MasterSeed:    masterSeed,
		Executions:    allExecutions,
		FinalDecision: &decision,
		Metadata: models.RunMetadata{
			TotalRounds:    rounds,
			TotalAttempts:  totalAttempts,
			AbortedByLimit: abortedByLimit,
			LLMFallback:    llmFired,
		},
		Status:     status,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
	}

	if !opts.Replay {
		if err := c.persist(ctx, run, alert, allAttempts, allDecisions, decision); err != nil {
			return run, allAttempts, allDecisions, err
		}
	}

	c.metrics.RecordExecution(time.Since(startedAt), domain.Name, alert.Severity())
	c.metrics.RecordDecision(decision.Confidence, decision.ActionProposed)
	log.Info("Run finished",
		"status", status, "rounds", rounds, "attempts", totalAttempts,
		"action", decision.ActionProposed, "confidence", decision.Confidence)

	return run, allAttempts, allDecisions, nil
}

func (c *Coordinator) newOrchestrator(opts ExecuteOptions) *Orchestrator {
	if opts.Replay {
		return NewReplayOrchestrator(NewReplayExecutor(opts.ReplayExecutions))
	}
	return NewOrchestrator(&LiveExecutor{Registry: c.registry}, c.cfg.StepTimeout)
}

// runLLMFallback executes the hypothesis agent with the run context
// document under its own 30 s deadline.
func (c *Coordinator) runLLMFallback(ctx context.Context, orch *Orchestrator,
	plan models.SwarmPlan, alert models.AlertEvent, runID string,
	successfulExecutions []models.AgentExecution, meanConfidence float64,
	allMandatoryOK bool) []models.AgentExecution {

	var evidence []map[string]any
	for _, ex := range successfulExecutions {
		for _, ev := range ex.OutputEvidence {
			evidence = append(evidence, map[string]any{
				"agent_id":   ev.AgentID,
				"confidence": ev.Confidence,
				"content":    ev.Content,
			})
		}
	}

	step := models.SwarmStep{
		StepID:    "llm-fallback:" + runID,
		AgentID:   c.cfg.LLMAgentID,
		Mandatory: true,
		Parameters: map[string]any{
			"alert":             alert.Data,
			"run_id":            runID,
			"evidence":          evidence,
			"avg_confidence":    meanConfidence,
			"mandatory_success": allMandatoryOK,
		},
	}

	fallbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	executions, _ := orch.ExecuteSwarm(fallbackCtx, []models.SwarmStep{step}, RunInfo{RunID: runID})
	return executions
}

// persist writes the run atomically, then the override side effects, then
// registers the dedup key so identical alerts within the TTL skip.
func (c *Coordinator) persist(ctx context.Context, run models.SwarmRun, alert models.AlertEvent,
	attempts []models.RetryAttempt, retryDecisions []models.RetryDecision, decision models.Decision) error {

	persistCtx := context.WithoutCancel(ctx)
	if err := c.store.SaveSwarmRun(persistCtx, run, alert, attempts, retryDecisions); err != nil {
		return fmt.Errorf("swarm: persist run: %w", err)
	}

	if decision.HumanDecision != nil && decision.HumanDecision.Action == models.HumanOverride {
		outcome := models.OperationalOutcome{
			Status:      "overridden",
			ImpactLevel: "not_assessed",
			Details:     decision.HumanDecision.OverrideReason,
		}
		if err := c.store.SaveHumanOverride(persistCtx, decision, *decision.HumanDecision, outcome); err != nil {
			return fmt.Errorf("swarm: persist human override: %w", err)
		}
	}

	if c.deduplicator != nil {
		if err := c.deduplicator.RegisterExecution(persistCtx, alert.AlertID, run.RunID,
			alert.Data, alert.Severity(), alert.SourceSystem()); err != nil {
			slog.Warn("Failed to register run in deduplicator", "run_id", run.RunID, "error", err)
		}
	}
	return nil
}

func (c *Coordinator) confidenceSnapshotFor(ctx context.Context, steps []models.SwarmStep) map[string]float64 {
	confidences := make(map[string]float64, len(steps))
	for _, step := range steps {
		if _, ok := confidences[step.AgentID]; !ok {
			confidences[step.AgentID] = c.confidence.GetLastConfidence(ctx, step.AgentID)
		}
	}
	return confidences
}

func drawSeed(explicit *int64) int64 {
	if explicit != nil {
		return *explicit
	}
	return rand.Int64N(1_000_000)
}

func attemptCounts(attempts []models.RetryAttempt) map[string]int {
	counts := make(map[string]int, len(attempts))
	for _, a := range attempts {
		counts[a.StepID]++
	}
	return counts
}

func filterSuccessful(executions []models.AgentExecution, successful map[string]struct{}) []models.AgentExecution {
	var out []models.AgentExecution
	for _, ex := range executions {
		if _, ok := successful[ex.StepID]; ok && ex.IsSuccessful() {
			out = append(out, ex)
		}
	}
	return out
}

func allMandatorySucceeded(plan models.SwarmPlan, successful map[string]struct{}) bool {
	for _, step := range plan.Steps {
		if !step.Mandatory {
			continue
		}
		if _, ok := successful[step.StepID]; !ok {
			return false
		}
	}
	return true
}

func meanEvidenceConfidence(executions []models.AgentExecution) float64 {
	var sum float64
	count := 0
	for _, ex := range executions {
		for _, ev := range ex.OutputEvidence {
			sum += ev.Confidence
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
