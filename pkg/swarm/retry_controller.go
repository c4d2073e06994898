package swarm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swarmops/swarmsre/pkg/models"
)

// ConfidenceReader is the slice of the confidence service the controllers
// need.
type ConfidenceReader interface {
	GetLastConfidence(ctx context.Context, agentID string) float64
}

// EvaluationResult is the retry controller's verdict for one round.
type EvaluationResult struct {
	StepsToRetry           []models.SwarmStep
	RetryAttempts          []models.RetryAttempt
	RetryDecisions         []models.RetryDecision
	MaxDelay               time.Duration
	NewlySuccessfulStepIDs map[string]struct{}
}

// RetryController re-evaluates failed mandatory steps between rounds.
// Stateless: given the same history and master seed, the same decisions
// emerge.
type RetryController struct{}

// NewRetryController creates the controller.
func NewRetryController() *RetryController {
	return &RetryController{}
}

// Evaluate walks the plan and, for each mandatory step whose latest
// execution failed and that carries a retry policy, asks the policy
// whether to retry. Every scheduled retry is audited as a RetryDecision
// plus a RetryAttempt.
func (c *RetryController) Evaluate(ctx context.Context, plan models.SwarmPlan,
	executions []models.AgentExecution, priorAttempts []models.RetryAttempt,
	confidence ConfidenceReader, runID string, masterSeed int64,
	successful map[string]struct{}) EvaluationResult {

	result := EvaluationResult{NewlySuccessfulStepIDs: make(map[string]struct{})}

	executed := make(map[string]struct{}, len(executions))
	for _, ex := range executions {
		executed[ex.StepID] = struct{}{}
	}
	attemptsByStep := make(map[string]int, len(priorAttempts))
	for _, a := range priorAttempts {
		attemptsByStep[a.StepID]++
	}

	for _, step := range plan.Steps {
		if _, done := successful[step.StepID]; done {
			continue
		}
		if _, ran := executed[step.StepID]; !ran {
			continue
		}

		latest := latestExecutionFor(executions, step.StepID)
		if latest == nil {
			continue
		}
		if latest.IsSuccessful() {
			result.NewlySuccessfulStepIDs[step.StepID] = struct{}{}
			continue
		}
		if !step.Mandatory || step.RetryPolicy == nil {
			continue
		}

		attemptNumber := attemptsByStep[step.StepID] + 1
		retryCtx := models.RetryContext{
			RunID:          runID,
			StepID:         step.StepID,
			AgentID:        step.AgentID,
			Attempt:        attemptNumber,
			Err:            latest.Error,
			Seed:           masterSeed + int64(attemptNumber),
			LastConfidence: confidence.GetLastConfidence(ctx, step.AgentID),
		}

		if !step.RetryPolicy.ShouldRetry(retryCtx) {
			slog.Info("Retry budget exhausted for mandatory step",
				"run_id", runID, "step_id", step.StepID, "attempts", attemptNumber-1)
			continue
		}

		delay := step.RetryPolicy.NextDelay(retryCtx)
		if delay > result.MaxDelay {
			result.MaxDelay = delay
		}

		attemptID := uuid.New().String()
		result.RetryDecisions = append(result.RetryDecisions, models.RetryDecision{
			DecisionID:      uuid.New().String(),
			StepID:          step.StepID,
			AttemptID:       attemptID,
			Reason:          latest.Error,
			PolicyName:      step.RetryPolicy.Name(),
			PolicyVersion:   step.RetryPolicy.Version(),
			PolicyLogicHash: step.RetryPolicy.LogicHash(),
		})
		result.RetryAttempts = append(result.RetryAttempts, models.RetryAttempt{
			AttemptID:         attemptID,
			StepID:            step.StepID,
			AttemptNumber:     attemptNumber,
			DelaySeconds:      delay.Seconds(),
			Reason:            latest.Error,
			FailedExecutionID: latest.ExecutionID,
		})
		result.StepsToRetry = append(result.StepsToRetry, step)
	}

	return result
}

func latestExecutionFor(executions []models.AgentExecution, stepID string) *models.AgentExecution {
	for i := len(executions) - 1; i >= 0; i-- {
		if executions[i].StepID == stepID {
			return &executions[i]
		}
	}
	return nil
}
