// Package agent defines the agent port the swarm executes against, the
// registry that resolves agent ids, and the built-in agents.
package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

// Agent is one swarm worker. Execute must honor the context deadline and
// return an AgentExecution carrying either output evidence or an error
// string. Returning a Go error is reserved for infrastructure failures;
// the orchestrator converts it into a failed execution.
type Agent interface {
	ID() string
	Version() string
	LogicHash() string
	Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error)
}

// NewExecution starts an execution record for an agent. The caller sets
// OutputEvidence or Error and FinishedAt.
func NewExecution(a Agent, stepID string, params map[string]any) models.AgentExecution {
	return models.AgentExecution{
		ExecutionID:     uuid.New().String(),
		AgentID:         a.ID(),
		AgentVersion:    a.Version(),
		LogicHash:       a.LogicHash(),
		StepID:          stepID,
		InputParameters: params,
		StartedAt:       time.Now().UTC(),
	}
}

// FailedExecution builds a completed execution carrying an error.
func FailedExecution(agentID, stepID string, params map[string]any, errMsg string) models.AgentExecution {
	now := time.Now().UTC()
	return models.AgentExecution{
		ExecutionID:     uuid.New().String(),
		AgentID:         agentID,
		AgentVersion:    "n/a",
		LogicHash:       "n/a",
		StepID:          stepID,
		InputParameters: params,
		Error:           errMsg,
		StartedAt:       now,
		FinishedAt:      now,
	}
}

// hashFor builds the agent's logic hash from its identity and behavior
// description.
func hashFor(id, version, description string) string {
	return policy.HashLogic(id + "|" + version + "|" + description)
}
