package api

import (
	"time"

	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/runner"
)

// AlertResponse is returned for an accepted webhook delivery.
type AlertResponse struct {
	Status             string            `json:"status"`
	RunID              string            `json:"run_id"`
	SuggestedProcedure *ledger.Procedure `json:"suggested_procedure,omitempty"`
}

// RunResponse is the status view of a run.
type RunResponse struct {
	RunID      string             `json:"run_id"`
	Status     models.RunStatus   `json:"status"`
	Domain     string             `json:"domain"`
	Metadata   models.RunMetadata `json:"metadata"`
	Decision   *models.Decision   `json:"decision,omitempty"`
	Executions []ExecutionSummary `json:"executions,omitempty"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at,omitempty"`
}

// ExecutionSummary is a compact execution view for the run endpoint.
type ExecutionSummary struct {
	ExecutionID string `json:"execution_id"`
	AgentID     string `json:"agent_id"`
	StepID      string `json:"step_id"`
	Successful  bool   `json:"successful"`
	Error       string `json:"error,omitempty"`
}

// HealthResponse is the GET /api/v1/health body.
type HealthResponse struct {
	Status        string            `json:"status"`
	LedgerOK      bool              `json:"ledger_ok"`
	Processing    runner.PoolHealth `json:"processing"`
	LastExecution time.Time         `json:"last_execution"`
}

// ErrorResponse carries a terminal error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toRunResponse(run models.SwarmRun) RunResponse {
	resp := RunResponse{
		RunID:      run.RunID,
		Status:     run.Status,
		Domain:     run.Domain.Name,
		Metadata:   run.Metadata,
		Decision:   run.FinalDecision,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
	for _, exec := range run.Executions {
		resp.Executions = append(resp.Executions, ExecutionSummary{
			ExecutionID: exec.ExecutionID,
			AgentID:     exec.AgentID,
			StepID:      exec.StepID,
			Successful:  exec.IsSuccessful(),
			Error:       exec.Error,
		})
	}
	return resp
}
