// Package replay reconstructs past swarm runs deterministically from the
// persisted run context and reports causal divergences.
package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
	"github.com/swarmops/swarmsre/pkg/swarm"
)

// Coordinator is the slice of the swarm coordinator the replay engine
// drives.
type Coordinator interface {
	Execute(ctx context.Context, domain models.Domain, plan models.SwarmPlan,
		alert models.AlertEvent, runID string, opts swarm.ExecuteOptions,
	) (models.SwarmRun, []models.RetryAttempt, []models.RetryDecision, error)
}

// Engine replays persisted runs.
type Engine struct {
	store    ledger.Ledger
	resolver *policy.Resolver
}

// NewEngine creates a replay engine over the ledger. The resolver
// rebinds persisted policy names to live implementations; nil uses the
// default resolver.
func NewEngine(store ledger.Ledger, resolver *policy.Resolver) *Engine {
	if resolver == nil {
		resolver = policy.NewResolver()
	}
	return &Engine{store: store, resolver: resolver}
}

// Replay loads the full run context and re-executes the coordinator in
// replay mode: agents are not called, historical executions are returned
// per step, and retry policies evaluate against the same seeds. With an
// unchanged plan the report has zero divergences and zero confidence
// delta. newPlan may substitute the plan to evaluate a policy or plan
// change against history.
func (e *Engine) Replay(ctx context.Context, runID string, coordinator Coordinator,
	newPlan *models.SwarmPlan) (models.ReplayReport, error) {

	original, err := e.store.FetchFullRunContext(ctx, runID)
	if err != nil {
		return models.ReplayReport{}, fmt.Errorf("replay: load run %s: %w", runID, err)
	}
	if original.Run.FinalDecision == nil {
		return models.ReplayReport{}, fmt.Errorf("replay: run %s has no final decision", runID)
	}

	plan := original.Run.Plan
	if newPlan != nil {
		plan = *newPlan
	}
	e.rebindPolicies(&plan)

	seed := original.Run.MasterSeed
	replayed, _, _, err := coordinator.Execute(ctx, original.Run.Domain, plan,
		original.Alert, runID, swarm.ExecuteOptions{
			MasterSeed:       &seed,
			Replay:           true,
			ReplayExecutions: original.Run.Executions,
		})
	if err != nil {
		return models.ReplayReport{}, fmt.Errorf("replay: re-execute run %s: %w", runID, err)
	}
	if replayed.FinalDecision == nil {
		return models.ReplayReport{}, fmt.Errorf("replay: replayed run %s produced no decision", runID)
	}

	originalDecision := original.Run.FinalDecision
	replayedDecision := replayed.FinalDecision

	var divergences []string
	if !sameEvidenceSet(originalDecision.SupportingEvidence, replayedDecision.SupportingEvidence) {
		divergences = append(divergences, "evidence set mismatch")
	}
	if originalDecision.ActionProposed != replayedDecision.ActionProposed {
		divergences = append(divergences, fmt.Sprintf("final action mismatch: %s != %s",
			originalDecision.ActionProposed, replayedDecision.ActionProposed))
	}

	return models.ReplayReport{
		ReportID:           uuid.New().String(),
		OriginalDecisionID: originalDecision.DecisionID,
		ReplayedDecisionID: replayedDecision.DecisionID,
		CausalDivergences:  divergences,
		ConfidenceDelta:    replayedDecision.Confidence - originalDecision.Confidence,
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// rebindPolicies restores live retry policies on steps loaded from the
// ledger, which persists only the policy identity.
func (e *Engine) rebindPolicies(plan *models.SwarmPlan) {
	for i := range plan.Steps {
		step := &plan.Steps[i]
		if step.RetryPolicy != nil || step.PolicyName == "" {
			continue
		}
		p, err := e.resolver.Resolve(step.PolicyName)
		if err != nil {
			continue
		}
		step.RetryPolicy = p
	}
}

func sameEvidenceSet(a, b []models.Evidence) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]struct{}, len(a))
	for _, ev := range a {
		ids[ev.EvidenceID] = struct{}{}
	}
	for _, ev := range b {
		if _, ok := ids[ev.EvidenceID]; !ok {
			return false
		}
	}
	return true
}
