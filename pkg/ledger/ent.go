package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swarmops/swarmsre/ent"
	"github.com/swarmops/swarmsre/ent/agentexecution"
	"github.com/swarmops/swarmsre/ent/confidencesnapshot"
	"github.com/swarmops/swarmsre/ent/procedure"
	"github.com/swarmops/swarmsre/ent/swarmrun"
	"github.com/swarmops/swarmsre/pkg/models"
)

func newID() string { return uuid.New().String() }

// EntLedger is the Postgres-backed Ledger implementation.
type EntLedger struct {
	client *ent.Client
}

// NewEntLedger creates a ledger over an ent client.
func NewEntLedger(client *ent.Client) *EntLedger {
	return &EntLedger{client: client}
}

// SaveSwarmRun writes the run, its executions, evidence, retry records
// and final decision in one transaction.
func (l *EntLedger) SaveSwarmRun(ctx context.Context, run models.SwarmRun, alert models.AlertEvent,
	retries []models.RetryAttempt, retryDecisions []models.RetryDecision) error {

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("ledger: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.SwarmRun.Create().
		SetID(run.RunID).
		SetDomain(run.Domain).
		SetPlan(run.Plan).
		SetMasterSeed(run.MasterSeed).
		SetStatus(string(run.Status)).
		SetRunMetadata(run.Metadata).
		SetAlertID(alert.AlertID).
		SetAlertData(alert.Data).
		SetStartedAt(run.StartedAt).
		SetFinishedAt(run.FinishedAt).
		Save(ctx); err != nil {
		return fmt.Errorf("ledger: create run %s: %w", run.RunID, err)
	}

	for ordinal, exec := range run.Executions {
		create := tx.AgentExecution.Create().
			SetID(exec.ExecutionID).
			SetRunID(run.RunID).
			SetAgentID(exec.AgentID).
			SetAgentVersion(exec.AgentVersion).
			SetLogicHash(exec.LogicHash).
			SetStepID(exec.StepID).
			SetOrdinal(ordinal).
			SetInputParameters(exec.InputParameters).
			SetStartedAt(exec.StartedAt).
			SetFinishedAt(exec.FinishedAt)
		if exec.Error != "" {
			create.SetError(exec.Error)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("ledger: create execution %s: %w", exec.ExecutionID, err)
		}

		for _, ev := range exec.OutputEvidence {
			if _, err := tx.Evidence.Create().
				SetID(ev.EvidenceID).
				SetExecutionID(exec.ExecutionID).
				SetAgentID(ev.AgentID).
				SetContent(ev.Content).
				SetConfidence(ev.Confidence).
				SetEvidenceType(string(ev.Type)).
				Save(ctx); err != nil {
				return fmt.Errorf("ledger: create evidence %s: %w", ev.EvidenceID, err)
			}
		}
	}

	for _, attempt := range retries {
		if _, err := tx.RetryAttempt.Create().
			SetID(attempt.AttemptID).
			SetRunID(run.RunID).
			SetStepID(attempt.StepID).
			SetAttemptNumber(attempt.AttemptNumber).
			SetDelaySeconds(attempt.DelaySeconds).
			SetReason(attempt.Reason).
			SetFailedExecutionID(attempt.FailedExecutionID).
			Save(ctx); err != nil {
			return fmt.Errorf("ledger: create retry attempt %s: %w", attempt.AttemptID, err)
		}
	}

	for _, rd := range retryDecisions {
		if _, err := tx.RetryDecision.Create().
			SetID(rd.DecisionID).
			SetRunID(run.RunID).
			SetStepID(rd.StepID).
			SetAttemptID(rd.AttemptID).
			SetReason(rd.Reason).
			SetPolicyName(rd.PolicyName).
			SetPolicyVersion(rd.PolicyVersion).
			SetPolicyLogicHash(rd.PolicyLogicHash).
			Save(ctx); err != nil {
			return fmt.Errorf("ledger: create retry decision %s: %w", rd.DecisionID, err)
		}
	}

	if run.FinalDecision != nil {
		d := run.FinalDecision
		create := tx.Decision.Create().
			SetID(d.DecisionID).
			SetRunID(run.RunID).
			SetState(string(d.State)).
			SetActionProposed(d.ActionProposed).
			SetConfidence(d.Confidence).
			SetJustification(d.Justification).
			SetRulesApplied(d.RulesApplied).
			SetSemanticEvidence(d.SemanticEvidence).
			SetLlmContribution(d.LLMContribution).
			SetDecisionMetadata(d.Metadata).
			SetCreatedAt(d.CreatedAt)
		if d.LLMReason != "" {
			create.SetLlmReason(d.LLMReason)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("ledger: create decision %s: %w", d.DecisionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ledger: commit run %s: %w", run.RunID, err)
	}
	return nil
}

// SaveHumanOverride writes the override record and its outcome.
func (l *EntLedger) SaveHumanOverride(ctx context.Context, decision models.Decision,
	human models.HumanDecision, outcome models.OperationalOutcome) error {

	_, err := l.client.HumanOverride.Create().
		SetID(newID()).
		SetDecisionID(decision.DecisionID).
		SetAction(string(human.Action)).
		SetAuthor(human.Author).
		SetOverrideReason(human.OverrideReason).
		SetOverriddenAction(human.OverriddenActionProposed).
		SetOutcome(outcome).
		SetCreatedAt(human.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("ledger: create human override for %s: %w", decision.DecisionID, err)
	}
	return nil
}

// CreateConfidenceSnapshot appends one snapshot; the unique
// (agent_id, sequence_id) index rejects a repeated sequence id for an
// agent. It does not check that sequence ids increase.
func (l *EntLedger) CreateConfidenceSnapshot(ctx context.Context, snapshot models.ConfidenceSnapshot) error {
	_, err := l.client.ConfidenceSnapshot.Create().
		SetID(snapshot.SnapshotID).
		SetAgentID(snapshot.AgentID).
		SetValue(snapshot.Value).
		SetSourceEvent(string(snapshot.SourceEvent)).
		SetSequenceID(snapshot.SequenceID).
		SetCauseRef(snapshot.CauseRef).
		SetCauseType(snapshot.CauseType).
		SetCreatedAt(snapshot.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("ledger: create snapshot %s: %w", snapshot.SnapshotID, err)
	}
	return nil
}

// LinkSnapshotToCause records the causal edge on the snapshot row.
func (l *EntLedger) LinkSnapshotToCause(ctx context.Context, snapshotID, causeID, causeType string) error {
	err := l.client.ConfidenceSnapshot.UpdateOneID(snapshotID).
		SetCauseRef(causeID).
		SetCauseType(causeType).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("ledger: link snapshot %s: %w", snapshotID, err)
	}
	return nil
}

// LastConfidenceSnapshot returns the newest snapshot for an agent.
func (l *EntLedger) LastConfidenceSnapshot(ctx context.Context, agentID string) (models.ConfidenceSnapshot, error) {
	row, err := l.client.ConfidenceSnapshot.Query().
		Where(confidencesnapshot.AgentID(agentID)).
		Order(ent.Desc(confidencesnapshot.FieldSequenceID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.ConfidenceSnapshot{}, ErrNotFound
		}
		return models.ConfidenceSnapshot{}, fmt.Errorf("ledger: query snapshot for %s: %w", agentID, err)
	}
	return models.ConfidenceSnapshot{
		SnapshotID:  row.ID,
		AgentID:     row.AgentID,
		Value:       row.Value,
		SourceEvent: models.ConfidenceSource(row.SourceEvent),
		SequenceID:  row.SequenceID,
		CauseRef:    row.CauseRef,
		CauseType:   row.CauseType,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// FetchFullRunContext loads the run with every execution, evidence and
// retry record, plus the snapshots of the agents involved.
func (l *EntLedger) FetchFullRunContext(ctx context.Context, runID string) (models.RunContext, error) {
	row, err := l.client.SwarmRun.Query().
		Where(swarmrun.ID(runID)).
		WithExecutions(func(q *ent.AgentExecutionQuery) {
			q.Order(ent.Asc(agentexecution.FieldOrdinal)).WithEvidences()
		}).
		WithRetryAttempts().
		WithRetryDecisions().
		WithDecision(func(q *ent.DecisionQuery) {
			q.WithHumanOverride()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.RunContext{}, ErrNotFound
		}
		return models.RunContext{}, fmt.Errorf("ledger: fetch run %s: %w", runID, err)
	}

	run := l.assembleRun(row)
	rc := models.RunContext{
		Run:   run,
		Alert: models.AlertEvent{AlertID: row.AlertID, Data: row.AlertData},
	}
	for _, a := range row.Edges.RetryAttempts {
		rc.RetryAttempts = append(rc.RetryAttempts, models.RetryAttempt{
			AttemptID:         a.ID,
			StepID:            a.StepID,
			AttemptNumber:     a.AttemptNumber,
			DelaySeconds:      a.DelaySeconds,
			Reason:            a.Reason,
			FailedExecutionID: a.FailedExecutionID,
		})
	}
	for _, d := range row.Edges.RetryDecisions {
		rc.RetryDecisions = append(rc.RetryDecisions, models.RetryDecision{
			DecisionID:      d.ID,
			StepID:          d.StepID,
			AttemptID:       d.AttemptID,
			Reason:          d.Reason,
			PolicyName:      d.PolicyName,
			PolicyVersion:   d.PolicyVersion,
			PolicyLogicHash: d.PolicyLogicHash,
		})
	}

	seen := map[string]struct{}{}
	for _, exec := range run.Executions {
		if _, dup := seen[exec.AgentID]; dup {
			continue
		}
		seen[exec.AgentID] = struct{}{}
		snaps, err := l.client.ConfidenceSnapshot.Query().
			Where(confidencesnapshot.AgentID(exec.AgentID)).
			Order(ent.Asc(confidencesnapshot.FieldSequenceID)).
			All(ctx)
		if err != nil {
			return models.RunContext{}, fmt.Errorf("ledger: fetch snapshots for %s: %w", exec.AgentID, err)
		}
		for _, s := range snaps {
			rc.Snapshots = append(rc.Snapshots, models.ConfidenceSnapshot{
				SnapshotID:  s.ID,
				AgentID:     s.AgentID,
				Value:       s.Value,
				SourceEvent: models.ConfidenceSource(s.SourceEvent),
				SequenceID:  s.SequenceID,
				CauseRef:    s.CauseRef,
				CauseType:   s.CauseType,
				CreatedAt:   s.CreatedAt,
			})
		}
	}
	return rc, nil
}

// GetRun loads a run without its snapshot history.
func (l *EntLedger) GetRun(ctx context.Context, runID string) (models.SwarmRun, error) {
	row, err := l.client.SwarmRun.Query().
		Where(swarmrun.ID(runID)).
		WithExecutions(func(q *ent.AgentExecutionQuery) {
			q.Order(ent.Asc(agentexecution.FieldOrdinal)).WithEvidences()
		}).
		WithDecision(func(q *ent.DecisionQuery) {
			q.WithHumanOverride()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.SwarmRun{}, ErrNotFound
		}
		return models.SwarmRun{}, fmt.Errorf("ledger: get run %s: %w", runID, err)
	}
	return l.assembleRun(row), nil
}

// FindProcedureBySignature looks up a known procedure.
func (l *EntLedger) FindProcedureBySignature(ctx context.Context, signature string) (Procedure, error) {
	row, err := l.client.Procedure.Get(ctx, signature)
	if err != nil {
		if ent.IsNotFound(err) {
			return Procedure{}, ErrNotFound
		}
		return Procedure{}, fmt.Errorf("ledger: find procedure: %w", err)
	}
	return Procedure{
		Signature:   row.ID,
		Name:        row.Name,
		Description: row.Description,
		RunbookURL:  row.RunbookURL,
	}, nil
}

// RegisterProcedure stores a known procedure.
func (l *EntLedger) RegisterProcedure(ctx context.Context, p Procedure) error {
	err := l.client.Procedure.Create().
		SetID(p.Signature).
		SetName(p.Name).
		SetDescription(p.Description).
		SetRunbookURL(p.RunbookURL).
		OnConflictColumns(procedure.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("ledger: register procedure %s: %w", p.Signature, err)
	}
	return nil
}

func (l *EntLedger) assembleRun(row *ent.SwarmRun) models.SwarmRun {
	run := models.SwarmRun{
		RunID:      row.ID,
		Domain:     row.Domain,
		Plan:       row.Plan,
		MasterSeed: row.MasterSeed,
		Metadata:   row.RunMetadata,
		Status:     models.RunStatus(row.Status),
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
	}
	for _, exec := range row.Edges.Executions {
		me := models.AgentExecution{
			ExecutionID:     exec.ID,
			AgentID:         exec.AgentID,
			AgentVersion:    exec.AgentVersion,
			LogicHash:       exec.LogicHash,
			StepID:          exec.StepID,
			InputParameters: exec.InputParameters,
			StartedAt:       exec.StartedAt,
			FinishedAt:      exec.FinishedAt,
		}
		if exec.Error != nil {
			me.Error = *exec.Error
		}
		for _, ev := range exec.Edges.Evidences {
			me.OutputEvidence = append(me.OutputEvidence, models.Evidence{
				EvidenceID:        ev.ID,
				SourceExecutionID: ev.ExecutionID,
				AgentID:           ev.AgentID,
				Content:           ev.Content,
				Confidence:        ev.Confidence,
				Type:              models.EvidenceType(ev.EvidenceType),
			})
		}
		run.Executions = append(run.Executions, me)
	}
	if d := row.Edges.Decision; d != nil {
		decision := models.Decision{
			DecisionID:       d.ID,
			State:            models.DecisionState(d.State),
			ActionProposed:   d.ActionProposed,
			Confidence:       d.Confidence,
			Justification:    d.Justification,
			RulesApplied:     d.RulesApplied,
			SemanticEvidence: d.SemanticEvidence,
			LLMContribution:  d.LlmContribution,
			Metadata:         d.DecisionMetadata,
			CreatedAt:        d.CreatedAt,
		}
		if d.LlmReason != nil {
			decision.LLMReason = *d.LlmReason
		}
		if h := d.Edges.HumanOverride; h != nil {
			decision.HumanDecision = &models.HumanDecision{
				Action:                   models.HumanAction(h.Action),
				Author:                   h.Author,
				OverrideReason:           h.OverrideReason,
				OverriddenActionProposed: h.OverriddenAction,
				Timestamp:                h.CreatedAt,
			}
		}
		// Reattach evidence to the decision the way the controllers
		// produced it: every evidence of a successful execution that the
		// decision aggregated.
		decision.SupportingEvidence = supportingEvidence(run.Executions)
		run.FinalDecision = &decision
	}
	return run
}

// supportingEvidence rebuilds the decision's evidence set from the
// persisted executions.
func supportingEvidence(executions []models.AgentExecution) []models.Evidence {
	var out []models.Evidence
	for _, exec := range executions {
		if exec.IsSuccessful() {
			out = append(out, exec.OutputEvidence...)
		}
	}
	return out
}
