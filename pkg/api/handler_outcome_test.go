package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
)

func seedFinishedRun(t *testing.T, f *fixture, runID string) models.SwarmRun {
	t.Helper()
	d := models.NewDecision(models.DecisionEscalate, 0.85, "critical degrading")
	d.SupportingEvidence = []models.Evidence{
		{EvidenceID: "ev1", AgentID: "loganalysis", Confidence: 0.9, Type: models.EvidenceLog},
	}
	run := models.SwarmRun{
		RunID:         runID,
		Domain:        models.Domain{ID: "sre", Name: "site-reliability"},
		Plan:          models.NewSwarmPlan("triage", nil),
		FinalDecision: &d,
		Status:        models.RunFinished,
	}
	require.NoError(t, f.store.SaveSwarmRun(context.Background(), run,
		models.AlertEvent{AlertID: "alert-outcome"}, nil, nil))
	return run
}

func TestReportOutcome_SuccessReinforcesAgents(t *testing.T) {
	f := newFixture(t)
	conf := confidence.NewService(f.store)
	f.server.SetConfidenceService(conf, policy.DefaultConfidencePolicy())
	seedFinishedRun(t, f, "run-outcome")

	// Drop the agent's confidence so reinforcement is observable.
	require.NoError(t, conf.PenalizeForOverride(context.Background(),
		"loganalysis", "d-prior", policy.DefaultConfidencePolicy()))
	before := conf.GetLastConfidence(context.Background(), "loganalysis")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs/run-outcome/outcome",
		strings.NewReader(`{"status":"success","details":"resolved by scaling"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	after := conf.GetLastConfidence(context.Background(), "loganalysis")
	assert.InDelta(t, before+0.05, after, 1e-9)
}

func TestReportOutcome_UnknownRun(t *testing.T) {
	f := newFixture(t)
	f.server.SetConfidenceService(confidence.NewService(f.store), policy.DefaultConfidencePolicy())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs/missing/outcome",
		strings.NewReader(`{"status":"success"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportOutcome_MissingStatusRejected(t *testing.T) {
	f := newFixture(t)
	f.server.SetConfidenceService(confidence.NewService(f.store), policy.DefaultConfidencePolicy())
	seedFinishedRun(t, f, "run-badreq")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs/run-badreq/outcome",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
