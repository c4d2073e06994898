package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/models"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(NewLogAnalysisAgent())
	r.Register(NewNetworkScannerAgent())

	a, err := r.Get("loganalysis")
	require.NoError(t, err)
	assert.Equal(t, "loganalysis", a.ID())

	_, err = r.Get("missing")
	assert.Error(t, err)

	assert.Equal(t, []string{"loganalysis", "networkscanner"}, r.List())
	assert.True(t, r.Has("networkscanner"))
	assert.False(t, r.Has("missing"))
}

func TestLogAnalysisAgent_ProducesLogEvidence(t *testing.T) {
	a := NewLogAnalysisAgent()

	exec, err := a.Execute(context.Background(), map[string]any{
		"log_lines": []string{"INFO started", "ERROR connection refused", "panic: oh no"},
	}, "step-1")

	require.NoError(t, err)
	assert.True(t, exec.IsSuccessful())
	require.Len(t, exec.OutputEvidence, 1)

	ev := exec.OutputEvidence[0]
	assert.Equal(t, models.EvidenceLog, ev.Type)
	assert.Equal(t, "loganalysis", ev.AgentID)
	assert.Equal(t, exec.ExecutionID, ev.SourceExecutionID)
	assert.Equal(t, 2, ev.Content["error_count"])
}

func TestAgents_CarryStableLogicHash(t *testing.T) {
	assert.Equal(t, NewLogAnalysisAgent().LogicHash(), NewLogAnalysisAgent().LogicHash())
	assert.NotEqual(t, NewLogAnalysisAgent().LogicHash(), NewThreatIntelAgent().LogicHash())
}

func TestLLMAgent_NilClientProducesSimulatedHypothesis(t *testing.T) {
	a := NewLLMAgent(nil)

	exec, err := a.Execute(context.Background(), map[string]any{"run_id": "r1"}, "step-llm")

	require.NoError(t, err)
	assert.True(t, exec.IsSuccessful())
	require.Len(t, exec.OutputEvidence, 1)
	ev := exec.OutputEvidence[0]
	assert.Equal(t, models.EvidenceHypothesis, ev.Type)
	assert.Equal(t, models.ActionManualReview, ev.Content["recommended_procedure"])
}

func TestFailedExecution(t *testing.T) {
	exec := FailedExecution("ghost", "step-1", nil, "agent not registered")
	assert.False(t, exec.IsSuccessful())
	assert.Equal(t, "ghost", exec.AgentID)
}
