package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/swarmops/swarmsre/pkg/llm"
	"github.com/swarmops/swarmsre/pkg/models"
)

// LLMAgentID is the id the coordinator's fallback gate dispatches to.
const LLMAgentID = "llm_agent"

// LLMAgent produces a HYPOTHESIS over the evidence gathered so far. It is
// the coordinator's last resort when mandatory steps failed or evidence
// confidence is low. Provider failures degrade to a simulated hypothesis
// so the run still terminates with a reviewable decision.
type LLMAgent struct {
	client llm.Client
}

// NewLLMAgent creates the hypothesis agent. client may be nil; every call
// then produces the simulated hypothesis.
func NewLLMAgent(client llm.Client) *LLMAgent {
	return &LLMAgent{client: client}
}

func (a *LLMAgent) ID() string      { return LLMAgentID }
func (a *LLMAgent) Version() string { return "1.0" }
func (a *LLMAgent) LogicHash() string {
	return hashFor(a.ID(), a.Version(), "root-cause hypothesis over aggregated run evidence")
}

type hypothesis struct {
	RootCause            string `json:"root_cause"`
	RecommendedProcedure string `json:"recommended_procedure"`
}

// Execute builds a context document from the step parameters (alert
// payload, run id, serialized evidence, gate inputs) and asks the
// provider for a JSON hypothesis.
func (a *LLMAgent) Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	exec := NewExecution(a, stepID, params)

	hyp := a.complete(ctx, params)
	exec.OutputEvidence = []models.Evidence{
		models.NewEvidence(exec.ExecutionID, a.ID(), models.EvidenceHypothesis, 0.6, map[string]any{
			"root_cause":            hyp.RootCause,
			"recommended_procedure": hyp.RecommendedProcedure,
		}),
	}
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

func (a *LLMAgent) complete(ctx context.Context, params map[string]any) hypothesis {
	fallback := hypothesis{
		RootCause:            "Automated analysis unavailable; evidence inconclusive",
		RecommendedProcedure: models.ActionManualReview,
	}
	if a.client == nil {
		return fallback
	}

	doc, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return fallback
	}
	prompt := fmt.Sprintf(
		"You are assisting an SRE swarm whose mandatory checks did not produce confident evidence.\n"+
			"Run context:\n%s\n\n"+
			"Return only a JSON object with fields: root_cause (string), recommended_procedure (string).",
		string(doc))

	text, err := a.client.Complete(ctx, prompt, llm.Options{Temperature: 0.3, MaxTokens: 512})
	if err != nil {
		slog.Warn("LLM agent call failed, using simulated hypothesis", "error", err)
		return fallback
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return fallback
	}
	var hyp hypothesis
	if err := json.Unmarshal([]byte(text[start:end+1]), &hyp); err != nil || hyp.RootCause == "" {
		return fallback
	}
	if hyp.RecommendedProcedure == "" {
		hyp.RecommendedProcedure = models.ActionManualReview
	}
	return hyp
}
