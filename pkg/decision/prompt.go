package decision

import (
	"fmt"
	"sort"
	"strings"

	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/rules"
)

const maxPromptAlerts = 5
const maxPromptEvidence = 3

// buildPrompt assembles the structured fallback prompt: cluster summary,
// per-metric trends, up to three semantic matches and the winning rule
// result, followed by the JSON output instruction.
func buildPrompt(cluster models.AlertCluster, trends map[string]models.MetricTrend,
	evidence []models.SemanticEvidence, ruleResult rules.Result) string {

	var b strings.Builder
	b.WriteString("# Alert Cluster Analysis\n\n")
	b.WriteString("## Cluster Summary\n")
	fmt.Fprintf(&b, "- Service: %s\n", cluster.PrimaryService)
	fmt.Fprintf(&b, "- Severity: %s\n", cluster.PrimarySeverity)
	fmt.Fprintf(&b, "- Alert Count: %d\n", cluster.AlertCount)
	fmt.Fprintf(&b, "- Correlation Score: %.2f\n", cluster.CorrelationScore)

	b.WriteString("\n## Alert Descriptions\n")
	for i, alert := range cluster.Alerts {
		if i >= maxPromptAlerts {
			break
		}
		fmt.Fprintf(&b, "- %s\n", alert.Description)
	}

	b.WriteString("\n## Metric Trends\n")
	names := make([]string, 0, len(trends))
	for name := range trends {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := trends[name]
		fmt.Fprintf(&b, "- %s: %s (confidence: %.2f)\n", name, t.State, t.Confidence)
	}

	b.WriteString("\n## Historical Evidence\n")
	if len(evidence) == 0 {
		b.WriteString("- No historical matches found\n")
	} else {
		for i, ev := range evidence {
			if i >= maxPromptEvidence {
				break
			}
			fmt.Fprintf(&b, "- Score %.2f: %s\n", ev.SimilarityScore, ev.Summary)
		}
	}

	b.WriteString("\n## Rule Evaluation\n")
	fmt.Fprintf(&b, "- Result: %s\n", ruleResult.State)
	fmt.Fprintf(&b, "- Confidence: %.2f\n", ruleResult.Confidence)
	fmt.Fprintf(&b, "- Rule: %s\n", ruleResult.RuleID)
	fmt.Fprintf(&b, "- Justification: %s\n", ruleResult.Justification)

	b.WriteString("\nYou are an automated assistant that recommends an action for an alert. " +
		"Return only a JSON object with fields: state (CLOSE/OBSERVE/ESCALATE/MANUAL_REVIEW), " +
		"confidence (float 0.0-1.0), justification (short string).\n")

	return b.String()
}

// clusterSummaryText is the canonical text embedded for semantic search
// and stored alongside persisted decisions.
func clusterSummaryText(cluster models.AlertCluster) string {
	descriptions := make([]string, 0, len(cluster.Alerts))
	for _, a := range cluster.Alerts {
		descriptions = append(descriptions, a.Description)
	}
	return fmt.Sprintf("%s %s %s", cluster.PrimaryService, cluster.PrimarySeverity,
		strings.Join(descriptions, " "))
}
