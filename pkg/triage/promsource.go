package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/promquery"
)

// canonicalMetrics are the per-service series fed to the trend analyzer.
var canonicalMetrics = map[string]string{
	"cpu_usage":    `avg(rate(container_cpu_usage_seconds_total{service=%q}[5m])) * 100`,
	"memory_usage": `avg(container_memory_working_set_bytes{service=%q}) / avg(container_spec_memory_limit_bytes{service=%q}) * 100`,
	"error_rate":   `sum(rate(http_requests_total{service=%q,code=~"5.."}[5m]))`,
}

// PromSource fetches the canonical metric series from Prometheus.
type PromSource struct {
	client *promquery.Client
}

// NewPromSource wraps a Prometheus query client.
func NewPromSource(client *promquery.Client) *PromSource {
	return &PromSource{client: client}
}

// FetchSeries runs the canonical queries for the service over the
// lookback window. Metrics that fail or return nothing are omitted
// rather than failing the whole set.
func (s *PromSource) FetchSeries(ctx context.Context, service string, lookback, step time.Duration) (map[string][]models.DataPoint, error) {
	end := time.Now()
	start := end.Add(-lookback)

	series := make(map[string][]models.DataPoint, len(canonicalMetrics))
	for name, template := range canonicalMetrics {
		query := formatQuery(template, service)
		points, err := s.client.QueryRange(ctx, query, start, end, step)
		if err != nil || len(points) == 0 {
			continue
		}
		series[name] = points
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("triage: no metric series for service %s", service)
	}
	return series, nil
}

func formatQuery(template, service string) string {
	// Templates embed the service name one or two times.
	args := make([]any, 0, 2)
	for i := 0; i < countVerbs(template); i++ {
		args = append(args, service)
	}
	return fmt.Sprintf(template, args...)
}

func countVerbs(template string) int {
	count := 0
	for i := 0; i+1 < len(template); i++ {
		if template[i] == '%' && template[i+1] == 'q' {
			count++
		}
	}
	return count
}
