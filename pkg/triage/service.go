// Package triage drives the per-delivery pipeline: normalize alerts,
// correlate them into clusters, analyze metric trends, decide per
// cluster, and launch the swarm run for the incident.
package triage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/alerts"
	"github.com/swarmops/swarmsre/pkg/correlation"
	"github.com/swarmops/swarmsre/pkg/decision"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
	"github.com/swarmops/swarmsre/pkg/slack"
	"github.com/swarmops/swarmsre/pkg/swarm"
	"github.com/swarmops/swarmsre/pkg/trend"
)

// MetricSource supplies time series for a service's canonical metrics.
// nil disables trend analysis (rules fall through to manual review).
type MetricSource interface {
	FetchSeries(ctx context.Context, service string, lookback, step time.Duration) (map[string][]models.DataPoint, error)
}

// ClusterOutcome is the pipeline result for one cluster.
type ClusterOutcome struct {
	Cluster         models.AlertCluster           `json:"cluster"`
	Trends          map[string]models.MetricTrend `json:"trends,omitempty"`
	FusedState      models.TrendState             `json:"fused_state"`
	FusedConfidence float64                       `json:"fused_confidence"`
	Decision        models.Decision               `json:"decision"`
}

// Coordinator is the slice of the swarm coordinator the triage service
// drives.
type Coordinator interface {
	Execute(ctx context.Context, domain models.Domain, plan models.SwarmPlan,
		alert models.AlertEvent, runID string, opts swarm.ExecuteOptions,
	) (models.SwarmRun, []models.RetryAttempt, []models.RetryDecision, error)
}

// Config tunes the pipeline.
type Config struct {
	Trend           trend.Config
	Correlation     correlation.Config
	StepSeconds     int
	Domain          models.Domain
	SwarmAgentIDs   []string // agents planned for every run, in order
	RetryBase       time.Duration
	RetryMax        time.Duration
	RetryMaxRetries int
}

// Service is the webhook-facing pipeline.
type Service struct {
	normalizer   *alerts.Normalizer
	correlator   *correlation.Engine
	analyzer     *trend.Analyzer
	decider      *decision.Engine
	coordinator  Coordinator
	registry     *agent.Registry
	metricSource MetricSource
	notifier     *slack.Service
	cfg          Config
}

// NewService wires the pipeline. metricSource and notifier may be nil.
func NewService(decider *decision.Engine, coordinator Coordinator, registry *agent.Registry,
	metricSource MetricSource, notifier *slack.Service, cfg Config) *Service {

	if len(cfg.SwarmAgentIDs) == 0 {
		cfg.SwarmAgentIDs = []string{"loganalysis", "networkscanner"}
	}
	if cfg.StepSeconds <= 0 {
		cfg.StepSeconds = 30
	}
	return &Service{
		normalizer:   alerts.NewNormalizer(),
		correlator:   correlation.NewEngine(cfg.Correlation),
		analyzer:     trend.NewAnalyzer(cfg.Trend),
		decider:      decider,
		coordinator:  coordinator,
		registry:     registry,
		metricSource: metricSource,
		notifier:     notifier,
		cfg:          cfg,
	}
}

// Triage runs the decision pipeline over a raw alert batch and returns
// one outcome per cluster. Malformed alerts stay in their clusters for
// auditability.
func (s *Service) Triage(ctx context.Context, batch []models.RawAlert) ([]ClusterOutcome, error) {
	normalized := s.normalizer.NormalizeBatch(batch)
	clusters, err := s.correlator.Correlate(normalized)
	if err != nil {
		return nil, fmt.Errorf("triage: correlate: %w", err)
	}

	outcomes := make([]ClusterOutcome, 0, len(clusters))
	for _, cluster := range clusters {
		trends := s.analyzeCluster(ctx, cluster)
		fusedState, fusedConfidence := trend.FuseTrends(trends)

		d := s.decider.Decide(ctx, cluster, trends, nil)
		s.decider.IndexDecision(ctx, cluster, d)
		s.notifier.NotifyDecision(ctx, cluster.ClusterID, d)

		outcomes = append(outcomes, ClusterOutcome{
			Cluster:         cluster,
			Trends:          trends,
			FusedState:      fusedState,
			FusedConfidence: fusedConfidence,
			Decision:        d,
		})
	}
	return outcomes, nil
}

// LaunchRun executes the swarm for a delivery, keyed by the first
// alert's fingerprint.
func (s *Service) LaunchRun(ctx context.Context, batch []models.RawAlert, runID string,
	opts swarm.ExecuteOptions) (models.SwarmRun, error) {

	if len(batch) == 0 {
		return models.SwarmRun{}, fmt.Errorf("triage: empty alert batch")
	}
	first := batch[0].DeriveFields()

	event := models.AlertEvent{
		AlertID: first.Fingerprint,
		Data: map[string]any{
			"alertname":   first.Description,
			"service":     first.Service,
			"severity":    first.Severity,
			"source":      string(first.Source),
			"fingerprint": first.Fingerprint,
		},
	}

	plan := s.buildPlan()
	run, _, _, err := s.coordinator.Execute(ctx, s.cfg.Domain, plan, event, runID, opts)
	if err != nil {
		return models.SwarmRun{}, err
	}
	if run.FinalDecision != nil {
		s.notifier.NotifyDecision(ctx, run.RunID, *run.FinalDecision)
	}
	return run, nil
}

// buildPlan creates the standard plan over the configured agents,
// skipping any that are not registered.
func (s *Service) buildPlan() models.SwarmPlan {
	backoff := policy.NewExponentialBackoff(s.cfg.RetryBase, s.cfg.RetryMax, s.cfg.RetryMaxRetries)

	var steps []models.SwarmStep
	for _, agentID := range s.cfg.SwarmAgentIDs {
		if s.registry != nil && !s.registry.Has(agentID) {
			slog.Warn("Planned agent not registered, skipping", "agent_id", agentID)
			continue
		}
		steps = append(steps, models.NewSwarmStep(agentID, true).WithRetryPolicy(backoff))
	}
	return models.NewSwarmPlan("alert triage", steps)
}

func (s *Service) analyzeCluster(ctx context.Context, cluster models.AlertCluster) map[string]models.MetricTrend {
	if s.metricSource == nil {
		return nil
	}
	lookback := time.Duration(s.analyzerLookbackMinutes()) * time.Minute
	step := time.Duration(s.cfg.StepSeconds) * time.Second

	series, err := s.metricSource.FetchSeries(ctx, cluster.PrimaryService, lookback, step)
	if err != nil {
		slog.Warn("Metric fetch failed, deciding without trends",
			"service", cluster.PrimaryService, "error", err)
		return nil
	}
	return s.analyzer.AnalyzeAll(series)
}

func (s *Service) analyzerLookbackMinutes() int {
	if s.cfg.Trend.LookbackMinutes > 0 {
		return s.cfg.Trend.LookbackMinutes
	}
	return trend.DefaultLookbackMinutes
}
