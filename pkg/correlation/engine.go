// Package correlation groups normalized alerts into clusters, each
// representing a single underlying incident.
package correlation

import (
	"log/slog"
	"sort"
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
)

// Default correlation tuning.
const (
	DefaultTimeWindow = 5 * time.Minute

	// Scores for fingerprint-matched groups.
	fingerprintBaseScore   = 0.9
	fingerprintTightBonus  = 0.1
	fingerprintLooseBonus  = 0.05
	fingerprintTightSpan   = 300 * time.Second
	singleFingerprintScore = 1.0

	// Scores for service+time-window groups.
	serviceBaseScore     = 0.6
	serviceSeverityBonus = 0.1
	serviceTemporalBonus = 0.1
	serviceScoreCap      = 0.85
	serviceTightSpan     = 180 * time.Second
	singleServiceScore   = 0.7
)

// Config tunes the correlation engine.
type Config struct {
	TimeWindow time.Duration
}

// Engine groups alerts in two deterministic passes: exact fingerprint
// match first, then service proximity within a time window.
type Engine struct {
	window time.Duration
}

// NewEngine creates an engine; a zero window uses the default.
func NewEngine(cfg Config) *Engine {
	window := cfg.TimeWindow
	if window <= 0 {
		window = DefaultTimeWindow
	}
	return &Engine{window: window}
}

// Correlate groups alerts into clusters. Every input alert lands in
// exactly one cluster. Output is deterministic: clusters appear in order
// of their earliest alert within each pass, fingerprint pass first.
func (e *Engine) Correlate(alerts []models.NormalizedAlert) ([]models.AlertCluster, error) {
	if len(alerts) == 0 {
		return nil, nil
	}

	sorted := make([]models.NormalizedAlert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var clusters []models.AlertCluster

	// Pass 1: alerts sharing a fingerprint describe the same firing rule.
	grouped, remaining := groupByFingerprint(sorted)
	for _, group := range grouped {
		cluster, err := models.NewAlertCluster(group, fingerprintScore(group))
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, cluster)
	}

	// Pass 2: remaining alerts grouped by service within the time window.
	for _, group := range e.groupByServiceTime(remaining) {
		cluster, err := models.NewAlertCluster(group, serviceScore(group))
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, cluster)
	}

	slog.Info("Correlated alerts into clusters",
		"alerts", len(alerts), "clusters", len(clusters))
	return clusters, nil
}

// groupByFingerprint returns groups of two or more alerts sharing a
// fingerprint, in first-seen order, plus the alerts left ungrouped.
func groupByFingerprint(sorted []models.NormalizedAlert) ([][]models.NormalizedAlert, []models.NormalizedAlert) {
	byFingerprint := make(map[string][]models.NormalizedAlert)
	var order []string
	for _, alert := range sorted {
		if _, seen := byFingerprint[alert.Fingerprint]; !seen {
			order = append(order, alert.Fingerprint)
		}
		byFingerprint[alert.Fingerprint] = append(byFingerprint[alert.Fingerprint], alert)
	}

	var groups [][]models.NormalizedAlert
	var remaining []models.NormalizedAlert
	for _, fp := range order {
		group := byFingerprint[fp]
		if len(group) >= 2 {
			groups = append(groups, group)
		}
	}
	for _, alert := range sorted {
		if len(byFingerprint[alert.Fingerprint]) < 2 {
			remaining = append(remaining, alert)
		}
	}
	return groups, remaining
}

// groupByServiceTime appends each alert to its service's open group when
// it falls within the window of that group's last alert, otherwise opens
// a new group for the service.
func (e *Engine) groupByServiceTime(sorted []models.NormalizedAlert) [][]models.NormalizedAlert {
	var groups [][]models.NormalizedAlert
	open := make(map[string]int) // service -> index of open group

	for _, alert := range sorted {
		if idx, ok := open[alert.Service]; ok {
			group := groups[idx]
			last := group[len(group)-1]
			if alert.Timestamp.Sub(last.Timestamp) <= e.window {
				groups[idx] = append(group, alert)
				continue
			}
		}
		groups = append(groups, []models.NormalizedAlert{alert})
		open[alert.Service] = len(groups) - 1
	}
	return groups
}

func fingerprintScore(group []models.NormalizedAlert) float64 {
	if len(group) <= 1 {
		return singleFingerprintScore
	}
	score := fingerprintBaseScore
	if timeSpan(group) <= fingerprintTightSpan {
		score += fingerprintTightBonus
	} else {
		score += fingerprintLooseBonus
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func serviceScore(group []models.NormalizedAlert) float64 {
	if len(group) <= 1 {
		return singleServiceScore
	}
	score := serviceBaseScore
	if allSeveritiesEqual(group) {
		score += serviceSeverityBonus
	}
	if timeSpan(group) <= serviceTightSpan {
		score += serviceTemporalBonus
	}
	if score > serviceScoreCap {
		score = serviceScoreCap
	}
	return score
}

func allSeveritiesEqual(group []models.NormalizedAlert) bool {
	for _, alert := range group[1:] {
		if alert.Severity != group[0].Severity {
			return false
		}
	}
	return true
}

func timeSpan(group []models.NormalizedAlert) time.Duration {
	earliest, latest := group[0].Timestamp, group[0].Timestamp
	for _, alert := range group[1:] {
		if alert.Timestamp.Before(earliest) {
			earliest = alert.Timestamp
		}
		if alert.Timestamp.After(latest) {
			latest = alert.Timestamp
		}
	}
	return latest.Sub(earliest)
}
