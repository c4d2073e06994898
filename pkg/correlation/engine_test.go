package correlation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/models"
)

var base = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func alert(fingerprint, service, severity string, offset time.Duration) models.NormalizedAlert {
	return models.NormalizedAlert{
		Timestamp:        base.Add(offset),
		Fingerprint:      fingerprint,
		Service:          service,
		Severity:         severity,
		Description:      "test alert",
		ValidationStatus: models.ValidationValid,
	}
}

func TestCorrelate_EmptyInput(t *testing.T) {
	clusters, err := NewEngine(Config{}).Correlate(nil)
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestCorrelate_FingerprintGrouping(t *testing.T) {
	clusters, err := NewEngine(Config{}).Correlate([]models.NormalizedAlert{
		alert("fp-a", "db", "critical", 0),
		alert("fp-a", "db", "critical", 30*time.Second),
		alert("fp-a", "db", "critical", 60*time.Second),
	})
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	c := clusters[0]
	assert.Equal(t, 3, c.AlertCount)
	// Base 0.9 + tight-span bonus 0.1.
	assert.InDelta(t, 1.0, c.CorrelationScore, 1e-9)
}

func TestCorrelate_FingerprintLooseSpanBonus(t *testing.T) {
	clusters, err := NewEngine(Config{}).Correlate([]models.NormalizedAlert{
		alert("fp-a", "db", "warning", 0),
		alert("fp-a", "db", "warning", 5*time.Minute+time.Second),
	})
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.InDelta(t, 0.95, clusters[0].CorrelationScore, 1e-9)
}

func TestCorrelate_ServiceTimeWindowGrouping(t *testing.T) {
	// Scenario: two critical alerts 30s apart, distinct fingerprints, same
	// service — one cluster via the service pass.
	clusters, err := NewEngine(Config{}).Correlate([]models.NormalizedAlert{
		alert("db-cpu-1", "postgres-primary", "critical", 0),
		alert("db-mem-1", "postgres-primary", "critical", 30*time.Second),
	})
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	c := clusters[0]
	assert.Equal(t, 2, c.AlertCount)
	assert.Equal(t, "postgres-primary", c.PrimaryService)
	assert.Equal(t, "critical", c.PrimarySeverity)
	// 0.6 base + 0.1 same severity + 0.1 tight span.
	assert.InDelta(t, 0.8, c.CorrelationScore, 1e-9)
}

func TestCorrelate_ServiceScoreCapped(t *testing.T) {
	clusters, err := NewEngine(Config{}).Correlate([]models.NormalizedAlert{
		alert("fp-1", "api", "warning", 0),
		alert("fp-2", "api", "warning", time.Second),
	})
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.LessOrEqual(t, clusters[0].CorrelationScore, 0.85)
}

func TestCorrelate_WindowSplitsServiceGroups(t *testing.T) {
	clusters, err := NewEngine(Config{}).Correlate([]models.NormalizedAlert{
		alert("fp-1", "api", "warning", 0),
		alert("fp-2", "api", "warning", 10*time.Minute),
	})
	require.NoError(t, err)
	assert.Len(t, clusters, 2)
	for _, c := range clusters {
		assert.InDelta(t, 0.7, c.CorrelationScore, 1e-9)
	}
}

func TestCorrelate_EveryAlertInExactlyOneCluster(t *testing.T) {
	input := []models.NormalizedAlert{
		alert("fp-a", "db", "critical", 0),
		alert("fp-a", "db", "critical", time.Minute),
		alert("fp-b", "api", "warning", 0),
		alert("fp-c", "api", "info", 2*time.Minute),
		alert("fp-d", "cache", "warning", 0),
	}

	clusters, err := NewEngine(Config{}).Correlate(input)
	require.NoError(t, err)

	seen := map[string]int{}
	total := 0
	for _, c := range clusters {
		total += c.AlertCount
		assert.Equal(t, len(c.Alerts), c.AlertCount)
		for _, a := range c.Alerts {
			seen[a.Fingerprint+"@"+a.Timestamp.Format(time.RFC3339)]++
		}
	}
	assert.Equal(t, len(input), total)
	for fp, count := range seen {
		assert.Equal(t, 1, count, "alert %s in more than one cluster", fp)
	}
}

func TestCorrelate_PrimaryServiceLexicographicTieBreak(t *testing.T) {
	clusters, err := NewEngine(Config{}).Correlate([]models.NormalizedAlert{
		alert("fp-x", "zebra", "warning", 0),
		alert("fp-x", "apple", "warning", time.Second),
	})
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, "apple", clusters[0].PrimaryService)
}

func TestCorrelate_DeterministicGivenSortedInput(t *testing.T) {
	input := []models.NormalizedAlert{
		alert("fp-a", "db", "critical", 0),
		alert("fp-a", "db", "warning", time.Minute),
		alert("fp-b", "api", "warning", 30*time.Second),
	}

	first, err := NewEngine(Config{}).Correlate(input)
	require.NoError(t, err)
	second, err := NewEngine(Config{}).Correlate(input)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].PrimaryService, second[i].PrimaryService)
		assert.Equal(t, first[i].CorrelationScore, second[i].CorrelationScore)
		assert.Equal(t, first[i].AlertCount, second[i].AlertCount)
	}
}
