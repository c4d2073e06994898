package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swarmsre.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 0.15, cfg.Trend.DegradingThreshold)
	assert.Equal(t, 0.10, cfg.Trend.RecoveringThreshold)
	assert.Equal(t, 5, cfg.Correlation.WindowMinutes)
	assert.Equal(t, 0.60, cfg.Decision.AcceptThreshold)
	assert.Equal(t, 10, cfg.Swarm.MaxRetryRounds)
	assert.Equal(t, 50, cfg.Swarm.MaxTotalAttempts)
	assert.Equal(t, 3000, cfg.Swarm.MaxRuntimeSeconds)
	assert.Equal(t, 30, cfg.Swarm.StepDeadlineSeconds)
	assert.True(t, cfg.Swarm.UseLLMFallbackEnabled())
	assert.Equal(t, 0.5, cfg.Swarm.LLMFallbackThreshold)
	assert.Equal(t, 300, cfg.Dedup.TTLSeconds)
	assert.Equal(t, 60, cfg.Dedup.LockLeaseSeconds)
	assert.Equal(t, 0.001, cfg.Confidence.DecayRate)
	assert.Equal(t, 0.10, cfg.Confidence.PenaltyOverride)
	assert.Equal(t, 0.05, cfg.Confidence.ReinforcementSuccess)
}

func TestLoad_UserOverridesMergeOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
http:
  port: 9999
trend:
  degrading_threshold: 0.25
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, 0.25, cfg.Trend.DegradingThreshold)
	// Untouched values keep their defaults.
	assert.Equal(t, 0.10, cfg.Trend.RecoveringThreshold)
	assert.Equal(t, 10, cfg.Swarm.MaxRetryRounds)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("SWARMSRE_TEST_TOKEN", "xoxb-secret")
	dir := writeConfig(t, `
slack:
  token: ${SWARMSRE_TEST_TOKEN}
  channel: "#alerts"
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "xoxb-secret", cfg.Slack.Token)
	assert.Equal(t, "#alerts", cfg.Slack.Channel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "http: [not: valid")
	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	dir := writeConfig(t, `
decision:
  accept_threshold: 7.5
`)
	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoad_DisableLLMFallback(t *testing.T) {
	dir := writeConfig(t, `
swarm:
  use_llm_fallback: false
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Swarm.UseLLMFallbackEnabled())
}
