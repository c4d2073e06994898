package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidYAML    = errors.New("invalid YAML syntax")
	ErrInvalidValue   = errors.New("invalid field value")
)

const configFile = "swarmsre.yaml"

// Defaults returns the built-in configuration (the closed default set).
func Defaults() Config {
	enabled := true
	return Config{
		HTTP: HTTPConfig{Port: 8080, GinMode: "release"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "swarmsre",
			Database:        "swarmsre",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Trend: TrendConfig{
			DegradingThreshold:  0.15,
			RecoveringThreshold: 0.10,
			LookbackMinutes:     15,
			StepSeconds:         30,
		},
		Correlation: CorrelationConfig{WindowMinutes: 5},
		Decision: DecisionConfig{
			AcceptThreshold:   0.60,
			LLMThreshold:      0.60,
			SemanticThreshold: 0.60,
		},
		Swarm: SwarmConfig{
			MaxRetryRounds:       10,
			MaxTotalAttempts:     50,
			MaxRuntimeSeconds:    3000,
			StepDeadlineSeconds:  30,
			UseLLMFallback:       &enabled,
			LLMFallbackThreshold: 0.5,
			Workers:              4,
		},
		Dedup: DedupConfig{TTLSeconds: 300, LockLeaseSeconds: 60},
		Confidence: ConfidenceConfig{
			DecayRate:            0.001,
			PenaltyOverride:      0.10,
			ReinforcementSuccess: 0.05,
		},
		LLM: LLMConfig{Provider: "openai", Model: "gpt-4o-mini"},
	}
}

// Load reads swarmsre.yaml from configDir, expands environment
// variables, merges over the built-in defaults and validates. A missing
// file yields the defaults.
func Load(configDir string) (Config, error) {
	cfg := Defaults()

	path := filepath.Join(configDir, configFile)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No configuration file, using defaults", "path", path)
		return cfg, validate(cfg)
	case err != nil:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	// Shell-style ${VAR} expansion before parsing; missing variables
	// expand to empty and are caught by validation where required.
	data = []byte(os.ExpandEnv(string(data)))

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if err := mergo.Merge(&cfg, user, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("merge configuration: %w", err)
	}
	// mergo does not carry an explicit false over a set default pointer.
	if user.Swarm.UseLLMFallback != nil {
		cfg.Swarm.UseLLMFallback = user.Swarm.UseLLMFallback
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

func validate(cfg Config) error {
	checks := []struct {
		ok    bool
		field string
	}{
		{cfg.HTTP.Port > 0 && cfg.HTTP.Port < 65536, "http.port"},
		{cfg.Trend.DegradingThreshold > 0, "trend.degrading_threshold"},
		{cfg.Trend.RecoveringThreshold > 0, "trend.recovering_threshold"},
		{cfg.Trend.LookbackMinutes > 0, "trend.lookback_minutes"},
		{cfg.Correlation.WindowMinutes > 0, "correlation.window_minutes"},
		{cfg.Decision.AcceptThreshold > 0 && cfg.Decision.AcceptThreshold <= 1, "decision.accept_threshold"},
		{cfg.Decision.LLMThreshold > 0 && cfg.Decision.LLMThreshold <= 1, "decision.llm_threshold"},
		{cfg.Swarm.MaxRetryRounds > 0, "swarm.max_retry_rounds"},
		{cfg.Swarm.MaxTotalAttempts > 0, "swarm.max_total_attempts"},
		{cfg.Swarm.MaxRuntimeSeconds > 0, "swarm.max_runtime_seconds"},
		{cfg.Swarm.StepDeadlineSeconds > 0, "swarm.step_deadline_seconds"},
		{cfg.Dedup.TTLSeconds > 0, "dedup.ttl_seconds"},
		{cfg.Confidence.DecayRate >= 0 && cfg.Confidence.DecayRate < 1, "confidence.decay_rate"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidValue, c.field)
		}
	}
	return nil
}
