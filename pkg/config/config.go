// Package config loads and validates the service configuration:
// swarmsre.yaml merged over built-in defaults, with shell-style
// environment expansion.
package config

import "time"

// Config is the fully resolved service configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Trend       TrendConfig       `yaml:"trend"`
	Correlation CorrelationConfig `yaml:"correlation"`
	Decision    DecisionConfig    `yaml:"decision"`
	Swarm       SwarmConfig       `yaml:"swarm"`
	Dedup       DedupConfig       `yaml:"dedup"`
	Confidence  ConfidenceConfig  `yaml:"confidence"`
	LLM         LLMConfig         `yaml:"llm"`
	Vector      VectorConfig      `yaml:"vector"`
	Prometheus  PrometheusConfig  `yaml:"prometheus"`
	Slack       SlackConfig       `yaml:"slack"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

// DatabaseConfig configures the Postgres connection.
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// RedisConfig configures the deduplicator backend. An empty address
// selects the in-memory deduplicator.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TrendConfig tunes the trend analyzer.
type TrendConfig struct {
	DegradingThreshold  float64 `yaml:"degrading_threshold"`
	RecoveringThreshold float64 `yaml:"recovering_threshold"`
	LookbackMinutes     int     `yaml:"lookback_minutes"`
	StepSeconds         int     `yaml:"step_seconds"`
}

// CorrelationConfig tunes alert clustering.
type CorrelationConfig struct {
	WindowMinutes int `yaml:"window_minutes"`
}

// DecisionConfig tunes the rule engine and the fallback.
type DecisionConfig struct {
	AcceptThreshold   float64 `yaml:"accept_threshold"`
	LLMThreshold      float64 `yaml:"llm_threshold"`
	SemanticThreshold float64 `yaml:"semantic_threshold"`
}

// SwarmConfig bounds swarm runs.
type SwarmConfig struct {
	MaxRetryRounds       int     `yaml:"max_retry_rounds"`
	MaxTotalAttempts     int     `yaml:"max_total_attempts"`
	MaxRuntimeSeconds    int     `yaml:"max_runtime_seconds"`
	StepDeadlineSeconds  int     `yaml:"step_deadline_seconds"`
	UseLLMFallback       *bool   `yaml:"use_llm_fallback"`
	LLMFallbackThreshold float64 `yaml:"llm_fallback_threshold"`
	Workers              int     `yaml:"workers"`
}

// DedupConfig tunes the duplicate-suppression window.
type DedupConfig struct {
	TTLSeconds       int `yaml:"ttl_seconds"`
	LockLeaseSeconds int `yaml:"lock_lease_seconds"`
}

// ConfidenceConfig tunes agent credibility adjustments.
type ConfidenceConfig struct {
	DecayRate            float64 `yaml:"decay_rate"`
	PenaltyOverride      float64 `yaml:"penalty_override"`
	ReinforcementSuccess float64 `yaml:"reinforcement_success"`
}

// LLMConfig selects and parameterizes the completion provider.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

// VectorConfig configures the vector store. An empty URL selects the
// in-memory store.
type VectorConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// PrometheusConfig points at the metrics source queried by agents.
type PrometheusConfig struct {
	URL string `yaml:"url"`
}

// SlackConfig configures decision notifications.
type SlackConfig struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`
}

// UseLLMFallbackEnabled resolves the tri-state flag with its default of
// true.
func (c SwarmConfig) UseLLMFallbackEnabled() bool {
	if c.UseLLMFallback == nil {
		return true
	}
	return *c.UseLLMFallback
}
