// swarmsre is the alert-triage and decision orchestration service: it
// ingests monitoring alerts, correlates them, runs the agent swarm and
// persists an auditable causal record of every run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/api"
	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/config"
	"github.com/swarmops/swarmsre/pkg/correlation"
	"github.com/swarmops/swarmsre/pkg/database"
	"github.com/swarmops/swarmsre/pkg/decision"
	"github.com/swarmops/swarmsre/pkg/dedup"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/llm"
	"github.com/swarmops/swarmsre/pkg/metrics"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
	"github.com/swarmops/swarmsre/pkg/promquery"
	"github.com/swarmops/swarmsre/pkg/runner"
	"github.com/swarmops/swarmsre/pkg/slack"
	"github.com/swarmops/swarmsre/pkg/swarm"
	"github.com/swarmops/swarmsre/pkg/trend"
	"github.com/swarmops/swarmsre/pkg/triage"
	"github.com/swarmops/swarmsre/pkg/vector"
	"github.com/swarmops/swarmsre/pkg/version"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("No %s file, continuing with existing environment", envPath)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.Info("Starting swarmsre", "version", version.Full())

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ledger: Postgres when configured, in-memory otherwise.
	var store ledger.Ledger
	var healthCheck func(context.Context) error
	if os.Getenv("SWARMSRE_IN_MEMORY") == "true" {
		slog.Warn("Running with the in-memory ledger; runs are not durable")
		store = ledger.NewMemoryLedger()
	} else {
		dbClient, err := database.Open(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Failed to close database client", "error", err)
			}
		}()
		store = ledger.NewEntLedger(dbClient.Client)
		healthCheck = func(ctx context.Context) error { return database.Health(ctx, dbClient.DB()) }
		slog.Info("Connected to PostgreSQL, schema migrated")
	}

	// Deduplicator: Redis when configured, in-memory otherwise.
	var deduplicator dedup.Deduplicator
	ttl := time.Duration(cfg.Dedup.TTLSeconds) * time.Second
	lease := time.Duration(cfg.Dedup.LockLeaseSeconds) * time.Second
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		deduplicator = dedup.NewRedisDeduplicator(redisClient, ttl, lease)
		slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)
	} else {
		deduplicator = dedup.NewMemoryDeduplicator(ttl, lease)
	}

	// LLM provider behind a circuit breaker; failures degrade to the
	// simulated fallback, never to a stalled pipeline.
	var llmClient llm.Client
	if base, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	}); err != nil {
		slog.Warn("LLM provider unavailable, fallback will simulate", "error", err)
	} else {
		llmClient = llm.NewBreakerClient(base)
	}

	// Vector store for semantic recovery.
	embedder := decision.NewHashingEmbedder(0)
	var vectorStore vector.Store
	if cfg.Vector.URL != "" {
		vectorStore = vector.NewQdrantStore(cfg.Vector.URL, cfg.Vector.APIKey)
	} else {
		vectorStore = vector.NewMemoryStore()
	}
	if err := vectorStore.EnsureCollection(ctx, decision.DecisionsCollection, decision.DefaultEmbeddingDim); err != nil {
		slog.Warn("Failed to ensure decisions collection", "error", err)
	}

	// Agents.
	registry := agent.NewRegistry()
	registry.Register(agent.NewLogAnalysisAgent())
	registry.Register(agent.NewNetworkScannerAgent())
	registry.Register(agent.NewThreatIntelAgent())
	registry.Register(agent.NewLLMAgent(llmClient))

	// Observability.
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector())
	serviceMetrics := metrics.New(promRegistry)

	// Core services.
	confidenceService := confidence.NewService(store)
	coordinator := swarm.NewCoordinator(registry, confidenceService, confidenceService,
		deduplicator, store, serviceMetrics, swarm.Config{
			Limits: swarm.Limits{
				MaxRetryRounds:   cfg.Swarm.MaxRetryRounds,
				MaxTotalAttempts: cfg.Swarm.MaxTotalAttempts,
				MaxRuntime:       time.Duration(cfg.Swarm.MaxRuntimeSeconds) * time.Second,
			},
			StepTimeout:          time.Duration(cfg.Swarm.StepDeadlineSeconds) * time.Second,
			DecayRate:            cfg.Confidence.DecayRate,
			UseLLMFallback:       cfg.Swarm.UseLLMFallbackEnabled(),
			LLMFallbackThreshold: cfg.Swarm.LLMFallbackThreshold,
			LLMAgentID:           agent.LLMAgentID,
		})

	decider := decision.NewEngine(decision.Config{
		AcceptThreshold:   cfg.Decision.AcceptThreshold,
		LLMThreshold:      cfg.Decision.LLMThreshold,
		SemanticThreshold: cfg.Decision.SemanticThreshold,
		LLMEnabled:        llmClient != nil,
	}, vectorStore, embedder, llmClient)

	var metricSource triage.MetricSource
	if cfg.Prometheus.URL != "" {
		metricSource = triage.NewPromSource(promquery.NewClient(cfg.Prometheus.URL))
	}
	notifier := slack.NewService(slack.ServiceConfig{
		Token:   cfg.Slack.Token,
		Channel: cfg.Slack.Channel,
	})

	triageService := triage.NewService(decider, coordinator, registry, metricSource, notifier,
		triage.Config{
			Trend: trend.Config{
				DegradingThreshold:  cfg.Trend.DegradingThreshold,
				RecoveringThreshold: cfg.Trend.RecoveringThreshold,
				LookbackMinutes:     cfg.Trend.LookbackMinutes,
			},
			Correlation: correlation.Config{
				TimeWindow: time.Duration(cfg.Correlation.WindowMinutes) * time.Minute,
			},
			StepSeconds: cfg.Trend.StepSeconds,
			Domain:      models.Domain{ID: "sre", Name: "site-reliability", RiskLevel: "high"},
		})

	pool := runner.NewPool(cfg.Swarm.Workers, 64)
	pool.Start(ctx)
	defer pool.Stop()

	server := api.NewServer(triageService, pool, store, healthCheck,
		promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	server.SetConfidenceService(confidenceService, policy.StaticConfidencePolicy{
		PenaltyOverride:      cfg.Confidence.PenaltyOverride,
		ReinforcementSuccess: cfg.Confidence.ReinforcementSuccess,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
}
