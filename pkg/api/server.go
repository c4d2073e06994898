// Package api exposes the HTTP surface: the alert webhook, run status,
// health and Prometheus metrics.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/dedup"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/policy"
	"github.com/swarmops/swarmsre/pkg/runner"
	"github.com/swarmops/swarmsre/pkg/swarm"
	"github.com/swarmops/swarmsre/pkg/triage"
)

// maxWebhookAlerts bounds one delivery.
const maxWebhookAlerts = 1000

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server

	triage  *triage.Service
	pool    *runner.Pool
	store   ledger.Ledger
	health  func(ctx context.Context) error // nil when no database backs the ledger
	metrics http.Handler

	confidence       *confidence.Service
	confidencePolicy policy.ConfidencePolicy

	// inFlight serializes deliveries per source key at the webhook
	// layer. Keyed by the alert fingerprint — the same key the
	// coordinator's run lock uses — so any delivery contending for that
	// lock is caught here first. The deduplicator stays the distributed
	// arbiter.
	mu       sync.Mutex
	inFlight map[string]string // fingerprint -> run id
}

// NewServer creates the API server.
func NewServer(triageSvc *triage.Service, pool *runner.Pool, store ledger.Ledger,
	healthCheck func(ctx context.Context) error, metricsHandler http.Handler) *Server {

	s := &Server{
		router:   gin.New(),
		triage:   triageSvc,
		pool:     pool,
		store:    store,
		health:   healthCheck,
		metrics:  metricsHandler,
		inFlight: make(map[string]string),
	}
	s.router.Use(gin.Recovery(), requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	v1.POST("/alerts", s.submitAlertsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.GET("/health", s.healthHandler)

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics))
	}
}

// Start runs the HTTP server (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

// submitAlertsHandler handles POST /api/v1/alerts: validate, answer
// immediately, run the pipeline asynchronously.
func (s *Server) submitAlertsHandler(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Alerts) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "alerts field is required"})
		return
	}
	if len(req.Alerts) > maxWebhookAlerts {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "too many alerts in one delivery"})
		return
	}

	batch := req.toRawAlerts()
	first := batch[0].DeriveFields()
	sourceKey := first.Fingerprint

	s.mu.Lock()
	if runID, busy := s.inFlight[sourceKey]; busy {
		s.mu.Unlock()
		c.JSON(http.StatusTooManyRequests, AlertResponse{Status: "in_flight", RunID: runID})
		return
	}
	runID := uuid.New().String()
	s.inFlight[sourceKey] = runID
	s.mu.Unlock()

	job := runner.Job{
		RunID: runID,
		Execute: func(ctx context.Context) error {
			defer func() {
				s.mu.Lock()
				delete(s.inFlight, sourceKey)
				s.mu.Unlock()
			}()

			if _, err := s.triage.Triage(ctx, batch); err != nil {
				slog.Error("Triage pipeline failed", "run_id", runID, "error", err)
			}
			_, err := s.triage.LaunchRun(ctx, batch, runID, swarm.ExecuteOptions{})
			if errors.Is(err, swarm.ErrRunInFlight) {
				// Another replica holds the source lock. The client
				// already has this runID, so record the contention as a
				// terminal DUPLICATE_SKIPPED run instead of leaving the
				// id dangling.
				slog.Info("Run skipped, source lock held elsewhere", "run_id", runID)
				s.recordContention(ctx, runID, first)
				return nil
			}
			return err
		},
	}
	if err := s.pool.Submit(job); err != nil {
		s.mu.Lock()
		delete(s.inFlight, sourceKey)
		s.mu.Unlock()
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}

	resp := AlertResponse{Status: "processing", RunID: runID}
	signature := dedup.Signature(first.Fingerprint,
		map[string]any{"service": first.Service}, first.Severity, string(first.Source))
	if procedure, err := s.store.FindProcedureBySignature(c.Request.Context(), signature); err == nil {
		resp.SuggestedProcedure = &procedure
	}
	c.JSON(http.StatusAccepted, resp)
}

// recordContention persists a terminal DUPLICATE_SKIPPED run for a
// delivery that lost the distributed source lock, so the runID handed to
// the client resolves to a real state. Best-effort: failures are logged.
func (s *Server) recordContention(ctx context.Context, runID string, first models.RawAlert) {
	now := time.Now().UTC()
	run := models.SwarmRun{
		RunID:      runID,
		Status:     models.RunDuplicateSkipped,
		Metadata:   models.RunMetadata{Deduplicated: true},
		StartedAt:  now,
		FinishedAt: now,
	}
	alert := models.AlertEvent{
		AlertID: first.Fingerprint,
		Data: map[string]any{
			"service":  first.Service,
			"severity": first.Severity,
			"source":   string(first.Source),
		},
	}
	if err := s.store.SaveSwarmRun(context.WithoutCancel(ctx), run, alert, nil, nil); err != nil {
		slog.Warn("Failed to record contended run", "run_id", runID, "error", err)
	}
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	runID := c.Param("id")

	run, err := s.store.GetRun(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			// Not yet persisted: report RUNNING if the pool has it.
			if s.isProcessing(runID) {
				c.JSON(http.StatusOK, RunResponse{RunID: runID, Status: models.RunRunning})
				return
			}
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRunResponse(run))
}

func (s *Server) isProcessing(runID string) bool {
	for _, id := range s.pool.Health().ActiveRunIDs {
		if id == runID {
			return true
		}
	}
	return false
}

// healthHandler handles GET /api/v1/health.
func (s *Server) healthHandler(c *gin.Context) {
	ledgerOK := true
	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		ledgerOK = s.health(ctx) == nil
	}

	poolHealth := s.pool.Health()
	status := "healthy"
	code := http.StatusOK
	if !ledgerOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:        status,
		LedgerOK:      ledgerOK,
		Processing:    poolHealth,
		LastExecution: poolHealth.LastActivity,
	})
}

// requestLogger logs one line per request in the structured log.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
