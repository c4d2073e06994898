package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmops/swarmsre/pkg/agent"
	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/decision"
	"github.com/swarmops/swarmsre/pkg/dedup"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/models"
	"github.com/swarmops/swarmsre/pkg/runner"
	"github.com/swarmops/swarmsre/pkg/swarm"
	"github.com/swarmops/swarmsre/pkg/triage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// blockingAgent holds every execution until released, keeping runs
// in-flight for duplicate-delivery tests.
type blockingAgent struct {
	id      string
	release chan struct{}
	started chan struct{}
	once    sync.Once
}

func (a *blockingAgent) ID() string        { return a.id }
func (a *blockingAgent) Version() string   { return "1.0" }
func (a *blockingAgent) LogicHash() string { return "test-blocking" }

func (a *blockingAgent) Execute(ctx context.Context, params map[string]any, stepID string) (models.AgentExecution, error) {
	a.once.Do(func() { close(a.started) })
	select {
	case <-a.release:
	case <-ctx.Done():
	}
	exec := agent.NewExecution(a, stepID, params)
	exec.OutputEvidence = []models.Evidence{
		models.NewEvidence(exec.ExecutionID, a.id, models.EvidenceLog, 0.9, map[string]any{"summary": "ok"}),
	}
	exec.FinishedAt = time.Now().UTC()
	return exec, nil
}

type fixture struct {
	server *Server
	store  *ledger.MemoryLedger
	pool   *runner.Pool
	agent  *blockingAgent
	dedup  *dedup.MemoryDeduplicator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := ledger.NewMemoryLedger()
	registry := agent.NewRegistry()
	blocking := &blockingAgent{
		id:      "loganalysis",
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	registry.Register(blocking)

	conf := confidence.NewService(store)
	dd := dedup.NewMemoryDeduplicator(time.Minute, time.Minute)
	swarmCfg := swarm.DefaultConfig()
	swarmCfg.UseLLMFallback = false
	swarmCfg.StepTimeout = 2 * time.Second
	coordinator := swarm.NewCoordinator(registry, conf, conf, dd, store, nil, swarmCfg)

	decider := decision.NewEngine(decision.DefaultConfig(), nil, nil, nil)
	triageSvc := triage.NewService(decider, coordinator, registry, nil, nil, triage.Config{
		Domain:        models.Domain{ID: "sre", Name: "site-reliability"},
		SwarmAgentIDs: []string{"loganalysis"},
	})

	pool := runner.NewPool(2, 8)
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	return &fixture{
		server: NewServer(triageSvc, pool, store, nil, nil),
		store:  store,
		pool:   pool,
		agent:  blocking,
		dedup:  dd,
	}
}

func webhookBody() string {
	return `{"alerts":[{
		"labels":{"service":"postgres-primary","severity":"critical","alertname":"HighCPU"},
		"annotations":{"summary":"CPU saturation on postgres-primary"},
		"startsAt":"2026-03-14T11:00:00Z",
		"fingerprint":"X"
	}]}`
}

func post(server *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSubmitAlerts_Accepted(t *testing.T) {
	f := newFixture(t)
	close(f.agent.release)

	rec := post(f.server, webhookBody())

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "processing", resp.Status)
	assert.NotEmpty(t, resp.RunID)

	// The run eventually lands in the ledger.
	assert.Eventually(t, func() bool {
		_, err := f.store.GetRun(context.Background(), resp.RunID)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubmitAlerts_EmptyBatchRejected(t *testing.T) {
	f := newFixture(t)
	rec := post(f.server, `{"alerts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAlerts_MalformedJSONRejected(t *testing.T) {
	f := newFixture(t)
	rec := post(f.server, `{"alerts": not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAlerts_DuplicateInFlightGets429(t *testing.T) {
	// Scenario F: identical deliveries 2s apart; the second sees the
	// first still in flight.
	f := newFixture(t)

	first := post(f.server, webhookBody())
	require.Equal(t, http.StatusAccepted, first.Code)
	var firstResp AlertResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))

	// Wait until the run is actually executing, then deliver again.
	select {
	case <-f.agent.started:
	case <-time.After(time.Second):
		t.Fatal("first run never started")
	}

	second := post(f.server, webhookBody())
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	var secondResp AlertResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.Equal(t, firstResp.RunID, secondResp.RunID)

	close(f.agent.release)

	// Exactly one run ends up in the ledger.
	assert.Eventually(t, func() bool {
		_, err := f.store.GetRun(context.Background(), firstResp.RunID)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSubmitAlerts_SameFingerprintDifferentSeverityStillInFlight(t *testing.T) {
	// A CRITICAL→WARNING severity change of the same firing rule shares the
	// fingerprint, and the in-flight check keys on the fingerprint alone
	// — the same key the coordinator's run lock uses.
	f := newFixture(t)

	first := post(f.server, webhookBody())
	require.Equal(t, http.StatusAccepted, first.Code)

	select {
	case <-f.agent.started:
	case <-time.After(time.Second):
		t.Fatal("first run never started")
	}

	escalated := strings.Replace(webhookBody(), `"severity":"critical"`, `"severity":"warning"`, 1)
	second := post(f.server, escalated)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	close(f.agent.release)
}

func TestSubmitAlerts_LockContentionRecordsDuplicateSkippedRun(t *testing.T) {
	// Another replica holds the distributed source lock: the delivery is
	// accepted, but the issued runID must resolve to a terminal
	// DUPLICATE_SKIPPED run rather than a permanent 404.
	f := newFixture(t)
	close(f.agent.release)

	held, err := f.dedup.AcquireLock(context.Background(), "swarm_run:X")
	require.NoError(t, err)
	require.True(t, held)

	rec := post(f.server, webhookBody())
	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Eventually(t, func() bool {
		_, err := f.store.GetRun(context.Background(), resp.RunID)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+resp.RunID, nil)
	getRec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)
	var runResp RunResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &runResp))
	assert.Equal(t, models.RunDuplicateSkipped, runResp.Status)
	assert.True(t, runResp.Metadata.Deduplicated)
}

func TestGetRun_NotFound(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/nope", nil)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRun_ReturnsPersistedRun(t *testing.T) {
	f := newFixture(t)
	close(f.agent.release)

	rec := post(f.server, webhookBody())
	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Eventually(t, func() bool {
		_, err := f.store.GetRun(context.Background(), resp.RunID)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+resp.RunID, nil)
	getRec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)
	var runResp RunResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &runResp))
	assert.Equal(t, models.RunFinished, runResp.Status)
	assert.NotNil(t, runResp.Decision)
	assert.NotEmpty(t, runResp.Executions)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.LedgerOK)
	assert.Equal(t, 2, health.Processing.Workers)
}

func TestSubmitAlerts_SuggestedProcedure(t *testing.T) {
	f := newFixture(t)
	close(f.agent.release)

	sig := dedup.Signature("X", map[string]any{"service": "postgres-primary"}, "critical", "GRAFANA")
	require.NoError(t, f.store.RegisterProcedure(context.Background(), ledger.Procedure{
		Signature: sig, Name: "scale-up-db",
	}))

	rec := post(f.server, webhookBody())
	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.SuggestedProcedure)
	assert.Equal(t, "scale-up-db", resp.SuggestedProcedure.Name)
}
