package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swarmops/swarmsre/pkg/confidence"
	"github.com/swarmops/swarmsre/pkg/ledger"
	"github.com/swarmops/swarmsre/pkg/policy"
)

// OutcomeRequest reports the real-world result of a run's proposed
// action.
type OutcomeRequest struct {
	Status  string `json:"status" binding:"required"` // success, partial_success, failure
	Details string `json:"details,omitempty"`
}

// SetConfidenceService wires the confidence service used by the outcome
// endpoint. Must be called before Start when outcome reporting is
// enabled.
func (s *Server) SetConfidenceService(svc *confidence.Service, pol policy.ConfidencePolicy) {
	s.confidence = svc
	s.confidencePolicy = pol
	s.router.POST("/api/v1/runs/:id/outcome", s.reportOutcomeHandler)
}

// reportOutcomeHandler handles POST /api/v1/runs/:id/outcome. A
// successful outcome reinforces every agent whose evidence supported the
// decision.
func (s *Server) reportOutcomeHandler(c *gin.Context) {
	runID := c.Param("id")

	var req OutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	run, err := s.store.GetRun(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if run.FinalDecision == nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "run has no decision yet"})
		return
	}

	if req.Status == "success" {
		seen := map[string]struct{}{}
		for _, ev := range run.FinalDecision.SupportingEvidence {
			if _, done := seen[ev.AgentID]; done {
				continue
			}
			seen[ev.AgentID] = struct{}{}
			if err := s.confidence.ReinforceForSuccess(c.Request.Context(),
				ev.AgentID, run.FinalDecision.DecisionID, s.confidencePolicy); err != nil {
				slog.Warn("Failed to reinforce agent",
					"agent_id", ev.AgentID, "run_id", runID, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "recorded", "run_id": runID})
}
