// Package slack delivers decision notifications to an operations
// channel.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/swarmops/swarmsre/pkg/models"
)

const postTimeout = 10 * time.Second

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
	APIURL  string // override for tests; empty uses the Slack default
}

// Service posts decision notifications. Nil-safe: all methods are no-ops
// on a nil receiver, so callers never guard on configuration.
type Service struct {
	api     *goslack.Client
	channel string
	logger  *slog.Logger
}

// NewService creates a notification service. Returns nil when token or
// channel is missing (notifications disabled).
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	opts := []goslack.Option{}
	if cfg.APIURL != "" {
		opts = append(opts, goslack.OptionAPIURL(cfg.APIURL))
	}
	return &Service{
		api:     goslack.New(cfg.Token, opts...),
		channel: cfg.Channel,
		logger:  slog.Default().With("component", "slack"),
	}
}

// NotifyDecision posts a message for decisions that need operator
// attention (ESCALATE and MANUAL_REVIEW). Fail-open: errors are logged,
// never returned.
func (s *Service) NotifyDecision(ctx context.Context, runID string, decision models.Decision) {
	if s == nil {
		return
	}
	if decision.State != models.DecisionEscalate && decision.State != models.DecisionManualReview {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	header := fmt.Sprintf(":rotating_light: %s — run %s", decision.State, runID)
	body := fmt.Sprintf("*Confidence:* %.2f\n*Justification:* %s", decision.Confidence, decision.Justification)
	if decision.ActionProposed != "" {
		body += fmt.Sprintf("\n*Proposed action:* %s", decision.ActionProposed)
	}

	blocks := []goslack.Block{
		goslack.NewHeaderBlock(goslack.NewTextBlockObject(goslack.PlainTextType, header, false, false)),
		goslack.NewSectionBlock(goslack.NewTextBlockObject(goslack.MarkdownType, body, false, false), nil, nil),
	}

	if _, _, err := s.api.PostMessageContext(ctx, s.channel,
		goslack.MsgOptionBlocks(blocks...)); err != nil {
		s.logger.Warn("Failed to post decision notification",
			"run_id", runID, "decision_id", decision.DecisionID, "error", err)
	}
}
