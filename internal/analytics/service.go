package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid metrics query")

// Service computes bot metrics and the company dashboard on demand.
// It holds no aggregate state: every call fetches and reduces fresh.
type Service struct {
	conversations storage.ConversationStore
	bots          storage.BotStore
	loc           *time.Location
	windowDays    int
	nowFn         func() time.Time
}

// NewService creates a new analytics service. loc is the display zone for
// all day/month bucketing; windowDays is the dashboard's trailing window.
func NewService(conversations storage.ConversationStore, bots storage.BotStore, loc *time.Location, windowDays int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if windowDays <= 0 {
		windowDays = 7
	}

	return &Service{
		conversations: conversations,
		bots:          bots,
		loc:           loc,
		windowDays:    windowDays,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// BotMetrics loads the current and prior windows and reduces them into a
// MetricsReport. The two fetches run concurrently; a current-window
// failure aborts the call, a prior-window failure only degrades the delta.
func (s *Service) BotMetrics(ctx context.Context, companyID, botID string, window Window) (*MetricsReport, error) {
	if companyID == "" {
		return nil, invalidQueryf("company_id is required")
	}
	if botID == "" {
		return nil, invalidQueryf("bot_id is required")
	}

	ext := window.ExtendedEnd(s.loc)
	priorStart, priorEnd := window.PriorRange(s.loc)

	var (
		current []*v1.Conversation
		prior   PriorWindow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.conversations.FetchWindow(gctx, companyID, botID, window.Start, ext)
		if err != nil {
			return fmt.Errorf("fetch current window: %w", err)
		}
		current = records
		return nil
	})
	g.Go(func() error {
		records, err := s.conversations.FetchWindow(gctx, companyID, botID, priorStart, priorEnd)
		if err != nil {
			// Degraded but usable: the report is still produced, only the
			// trend delta is omitted.
			slog.Warn("Prior window fetch failed, delta will be omitted",
				"bot_id", botID,
				"error", err)
			prior.FetchFailed = true
			return nil
		}
		prior.Records = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := ComputeBotMetrics(current, window, prior, s.loc)

	slog.Info("Computed bot metrics",
		"bot_id", botID,
		"company_id", companyID,
		"total_conversations", report.TotalConversations)

	return &report, nil
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
