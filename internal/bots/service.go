package bots

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/google/uuid"
)

// Actor identifies who performed a bot lifecycle change, for the audit log.
type Actor struct {
	ID   string `json:"actor_id" binding:"required"`
	Name string `json:"actor_name"`
}

// CreateBotRequest is the wizard payload.
type CreateBotRequest struct {
	Name     string   `json:"name" binding:"required"`
	Kind     string   `json:"kind" binding:"required"`
	Tone     string   `json:"tone" binding:"required"`
	LogoURL  string   `json:"logo_url"`
	Channels []string `json:"channels"`
	Actor    Actor    `json:"actor" binding:"required"`
}

// Service manages bot lifecycle and its audit history.
type Service struct {
	store   storage.BotStore
	history storage.HistoryStore
	nowFn   func() time.Time
}

// NewService creates a new bot service.
func NewService(store storage.BotStore, history storage.HistoryStore) *Service {
	return &Service{
		store:   store,
		history: history,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Create builds a bot from the wizard payload, seeds its starter flow and
// quick replies, persists it and records the audit entry.
func (s *Service) Create(ctx context.Context, companyID string, req CreateBotRequest) (*v1.Bot, error) {
	now := s.nowFn()

	bot := &v1.Bot{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Kind:      req.Kind,
		Status:    v1.BotStatusActive,
		Settings: v1.BotSettings{
			Tone:     req.Tone,
			LogoURL:  req.LogoURL,
			Channels: normalizeChannels(req.Channels),
		},
		Flow:         defaultFlow(),
		QuickReplies: defaultQuickReplies(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := bot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBot, err)
	}

	if err := s.store.CreateBot(ctx, bot); err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	s.record(ctx, bot, v1.HistoryCreated, v1.HistoryDetails{
		Kind:     bot.Kind,
		Channels: bot.Settings.Channels,
	}, req.Actor)

	slog.Info("Bot created",
		"bot_id", bot.ID,
		"company_id", companyID,
		"kind", bot.Kind)

	return bot, nil
}

// List returns a company's bots, newest first.
func (s *Service) List(ctx context.Context, companyID string) ([]*v1.Bot, error) {
	return s.store.ListBots(ctx, companyID)
}

// Get returns one bot by ID.
func (s *Service) Get(ctx context.Context, botID string) (*v1.Bot, error) {
	return s.store.GetBot(ctx, botID)
}

// SetStatus transitions the bot's lifecycle state and records the change
// with its previous state.
func (s *Service) SetStatus(ctx context.Context, botID, status string, actor Actor) (*v1.Bot, error) {
	if !v1.ValidBotStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidBot, status)
	}

	bot, err := s.store.GetBot(ctx, botID)
	if err != nil {
		return nil, err
	}

	previous := bot.Status
	if previous == status {
		return bot, nil
	}

	now := s.nowFn()
	if err := s.store.UpdateBotStatus(ctx, botID, status, now); err != nil {
		return nil, fmt.Errorf("update bot status: %w", err)
	}
	bot.Status = status
	bot.UpdatedAt = now

	action := v1.HistoryUpdated
	switch status {
	case v1.BotStatusActive:
		action = v1.HistoryActivated
	case v1.BotStatusPaused:
		action = v1.HistoryPaused
	}
	s.record(ctx, bot, action, v1.HistoryDetails{
		PreviousStatus: previous,
		NewStatus:      status,
	}, actor)

	return bot, nil
}

// SetFlow stores the editor's node graph verbatim. The graph is never
// interpreted server-side.
func (s *Service) SetFlow(ctx context.Context, botID string, flow v1.Flow, actor Actor) error {
	bot, err := s.store.GetBot(ctx, botID)
	if err != nil {
		return err
	}

	if err := s.store.UpdateBotFlow(ctx, botID, flow, s.nowFn()); err != nil {
		return fmt.Errorf("update bot flow: %w", err)
	}

	s.record(ctx, bot, v1.HistoryUpdated, v1.HistoryDetails{
		ChangedFields: []string{"flow"},
	}, actor)

	return nil
}

// SetQuickReplies replaces the bot's canned responses. Entries without an
// ID get one assigned.
func (s *Service) SetQuickReplies(ctx context.Context, botID string, replies []v1.QuickReply, actor Actor) error {
	bot, err := s.store.GetBot(ctx, botID)
	if err != nil {
		return err
	}

	for i := range replies {
		if replies[i].ID == "" {
			replies[i].ID = uuid.NewString()
		}
	}

	if err := s.store.UpdateBotQuickReplies(ctx, botID, replies, s.nowFn()); err != nil {
		return fmt.Errorf("update quick replies: %w", err)
	}

	s.record(ctx, bot, v1.HistoryUpdated, v1.HistoryDetails{
		ChangedFields: []string{"quick_replies"},
	}, actor)

	return nil
}

// Delete removes the bot and records the deletion with its reason.
func (s *Service) Delete(ctx context.Context, botID, reason string, actor Actor) error {
	bot, err := s.store.GetBot(ctx, botID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteBot(ctx, botID); err != nil {
		return fmt.Errorf("delete bot: %w", err)
	}

	s.record(ctx, bot, v1.HistoryDeleted, v1.HistoryDetails{
		PreviousStatus: bot.Status,
		DeleteReason:   reason,
	}, actor)

	slog.Info("Bot deleted", "bot_id", botID, "company_id", bot.CompanyID)
	return nil
}

// CompanyHistory returns a company's audit entries, newest first.
func (s *Service) CompanyHistory(ctx context.Context, companyID string, limit int) ([]*v1.HistoryEntry, error) {
	return s.history.ListHistoryByCompany(ctx, companyID, limit)
}

// BotHistory returns one bot's audit entries, newest first.
func (s *Service) BotHistory(ctx context.Context, botID string) ([]*v1.HistoryEntry, error) {
	return s.history.ListHistoryByBot(ctx, botID)
}

// record appends an audit entry. Audit failures are logged, never fatal:
// the lifecycle change itself already succeeded.
func (s *Service) record(ctx context.Context, bot *v1.Bot, action string, details v1.HistoryDetails, actor Actor) {
	entry := &v1.HistoryEntry{
		ID:         uuid.NewString(),
		CompanyID:  bot.CompanyID,
		BotID:      bot.ID,
		BotName:    bot.Name,
		Action:     action,
		Details:    details,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		OccurredAt: s.nowFn(),
	}

	if err := s.history.AppendHistory(ctx, entry); err != nil {
		slog.Error("Failed to record bot history",
			"bot_id", bot.ID,
			"action", action,
			"error", err)
	}
}

func normalizeChannels(channels []string) []string {
	if channels == nil {
		return []string{}
	}
	return channels
}

// defaultFlow is the two-node starter graph every new bot gets: a start
// node wired to a welcome message.
func defaultFlow() v1.Flow {
	return v1.Flow{
		Nodes: []json.RawMessage{
			json.RawMessage(`{"id":"1","type":"startNode","data":{"label":"Start"},"position":{"x":100,"y":100}}`),
			json.RawMessage(`{"id":"2","type":"textUpdaterNode","data":{"label":"Welcome Message","text":"Hi! How can I help you?"},"position":{"x":100,"y":250}}`),
		},
		Edges: []json.RawMessage{
			json.RawMessage(`{"id":"e1-2","source":"1","target":"2"}`),
		},
	}
}

func defaultQuickReplies() []v1.QuickReply {
	return []v1.QuickReply{
		{
			ID:       uuid.NewString(),
			Trigger:  "hello",
			Response: "Hi! Welcome. How can I help you?",
		},
		{
			ID:       uuid.NewString(),
			Trigger:  "hours",
			Response: "We're available Monday to Friday, 9:00 AM to 6:00 PM.",
		},
	}
}
