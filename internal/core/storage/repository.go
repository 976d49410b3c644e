package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
)

// ErrDuplicate is returned when a conversation with the same
// (company_id, id) already exists.
var ErrDuplicate = errors.New("conversation already exists")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ConversationStore defines the interface for persisting and loading
// conversation records.
type ConversationStore interface {
	SaveConversation(ctx context.Context, conv *v1.Conversation) error

	// FetchWindow returns all conversations of a company whose started_at
	// falls within [start, end]. botID narrows the result to one bot;
	// an empty botID matches every bot of the company. Order is unspecified:
	// the aggregator does its own bucketing and sorting.
	FetchWindow(ctx context.Context, companyID, botID string, start, end time.Time) ([]*v1.Conversation, error)
}

// BotStore defines the interface for bot lifecycle persistence.
type BotStore interface {
	CreateBot(ctx context.Context, bot *v1.Bot) error

	// ListBots returns all bots of a company, newest first.
	ListBots(ctx context.Context, companyID string) ([]*v1.Bot, error)

	GetBot(ctx context.Context, id string) (*v1.Bot, error)
	UpdateBotStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	UpdateBotFlow(ctx context.Context, id string, flow v1.Flow, updatedAt time.Time) error
	UpdateBotQuickReplies(ctx context.Context, id string, replies []v1.QuickReply, updatedAt time.Time) error
	DeleteBot(ctx context.Context, id string) error

	// CountActiveBots counts a company's active bots. A non-zero
	// createdBefore restricts the count to bots created before that instant,
	// which is how the dashboard derives a prior-period comparison.
	CountActiveBots(ctx context.Context, companyID string, createdBefore time.Time) (int, error)
}

// HistoryStore defines the interface for the bot audit log.
type HistoryStore interface {
	AppendHistory(ctx context.Context, entry *v1.HistoryEntry) error

	// ListHistoryByCompany returns a company's audit entries, newest first.
	// limit <= 0 means no limit.
	ListHistoryByCompany(ctx context.Context, companyID string, limit int) ([]*v1.HistoryEntry, error)

	ListHistoryByBot(ctx context.Context, botID string) ([]*v1.HistoryEntry, error)
}
