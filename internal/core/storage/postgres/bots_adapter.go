package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
)

const (
	queryCreateBot = `
		INSERT INTO bots (
			id, company_id, name, kind, status,
			settings, flow, quick_replies, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	queryListBots = `
		SELECT
			id, company_id, name, kind, status,
			settings, flow, quick_replies, created_at, updated_at
		FROM bots
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	queryGetBot = `
		SELECT
			id, company_id, name, kind, status,
			settings, flow, quick_replies, created_at, updated_at
		FROM bots
		WHERE id = $1
	`

	queryUpdateBotStatus = `
		UPDATE bots SET status = $1, updated_at = $2 WHERE id = $3
	`

	queryUpdateBotFlow = `
		UPDATE bots SET flow = $1, updated_at = $2 WHERE id = $3
	`

	queryUpdateBotQuickReplies = `
		UPDATE bots SET quick_replies = $1, updated_at = $2 WHERE id = $3
	`

	queryDeleteBot = `DELETE FROM bots WHERE id = $1`

	queryCountActiveBots = `
		SELECT COUNT(*)
		FROM bots
		WHERE company_id = $1
		  AND status = 'active'
		  AND ($2::timestamptz IS NULL OR created_at < $2)
	`
)

// BotAdapter implements storage.BotStore using PostgreSQL.
// Bot settings, flow graph and quick replies live in JSONB columns: the
// console edits them as documents and never queries inside them.
type BotAdapter struct {
	db *sql.DB
}

// NewBotAdapter creates a new BotAdapter sharing the given connection.
func NewBotAdapter(db *sql.DB) *BotAdapter {
	return &BotAdapter{db: db}
}

// CreateBot persists a new bot with its settings, flow and quick replies.
func (a *BotAdapter) CreateBot(ctx context.Context, bot *v1.Bot) error {
	settingsJSON, flowJSON, repliesJSON, err := marshalBotJSON(bot)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(ctx, queryCreateBot,
		bot.ID,
		bot.CompanyID,
		bot.Name,
		bot.Kind,
		bot.Status,
		settingsJSON,
		flowJSON,
		repliesJSON,
		bot.CreatedAt,
		bot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	slog.Debug("[Postgres] Created bot", "company_id", bot.CompanyID, "bot_id", bot.ID)
	return nil
}

// ListBots returns all bots of a company, newest first.
func (a *BotAdapter) ListBots(ctx context.Context, companyID string) ([]*v1.Bot, error) {
	rows, err := a.db.QueryContext(ctx, queryListBots, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bots: %w", err)
	}
	defer rows.Close()

	var bots []*v1.Bot
	for rows.Next() {
		bot, err := scanBotRow(rows)
		if err != nil {
			return nil, err
		}
		bots = append(bots, bot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bots: %w", err)
	}

	return bots, nil
}

// GetBot fetches one bot by id. Returns storage.ErrNotFound if it does not exist.
func (a *BotAdapter) GetBot(ctx context.Context, id string) (*v1.Bot, error) {
	bot, err := scanBotRow(a.db.QueryRowContext(ctx, queryGetBot, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return bot, nil
}

// UpdateBotStatus sets a bot's lifecycle status.
// Returns storage.ErrNotFound if the bot does not exist.
func (a *BotAdapter) UpdateBotStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	return a.execOne(ctx, queryUpdateBotStatus, "update bot status", status, updatedAt, id)
}

// UpdateBotFlow replaces a bot's flow graph verbatim.
// Returns storage.ErrNotFound if the bot does not exist.
func (a *BotAdapter) UpdateBotFlow(ctx context.Context, id string, flow v1.Flow, updatedAt time.Time) error {
	flowJSON, err := marshalJSONB(flow)
	if err != nil {
		return err
	}
	return a.execOne(ctx, queryUpdateBotFlow, "update bot flow", flowJSON, updatedAt, id)
}

// UpdateBotQuickReplies replaces a bot's quick replies.
// Returns storage.ErrNotFound if the bot does not exist.
func (a *BotAdapter) UpdateBotQuickReplies(ctx context.Context, id string, replies []v1.QuickReply, updatedAt time.Time) error {
	repliesJSON, err := marshalJSONB(replies)
	if err != nil {
		return err
	}
	return a.execOne(ctx, queryUpdateBotQuickReplies, "update bot quick replies", repliesJSON, updatedAt, id)
}

// DeleteBot removes a bot. Returns storage.ErrNotFound if it does not exist.
func (a *BotAdapter) DeleteBot(ctx context.Context, id string) error {
	return a.execOne(ctx, queryDeleteBot, "delete bot", id)
}

// CountActiveBots counts a company's active bots. A non-zero createdBefore
// restricts the count to bots created before that instant.
func (a *BotAdapter) CountActiveBots(ctx context.Context, companyID string, createdBefore time.Time) (int, error) {
	var bound sql.NullTime
	if !createdBefore.IsZero() {
		bound = sql.NullTime{Time: createdBefore, Valid: true}
	}

	var count int
	err := a.db.QueryRowContext(ctx, queryCountActiveBots, companyID, bound).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active bots: %w", err)
	}
	return count, nil
}

// execOne runs a statement that must affect exactly one row,
// mapping zero affected rows to storage.ErrNotFound.
func (a *BotAdapter) execOne(ctx context.Context, query, op string, args ...interface{}) error {
	result, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func marshalBotJSON(bot *v1.Bot) (settingsJSON, flowJSON, repliesJSON []byte, err error) {
	settingsJSON, err = marshalJSONB(bot.Settings)
	if err != nil {
		return nil, nil, nil, err
	}
	flowJSON, err = marshalJSONB(bot.Flow)
	if err != nil {
		return nil, nil, nil, err
	}
	repliesJSON, err = marshalJSONB(bot.QuickReplies)
	if err != nil {
		return nil, nil, nil, err
	}
	return settingsJSON, flowJSON, repliesJSON, nil
}

// scanBotRow scans a database row into a Bot struct.
// Handles JSON unmarshalling for the settings, flow and quick_replies columns.
func scanBotRow(row scanner) (*v1.Bot, error) {
	var bot v1.Bot
	var settingsJSON, flowJSON, repliesJSON []byte

	err := row.Scan(
		&bot.ID,
		&bot.CompanyID,
		&bot.Name,
		&bot.Kind,
		&bot.Status,
		&settingsJSON,
		&flowJSON,
		&repliesJSON,
		&bot.CreatedAt,
		&bot.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bot row: %w", err)
	}

	if len(settingsJSON) > 0 {
		if err := json.Unmarshal(settingsJSON, &bot.Settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bot settings: %w", err)
		}
	}
	if len(flowJSON) > 0 {
		if err := json.Unmarshal(flowJSON, &bot.Flow); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bot flow: %w", err)
		}
	}
	if len(repliesJSON) > 0 {
		if err := json.Unmarshal(repliesJSON, &bot.QuickReplies); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bot quick replies: %w", err)
		}
	}

	return &bot, nil
}
