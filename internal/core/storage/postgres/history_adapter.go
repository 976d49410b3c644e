package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
)

const (
	queryAppendHistory = `
		INSERT INTO bot_history (
			id, company_id, bot_id, bot_name, action,
			details, actor_id, actor_name, occurred_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	queryListHistoryByCompany = `
		SELECT
			id, company_id, bot_id, bot_name, action,
			details, actor_id, actor_name, occurred_at
		FROM bot_history
		WHERE company_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`

	queryListHistoryByBot = `
		SELECT
			id, company_id, bot_id, bot_name, action,
			details, actor_id, actor_name, occurred_at
		FROM bot_history
		WHERE bot_id = $1
		ORDER BY occurred_at DESC
	`
)

// HistoryAdapter implements storage.HistoryStore using PostgreSQL.
// The audit log is append-only: entries are never updated or deleted,
// and survive the deletion of the bot they describe.
type HistoryAdapter struct {
	db *sql.DB
}

// NewHistoryAdapter creates a new HistoryAdapter sharing the given connection.
func NewHistoryAdapter(db *sql.DB) *HistoryAdapter {
	return &HistoryAdapter{db: db}
}

// AppendHistory persists one audit entry.
func (a *HistoryAdapter) AppendHistory(ctx context.Context, entry *v1.HistoryEntry) error {
	detailsJSON, err := marshalJSONB(entry.Details)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(ctx, queryAppendHistory,
		entry.ID,
		entry.CompanyID,
		entry.BotID,
		entry.BotName,
		entry.Action,
		detailsJSON,
		entry.ActorID,
		entry.ActorName,
		entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	slog.Debug("[Postgres] Appended history entry",
		"company_id", entry.CompanyID,
		"bot_id", entry.BotID,
		"action", entry.Action)
	return nil
}

// ListHistoryByCompany returns a company's audit entries, newest first.
// limit <= 0 means no limit.
func (a *HistoryAdapter) ListHistoryByCompany(ctx context.Context, companyID string, limit int) ([]*v1.HistoryEntry, error) {
	// LIMIT NULL means "no limit" in postgres
	var sqlLimit sql.NullInt64
	if limit > 0 {
		sqlLimit = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	rows, err := a.db.QueryContext(ctx, queryListHistoryByCompany, companyID, sqlLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query company history: %w", err)
	}
	defer rows.Close()

	return collectHistoryRows(rows)
}

// ListHistoryByBot returns one bot's audit entries, newest first.
func (a *HistoryAdapter) ListHistoryByBot(ctx context.Context, botID string) ([]*v1.HistoryEntry, error) {
	rows, err := a.db.QueryContext(ctx, queryListHistoryByBot, botID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bot history: %w", err)
	}
	defer rows.Close()

	return collectHistoryRows(rows)
}

func collectHistoryRows(rows *sql.Rows) ([]*v1.HistoryEntry, error) {
	var entries []*v1.HistoryEntry
	for rows.Next() {
		entry, err := scanHistoryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history entries: %w", err)
	}

	return entries, nil
}

// scanHistoryRow scans a database row into a HistoryEntry struct.
func scanHistoryRow(row scanner) (*v1.HistoryEntry, error) {
	var entry v1.HistoryEntry
	var detailsJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.CompanyID,
		&entry.BotID,
		&entry.BotName,
		&entry.Action,
		&detailsJSON,
		&entry.ActorID,
		&entry.ActorName,
		&entry.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan history row: %w", err)
	}

	if len(detailsJSON) > 0 {
		if err := json.Unmarshal(detailsJSON, &entry.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history details: %w", err)
		}
	}

	return &entry, nil
}
