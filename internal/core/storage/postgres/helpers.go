package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanConversationRow scans a database row into a Conversation struct.
// Nullable columns (user_id, channel, ended_at, duration_seconds,
// satisfaction_score) map to zero values or nil pointers.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanConversationRow(row scanner) (*v1.Conversation, error) {
	var conv v1.Conversation
	var userID, channel sql.NullString
	var endedAt sql.NullTime
	var durationSeconds, satisfactionScore sql.NullFloat64

	err := row.Scan(
		&conv.ID,
		&conv.CompanyID,
		&conv.BotID,
		&userID,
		&channel,
		&conv.Status,
		&conv.StartedAt,
		&endedAt,
		&durationSeconds,
		&satisfactionScore,
		&conv.IngestedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan conversation row: %w", err)
	}

	conv.UserID = userID.String
	conv.Channel = channel.String
	if endedAt.Valid {
		t := endedAt.Time
		conv.EndedAt = &t
	}
	if durationSeconds.Valid {
		d := durationSeconds.Float64
		conv.DurationSeconds = &d
	}
	if satisfactionScore.Valid {
		s := satisfactionScore.Float64
		conv.SatisfactionScore = &s
	}

	return &conv, nil
}

// marshalJSONB marshals a value for a JSONB column.
// Nil values produce nil (SQL NULL) rather than JSON "null" string.
func marshalJSONB(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb value: %w", err)
	}
	return b, nil
}
