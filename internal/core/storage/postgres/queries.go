package postgres

// SQL queries for conversation storage operations

const (
	// querySaveConversation inserts a conversation record idempotently.
	// Uses composite key (company_id, id) to reject replays of the same record.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySaveConversation = `
		INSERT INTO conversations (
			id, company_id, bot_id, user_id, channel, status,
			started_at, ended_at, duration_seconds, satisfaction_score, ingested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (company_id, id) DO NOTHING
		RETURNING id
	`

	// queryFetchWindow fetches a company's conversations whose started_at
	// lies within [start, end]. An empty bot_id argument matches every bot.
	queryFetchWindow = `
		SELECT
			id, company_id, bot_id, user_id, channel, status,
			started_at, ended_at, duration_seconds, satisfaction_score, ingested_at
		FROM conversations
		WHERE company_id = $1
		  AND ($2 = '' OR bot_id = $2)
		  AND started_at >= $3
		  AND started_at <= $4
		ORDER BY started_at ASC
	`
)
