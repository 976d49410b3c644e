package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func TestAdapter_SaveConversation(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	ended := now.Add(90 * time.Second)
	satisfaction := 85.0

	tests := []struct {
		name       string
		conv       *v1.Conversation
		mockResult func(mock sqlmock.Sqlmock, conv *v1.Conversation)
		assertions func(t *testing.T, err error)
	}{
		{
			name: "success",
			conv: &v1.Conversation{
				ID:                "conv-1",
				CompanyID:         "comp-1",
				BotID:             "bot-1",
				UserID:            "user-1",
				Channel:           "whatsapp",
				Status:            "resolved",
				StartedAt:         now,
				EndedAt:           &ended,
				SatisfactionScore: &satisfaction,
				IngestedAt:        now,
			},
			mockResult: func(mock sqlmock.Sqlmock, conv *v1.Conversation) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveConversation)).
					WithArgs(
						conv.ID,
						conv.CompanyID,
						conv.BotID,
						sql.NullString{String: "user-1", Valid: true},
						sql.NullString{String: "whatsapp", Valid: true},
						conv.Status,
						conv.StartedAt,
						sql.NullTime{Time: ended, Valid: true},
						sql.NullFloat64{},
						sql.NullFloat64{Float64: satisfaction, Valid: true},
						conv.IngestedAt,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("conv-1"))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "duplicate maps to ErrDuplicate",
			conv: &v1.Conversation{
				ID:         "conv-dup",
				CompanyID:  "comp-1",
				BotID:      "bot-1",
				Status:     "active",
				StartedAt:  now,
				IngestedAt: now,
			},
			mockResult: func(mock sqlmock.Sqlmock, conv *v1.Conversation) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveConversation)).
					WithArgs(
						conv.ID,
						conv.CompanyID,
						conv.BotID,
						sql.NullString{},
						sql.NullString{},
						conv.Status,
						conv.StartedAt,
						sql.NullTime{},
						sql.NullFloat64{},
						sql.NullFloat64{},
						conv.IngestedAt,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrDuplicate)
			},
		},
		{
			name: "query error wraps",
			conv: &v1.Conversation{
				ID:         "conv-err",
				CompanyID:  "comp-1",
				BotID:      "bot-1",
				Status:     "active",
				StartedAt:  now,
				IngestedAt: now,
			},
			mockResult: func(mock sqlmock.Sqlmock, conv *v1.Conversation) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveConversation)).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "failed to save conversation")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			tc.mockResult(mock, tc.conv)

			err := adapter.SaveConversation(context.Background(), tc.conv)
			tc.assertions(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_FetchWindow(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	startedAt := start.Add(10 * time.Hour)
	endedAt := startedAt.Add(2 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(queryFetchWindow)).
		WithArgs("comp-1", "bot-1", start, end).
		WillReturnRows(sqlmock.NewRows(conversationRowColumns()).
			AddRow(
				"conv-1",
				"comp-1",
				"bot-1",
				"user-1",
				"web",
				"resolved",
				startedAt,
				endedAt,
				nil,
				90.0,
				startedAt.Add(time.Second),
			).
			AddRow(
				"conv-2",
				"comp-1",
				"bot-1",
				nil,
				nil,
				"active",
				startedAt.Add(time.Hour),
				nil,
				45.0,
				nil,
				startedAt.Add(time.Hour+time.Second),
			),
		).RowsWillBeClosed()

	convs, err := adapter.FetchWindow(context.Background(), "comp-1", "bot-1", start, end)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	require.Equal(t, "conv-1", convs[0].ID)
	require.Equal(t, "user-1", convs[0].UserID)
	require.Equal(t, "web", convs[0].Channel)
	require.NotNil(t, convs[0].EndedAt)
	require.Equal(t, endedAt, *convs[0].EndedAt)
	require.Nil(t, convs[0].DurationSeconds)
	require.NotNil(t, convs[0].SatisfactionScore)
	require.Equal(t, 90.0, *convs[0].SatisfactionScore)

	require.Equal(t, "conv-2", convs[1].ID)
	require.Empty(t, convs[1].UserID)
	require.Empty(t, convs[1].Channel)
	require.Nil(t, convs[1].EndedAt)
	require.NotNil(t, convs[1].DurationSeconds)
	require.Equal(t, 45.0, *convs[1].DurationSeconds)
	require.Nil(t, convs[1].SatisfactionScore)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_FetchWindow_EmptyBotIDMatchesAll(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta(queryFetchWindow)).
		WithArgs("comp-1", "", start, end).
		WillReturnRows(sqlmock.NewRows(conversationRowColumns())).
		RowsWillBeClosed()

	convs, err := adapter.FetchWindow(context.Background(), "comp-1", "", start, end)
	require.NoError(t, err)
	require.Empty(t, convs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CloseReturnsDBCloseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbCloseErr := errors.New("db close failed")

	mock.ExpectPrepare(regexp.QuoteMeta(querySaveConversation)).WillBeClosed()
	stmtSave, err := db.Prepare(querySaveConversation)
	require.NoError(t, err)

	mock.ExpectPrepare(regexp.QuoteMeta(queryFetchWindow)).WillBeClosed()
	stmtFetchWindow, err := db.Prepare(queryFetchWindow)
	require.NoError(t, err)

	mock.ExpectClose().WillReturnError(dbCloseErr)

	adapter := &Adapter{
		db:              db,
		stmtSave:        stmtSave,
		stmtFetchWindow: stmtFetchWindow,
	}

	err = adapter.Close()
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to close database")
	require.ErrorIs(t, err, dbCloseErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:              db,
		stmtSave:        mustPrepareStmt(t, db, mock, querySaveConversation),
		stmtFetchWindow: mustPrepareStmt(t, db, mock, queryFetchWindow),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func conversationRowColumns() []string {
	return []string{
		"id",
		"company_id",
		"bot_id",
		"user_id",
		"channel",
		"status",
		"started_at",
		"ended_at",
		"duration_seconds",
		"satisfaction_score",
		"ingested_at",
	}
}
