package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	storagemocks "github.com/bexbot-lab/bexbot-console/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBotMetrics_Success(t *testing.T) {
	window := Window{
		Start: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
	}
	ext := window.ExtendedEnd(time.UTC)
	priorStart, priorEnd := window.PriorRange(time.UTC)

	current := []*v1.Conversation{
		conv("c1", time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)),
		conv("c2", time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)),
	}
	priorRecords := []*v1.Conversation{
		conv("p1", time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)),
	}

	mockStore := storagemocks.NewConversationStore(t)
	mockStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "bot-1", window.Start, ext).
		Return(current, nil).
		Once()
	mockStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "bot-1", priorStart, priorEnd).
		Return(priorRecords, nil).
		Once()

	svc := NewService(mockStore, storagemocks.NewBotStore(t), time.UTC, 7)

	report, err := svc.BotMetrics(context.Background(), "co-1", "bot-1", window)
	require.NoError(t, err)
	require.Equal(t, 2, report.TotalConversations)
	require.NotNil(t, report.ConversationsDeltaPercent)
	require.Equal(t, 100, *report.ConversationsDeltaPercent)
}

func TestBotMetrics_CurrentFetchFailureAborts(t *testing.T) {
	window := Window{
		Start: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
	}
	ext := window.ExtendedEnd(time.UTC)
	priorStart, priorEnd := window.PriorRange(time.UTC)

	mockStore := storagemocks.NewConversationStore(t)
	mockStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "bot-1", window.Start, ext).
		Return(nil, errors.New("connection reset")).
		Once()
	mockStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "bot-1", priorStart, priorEnd).
		Return(nil, nil).
		Maybe()

	svc := NewService(mockStore, storagemocks.NewBotStore(t), time.UTC, 7)

	report, err := svc.BotMetrics(context.Background(), "co-1", "bot-1", window)
	require.Error(t, err)
	require.Nil(t, report)
}

func TestBotMetrics_PriorFetchFailureDegrades(t *testing.T) {
	window := Window{
		Start: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
	}
	ext := window.ExtendedEnd(time.UTC)
	priorStart, priorEnd := window.PriorRange(time.UTC)

	current := []*v1.Conversation{
		conv("c1", time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)),
	}

	mockStore := storagemocks.NewConversationStore(t)
	mockStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "bot-1", window.Start, ext).
		Return(current, nil).
		Once()
	mockStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "bot-1", priorStart, priorEnd).
		Return(nil, errors.New("replica down")).
		Once()

	svc := NewService(mockStore, storagemocks.NewBotStore(t), time.UTC, 7)

	report, err := svc.BotMetrics(context.Background(), "co-1", "bot-1", window)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalConversations)
	require.Nil(t, report.ConversationsDeltaPercent)
}

func TestBotMetrics_ValidatesIdentifiers(t *testing.T) {
	svc := NewService(storagemocks.NewConversationStore(t), storagemocks.NewBotStore(t), time.UTC, 7)
	window := Window{
		Start: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.BotMetrics(context.Background(), "", "bot-1", window)
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.BotMetrics(context.Background(), "co-1", "", window)
	require.ErrorIs(t, err, ErrInvalidQuery)
}
