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

func TestDashboard_Success(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	windowStart := now.AddDate(0, 0, -7)

	records := []*v1.Conversation{
		// current window
		conv("c1", time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC), func(c *v1.Conversation) {
			c.Status = v1.StatusFinalized
			c.UserID = "u1"
			c.SatisfactionScore = fptr(90)
		}),
		conv("c2", time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), func(c *v1.Conversation) {
			c.UserID = "u2"
		}),
		// previous window
		conv("p1", time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC), func(c *v1.Conversation) {
			c.Status = v1.StatusFinalized
			c.UserID = "u3"
			c.SatisfactionScore = fptr(50)
		}),
		// earlier still: only the monthly chart sees it
		conv("old", time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC), func(c *v1.Conversation) {
			c.Status = v1.StatusFinalized
			c.UserID = "u4"
			c.SatisfactionScore = fptr(85)
		}),
	}

	convStore := storagemocks.NewConversationStore(t)
	convStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "", mock.Anything, now).
		Return(records, nil).
		Once()

	botStore := storagemocks.NewBotStore(t)
	botStore.EXPECT().
		CountActiveBots(mock.Anything, "co-1", time.Time{}).
		Return(4, nil).
		Once()
	botStore.EXPECT().
		CountActiveBots(mock.Anything, "co-1", windowStart).
		Return(2, nil).
		Once()

	svc := NewService(convStore, botStore, time.UTC, 7)
	svc.nowFn = func() time.Time { return now }

	report, err := svc.Dashboard(context.Background(), "co-1")
	require.NoError(t, err)

	require.Equal(t, 4, report.ActiveBots)
	require.Equal(t, 2, report.Conversations)
	require.Equal(t, 100, report.ConversionRate)
	require.Equal(t, 2, report.UniqueUsers)

	require.Equal(t, "+100%", report.ActiveBotsChange)
	require.Equal(t, "+100%", report.ConversationsChange)
	require.Equal(t, "+100%", report.ConversionChange)
	require.Equal(t, "+100%", report.UniqueUsersChange)

	require.Len(t, report.ConversationsByWeekday, 7)
	require.Equal(t, DayCount{Date: "Wed", Count: 0}, report.ConversationsByWeekday[0])
	require.Equal(t, DayCount{Date: "Thu", Count: 1}, report.ConversationsByWeekday[1])
	require.Equal(t, DayCount{Date: "Sun", Count: 1}, report.ConversationsByWeekday[4])
	require.Equal(t, DayCount{Date: "Tue", Count: 0}, report.ConversationsByWeekday[6])

	require.Equal(t, []MonthCount{
		{Month: "Nov", Count: 0},
		{Month: "Dec", Count: 1},
		{Month: "Jan", Count: 0},
		{Month: "Feb", Count: 0},
		{Month: "Mar", Count: 1},
	}, report.ConversionsByMonth)
}

func TestDashboard_ShrinkingTrends(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	windowStart := now.AddDate(0, 0, -7)

	records := []*v1.Conversation{
		conv("c1", time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)),
		conv("p1", time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)),
		conv("p2", time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)),
	}

	convStore := storagemocks.NewConversationStore(t)
	convStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "", mock.Anything, now).
		Return(records, nil).
		Once()

	botStore := storagemocks.NewBotStore(t)
	botStore.EXPECT().CountActiveBots(mock.Anything, "co-1", time.Time{}).Return(1, nil).Once()
	botStore.EXPECT().CountActiveBots(mock.Anything, "co-1", windowStart).Return(2, nil).Once()

	svc := NewService(convStore, botStore, time.UTC, 7)
	svc.nowFn = func() time.Time { return now }

	report, err := svc.Dashboard(context.Background(), "co-1")
	require.NoError(t, err)

	require.Equal(t, "-50%", report.ActiveBotsChange)
	require.Equal(t, "-50%", report.ConversationsChange)
	// no users on either side: zero baseline renders as +0%
	require.Equal(t, "+0%", report.UniqueUsersChange)
}

func TestDashboard_FetchFailure(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	convStore := storagemocks.NewConversationStore(t)
	convStore.EXPECT().
		FetchWindow(mock.Anything, "co-1", "", mock.Anything, now).
		Return(nil, errors.New("timeout")).
		Once()

	botStore := storagemocks.NewBotStore(t)
	botStore.EXPECT().CountActiveBots(mock.Anything, "co-1", mock.Anything).Return(0, nil).Maybe()

	svc := NewService(convStore, botStore, time.UTC, 7)
	svc.nowFn = func() time.Time { return now }

	report, err := svc.Dashboard(context.Background(), "co-1")
	require.Error(t, err)
	require.Nil(t, report)
}

func TestDashboard_RequiresCompanyID(t *testing.T) {
	svc := NewService(storagemocks.NewConversationStore(t), storagemocks.NewBotStore(t), time.UTC, 7)

	_, err := svc.Dashboard(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidQuery)
}
