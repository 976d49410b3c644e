package bots

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	storagemocks "github.com/bexbot-lab/bexbot-console/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testActor = Actor{ID: "u-1", Name: "Dana"}

func newTestService(t *testing.T) (*Service, *storagemocks.BotStore, *storagemocks.HistoryStore) {
	t.Helper()

	store := storagemocks.NewBotStore(t)
	history := storagemocks.NewHistoryStore(t)

	svc := NewService(store, history)
	svc.nowFn = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, store, history
}

func TestCreate_SeedsDefaultsAndRecordsHistory(t *testing.T) {
	svc, store, history := newTestService(t)

	var created *v1.Bot
	store.EXPECT().
		CreateBot(mock.Anything, mock.AnythingOfType("*v1.Bot")).
		Run(func(_ context.Context, bot *v1.Bot) {
			created = bot
		}).
		Return(nil).Once()

	var entry *v1.HistoryEntry
	history.EXPECT().
		AppendHistory(mock.Anything, mock.AnythingOfType("*v1.HistoryEntry")).
		Run(func(_ context.Context, e *v1.HistoryEntry) {
			entry = e
		}).
		Return(nil).Once()

	bot, err := svc.Create(context.Background(), "comp-1", CreateBotRequest{
		Name:     "Support Bot",
		Kind:     "support",
		Tone:     "friendly",
		Channels: []string{"web", "whatsapp"},
		Actor:    testActor,
	})
	require.NoError(t, err)
	require.Same(t, created, bot)

	require.NotEmpty(t, bot.ID)
	require.Equal(t, "comp-1", bot.CompanyID)
	require.Equal(t, v1.BotStatusActive, bot.Status)
	require.Equal(t, []string{"web", "whatsapp"}, bot.Settings.Channels)
	require.Len(t, bot.Flow.Nodes, 2)
	require.Len(t, bot.Flow.Edges, 1)
	require.Len(t, bot.QuickReplies, 2)
	require.Equal(t, "hello", bot.QuickReplies[0].Trigger)
	require.Equal(t, bot.CreatedAt, bot.UpdatedAt)

	require.Equal(t, v1.HistoryCreated, entry.Action)
	require.Equal(t, bot.ID, entry.BotID)
	require.Equal(t, "Support Bot", entry.BotName)
	require.Equal(t, "support", entry.Details.Kind)
	require.Equal(t, testActor.ID, entry.ActorID)
}

func TestCreate_NilChannelsBecomeEmptySlice(t *testing.T) {
	svc, store, history := newTestService(t)

	store.EXPECT().CreateBot(mock.Anything, mock.Anything).Return(nil).Once()
	history.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()

	bot, err := svc.Create(context.Background(), "comp-1", CreateBotRequest{
		Name:  "Bot",
		Kind:  "assistance",
		Tone:  "formal",
		Actor: testActor,
	})
	require.NoError(t, err)
	require.NotNil(t, bot.Settings.Channels)
	require.Empty(t, bot.Settings.Channels)
}

func TestCreate_StoreFailure(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().CreateBot(mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()

	_, err := svc.Create(context.Background(), "comp-1", CreateBotRequest{
		Name:  "Bot",
		Kind:  "assistance",
		Tone:  "formal",
		Actor: testActor,
	})
	require.ErrorContains(t, err, "create bot")
}

func existingBot(status string) *v1.Bot {
	return &v1.Bot{
		ID:        "bot-1",
		CompanyID: "comp-1",
		Name:      "Support Bot",
		Kind:      "support",
		Status:    status,
		Settings:  v1.BotSettings{Tone: "friendly", Channels: []string{"web"}},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSetStatus_RecordsTransition(t *testing.T) {
	cases := []struct {
		name       string
		from, to   string
		wantAction string
	}{
		{"pause", v1.BotStatusActive, v1.BotStatusPaused, v1.HistoryPaused},
		{"activate", v1.BotStatusPaused, v1.BotStatusActive, v1.HistoryActivated},
		{"deactivate", v1.BotStatusActive, v1.BotStatusInactive, v1.HistoryUpdated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, history := newTestService(t)

			store.EXPECT().GetBot(mock.Anything, "bot-1").
				Return(existingBot(tc.from), nil).Once()
			store.EXPECT().UpdateBotStatus(mock.Anything, "bot-1", tc.to, svc.nowFn()).
				Return(nil).Once()

			var entry *v1.HistoryEntry
			history.EXPECT().
				AppendHistory(mock.Anything, mock.AnythingOfType("*v1.HistoryEntry")).
				Run(func(_ context.Context, e *v1.HistoryEntry) {
					entry = e
				}).
				Return(nil).Once()

			bot, err := svc.SetStatus(context.Background(), "bot-1", tc.to, testActor)
			require.NoError(t, err)
			require.Equal(t, tc.to, bot.Status)
			require.Equal(t, svc.nowFn(), bot.UpdatedAt)

			require.Equal(t, tc.wantAction, entry.Action)
			require.Equal(t, tc.from, entry.Details.PreviousStatus)
			require.Equal(t, tc.to, entry.Details.NewStatus)
		})
	}
}

func TestSetStatus_SameStatusIsNoOp(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().GetBot(mock.Anything, "bot-1").
		Return(existingBot(v1.BotStatusActive), nil).Once()

	bot, err := svc.SetStatus(context.Background(), "bot-1", v1.BotStatusActive, testActor)
	require.NoError(t, err)
	require.Equal(t, v1.BotStatusActive, bot.Status)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SetStatus(context.Background(), "bot-1", "archived", testActor)
	require.ErrorIs(t, err, ErrInvalidBot)
}

func TestSetFlow_RecordsChangedFields(t *testing.T) {
	svc, store, history := newTestService(t)

	flow := v1.Flow{
		Nodes: []json.RawMessage{json.RawMessage(`{"id":"1","type":"startNode"}`)},
		Edges: []json.RawMessage{},
	}

	store.EXPECT().GetBot(mock.Anything, "bot-1").
		Return(existingBot(v1.BotStatusActive), nil).Once()
	store.EXPECT().UpdateBotFlow(mock.Anything, "bot-1", flow, svc.nowFn()).
		Return(nil).Once()

	var entry *v1.HistoryEntry
	history.EXPECT().
		AppendHistory(mock.Anything, mock.AnythingOfType("*v1.HistoryEntry")).
		Run(func(_ context.Context, e *v1.HistoryEntry) {
			entry = e
		}).
		Return(nil).Once()

	require.NoError(t, svc.SetFlow(context.Background(), "bot-1", flow, testActor))
	require.Equal(t, v1.HistoryUpdated, entry.Action)
	require.Equal(t, []string{"flow"}, entry.Details.ChangedFields)
}

func TestSetQuickReplies_AssignsMissingIDs(t *testing.T) {
	svc, store, history := newTestService(t)

	store.EXPECT().GetBot(mock.Anything, "bot-1").
		Return(existingBot(v1.BotStatusActive), nil).Once()

	var stored []v1.QuickReply
	store.EXPECT().
		UpdateBotQuickReplies(mock.Anything, "bot-1", mock.AnythingOfType("[]v1.QuickReply"), svc.nowFn()).
		Run(func(_ context.Context, _ string, replies []v1.QuickReply, _ time.Time) {
			stored = replies
		}).
		Return(nil).Once()

	var entry *v1.HistoryEntry
	history.EXPECT().
		AppendHistory(mock.Anything, mock.AnythingOfType("*v1.HistoryEntry")).
		Run(func(_ context.Context, e *v1.HistoryEntry) {
			entry = e
		}).
		Return(nil).Once()

	replies := []v1.QuickReply{
		{ID: "qr-1", Trigger: "hello", Response: "Hi!"},
		{Trigger: "pricing", Response: "See our pricing page."},
	}
	require.NoError(t, svc.SetQuickReplies(context.Background(), "bot-1", replies, testActor))

	require.Len(t, stored, 2)
	require.Equal(t, "qr-1", stored[0].ID)
	require.NotEmpty(t, stored[1].ID)
	require.Equal(t, []string{"quick_replies"}, entry.Details.ChangedFields)
}

func TestDelete_RecordsReasonAndPreviousStatus(t *testing.T) {
	svc, store, history := newTestService(t)

	store.EXPECT().GetBot(mock.Anything, "bot-1").
		Return(existingBot(v1.BotStatusPaused), nil).Once()
	store.EXPECT().DeleteBot(mock.Anything, "bot-1").Return(nil).Once()

	var entry *v1.HistoryEntry
	history.EXPECT().
		AppendHistory(mock.Anything, mock.AnythingOfType("*v1.HistoryEntry")).
		Run(func(_ context.Context, e *v1.HistoryEntry) {
			entry = e
		}).
		Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), "bot-1", "no longer needed", testActor))
	require.Equal(t, v1.HistoryDeleted, entry.Action)
	require.Equal(t, v1.BotStatusPaused, entry.Details.PreviousStatus)
	require.Equal(t, "no longer needed", entry.Details.DeleteReason)
}

func TestHistoryFailureIsNotFatal(t *testing.T) {
	svc, store, history := newTestService(t)

	store.EXPECT().GetBot(mock.Anything, "bot-1").
		Return(existingBot(v1.BotStatusActive), nil).Once()
	store.EXPECT().DeleteBot(mock.Anything, "bot-1").Return(nil).Once()
	history.EXPECT().AppendHistory(mock.Anything, mock.Anything).
		Return(errors.New("audit table unavailable")).Once()

	require.NoError(t, svc.Delete(context.Background(), "bot-1", "", testActor))
}

func TestCompanyHistory_PassesLimit(t *testing.T) {
	svc, _, history := newTestService(t)

	entries := []*v1.HistoryEntry{{ID: "h-1", Action: v1.HistoryCreated}}
	history.EXPECT().ListHistoryByCompany(mock.Anything, "comp-1", 25).
		Return(entries, nil).Once()

	got, err := svc.CompanyHistory(context.Background(), "comp-1", 25)
	require.NoError(t, err)
	require.Equal(t, entries, got)
}
