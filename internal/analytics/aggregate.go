package analytics

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	"github.com/shopspring/decimal"
)

// channelUnknown is the bucket for records that carry no channel tag.
const channelUnknown = "unknown"

// ComputeBotMetrics reduces a window of conversation records into a
// MetricsReport. Pure over its inputs: no state survives the call, and
// identical inputs always produce identical reports.
//
// Records with a missing started_at are dropped (logged, never fatal), and
// window membership is re-validated here rather than trusted from the
// loader's query filter. loc is the display zone for day bucketing; nil
// means UTC.
func ComputeBotMetrics(records []*v1.Conversation, window Window, prior PriorWindow, loc *time.Location) MetricsReport {
	if loc == nil {
		loc = time.UTC
	}

	ext := window.ExtendedEnd(loc)
	valid := filterWindow(records, window.Start, ext)
	total := len(valid)

	if total == 0 {
		zero := 0
		return MetricsReport{
			ConversationsByDay:        []DayCount{},
			ChannelDistribution:       []ChannelShare{},
			ConversationsDeltaPercent: &zero,
		}
	}

	resolved := 0
	users := make(map[string]struct{})
	for _, c := range valid {
		if c.Resolved() {
			resolved++
		}
		if c.UserID != "" {
			users[c.UserID] = struct{}{}
		}
	}

	return MetricsReport{
		TotalConversations:        total,
		ResolutionRate:            roundPercent(resolved, total),
		UniqueUsers:               len(users),
		AverageDurationSeconds:    averageDuration(valid),
		ConversationsByDay:        groupByDay(valid, window.Start, ext, loc),
		ChannelDistribution:       channelDistribution(valid),
		AverageSatisfaction:       averageSatisfaction(valid),
		ConversationsDeltaPercent: deltaPercent(total, prior, window, loc),
	}
}

// filterWindow drops records with a missing started_at and records outside
// [start, end]. A malformed record never fails the whole computation.
func filterWindow(records []*v1.Conversation, start, end time.Time) []*v1.Conversation {
	valid := make([]*v1.Conversation, 0, len(records))
	for _, c := range records {
		if c == nil {
			continue
		}
		if c.StartedAt.IsZero() {
			slog.Warn("Dropping conversation with invalid started_at",
				"conversation_id", c.ID,
				"bot_id", c.BotID)
			continue
		}
		if c.StartedAt.Before(start) || c.StartedAt.After(end) {
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// groupByDay buckets records by calendar day in the display zone. Every
// day of the window appears, zero-filled, ordered by the underlying date
// rather than the formatted label.
func groupByDay(records []*v1.Conversation, start, end time.Time, loc *time.Location) []DayCount {
	counts := make(map[time.Time]int)
	for _, c := range records {
		counts[dayOf(c.StartedAt, loc)]++
	}

	var buckets []DayCount
	for day := dayOf(start, loc); !day.After(dayOf(end, loc)); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, DayCount{
			Date:  day.Format("02 Jan"),
			Count: counts[day],
		})
	}
	return buckets
}

// averageDuration prefers ended_at - started_at when non-negative, falls
// back to the runtime-reported duration, and skips records that yield
// neither. Nil when nothing contributes.
func averageDuration(records []*v1.Conversation) *float64 {
	var sum float64
	contributing := 0

	for _, c := range records {
		if c.EndedAt != nil {
			if d := c.EndedAt.Sub(c.StartedAt).Seconds(); d >= 0 {
				sum += d
				contributing++
				continue
			}
		}
		if c.DurationSeconds != nil && *c.DurationSeconds >= 0 {
			sum += *c.DurationSeconds
			contributing++
		}
	}

	if contributing == 0 {
		return nil
	}
	avg := sum / float64(contributing)
	return &avg
}

// channelDistribution groups by channel tag and converts group sizes to
// integer percentage shares of the total. Order is deterministic: largest
// share first, ties broken by name.
func channelDistribution(records []*v1.Conversation) []ChannelShare {
	total := len(records)
	if total == 0 {
		return []ChannelShare{}
	}

	counts := make(map[string]int)
	for _, c := range records {
		channel := c.Channel
		if channel == "" {
			channel = channelUnknown
		}
		counts[channel]++
	}

	shares := make([]ChannelShare, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, ChannelShare{
			Name:    capitalize(name),
			Percent: roundPercent(count, total),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Name < shares[j].Name
	})

	return shares
}

// averageSatisfaction averages the defined scores. Nil when none are set.
func averageSatisfaction(records []*v1.Conversation) *float64 {
	var sum float64
	scored := 0

	for _, c := range records {
		if c.SatisfactionScore != nil {
			sum += *c.SatisfactionScore
			scored++
		}
	}

	if scored == 0 {
		return nil
	}
	avg := sum / float64(scored)
	return &avg
}

// deltaPercent computes the signed change versus the prior window.
// A failed prior fetch yields nil; a genuinely empty prior window yields
// the +100 convention.
func deltaPercent(current int, prior PriorWindow, window Window, loc *time.Location) *int {
	if prior.FetchFailed {
		return nil
	}

	priorStart, priorEnd := window.PriorRange(loc)
	priorCount := len(filterWindow(prior.Records, priorStart, priorEnd))

	var delta int
	switch {
	case priorCount == 0 && current > 0:
		delta = 100
	case priorCount == 0:
		delta = 0
	default:
		delta = roundPercent(current-priorCount, priorCount)
	}
	return &delta
}

// roundPercent returns round(100 * part / total) using exact decimal
// arithmetic. part may be negative; total must not be zero unless part is
// also zero.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
