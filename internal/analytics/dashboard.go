package analytics

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	"golang.org/x/sync/errgroup"
)

// satisfiedThreshold is the satisfaction score at or above which a
// finalized conversation counts as a conversion.
const satisfiedThreshold = 80

// monthsOnChart is how many trailing calendar months the conversions
// chart covers.
const monthsOnChart = 5

// Dashboard computes the company-wide overview: headline counters for the
// trailing window with deltas against the window before it, plus the
// weekday and monthly charts. The active-bot delta is a genuine prior
// comparison (active bots that already existed at the window start), not a
// placeholder.
func (s *Service) Dashboard(ctx context.Context, companyID string) (*DashboardReport, error) {
	if companyID == "" {
		return nil, invalidQueryf("company_id is required")
	}

	now := s.nowFn()
	windowStart := now.AddDate(0, 0, -s.windowDays)
	priorStart := now.AddDate(0, 0, -2*s.windowDays)
	chartStart := firstOfMonth(now, s.loc).AddDate(0, -(monthsOnChart - 1), 0)

	fetchStart := priorStart
	if chartStart.Before(fetchStart) {
		fetchStart = chartStart
	}

	var (
		records     []*v1.Conversation
		activeNow   int
		activePrior int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.conversations.FetchWindow(gctx, companyID, "", fetchStart, now)
		if err != nil {
			return fmt.Errorf("fetch dashboard conversations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		activeNow, err = s.bots.CountActiveBots(gctx, companyID, time.Time{})
		if err != nil {
			return fmt.Errorf("count active bots: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		activePrior, err = s.bots.CountActiveBots(gctx, companyID, windowStart)
		if err != nil {
			return fmt.Errorf("count prior active bots: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	valid := filterWindow(records, fetchStart, now)

	var current, previous []*v1.Conversation
	for _, c := range valid {
		switch {
		case !c.StartedAt.Before(windowStart):
			current = append(current, c)
		case !c.StartedAt.Before(priorStart):
			previous = append(previous, c)
		}
	}

	currentRate := conversionRate(current)
	previousRate := conversionRate(previous)

	report := &DashboardReport{
		ActiveBots:     activeNow,
		Conversations:  len(current),
		ConversionRate: currentRate,
		UniqueUsers:    countUniqueUsers(current),

		ActiveBotsChange:    formatChange(activeNow, activePrior),
		ConversationsChange: formatChange(len(current), len(previous)),
		ConversionChange:    formatChange(currentRate, previousRate),
		UniqueUsersChange:   formatChange(countUniqueUsers(current), countUniqueUsers(previous)),

		ConversationsByWeekday: groupByWeekday(current, now, s.windowDays, s.loc),
		ConversionsByMonth:     conversionsByMonth(valid, now, s.loc),
	}
	return report, nil
}

// conversionRate is the integer percentage of finalized conversations
// whose satisfaction reached the threshold, over all finalized ones.
func conversionRate(records []*v1.Conversation) int {
	finalized := 0
	satisfied := 0
	for _, c := range records {
		if !c.Finalized() {
			continue
		}
		finalized++
		if c.SatisfactionScore != nil && *c.SatisfactionScore >= satisfiedThreshold {
			satisfied++
		}
	}
	return roundPercent(satisfied, finalized)
}

func countUniqueUsers(records []*v1.Conversation) int {
	users := make(map[string]struct{})
	for _, c := range records {
		if c.UserID != "" {
			users[c.UserID] = struct{}{}
		}
	}
	return len(users)
}

// groupByWeekday produces one zero-filled bucket per day of the trailing
// window, oldest first, labelled with the weekday name.
func groupByWeekday(records []*v1.Conversation, now time.Time, days int, loc *time.Location) []DayCount {
	counts := make(map[time.Time]int)
	for _, c := range records {
		counts[dayOf(c.StartedAt, loc)]++
	}

	buckets := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := dayOf(now.AddDate(0, 0, -i), loc)
		buckets = append(buckets, DayCount{
			Date:  day.Format("Mon"),
			Count: counts[day],
		})
	}
	return buckets
}

// conversionsByMonth counts satisfied finalized conversations per calendar
// month over the trailing chart months, zero-filled, oldest first.
func conversionsByMonth(records []*v1.Conversation, now time.Time, loc *time.Location) []MonthCount {
	counts := make(map[time.Time]int)
	for _, c := range records {
		if !c.Finalized() || c.SatisfactionScore == nil || *c.SatisfactionScore < satisfiedThreshold {
			continue
		}
		counts[firstOfMonth(c.StartedAt, loc)]++
	}

	buckets := make([]MonthCount, 0, monthsOnChart)
	for i := monthsOnChart - 1; i >= 0; i-- {
		month := firstOfMonth(now, loc).AddDate(0, -i, 0)
		buckets = append(buckets, MonthCount{
			Month: month.Format("Jan"),
			Count: counts[month],
		})
	}
	return buckets
}

// formatChange renders a signed percentage trend the way the console
// displays it. A zero baseline with growth is shown as +100%.
func formatChange(current, previous int) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "+0%"
	}

	change := roundPercent(current-previous, previous)
	if change >= 0 {
		return fmt.Sprintf("+%d%%", change)
	}
	return fmt.Sprintf("%d%%", change)
}
