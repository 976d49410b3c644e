package analytics

import (
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
)

// Window bounds a metrics computation by started_at. Callers typically
// pass bare dates; the end boundary is extended to the last millisecond of
// its calendar day before filtering, so the end day is captured in full.
type Window struct {
	Start time.Time
	End   time.Time
}

// ExtendedEnd returns the end boundary pushed to 23:59:59.999 of the end
// day in the display zone.
func (w Window) ExtendedEnd(loc *time.Location) time.Time {
	y, m, d := w.End.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

// PriorRange returns the immediately preceding window of identical
// duration: [start - duration, start - 1ms].
func (w Window) PriorRange(loc *time.Location) (start, end time.Time) {
	duration := w.ExtendedEnd(loc).Sub(w.Start)
	return w.Start.Add(-duration), w.Start.Add(-time.Millisecond)
}

// PriorWindow carries the outcome of the prior-period fetch. FetchFailed
// marks "could not load", which must surface as an absent delta rather
// than a zero-count prior period.
type PriorWindow struct {
	Records     []*v1.Conversation
	FetchFailed bool
}

// dayOf truncates t to the start of its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// firstOfMonth truncates t to the start of its calendar month in loc.
func firstOfMonth(t time.Time, loc *time.Location) time.Time {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}
