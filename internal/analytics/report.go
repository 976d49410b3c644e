package analytics

// MetricsReport is the dashboard-ready aggregate for one bot and one date
// window. It is recomputed fresh on every query; the aggregator owns no
// state between calls.
type MetricsReport struct {
	TotalConversations int `json:"total_conversations"`
	ResolutionRate     int `json:"resolution_rate"`
	UniqueUsers        int `json:"unique_users"`

	// AverageDurationSeconds is nil when no record yields a usable duration.
	AverageDurationSeconds *float64 `json:"average_duration_seconds,omitempty"`

	ConversationsByDay  []DayCount     `json:"conversations_by_day"`
	ChannelDistribution []ChannelShare `json:"channel_distribution"`

	// AverageSatisfaction is nil when no record carries a score.
	AverageSatisfaction *float64 `json:"average_satisfaction,omitempty"`

	// ConversationsDeltaPercent is the signed change versus the prior
	// window of equal length. Nil when the prior-window fetch failed,
	// which is distinct from a genuinely empty prior window.
	ConversationsDeltaPercent *int `json:"conversations_delta_percent,omitempty"`
}

// DayCount is one chart bucket: a formatted day label and its count.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ChannelShare is one slice of the channel pie chart. Percent is the
// integer-rounded share of total conversations.
type ChannelShare struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// MonthCount is one bucket of a per-month chart.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DashboardReport is the company-wide overview: headline counters with
// trend strings plus the two overview charts.
type DashboardReport struct {
	ActiveBots     int `json:"active_bots"`
	Conversations  int `json:"conversations"`
	ConversionRate int `json:"conversion_rate"`
	UniqueUsers    int `json:"unique_users"`

	ActiveBotsChange    string `json:"active_bots_change"`
	ConversationsChange string `json:"conversations_change"`
	ConversionChange    string `json:"conversion_change"`
	UniqueUsersChange   string `json:"unique_users_change"`

	ConversationsByWeekday []DayCount   `json:"conversations_by_weekday"`
	ConversionsByMonth     []MonthCount `json:"conversions_by_month"`
}
