package v1

import (
	"fmt"
	"time"
)

// Conversation statuses known to the console. The set is open: bot runtimes
// may report other values, which are stored verbatim and simply don't count
// as resolved.
const (
	StatusActive    = "active"
	StatusFinalized = "finalized"
	StatusResolved  = "resolved"
	StatusEscalated = "escalated"
)

// Conversation is one customer interaction with a bot, as reported by the
// bot runtime. It separates the envelope (identity, tenancy, timing) from
// the outcome fields used for reporting.
type Conversation struct {
	// ID is the unique immutable identifier provided by the runtime.
	// It MUST be unique per CompanyID to enforce idempotency.
	ID string `json:"id"`

	// BotID identifies the bot that handled the conversation.
	BotID string `json:"bot_id"`

	// CompanyID identifies the owning tenant.
	CompanyID string `json:"company_id"`

	// UserID is an opaque identifier of the end user. Optional: anonymous
	// web-widget conversations carry no user identity.
	UserID string `json:"user_id,omitempty"`

	// Channel is the surface the conversation happened on, e.g. "whatsapp",
	// "web", "messenger". Open set: unrecognized values pass through.
	Channel string `json:"channel"`

	// Status is the terminal (or current) state of the conversation.
	Status string `json:"status"`

	// StartedAt is when the conversation began. It is the sole field used
	// for windowing and trend bucketing; a zero value marks the record as
	// malformed and it is dropped from every aggregate.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the conversation ended, if it has.
	EndedAt *time.Time `json:"ended_at,omitempty"`

	// DurationSeconds is a runtime-reported fallback duration, used only
	// when EndedAt is absent.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`

	// SatisfactionScore is the end-user rating in [0,100], when collected.
	SatisfactionScore *float64 `json:"satisfaction_score,omitempty"`

	// IngestedAt is when the console received the record. Set by the
	// ingestion service, not the client.
	IngestedAt time.Time `json:"ingested_at"`
}

// Validate ensures the conversation has all required envelope attributes.
func (c *Conversation) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}

	if c.BotID == "" {
		return fmt.Errorf("bot_id is required")
	}

	if c.CompanyID == "" {
		return fmt.Errorf("company_id is required")
	}

	if c.Channel == "" {
		return fmt.Errorf("channel is required")
	}

	if c.StartedAt.IsZero() {
		return fmt.Errorf("started_at is required")
	}

	if c.SatisfactionScore != nil && (*c.SatisfactionScore < 0 || *c.SatisfactionScore > 100) {
		return fmt.Errorf("satisfaction_score must be in [0,100]")
	}

	return nil
}

// Resolved reports whether the conversation counts toward the resolution
// rate. Unrecognized statuses are tolerated and simply return false.
func (c *Conversation) Resolved() bool {
	return c.Status == StatusResolved || c.Status == StatusFinalized
}

// Finalized reports whether the conversation reached an end: either its
// status says so or the runtime recorded an end time.
func (c *Conversation) Finalized() bool {
	return c.Status == StatusFinalized || c.EndedAt != nil
}
