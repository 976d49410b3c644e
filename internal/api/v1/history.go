package v1

import (
	"fmt"
	"time"
)

// Bot audit actions recorded in the history log.
const (
	HistoryCreated   = "created"
	HistoryDeleted   = "deleted"
	HistoryActivated = "activated"
	HistoryPaused    = "paused"
	HistoryUpdated   = "updated"
)

// HistoryEntry is one audit record of a bot lifecycle change.
type HistoryEntry struct {
	ID         string         `json:"id"`
	CompanyID  string         `json:"company_id"`
	BotID      string         `json:"bot_id"`
	BotName    string         `json:"bot_name"`
	Action     string         `json:"action"`
	Details    HistoryDetails `json:"details"`
	ActorID    string         `json:"actor_id"`
	ActorName  string         `json:"actor_name"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// HistoryDetails carries action-specific context. Only the fields relevant
// to the recorded action are populated.
type HistoryDetails struct {
	PreviousStatus string   `json:"previous_status,omitempty"`
	NewStatus      string   `json:"new_status,omitempty"`
	ChangedFields  []string `json:"changed_fields,omitempty"`
	DeleteReason   string   `json:"delete_reason,omitempty"`
	Kind           string   `json:"kind,omitempty"`
	Channels       []string `json:"channels,omitempty"`
}

// ValidHistoryAction reports whether action is a recordable audit action.
func ValidHistoryAction(action string) bool {
	switch action {
	case HistoryCreated, HistoryDeleted, HistoryActivated, HistoryPaused, HistoryUpdated:
		return true
	}
	return false
}

// Validate ensures the entry has all required attributes.
func (h *HistoryEntry) Validate() error {
	if h.CompanyID == "" {
		return fmt.Errorf("company_id is required")
	}

	if h.BotID == "" {
		return fmt.Errorf("bot_id is required")
	}

	if !ValidHistoryAction(h.Action) {
		return fmt.Errorf("invalid action %q", h.Action)
	}

	if h.ActorID == "" {
		return fmt.Errorf("actor_id is required")
	}

	return nil
}
