package v1

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bot kinds offered by the creation wizard.
const (
	BotKindSales      = "sales"
	BotKindSupport    = "support"
	BotKindAssistance = "assistance"
)

// Bot lifecycle states.
const (
	BotStatusActive   = "active"
	BotStatusPaused   = "paused"
	BotStatusInactive = "inactive"
)

// Conversational tones configurable per bot.
const (
	ToneFormal   = "formal"
	ToneFriendly = "friendly"
	ToneCasual   = "casual"
)

// Bot is a configured chatbot owned by a company.
type Bot struct {
	ID           string       `json:"id"`
	CompanyID    string       `json:"company_id"`
	Name         string       `json:"name"`
	Kind         string       `json:"kind"`
	Status       string       `json:"status"`
	Settings     BotSettings  `json:"settings"`
	Flow         Flow         `json:"flow"`
	QuickReplies []QuickReply `json:"quick_replies"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// BotSettings holds per-bot presentation and channel configuration.
type BotSettings struct {
	Tone              string   `json:"tone"`
	LogoURL           string   `json:"logo_url"`
	Channels          []string `json:"channels"`
	WhatsAppConnected bool     `json:"whatsapp_connected"`
	WhatsAppInstance  string   `json:"whatsapp_instance"`
}

// Flow is the conversational node graph edited in the console. The console
// stores it verbatim for the editor; nodes and edges are never interpreted
// server-side.
type Flow struct {
	Nodes []json.RawMessage `json:"nodes"`
	Edges []json.RawMessage `json:"edges"`
}

// QuickReply is a canned trigger/response pair.
type QuickReply struct {
	ID       string `json:"id"`
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
}

// ValidBotKind reports whether kind is one offered by the wizard.
func ValidBotKind(kind string) bool {
	switch kind {
	case BotKindSales, BotKindSupport, BotKindAssistance:
		return true
	}
	return false
}

// ValidBotStatus reports whether status is a known lifecycle state.
func ValidBotStatus(status string) bool {
	switch status {
	case BotStatusActive, BotStatusPaused, BotStatusInactive:
		return true
	}
	return false
}

// ValidTone reports whether tone is a configurable conversational tone.
func ValidTone(tone string) bool {
	switch tone {
	case ToneFormal, ToneFriendly, ToneCasual:
		return true
	}
	return false
}

// Validate ensures the bot has all required attributes and known enums.
func (b *Bot) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("id is required")
	}

	if b.CompanyID == "" {
		return fmt.Errorf("company_id is required")
	}

	if b.Name == "" {
		return fmt.Errorf("name is required")
	}

	if !ValidBotKind(b.Kind) {
		return fmt.Errorf("invalid kind %q", b.Kind)
	}

	if !ValidBotStatus(b.Status) {
		return fmt.Errorf("invalid status %q", b.Status)
	}

	if !ValidTone(b.Settings.Tone) {
		return fmt.Errorf("invalid tone %q", b.Settings.Tone)
	}

	return nil
}
