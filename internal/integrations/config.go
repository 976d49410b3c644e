package integrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a connect payload whose config does not match the
// integration's expected shape.
var ErrInvalidConfig = errors.New("invalid integration config")

// Config is the per-integration credential and settings payload. Each
// catalog entry has its own variant with a validated field set; unknown
// integrations fall back to GenericConfig. The union is keyed by the
// integration identifier, never by inspecting the payload.
type Config interface {
	// Kind returns the integration identifier the variant belongs to.
	Kind() string

	// Validate checks the variant's required fields.
	Validate() error
}

// Catalog integration identifiers with a dedicated config variant.
const (
	KindHubSpot         = "hubspot"
	KindSalesforce      = "salesforce"
	KindGoogleAnalytics = "google-analytics"
	KindZapier          = "zapier"
	KindStripe          = "stripe"
	KindSlack           = "slack"
	KindTwilio          = "twilio"
	KindGoogleSheets    = "google-sheets"
	KindZendesk         = "zendesk"
	KindOpenAI          = "openai"
)

type HubSpotConfig struct {
	APIKey         string `json:"api_key"`
	PortalID       string `json:"portal_id"`
	EnableAutoSync bool   `json:"enable_auto_sync"`
	SyncInterval   string `json:"sync_interval,omitempty"`
}

func (HubSpotConfig) Kind() string { return KindHubSpot }

func (c HubSpotConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.PortalID == "" {
		return fmt.Errorf("portal_id is required")
	}
	switch c.SyncInterval {
	case "", "15m", "30m", "1h", "6h", "24h":
	default:
		return fmt.Errorf("invalid sync_interval %q", c.SyncInterval)
	}
	return nil
}

type SalesforceConfig struct {
	InstanceURL  string `json:"instance_url"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
	Sandbox      bool   `json:"sandbox"`
}

func (SalesforceConfig) Kind() string { return KindSalesforce }

func (c SalesforceConfig) Validate() error {
	if c.InstanceURL == "" {
		return fmt.Errorf("instance_url is required")
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("client_id and client_secret are required")
	}
	if c.RefreshToken == "" {
		return fmt.Errorf("refresh_token is required")
	}
	return nil
}

type GoogleAnalyticsConfig struct {
	MeasurementID       string `json:"measurement_id"`
	TrackingID          string `json:"tracking_id,omitempty"`
	EnableEventTracking bool   `json:"enable_event_tracking"`
}

func (GoogleAnalyticsConfig) Kind() string { return KindGoogleAnalytics }

func (c GoogleAnalyticsConfig) Validate() error {
	if c.MeasurementID == "" {
		return fmt.Errorf("measurement_id is required")
	}
	return nil
}

type ZapierConfig struct {
	WebhookURL string `json:"webhook_url"`
	APIKey     string `json:"api_key,omitempty"`
}

func (ZapierConfig) Kind() string { return KindZapier }

func (c ZapierConfig) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required")
	}
	return nil
}

type StripeConfig struct {
	PublishableKey string `json:"publishable_key"`
	SecretKey      string `json:"secret_key"`
	WebhookSecret  string `json:"webhook_secret,omitempty"`
	TestMode       bool   `json:"test_mode"`
}

func (StripeConfig) Kind() string { return KindStripe }

func (c StripeConfig) Validate() error {
	if c.PublishableKey == "" {
		return fmt.Errorf("publishable_key is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}
	return nil
}

type SlackConfig struct {
	WebhookURL   string `json:"webhook_url"`
	BotToken     string `json:"bot_token,omitempty"`
	ChannelID    string `json:"channel_id,omitempty"`
	EnableAlerts bool   `json:"enable_alerts"`
}

func (SlackConfig) Kind() string { return KindSlack }

func (c SlackConfig) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required")
	}
	return nil
}

type TwilioConfig struct {
	AccountSID  string `json:"account_sid"`
	AuthToken   string `json:"auth_token"`
	PhoneNumber string `json:"phone_number"`
	EnableSMS   bool   `json:"enable_sms"`
}

func (TwilioConfig) Kind() string { return KindTwilio }

func (c TwilioConfig) Validate() error {
	if c.AccountSID == "" || c.AuthToken == "" {
		return fmt.Errorf("account_sid and auth_token are required")
	}
	if c.PhoneNumber == "" {
		return fmt.Errorf("phone_number is required")
	}
	return nil
}

type GoogleSheetsConfig struct {
	SpreadsheetID       string `json:"spreadsheet_id"`
	SheetName           string `json:"sheet_name,omitempty"`
	ServiceAccountEmail string `json:"service_account_email"`
	EnableAutoExport    bool   `json:"enable_auto_export"`
}

func (GoogleSheetsConfig) Kind() string { return KindGoogleSheets }

func (c GoogleSheetsConfig) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required")
	}
	if c.ServiceAccountEmail == "" {
		return fmt.Errorf("service_account_email is required")
	}
	return nil
}

type ZendeskConfig struct {
	Subdomain         string `json:"subdomain"`
	Email             string `json:"email"`
	APIToken          string `json:"api_token"`
	EnableAutoTickets bool   `json:"enable_auto_tickets"`
}

func (ZendeskConfig) Kind() string { return KindZendesk }

func (c ZendeskConfig) Validate() error {
	if c.Subdomain == "" {
		return fmt.Errorf("subdomain is required")
	}
	if c.Email == "" || c.APIToken == "" {
		return fmt.Errorf("email and api_token are required")
	}
	return nil
}

type OpenAIConfig struct {
	APIKey      string  `json:"api_key"`
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

func (OpenAIConfig) Kind() string { return KindOpenAI }

func (c OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0,2]")
	}
	if c.MaxTokens < 0 || c.MaxTokens > 4000 {
		return fmt.Errorf("max_tokens must be in [0,4000]")
	}
	return nil
}

// GenericConfig covers catalog entries without a dedicated variant:
// a key pair plus an optional webhook target.
type GenericConfig struct {
	kind string

	APIKey     string `json:"api_key"`
	APISecret  string `json:"api_secret,omitempty"`
	WebhookURL string `json:"webhook_url,omitempty"`
}

func (c GenericConfig) Kind() string { return c.kind }

func (c GenericConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	return nil
}

// DecodeConfig parses raw JSON into the variant for integrationID.
// Unknown fields are rejected so a typo'd credential key fails loudly
// instead of being silently stored.
func DecodeConfig(integrationID string, raw []byte) (Config, error) {
	decode := func(dst interface{}) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
		}
		return nil
	}

	var cfg Config
	switch integrationID {
	case KindHubSpot:
		var c HubSpotConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindSalesforce:
		var c SalesforceConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindGoogleAnalytics:
		var c GoogleAnalyticsConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindZapier:
		var c ZapierConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindStripe:
		var c StripeConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindSlack:
		var c SlackConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindTwilio:
		var c TwilioConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindGoogleSheets:
		var c GoogleSheetsConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindZendesk:
		var c ZendeskConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	case KindOpenAI:
		var c OpenAIConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		cfg = c
	default:
		var c GenericConfig
		if err := decode(&c); err != nil {
			return nil, err
		}
		c.kind = integrationID
		cfg = c
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return cfg, nil
}
