package integrations

import (
	"errors"
	"testing"
)

func TestDecodeConfig_Variants(t *testing.T) {
	cases := []struct {
		name          string
		integrationID string
		raw           string
		check         func(t *testing.T, cfg Config)
	}{
		{
			name:          "hubspot",
			integrationID: KindHubSpot,
			raw:           `{"api_key":"hs-key","portal_id":"12345","enable_auto_sync":true,"sync_interval":"1h"}`,
			check: func(t *testing.T, cfg Config) {
				c, ok := cfg.(HubSpotConfig)
				if !ok {
					t.Fatalf("expected HubSpotConfig, got %T", cfg)
				}
				if c.PortalID != "12345" || !c.EnableAutoSync {
					t.Errorf("unexpected config: %+v", c)
				}
			},
		},
		{
			name:          "google sheets",
			integrationID: KindGoogleSheets,
			raw:           `{"spreadsheet_id":"sheet-1","sheet_name":"Metrics","service_account_email":"bot@proj.iam.gserviceaccount.com","enable_auto_export":true}`,
			check: func(t *testing.T, cfg Config) {
				c, ok := cfg.(GoogleSheetsConfig)
				if !ok {
					t.Fatalf("expected GoogleSheetsConfig, got %T", cfg)
				}
				if c.SheetName != "Metrics" {
					t.Errorf("sheet_name = %q", c.SheetName)
				}
			},
		},
		{
			name:          "openai with tuning",
			integrationID: KindOpenAI,
			raw:           `{"api_key":"sk-test","model":"gpt-4o","temperature":0.7,"max_tokens":1024}`,
			check: func(t *testing.T, cfg Config) {
				c := cfg.(OpenAIConfig)
				if c.Temperature != 0.7 || c.MaxTokens != 1024 {
					t.Errorf("unexpected tuning: %+v", c)
				}
			},
		},
		{
			name:          "unknown catalog entry falls back to generic",
			integrationID: "mailchimp",
			raw:           `{"api_key":"mc-key","webhook_url":"https://hooks.example.com/mc"}`,
			check: func(t *testing.T, cfg Config) {
				if _, ok := cfg.(GenericConfig); !ok {
					t.Fatalf("expected GenericConfig, got %T", cfg)
				}
				if cfg.Kind() != "mailchimp" {
					t.Errorf("Kind() = %q, want mailchimp", cfg.Kind())
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := DecodeConfig(tc.integrationID, []byte(tc.raw))
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if cfg.Kind() != tc.integrationID {
				t.Errorf("Kind() = %q, want %q", cfg.Kind(), tc.integrationID)
			}
			tc.check(t, cfg)
		})
	}
}

func TestDecodeConfig_Rejections(t *testing.T) {
	cases := []struct {
		name          string
		integrationID string
		raw           string
	}{
		{"unknown field", KindHubSpot, `{"api_key":"k","portal_id":"1","portal":"typo"}`},
		{"malformed json", KindSlack, `{"webhook_url":`},
		{"missing required field", KindStripe, `{"publishable_key":"pk_test"}`},
		{"invalid sync interval", KindHubSpot, `{"api_key":"k","portal_id":"1","sync_interval":"45m"}`},
		{"temperature out of range", KindOpenAI, `{"api_key":"sk","temperature":3.5}`},
		{"generic missing api key", "mailchimp", `{"webhook_url":"https://x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeConfig(tc.integrationID, []byte(tc.raw))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCatalogName(t *testing.T) {
	if got := CatalogName(KindGoogleAnalytics); got != "Google Analytics" {
		t.Errorf("CatalogName(google-analytics) = %q", got)
	}
	if got := CatalogName("mailchimp"); got != "mailchimp" {
		t.Errorf("CatalogName falls back to the identifier, got %q", got)
	}
}
