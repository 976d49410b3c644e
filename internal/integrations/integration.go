package integrations

import (
	"context"
	"errors"
	"time"
)

// Connection states of a company's integration.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// ErrAlreadyConnected is returned when connecting an integration that is
// already connected for the company.
var ErrAlreadyConnected = errors.New("integration already connected")

// Integration is one third-party service connected by a company. The
// console stores credentials and settings; it never calls the third party
// itself.
type Integration struct {
	CompanyID     string     `json:"company_id"`
	IntegrationID string     `json:"integration_id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	ConnectedAt   *time.Time `json:"connected_at,omitempty"`
	ConnectedBy   string     `json:"connected_by,omitempty"`
	Config        Config     `json:"config"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
}

// Store defines the interface for integration persistence.
type Store interface {
	UpsertIntegration(ctx context.Context, integ *Integration) error
	GetIntegration(ctx context.Context, companyID, integrationID string) (*Integration, error)
	ListIntegrations(ctx context.Context, companyID string) ([]*Integration, error)
	DeleteIntegration(ctx context.Context, companyID, integrationID string) error

	// TouchSync stamps last_sync_at without rewriting credentials.
	TouchSync(ctx context.Context, companyID, integrationID string, at time.Time) error
}

// catalogNames maps integration identifiers to their display names, used
// when a connect request doesn't carry one.
var catalogNames = map[string]string{
	KindHubSpot:         "HubSpot",
	KindSalesforce:      "Salesforce",
	KindGoogleAnalytics: "Google Analytics",
	KindZapier:          "Zapier",
	KindStripe:          "Stripe",
	KindSlack:           "Slack",
	KindTwilio:          "Twilio",
	KindGoogleSheets:    "Google Sheets",
	KindZendesk:         "Zendesk",
	KindOpenAI:          "OpenAI",
}

// CatalogName returns the display name for an integration identifier,
// falling back to the identifier itself.
func CatalogName(integrationID string) string {
	if name, ok := catalogNames[integrationID]; ok {
		return name
	}
	return integrationID
}
