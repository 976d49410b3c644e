package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
)

// ConnectRequest is the payload for connecting an integration. Config is
// decoded against the variant for the integration being connected.
type ConnectRequest struct {
	Name        string          `json:"name"`
	ConnectedBy string          `json:"connected_by" binding:"required"`
	Config      json.RawMessage `json:"config" binding:"required"`
}

// Service manages a company's third-party integrations.
type Service struct {
	store Store
	nowFn func() time.Time
}

// NewService creates a new integrations service.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Connect validates the config against the integration's variant and
// stores the connection. Connecting an already-connected integration is
// rejected; reconnecting a disconnected one overwrites its config.
func (s *Service) Connect(ctx context.Context, companyID, integrationID string, req ConnectRequest) (*Integration, error) {
	cfg, err := DecodeConfig(integrationID, req.Config)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetIntegration(ctx, companyID, integrationID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("check existing integration: %w", err)
	}
	if existing != nil && existing.Status == StatusConnected {
		return nil, ErrAlreadyConnected
	}

	name := req.Name
	if name == "" {
		name = CatalogName(integrationID)
	}

	now := s.nowFn()
	integ := &Integration{
		CompanyID:     companyID,
		IntegrationID: integrationID,
		Name:          name,
		Status:        StatusConnected,
		ConnectedAt:   &now,
		ConnectedBy:   req.ConnectedBy,
		Config:        cfg,
		LastSyncAt:    &now,
	}

	if err := s.store.UpsertIntegration(ctx, integ); err != nil {
		return nil, fmt.Errorf("store integration: %w", err)
	}

	slog.Info("Integration connected",
		"company_id", companyID,
		"integration_id", integrationID,
		"connected_by", req.ConnectedBy)

	return integ, nil
}

// Disconnect removes the stored connection and its credentials.
func (s *Service) Disconnect(ctx context.Context, companyID, integrationID string) error {
	if err := s.store.DeleteIntegration(ctx, companyID, integrationID); err != nil {
		return err
	}

	slog.Info("Integration disconnected",
		"company_id", companyID,
		"integration_id", integrationID)
	return nil
}

// Get returns one integration of a company.
func (s *Service) Get(ctx context.Context, companyID, integrationID string) (*Integration, error) {
	return s.store.GetIntegration(ctx, companyID, integrationID)
}

// List returns all integrations of a company.
func (s *Service) List(ctx context.Context, companyID string) ([]*Integration, error) {
	return s.store.ListIntegrations(ctx, companyID)
}

// Sync stamps the integration's last sync time.
func (s *Service) Sync(ctx context.Context, companyID, integrationID string) (time.Time, error) {
	now := s.nowFn()
	if err := s.store.TouchSync(ctx, companyID, integrationID, now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
