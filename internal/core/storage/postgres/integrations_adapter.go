package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/bexbot-lab/bexbot-console/internal/integrations"
)

const (
	queryUpsertIntegration = `
		INSERT INTO integrations (
			company_id, integration_id, name, status,
			connected_at, connected_by, config, last_sync_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, integration_id)
		DO UPDATE SET
			name         = EXCLUDED.name,
			status       = EXCLUDED.status,
			connected_at = EXCLUDED.connected_at,
			connected_by = EXCLUDED.connected_by,
			config       = EXCLUDED.config,
			last_sync_at = EXCLUDED.last_sync_at
	`

	queryGetIntegration = `
		SELECT
			company_id, integration_id, name, status,
			connected_at, connected_by, config, last_sync_at
		FROM integrations
		WHERE company_id = $1 AND integration_id = $2
	`

	queryListIntegrations = `
		SELECT
			company_id, integration_id, name, status,
			connected_at, connected_by, config, last_sync_at
		FROM integrations
		WHERE company_id = $1
		ORDER BY integration_id ASC
	`

	queryDeleteIntegration = `
		DELETE FROM integrations
		WHERE company_id = $1 AND integration_id = $2
	`

	queryTouchIntegrationSync = `
		UPDATE integrations
		SET last_sync_at = $1
		WHERE company_id = $2 AND integration_id = $3
	`
)

// IntegrationAdapter implements integrations.Store using PostgreSQL.
// The typed config is stored as a JSONB document and decoded back into its
// variant through the integration identifier on read.
type IntegrationAdapter struct {
	db *sql.DB
}

// NewIntegrationAdapter creates a new IntegrationAdapter sharing the given connection.
func NewIntegrationAdapter(db *sql.DB) *IntegrationAdapter {
	return &IntegrationAdapter{db: db}
}

// UpsertIntegration inserts or fully replaces a company's integration record.
func (a *IntegrationAdapter) UpsertIntegration(ctx context.Context, integ *integrations.Integration) error {
	configJSON, err := marshalJSONB(integ.Config)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(ctx, queryUpsertIntegration,
		integ.CompanyID,
		integ.IntegrationID,
		integ.Name,
		integ.Status,
		nullTimePtr(integ.ConnectedAt),
		nullString(integ.ConnectedBy),
		configJSON,
		nullTimePtr(integ.LastSyncAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert integration: %w", err)
	}

	slog.Debug("[Postgres] Upserted integration",
		"company_id", integ.CompanyID,
		"integration_id", integ.IntegrationID,
		"status", integ.Status)
	return nil
}

// GetIntegration fetches one integration record.
// Returns storage.ErrNotFound if it does not exist.
func (a *IntegrationAdapter) GetIntegration(ctx context.Context, companyID, integrationID string) (*integrations.Integration, error) {
	integ, err := scanIntegrationRow(a.db.QueryRowContext(ctx, queryGetIntegration, companyID, integrationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return integ, nil
}

// ListIntegrations returns all of a company's integration records.
func (a *IntegrationAdapter) ListIntegrations(ctx context.Context, companyID string) ([]*integrations.Integration, error) {
	rows, err := a.db.QueryContext(ctx, queryListIntegrations, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query integrations: %w", err)
	}
	defer rows.Close()

	var integs []*integrations.Integration
	for rows.Next() {
		integ, err := scanIntegrationRow(rows)
		if err != nil {
			return nil, err
		}
		integs = append(integs, integ)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating integrations: %w", err)
	}

	return integs, nil
}

// DeleteIntegration removes a company's integration record.
// Returns storage.ErrNotFound if it does not exist.
func (a *IntegrationAdapter) DeleteIntegration(ctx context.Context, companyID, integrationID string) error {
	result, err := a.db.ExecContext(ctx, queryDeleteIntegration, companyID, integrationID)
	if err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// TouchSync stamps last_sync_at without rewriting credentials.
// Returns storage.ErrNotFound if the integration does not exist.
func (a *IntegrationAdapter) TouchSync(ctx context.Context, companyID, integrationID string, at time.Time) error {
	result, err := a.db.ExecContext(ctx, queryTouchIntegrationSync, at, companyID, integrationID)
	if err != nil {
		return fmt.Errorf("failed to touch integration sync: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to touch integration sync: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// scanIntegrationRow scans a database row into an Integration struct,
// decoding the JSONB config into its typed variant.
func scanIntegrationRow(row scanner) (*integrations.Integration, error) {
	var integ integrations.Integration
	var connectedAt, lastSyncAt sql.NullTime
	var connectedBy sql.NullString
	var configJSON []byte

	err := row.Scan(
		&integ.CompanyID,
		&integ.IntegrationID,
		&integ.Name,
		&integ.Status,
		&connectedAt,
		&connectedBy,
		&configJSON,
		&lastSyncAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan integration row: %w", err)
	}

	integ.ConnectedBy = connectedBy.String
	if connectedAt.Valid {
		t := connectedAt.Time
		integ.ConnectedAt = &t
	}
	if lastSyncAt.Valid {
		t := lastSyncAt.Time
		integ.LastSyncAt = &t
	}

	if len(configJSON) > 0 {
		config, err := integrations.DecodeConfig(integ.IntegrationID, configJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode integration config: %w", err)
		}
		integ.Config = config
	}

	return &integ, nil
}
