package repository

import (
	"context"
	"errors"
	"time"

	"platecost/internal/domain/integration"
	"platecost/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IntegrationRepository is the credential store: the only component allowed
// to read or write the per-tenant OAuth token triple and the bound location.
type IntegrationRepository struct {
	db *pgxpool.Pool
}

func NewIntegrationRepository(db *pgxpool.Pool) *IntegrationRepository {
	return &IntegrationRepository{db: db}
}

const integrationColumns = `
	id, slug, square_access_token, square_refresh_token,
	square_token_expires_at, square_location_id, square_last_synced_at`

func (r *IntegrationRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*integration.Integration, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+integrationColumns+` FROM tenants WHERE id = $1`, tenantID)

	integ, err := scanIntegration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("integration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find integration", err)
	}
	return integ, nil
}

func (r *IntegrationRepository) ListAll(ctx context.Context) ([]integration.Integration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+integrationColumns+` FROM tenants ORDER BY slug`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list integrations", err)
	}
	defer rows.Close()

	var result []integration.Integration
	for rows.Next() {
		integ, err := scanIntegration(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan integration", err)
		}
		result = append(result, *integ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate integrations", err)
	}
	return result, nil
}

func (r *IntegrationRepository) SetTokens(ctx context.Context, tenantID uuid.UUID, t integration.Tokens) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants
		 SET square_access_token = $2,
		     square_refresh_token = $3,
		     square_token_expires_at = $4,
		     updated_at = now()
		 WHERE id = $1`,
		tenantID, t.AccessToken, t.RefreshToken, t.ExpiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to store tokens", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("integration not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *IntegrationRepository) ClearTokens(ctx context.Context, tenantID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants
		 SET square_access_token = NULL,
		     square_refresh_token = NULL,
		     square_token_expires_at = NULL,
		     updated_at = now()
		 WHERE id = $1`,
		tenantID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear tokens", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("integration not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *IntegrationRepository) BindLocation(ctx context.Context, tenantID uuid.UUID, locationID string) error {
	// Guarded UPDATE so a concurrent bind cannot overwrite an existing value
	// even though the binder checks first.
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants
		 SET square_location_id = $2, updated_at = now()
		 WHERE id = $1 AND square_location_id IS NULL`,
		tenantID, locationID)
	if err != nil {
		return infra.WrapRepoErr("failed to bind location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location already bound or integration not found", pgx.ErrNoRows, infra.KindDuplicateKey)
	}
	return nil
}

func (r *IntegrationRepository) UpdateLastSyncedAt(ctx context.Context, tenantID uuid.UUID, ts time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE tenants SET square_last_synced_at = $2, updated_at = now() WHERE id = $1`,
		tenantID, ts)
	if err != nil {
		return infra.WrapRepoErr("failed to update sync checkpoint", err)
	}
	return nil
}

func scanIntegration(row pgx.Row) (*integration.Integration, error) {
	var integ integration.Integration
	err := row.Scan(
		&integ.TenantID,
		&integ.TenantSlug,
		&integ.AccessToken,
		&integ.RefreshToken,
		&integ.TokenExpiresAt,
		&integ.LocationID,
		&integ.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return &integ, nil
}
