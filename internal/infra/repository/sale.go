package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"platecost/internal/domain/sale"
	"platecost/internal/infra"
	"platecost/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRepository struct {
	db *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{db: db}
}

// LatestSyncedDate returns the date of the most recent synced sale for the
// tenant, or nil when none exists yet.
func (r *SaleRepository) LatestSyncedDate(ctx context.Context, tenantID uuid.UUID, source sale.SourceProvider) (*time.Time, error) {
	var latest *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT max(date) FROM sales
		 WHERE tenant_id = $1 AND source_provider = $2 AND remote_order_id IS NOT NULL`,
		tenantID, source.String()).Scan(&latest)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find latest synced sale date", err)
	}
	return latest, nil
}

func (r *SaleRepository) RemoteOrderExists(ctx context.Context, tenantID uuid.UUID, source sale.SourceProvider, remoteOrderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM sales
		     WHERE tenant_id = $1 AND source_provider = $2 AND remote_order_id = $3
		 )`,
		tenantID, source.String(), remoteOrderID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check remote order existence", err)
	}
	return exists, nil
}

// CreateSynced writes a sale and its line items in a single transaction.
// A unique violation on the remote-order key surfaces as KindDuplicateKey so
// the sync loop can treat it as an idempotent skip.
func (r *SaleRepository) CreateSynced(ctx context.Context, s *sale.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback sale transaction", "error", rollbackErr)
		}
	}()

	var saleID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO sales (tenant_id, date, total, payment_type, status, source_provider, remote_order_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		s.TenantID, s.Date, pgconv.NumericFromDecimal(s.Total),
		s.PaymentType, s.Status, s.Source.String(), s.RemoteOrderID).Scan(&saleID)
	if err != nil {
		return infra.WrapRepoErr("failed to create sale", err)
	}

	for i, item := range s.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_items (sale_id, position, name, quantity, unit_price, total_price, category, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			saleID, i, item.Name, item.Quantity,
			pgconv.NumericFromDecimal(item.UnitPrice), pgconv.NumericFromDecimal(item.TotalPrice),
			item.Category, item.Notes)
		if err != nil {
			return infra.WrapRepoErr("failed to create sale item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit sale", err)
	}
	s.ID = saleID
	return nil
}
