package repository

import (
	"context"
	"time"

	"platecost/internal/domain/inventory"
	"platecost/internal/infra"
	"platecost/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository appends valuation snapshots. Rows are immutable.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) InsertBatch(ctx context.Context, snapshots []inventory.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, s := range snapshots {
		batch.Queue(
			`INSERT INTO inventory_snapshots (inventory_item_id, tenant_id, value, snapshot_date)
			 VALUES ($1, $2, $3, $4)`,
			s.InventoryItemID, s.TenantID, pgconv.NumericFromDecimal(s.Value), s.SnapshotDate)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range snapshots {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to insert inventory snapshot", err)
		}
	}
	return nil
}

// ExistsForDay reports whether the tenant already has any snapshot row for
// the given calendar day; the batch driver uses this as its
// at-most-once-per-day guard.
func (r *SnapshotRepository) ExistsForDay(ctx context.Context, tenantID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM inventory_snapshots
		     WHERE tenant_id = $1 AND snapshot_date = $2
		 )`,
		tenantID, day).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check snapshot existence", err)
	}
	return exists, nil
}
