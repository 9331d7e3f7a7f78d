package repository

import (
	"context"

	"platecost/internal/domain/inventory"
	"platecost/internal/infra"
	"platecost/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRepository only reads items here; inventory CRUD and CSV import
// live outside this service.
type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]inventory.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, value, unit_type, updated_by, updated_at
		 FROM inventory_items
		 WHERE tenant_id = $1
		 ORDER BY name`,
		tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory items", err)
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		var (
			item  inventory.Item
			value pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.TenantID, &item.Name, &value,
			&item.UnitType, &item.UpdatedBy, &item.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory item", err)
		}
		item.Value, err = pgconv.DecimalFromNumeric(value)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert inventory value", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory items", err)
	}
	return items, nil
}
