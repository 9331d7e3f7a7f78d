package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a tenant's inventory line: current quantity-on-hand plus unit.
// Items are maintained by inventory CRUD and CSV import; the snapshot job
// only ever reads them.
type Item struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Value     decimal.Decimal
	UnitType  string
	UpdatedBy *string
	UpdatedAt time.Time
}

// Snapshot is a dated, immutable copy of an item's quantity used for
// historical valuation trends. Append-only.
type Snapshot struct {
	ID              uuid.UUID
	InventoryItemID uuid.UUID
	TenantID        uuid.UUID
	Value           decimal.Decimal
	SnapshotDate    time.Time
}

// StartOfDay truncates t to midnight in its own location; snapshot rows for
// one calendar day all carry the same date stamp.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
