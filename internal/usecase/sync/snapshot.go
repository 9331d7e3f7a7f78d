package sync

import (
	"context"

	"platecost/internal/domain/inventory"
	"platecost/internal/pkg/clock"
	"platecost/internal/pkg/errs"

	"github.com/google/uuid"
)

// Snapshotter records a once-daily copy of every inventory item's value so
// historical cost reports survive later edits to the live items.
type Snapshotter struct {
	inventory InventoryReadStore
	snapshots SnapshotRepository
	clock     clock.Clock
}

func NewSnapshotter(inv InventoryReadStore, snapshots SnapshotRepository, clk clock.Clock) *Snapshotter {
	return &Snapshotter{
		inventory: inv,
		snapshots: snapshots,
		clock:     clk,
	}
}

// HasSnapshotForDay reports whether the tenant already has a snapshot stamped
// with today's date.
func (s *Snapshotter) HasSnapshotForDay(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	day := inventory.StartOfDay(s.clock.Now())
	return s.snapshots.ExistsForDay(ctx, tenantID, day)
}

// SnapshotTenant copies the tenant's current inventory values into snapshot
// rows stamped with the start of the current day. It returns the number of
// items captured.
func (s *Snapshotter) SnapshotTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	items, err := s.inventory.ListByTenant(ctx, tenantID)
	if err != nil {
		return 0, errs.Wrap(err, "listing inventory")
	}
	if len(items) == 0 {
		return 0, nil
	}

	day := inventory.StartOfDay(s.clock.Now())
	snapshots := make([]inventory.Snapshot, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, inventory.Snapshot{
			InventoryItemID: item.ID,
			TenantID:        tenantID,
			Value:           item.Value,
			SnapshotDate:    day,
		})
	}

	if err := s.snapshots.InsertBatch(ctx, snapshots); err != nil {
		return 0, errs.Wrap(err, "inserting inventory snapshots")
	}
	return len(snapshots), nil
}
