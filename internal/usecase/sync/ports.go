package sync

import (
	"context"
	"time"

	"platecost/internal/domain/integration"
	"platecost/internal/domain/inventory"
	"platecost/internal/domain/sale"
	"platecost/internal/infra/square"

	"github.com/google/uuid"
)

type CredentialStore interface {
	ListAll(ctx context.Context) ([]integration.Integration, error)
	UpdateLastSyncedAt(ctx context.Context, tenantID uuid.UUID, ts time.Time) error
}

type SaleRepository interface {
	LatestSyncedDate(ctx context.Context, tenantID uuid.UUID, source sale.SourceProvider) (*time.Time, error)
	RemoteOrderExists(ctx context.Context, tenantID uuid.UUID, source sale.SourceProvider, remoteOrderID string) (bool, error)
	CreateSynced(ctx context.Context, s *sale.Sale) error
}

type InventoryReadStore interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]inventory.Item, error)
}

type SnapshotRepository interface {
	InsertBatch(ctx context.Context, snapshots []inventory.Snapshot) error
	ExistsForDay(ctx context.Context, tenantID uuid.UUID, day time.Time) (bool, error)
}

type OrderFetcher interface {
	SearchOrders(ctx context.Context, accessToken string, req square.SearchOrdersRequest) (*square.OrderPage, error)
}
