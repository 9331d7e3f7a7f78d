//go:build unit

package sync_test

import (
	"context"
	"testing"
	"time"

	"platecost/internal/domain/inventory"
	"platecost/internal/pkg/clock"
	usecasesync "platecost/internal/usecase/sync"
	syncmock "platecost/tests/mock/sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SnapshotterTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	inventory   *syncmock.MockInventoryReadStore
	snapshots   *syncmock.MockSnapshotRepository
	clock       *clock.MockClock
	snapshotter *usecasesync.Snapshotter
	now         time.Time
	day         time.Time
}

func (s *SnapshotterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.inventory = syncmock.NewMockInventoryReadStore(s.mockCtrl)
	s.snapshots = syncmock.NewMockSnapshotRepository(s.mockCtrl)
	s.now = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	s.day = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.snapshotter = usecasesync.NewSnapshotter(s.inventory, s.snapshots, s.clock)
}

func (s *SnapshotterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSnapshotterSuite(t *testing.T) {
	suite.Run(t, new(SnapshotterTestSuite))
}

func (s *SnapshotterTestSuite) TestSnapshotTenant() {
	tenantID := uuid.New()
	items := []inventory.Item{
		{ID: uuid.New(), TenantID: tenantID, Name: "Flour", Value: decimal.RequireFromString("42.10")},
		{ID: uuid.New(), TenantID: tenantID, Name: "Tomatoes", Value: decimal.RequireFromString("13.75")},
	}

	s.inventory.EXPECT().ListByTenant(gomock.Any(), tenantID).Return(items, nil)
	s.snapshots.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshots []inventory.Snapshot) error {
			s.Require().Len(snapshots, 2)
			for i, snap := range snapshots {
				s.Equal(items[i].ID, snap.InventoryItemID)
				s.Equal(tenantID, snap.TenantID)
				s.True(items[i].Value.Equal(snap.Value))
				s.True(s.day.Equal(snap.SnapshotDate), "snapshot is stamped with the start of day")
			}
			return nil
		})

	taken, err := s.snapshotter.SnapshotTenant(context.Background(), tenantID)
	s.Require().NoError(err)
	s.Equal(2, taken)
}

func (s *SnapshotterTestSuite) TestSnapshotTenant_EmptyInventory() {
	tenantID := uuid.New()

	s.inventory.EXPECT().ListByTenant(gomock.Any(), tenantID).Return(nil, nil)

	taken, err := s.snapshotter.SnapshotTenant(context.Background(), tenantID)
	s.Require().NoError(err)
	s.Zero(taken, "no snapshot rows for an empty inventory")
}

func (s *SnapshotterTestSuite) TestHasSnapshotForDay() {
	tenantID := uuid.New()

	s.snapshots.EXPECT().ExistsForDay(gomock.Any(), tenantID, s.day).Return(true, nil)

	done, err := s.snapshotter.HasSnapshotForDay(context.Background(), tenantID)
	s.Require().NoError(err)
	s.True(done)
}
