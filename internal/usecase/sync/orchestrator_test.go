//go:build unit

package sync_test

import (
	"context"
	"testing"

	"platecost/internal/domain/integration"
	"platecost/internal/infra/telemetry"
	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"
	usecasesync "platecost/internal/usecase/sync"
	"platecost/tests/common/builder"
	syncmock "platecost/tests/mock/sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	credentials  *syncmock.MockCredentialStore
	syncer       *syncmock.MockOrderSyncer
	snapshotter  *syncmock.MockInventorySnapshotter
	orchestrator *usecasesync.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.credentials = syncmock.NewMockCredentialStore(s.mockCtrl)
	s.syncer = syncmock.NewMockOrderSyncer(s.mockCtrl)
	s.snapshotter = syncmock.NewMockInventorySnapshotter(s.mockCtrl)
	s.orchestrator = usecasesync.NewOrchestrator(
		s.credentials,
		s.syncer,
		s.snapshotter,
		telemetry.NewSyncMetrics(prometheus.NewRegistry()),
		config.NewTestConfig().Sync,
	)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestRun_TenantFailureIsIsolated() {
	healthy1 := builder.NewIntegrationBuilder().BuildDomain()
	broken := builder.NewIntegrationBuilder().BuildDomain()
	healthy2 := builder.NewIntegrationBuilder().BuildDomain()

	s.credentials.EXPECT().
		ListAll(gomock.Any()).
		Return([]integration.Integration{healthy1, broken, healthy2}, nil)

	s.syncer.EXPECT().SyncTenant(gomock.Any(), healthy1).Return(3, nil)
	s.syncer.EXPECT().SyncTenant(gomock.Any(), broken).Return(0, errs.New("token revoked upstream"))
	s.syncer.EXPECT().SyncTenant(gomock.Any(), healthy2).Return(2, nil)

	// Snapshots run for every tenant regardless of the order-sync outcome.
	for _, itg := range []integration.Integration{healthy1, broken, healthy2} {
		s.snapshotter.EXPECT().HasSnapshotForDay(gomock.Any(), itg.TenantID).Return(false, nil)
		s.snapshotter.EXPECT().SnapshotTenant(gomock.Any(), itg.TenantID).Return(5, nil)
	}

	summary, err := s.orchestrator.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(3, summary.TenantsProcessed)
	s.Equal(5, summary.OrdersImported)
	s.Equal(15, summary.SnapshotsTaken)
	s.Require().Len(summary.Failures, 1)
	s.Equal(broken.TenantID, summary.Failures[0].TenantID)
	s.Equal("orders", summary.Failures[0].Stage)
}

func (s *OrchestratorTestSuite) TestRun_SkipsTenantsThatAreNotReady() {
	ready := builder.NewIntegrationBuilder().BuildDomain()
	noLocation := builder.NewIntegrationBuilder().With(func(b *builder.IntegrationBuilder) {
		b.LocationID = ""
	}).BuildDomain()
	disconnected := builder.NewIntegrationBuilder().BuildDisconnected()

	s.credentials.EXPECT().
		ListAll(gomock.Any()).
		Return([]integration.Integration{ready, noLocation, disconnected}, nil)

	s.syncer.EXPECT().SyncTenant(gomock.Any(), ready).Return(1, nil)
	s.snapshotter.EXPECT().HasSnapshotForDay(gomock.Any(), ready.TenantID).Return(false, nil)
	s.snapshotter.EXPECT().SnapshotTenant(gomock.Any(), ready.TenantID).Return(2, nil)

	summary, err := s.orchestrator.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(1, summary.TenantsProcessed)
	s.Equal(2, summary.TenantsSkipped)
	s.Empty(summary.Failures)
}

func (s *OrchestratorTestSuite) TestRun_SnapshotOncePerDay() {
	itg := builder.NewIntegrationBuilder().BuildDomain()

	s.credentials.EXPECT().
		ListAll(gomock.Any()).
		Return([]integration.Integration{itg}, nil)
	s.syncer.EXPECT().SyncTenant(gomock.Any(), itg).Return(0, nil)
	s.snapshotter.EXPECT().HasSnapshotForDay(gomock.Any(), itg.TenantID).Return(true, nil)
	// No SnapshotTenant call: today's snapshot already exists.

	summary, err := s.orchestrator.Run(context.Background())
	s.Require().NoError(err)
	s.Zero(summary.SnapshotsTaken)
}

func (s *OrchestratorTestSuite) TestRun_RejectsOverlappingRuns() {
	itg := builder.NewIntegrationBuilder().BuildDomain()

	started := make(chan struct{})
	release := make(chan struct{})

	s.credentials.EXPECT().
		ListAll(gomock.Any()).
		Return([]integration.Integration{itg}, nil)
	s.syncer.EXPECT().
		SyncTenant(gomock.Any(), itg).
		DoAndReturn(func(context.Context, integration.Integration) (int, error) {
			close(started)
			<-release
			return 0, nil
		})
	s.snapshotter.EXPECT().HasSnapshotForDay(gomock.Any(), itg.TenantID).Return(true, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := s.orchestrator.Run(context.Background())
		s.NoError(err)
	}()

	<-started
	_, err := s.orchestrator.Run(context.Background())
	s.ErrorIs(err, errs.ErrSyncAlreadyRunning)

	close(release)
	<-done
}

func (s *OrchestratorTestSuite) TestRun_RecoversFromPanic() {
	itg := builder.NewIntegrationBuilder().BuildDomain()

	s.credentials.EXPECT().
		ListAll(gomock.Any()).
		Return([]integration.Integration{itg}, nil)
	s.snapshotter.EXPECT().HasSnapshotForDay(gomock.Any(), itg.TenantID).Return(true, nil)
	s.syncer.EXPECT().
		SyncTenant(gomock.Any(), itg).
		DoAndReturn(func(context.Context, integration.Integration) (int, error) {
			panic("nil map write")
		})

	summary, err := s.orchestrator.Run(context.Background())
	s.Require().NoError(err)
	s.Require().Len(summary.Failures, 1)
	s.Contains(summary.Failures[0].Error, "panic")
}
