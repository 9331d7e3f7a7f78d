package sync

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"sync/atomic"

	"platecost/internal/domain/integration"
	"platecost/internal/infra/telemetry"
	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderSyncer interface {
	SyncTenant(ctx context.Context, itg integration.Integration) (int, error)
}

type InventorySnapshotter interface {
	HasSnapshotForDay(ctx context.Context, tenantID uuid.UUID) (bool, error)
	SnapshotTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type TenantFailure struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Stage    string    `json:"stage"`
	Error    string    `json:"error"`
}

type RunSummary struct {
	TenantsProcessed int             `json:"tenants_processed"`
	TenantsSkipped   int             `json:"tenants_skipped"`
	OrdersImported   int             `json:"orders_imported"`
	SnapshotsTaken   int             `json:"snapshots_taken"`
	Failures         []TenantFailure `json:"failures,omitempty"`
}

func (s *RunSummary) Message() string {
	msg := fmt.Sprintf("Synced %d tenants: %d orders imported, %d inventory snapshots",
		s.TenantsProcessed, s.OrdersImported, s.SnapshotsTaken)
	if s.TenantsSkipped > 0 {
		msg += fmt.Sprintf(", %d skipped", s.TenantsSkipped)
	}
	if len(s.Failures) > 0 {
		msg += fmt.Sprintf(", %d failed", len(s.Failures))
	}
	return msg
}

// Orchestrator runs the full sync cycle over every connected tenant. Tenants
// are processed concurrently by a bounded worker pool, and one tenant's
// failure never stops the others. Only one cycle may run at a time per
// process.
type Orchestrator struct {
	credentials CredentialStore
	syncer      OrderSyncer
	snapshotter InventorySnapshotter
	metrics     *telemetry.SyncMetrics
	cfg         config.SyncConfig
	running     atomic.Bool
}

func NewOrchestrator(
	credentials CredentialStore,
	syncer OrderSyncer,
	snapshotter InventorySnapshotter,
	metrics *telemetry.SyncMetrics,
	cfg config.SyncConfig,
) *Orchestrator {
	return &Orchestrator{
		credentials: credentials,
		syncer:      syncer,
		snapshotter: snapshotter,
		metrics:     metrics,
		cfg:         cfg,
	}
}

// Run executes one sync cycle and returns its summary. A second call while a
// cycle is in flight fails fast with ErrSyncAlreadyRunning.
func (o *Orchestrator) Run(ctx context.Context) (*RunSummary, error) {
	if !o.running.CompareAndSwap(false, true) {
		return nil, errs.ErrSyncAlreadyRunning
	}
	defer o.running.Store(false)

	o.metrics.RunsTotal.Inc()

	ctx, cancel := context.WithTimeout(ctx, o.cfg.RunDeadline)
	defer cancel()

	integrations, err := o.credentials.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "listing tenant integrations")
	}

	var (
		mu      stdsync.Mutex
		summary RunSummary
	)

	var g errgroup.Group
	g.SetLimit(o.cfg.Workers)
	for _, itg := range integrations {
		g.Go(func() error {
			o.syncTenant(ctx, itg, &summary, &mu)
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("sync cycle finished",
		"processed", summary.TenantsProcessed,
		"skipped", summary.TenantsSkipped,
		"orders", summary.OrdersImported,
		"snapshots", summary.SnapshotsTaken,
		"failures", len(summary.Failures),
	)
	return &summary, nil
}

func (o *Orchestrator) syncTenant(ctx context.Context, itg integration.Integration, summary *RunSummary, mu *stdsync.Mutex) {
	defer func() {
		if r := recover(); r != nil {
			o.recordFailure(summary, mu, itg.TenantID, "orders", fmt.Errorf("panic: %v", r))
		}
	}()

	if !itg.SyncReady() {
		o.metrics.TenantsSkipped.Inc()
		mu.Lock()
		summary.TenantsSkipped++
		mu.Unlock()
		return
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.TenantTimeout)
	defer cancel()

	mu.Lock()
	summary.TenantsProcessed++
	mu.Unlock()

	// Snapshot before syncing: the valuation reflects the day's opening stock.
	o.snapshotTenant(ctx, itg.TenantID, summary, mu)

	imported, err := o.syncer.SyncTenant(ctx, itg)
	if err != nil {
		o.recordFailure(summary, mu, itg.TenantID, "orders", err)
	}
	if imported > 0 {
		o.metrics.OrdersSynced.Add(float64(imported))
		mu.Lock()
		summary.OrdersImported += imported
		mu.Unlock()
	}
}

// snapshotTenant takes at most one inventory snapshot per tenant per day; a
// cycle rerun on the same day leaves the morning's snapshot untouched.
func (o *Orchestrator) snapshotTenant(ctx context.Context, tenantID uuid.UUID, summary *RunSummary, mu *stdsync.Mutex) {
	done, err := o.snapshotter.HasSnapshotForDay(ctx, tenantID)
	if err != nil {
		o.recordFailure(summary, mu, tenantID, "snapshot", err)
		return
	}
	if done {
		return
	}

	taken, err := o.snapshotter.SnapshotTenant(ctx, tenantID)
	if err != nil {
		o.recordFailure(summary, mu, tenantID, "snapshot", err)
		return
	}
	if taken > 0 {
		o.metrics.SnapshotsTaken.Add(float64(taken))
		mu.Lock()
		summary.SnapshotsTaken += taken
		mu.Unlock()
	}
}

func (o *Orchestrator) recordFailure(summary *RunSummary, mu *stdsync.Mutex, tenantID uuid.UUID, stage string, err error) {
	o.metrics.TenantFailures.Inc()
	slog.Error("tenant sync stage failed",
		"tenant_id", tenantID,
		"stage", stage,
		"error", err,
	)
	mu.Lock()
	summary.Failures = append(summary.Failures, TenantFailure{
		TenantID: tenantID,
		Stage:    stage,
		Error:    err.Error(),
	})
	mu.Unlock()
}
