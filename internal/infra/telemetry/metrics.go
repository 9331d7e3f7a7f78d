package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics counts the work of the periodic sync runs.
type SyncMetrics struct {
	RunsTotal      prometheus.Counter
	OrdersSynced   prometheus.Counter
	SnapshotsTaken prometheus.Counter
	TenantFailures prometheus.Counter
	TenantsSkipped prometheus.Counter
}

func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)
	return &SyncMetrics{
		RunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "pos_sync_runs_total",
			Help: "Number of orchestrator runs started.",
		}),
		OrdersSynced: factory.NewCounter(prometheus.CounterOpts{
			Name: "pos_sync_orders_total",
			Help: "Number of remote orders materialized as sales.",
		}),
		SnapshotsTaken: factory.NewCounter(prometheus.CounterOpts{
			Name: "pos_sync_inventory_snapshots_total",
			Help: "Number of inventory snapshot rows written.",
		}),
		TenantFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "pos_sync_tenant_failures_total",
			Help: "Number of per-tenant stage failures during runs.",
		}),
		TenantsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "pos_sync_tenants_skipped_total",
			Help: "Number of tenants skipped because they are not sync-ready.",
		}),
	}
}
