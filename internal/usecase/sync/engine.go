package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"platecost/internal/domain/integration"
	"platecost/internal/domain/sale"
	"platecost/internal/infra"
	"platecost/internal/infra/square"
	"platecost/internal/pkg/clock"
	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"
)

// orderStateCompleted restricts the remote search to finalized orders; open
// and canceled orders never become sales.
const orderStateCompleted = "COMPLETED"

// Engine imports remote POS orders for a single tenant. Imports are
// idempotent: orders already recorded under their remote id are skipped, so
// overlapping windows never duplicate sales.
type Engine struct {
	credentials CredentialStore
	sales       SaleRepository
	fetcher     OrderFetcher
	clock       clock.Clock
	backfill    time.Duration
}

func NewEngine(
	credentials CredentialStore,
	sales SaleRepository,
	fetcher OrderFetcher,
	clk clock.Clock,
	cfg config.SyncConfig,
) *Engine {
	return &Engine{
		credentials: credentials,
		sales:       sales,
		fetcher:     fetcher,
		clock:       clk,
		backfill:    cfg.BackfillWindow,
	}
}

// SyncTenant fetches all orders created since the tenant's checkpoint and
// records the new ones as sales. It returns the number of orders imported.
// The checkpoint advances to the run start time only when every order in the
// window was handled cleanly, so a partial failure is retried next run.
func (e *Engine) SyncTenant(ctx context.Context, itg integration.Integration) (int, error) {
	if !itg.SyncReady() {
		return 0, errs.ErrNotConnected
	}

	runStart := e.clock.Now()
	windowStart, err := e.windowStart(ctx, itg, runStart)
	if err != nil {
		return 0, errs.Wrap(err, "resolving sync window")
	}

	imported := 0
	failed := 0
	cursor := ""
	for {
		page, err := e.fetcher.SearchOrders(ctx, *itg.AccessToken, square.SearchOrdersRequest{
			LocationIDs: []string{*itg.LocationID},
			Cursor:      cursor,
			Query: &square.OrderQuery{
				Filter: &square.OrderFilter{
					DateTimeFilter: &square.DateTimeFilter{
						CreatedAt: &square.TimeRange{StartAt: windowStart},
					},
					StateFilter: &square.StateFilter{
						States: []string{orderStateCompleted},
					},
				},
			},
		})
		if err != nil {
			return imported, errs.Wrap(err, "searching orders")
		}

		for _, o := range page.Orders {
			ok, err := e.importOrder(ctx, itg, o)
			if err != nil {
				failed++
				slog.Warn("order import failed",
					"tenant_id", itg.TenantID,
					"remote_order_id", o.ID,
					"error", err,
				)
				continue
			}
			if ok {
				imported++
			}
		}

		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	if failed > 0 {
		slog.Warn("sync completed with order failures, checkpoint not advanced",
			"tenant_id", itg.TenantID,
			"imported", imported,
			"failed", failed,
		)
		return imported, nil
	}

	if err := e.credentials.UpdateLastSyncedAt(ctx, itg.TenantID, runStart); err != nil {
		return imported, errs.Wrap(err, "advancing sync checkpoint")
	}
	return imported, nil
}

// windowStart picks the lower bound of the order search: the stored
// checkpoint when present, otherwise the date of the most recent synced sale,
// otherwise the configured backfill window before the run start.
func (e *Engine) windowStart(ctx context.Context, itg integration.Integration, runStart time.Time) (time.Time, error) {
	if itg.LastSyncedAt != nil {
		return *itg.LastSyncedAt, nil
	}
	latest, err := e.sales.LatestSyncedDate(ctx, itg.TenantID, sale.SourceSquare)
	if err != nil {
		return time.Time{}, err
	}
	if latest != nil {
		return *latest, nil
	}
	return runStart.Add(-e.backfill), nil
}

func (e *Engine) importOrder(ctx context.Context, itg integration.Integration, o square.Order) (bool, error) {
	s, err := sale.FromProviderOrder(itg.TenantID, providerOrder(o), e.clock.Now())
	if err != nil {
		if errors.Is(err, sale.ErrNoTotal) {
			return false, nil
		}
		return false, err
	}

	exists, err := e.sales.RemoteOrderExists(ctx, itg.TenantID, sale.SourceSquare, o.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := e.sales.CreateSynced(ctx, s); err != nil {
		// A concurrent run may have inserted the same remote order between
		// the existence check and the insert; the unique key makes that a
		// clean skip.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func providerOrder(o square.Order) sale.ProviderOrder {
	po := sale.ProviderOrder{
		RemoteID:  o.ID,
		CreatedAt: o.CreatedAt,
		State:     o.State,
	}
	if o.TotalMoney != nil {
		amount := o.TotalMoney.Amount
		po.TotalMinorUnits = &amount
	}
	for _, li := range o.LineItems {
		item := sale.ProviderOrderItem{
			Name:     li.Name,
			Quantity: li.Quantity,
			Category: li.CategoryID,
			Note:     li.Note,
		}
		if li.BasePriceMoney != nil {
			amount := li.BasePriceMoney.Amount
			item.BasePriceMinorUnits = &amount
		}
		if li.TotalMoney != nil {
			amount := li.TotalMoney.Amount
			item.TotalMinorUnits = &amount
		}
		po.Items = append(po.Items, item)
	}
	return po
}
