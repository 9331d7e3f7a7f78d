package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DailySalesRow struct {
	Date             time.Time       `json:"date"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int64           `json:"transaction_count"`
}

type SalesRange struct {
	From *time.Time
	To   *time.Time
}

type SaleReadStore interface {
	DailyTotals(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]DailySalesRow, error)
}

type SaleQueries interface {
	DailySales(ctx context.Context, tenantID uuid.UUID, rng SalesRange) ([]DailySalesRow, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

func (q *saleQueriesImpl) DailySales(ctx context.Context, tenantID uuid.UUID, rng SalesRange) ([]DailySalesRow, error) {
	return q.store.DailyTotals(ctx, tenantID, rng.From, rng.To)
}
