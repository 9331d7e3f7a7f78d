package readstore

import (
	"context"
	"time"

	"platecost/internal/infra"
	"platecost/internal/pkg/pgconv"
	"platecost/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleReadStore struct {
	db *pgxpool.Pool
}

func NewSaleReadStore(db *pgxpool.Pool) *SaleReadStore {
	return &SaleReadStore{db: db}
}

func (r *SaleReadStore) DailyTotals(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]queries.DailySalesRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', date) AS day,
		        sum(total)              AS total_sales,
		        count(id)               AS transaction_count
		 FROM sales
		 WHERE tenant_id = $1
		   AND ($2::timestamptz IS NULL OR date >= $2)
		   AND ($3::timestamptz IS NULL OR date <= $3)
		 GROUP BY day
		 ORDER BY day DESC`,
		tenantID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query daily sales", err)
	}
	defer rows.Close()

	var result []queries.DailySalesRow
	for rows.Next() {
		var (
			row   queries.DailySalesRow
			total pgtype.Numeric
		)
		if err := rows.Scan(&row.Date, &total, &row.TransactionCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily sales row", err)
		}
		row.TotalSales, err = pgconv.DecimalFromNumeric(total)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert daily sales total", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate daily sales", err)
	}
	return result, nil
}
