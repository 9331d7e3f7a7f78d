package response

import (
	"platecost/internal/usecase/queries"
)

type DailySalesResponse struct {
	Date             string  `json:"date"`
	TotalSales       float64 `json:"totalSales"`
	TransactionCount int64   `json:"transactionCount"`
}

func FromDailySales(rows []queries.DailySalesRow) []DailySalesResponse {
	res := make([]DailySalesResponse, len(rows))
	for i, r := range rows {
		res[i] = DailySalesResponse{
			Date:             r.Date.Format("2006-01-02"),
			TotalSales:       r.TotalSales.InexactFloat64(),
			TransactionCount: r.TransactionCount,
		}
	}
	return res
}
