package request

// DailySalesRequest carries the optional date bounds of a sales report.
// Dates are inclusive and formatted as 2006-01-02.
type DailySalesRequest struct {
	From string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}
