package api

import (
	"net/http"
	"time"

	reqdto "platecost/internal/handler/dto/request"
	resdto "platecost/internal/handler/dto/response"
	"platecost/internal/handler/httperr"
	"platecost/internal/handler/middleware"
	"platecost/internal/pkg/errs"
	"platecost/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	q queries.SaleQueries
}

func NewSaleHandler(q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{q: q}
}

// @Summary Daily sales report
// @Description Per-day sales totals and transaction counts for the tenant
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Param startDate query string false "Inclusive lower bound (2006-01-02)"
// @Param endDate query string false "Inclusive upper bound (2006-01-02)"
// @Success 200 {array} resdto.DailySalesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /teams/{slug}/sales [get]
func (h *SaleHandler) DailySales(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing tenant context"), "Unauthorized", nil)
		return
	}

	var req reqdto.DailySalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	var rng queries.SalesRange
	if req.From != "" {
		from, _ := time.Parse("2006-01-02", req.From)
		rng.From = &from
	}
	if req.To != "" {
		// Inclusive upper bound: extend to the end of the day.
		to, _ := time.Parse("2006-01-02", req.To)
		to = to.Add(24*time.Hour - time.Nanosecond)
		rng.To = &to
	}

	rows, err := h.q.DailySales(c.Request.Context(), tenantID, rng)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load sales", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDailySales(rows))
}
