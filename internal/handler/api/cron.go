package api

import (
	"context"
	"errors"
	"net/http"

	resdto "platecost/internal/handler/dto/response"
	"platecost/internal/handler/httperr"
	"platecost/internal/pkg/errs"
	usecasesync "platecost/internal/usecase/sync"

	"github.com/gin-gonic/gin"
)

// SyncRunner is the slice of the orchestrator the cron endpoint needs.
type SyncRunner interface {
	Run(ctx context.Context) (*usecasesync.RunSummary, error)
}

type CronHandler struct {
	runner SyncRunner
}

func NewCronHandler(runner SyncRunner) *CronHandler {
	return &CronHandler{runner: runner}
}

// @Summary Run the POS sync cycle
// @Description Sync orders and take inventory snapshots for every connected tenant
// @Tags cron
// @Produce json
// @Param X-Cron-Secret header string true "Cron shared secret"
// @Success 200 {object} resdto.SyncRunResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cron/sync [post]
func (h *CronHandler) Sync(c *gin.Context) {
	summary, err := h.runner.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrSyncAlreadyRunning) {
			httperr.AbortWithError(c, http.StatusConflict, err, "A sync run is already in progress", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sync run failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SyncRunResponse{
		Success: true,
		Message: summary.Message(),
		Summary: summary,
	})
}
