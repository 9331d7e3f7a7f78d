package response

import (
	usecasesync "platecost/internal/usecase/sync"
)

type SyncRunResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Summary *usecasesync.RunSummary `json:"summary,omitempty"`
}
