package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Integration errors
	ErrIntegrationNotFound = errors.New("integration not found")
	ErrNotConnected        = errors.New("square is not connected")
	ErrAuthConfigMissing   = errors.New("square credentials are not configured")

	// Sync errors
	ErrSyncAlreadyRunning = errors.New("sync run already in progress")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
