package integration

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotConnected    = errors.New("integration has no access token")
	ErrAlreadyBound    = errors.New("location is already bound")
	ErrLocationIDEmpty = errors.New("location id must not be empty")
)

// Tokens is the OAuth credential triple issued by the provider.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Integration is the per-tenant POS connection state. Token fields are nil
// while the tenant is disconnected; LocationID is write-once.
type Integration struct {
	TenantID       uuid.UUID
	TenantSlug     string
	AccessToken    *string
	RefreshToken   *string
	TokenExpiresAt *time.Time
	LocationID     *string
	LastSyncedAt   *time.Time
}

func (i *Integration) Connected() bool {
	return i.AccessToken != nil && *i.AccessToken != ""
}

// SyncReady reports whether the tenant can be order-synced: connected and
// bound to a remote location. Tenants that are not ready are silently skipped
// by the batch driver, never errored.
func (i *Integration) SyncReady() bool {
	return i.Connected() && i.LocationID != nil && *i.LocationID != ""
}

// BindLocation enforces the write-once rule: once a location is bound it can
// never change, so that synced sale history stays attached to a single store.
func (i *Integration) BindLocation(locationID string) error {
	if locationID == "" {
		return ErrLocationIDEmpty
	}
	if !i.Connected() {
		return ErrNotConnected
	}
	if i.LocationID != nil && *i.LocationID != "" {
		return ErrAlreadyBound
	}
	i.LocationID = &locationID
	return nil
}

func (i *Integration) ApplyTokens(t Tokens) {
	access := t.AccessToken
	refresh := t.RefreshToken
	expires := t.ExpiresAt
	i.AccessToken = &access
	i.RefreshToken = &refresh
	i.TokenExpiresAt = &expires
}

func (i *Integration) ClearTokens() {
	i.AccessToken = nil
	i.RefreshToken = nil
	i.TokenExpiresAt = nil
}
