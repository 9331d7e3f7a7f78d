package commands

import (
	"context"

	"platecost/internal/domain/integration"
	"platecost/internal/infra/square"

	"github.com/google/uuid"
)

type CredentialStore interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*integration.Integration, error)
	SetTokens(ctx context.Context, tenantID uuid.UUID, t integration.Tokens) error
	ClearTokens(ctx context.Context, tenantID uuid.UUID) error
	BindLocation(ctx context.Context, tenantID uuid.UUID, locationID string) error
}

type SquareGateway interface {
	AuthorizeURL(state, redirectURI string) string
	ExchangeCode(ctx context.Context, code, redirectURI string) (*square.TokenGrant, error)
	RevokeToken(ctx context.Context, accessToken string) error
	ListLocations(ctx context.Context, accessToken string) ([]square.Location, error)
}
