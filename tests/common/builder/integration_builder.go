//go:build unit || e2e

package builder

import (
	"time"

	"platecost/internal/domain/integration"
	"platecost/internal/infra/square"

	"github.com/google/uuid"
)

type IntegrationBuilder struct {
	TenantID     uuid.UUID
	TenantSlug   string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	LocationID   string
	LastSyncedAt *time.Time
}

func NewIntegrationBuilder() *IntegrationBuilder {
	return &IntegrationBuilder{
		TenantID:     uuid.New(),
		TenantSlug:   "demo-kitchen",
		AccessToken:  "sq0atp-access-token",
		RefreshToken: "sq0rtp-refresh-token",
		ExpiresAt:    time.Now().Add(30 * 24 * time.Hour),
		LocationID:   "L123456789",
	}
}

func (b *IntegrationBuilder) With(mutate func(*IntegrationBuilder)) *IntegrationBuilder {
	mutate(b)
	return b
}

// BuildDomain returns a fully connected, location-bound integration.
func (b *IntegrationBuilder) BuildDomain() integration.Integration {
	itg := integration.Integration{
		TenantID:     b.TenantID,
		TenantSlug:   b.TenantSlug,
		LastSyncedAt: b.LastSyncedAt,
	}
	if b.AccessToken != "" {
		token := b.AccessToken
		itg.AccessToken = &token
	}
	if b.RefreshToken != "" {
		refresh := b.RefreshToken
		itg.RefreshToken = &refresh
	}
	if !b.ExpiresAt.IsZero() {
		expires := b.ExpiresAt
		itg.TokenExpiresAt = &expires
	}
	if b.LocationID != "" {
		loc := b.LocationID
		itg.LocationID = &loc
	}
	return itg
}

// BuildDisconnected returns an integration with no stored credentials.
func (b *IntegrationBuilder) BuildDisconnected() integration.Integration {
	return integration.Integration{
		TenantID:   b.TenantID,
		TenantSlug: b.TenantSlug,
	}
}

type OrderBuilder struct {
	ID         string
	State      string
	CreatedAt  time.Time
	TotalCents *int64
	LineItems  []square.LineItem
}

func NewOrderBuilder() *OrderBuilder {
	total := int64(1250)
	return &OrderBuilder{
		ID:         "order-" + uuid.NewString()[:8],
		State:      "COMPLETED",
		CreatedAt:  time.Now().Add(-time.Hour),
		TotalCents: &total,
		LineItems: []square.LineItem{
			{
				Name:           "Margherita Pizza",
				Quantity:       "1",
				BasePriceMoney: &square.Money{Amount: 1250, Currency: "USD"},
				TotalMoney:     &square.Money{Amount: 1250, Currency: "USD"},
			},
		},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) Build() square.Order {
	o := square.Order{
		ID:        b.ID,
		State:     b.State,
		CreatedAt: b.CreatedAt,
		LineItems: b.LineItems,
	}
	if b.TotalCents != nil {
		o.TotalMoney = &square.Money{Amount: *b.TotalCents, Currency: "USD"}
	}
	return o
}
