//go:build unit

package sale_test

import (
	"testing"
	"time"

	"platecost/internal/domain/sale"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

func int64Ptr(v int64) *int64 { return &v }

func TestFromProviderOrder(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	createdAt := now.Add(-2 * time.Hour)

	t.Run("converts minor units to decimal currency", func(t *testing.T) {
		order := sale.ProviderOrder{
			RemoteID:        "order-1",
			CreatedAt:       createdAt,
			State:           "COMPLETED",
			TotalMinorUnits: int64Ptr(1250),
			Items: []sale.ProviderOrderItem{
				{
					Name:                "Margherita Pizza",
					Quantity:            "2",
					BasePriceMinorUnits: int64Ptr(625),
					TotalMinorUnits:     int64Ptr(1250),
					Category:            "Pizza",
					Note:                "extra basil",
				},
			},
		}

		s, err := sale.FromProviderOrder(tenantID, order, now)
		require.NoError(t, err)

		remoteID := "order-1"
		category := "Pizza"
		note := "extra basil"
		expected := &sale.Sale{
			TenantID:      tenantID,
			Date:          createdAt,
			Total:         decimal.RequireFromString("12.50"),
			PaymentType:   sale.SourceSquare.String(),
			Status:        "COMPLETED",
			Source:        sale.SourceSquare,
			RemoteOrderID: &remoteID,
			Items: []sale.Item{
				{
					Name:       "Margherita Pizza",
					Quantity:   2,
					UnitPrice:  decimal.RequireFromString("6.25"),
					TotalPrice: decimal.RequireFromString("12.50"),
					Category:   &category,
					Notes:      &note,
				},
			},
		}

		if diff := cmp.Diff(expected, s, cmpOpts...); diff != "" {
			t.Errorf("Sale mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("order without a total is rejected", func(t *testing.T) {
		order := sale.ProviderOrder{RemoteID: "order-2", CreatedAt: createdAt}

		s, err := sale.FromProviderOrder(tenantID, order, now)
		assert.ErrorIs(t, err, sale.ErrNoTotal)
		assert.Nil(t, s)
	})

	t.Run("missing optional fields get defaults", func(t *testing.T) {
		order := sale.ProviderOrder{
			RemoteID:        "order-3",
			TotalMinorUnits: int64Ptr(500),
			Items: []sale.ProviderOrderItem{
				{Quantity: "not-a-number"},
			},
		}

		s, err := sale.FromProviderOrder(tenantID, order, now)
		require.NoError(t, err)

		assert.Equal(t, now, s.Date, "zero created_at falls back to now")
		assert.Equal(t, "COMPLETED", s.Status, "empty state falls back to completed")

		require.Len(t, s.Items, 1)
		item := s.Items[0]
		assert.Equal(t, "Unknown Item", item.Name)
		assert.Equal(t, int32(1), item.Quantity)
		assert.True(t, item.UnitPrice.IsZero())
		assert.True(t, item.TotalPrice.IsZero())
		assert.Nil(t, item.Category)
		assert.Nil(t, item.Notes)
	})

	t.Run("zero total is a valid free order", func(t *testing.T) {
		order := sale.ProviderOrder{
			RemoteID:        "order-4",
			CreatedAt:       createdAt,
			TotalMinorUnits: int64Ptr(0),
		}

		s, err := sale.FromProviderOrder(tenantID, order, now)
		require.NoError(t, err)
		assert.True(t, s.Total.IsZero())
	})
}
