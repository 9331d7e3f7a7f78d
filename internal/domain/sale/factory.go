package sale

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoTotal marks provider orders without an order total. The reference
// behavior is to drop such orders entirely rather than record a zero sale.
var ErrNoTotal = errors.New("order has no total")

// ProviderOrder is the provider-neutral shape of a remote POS order. Money
// fields are in minor units (cents); quantity is the provider's raw string.
type ProviderOrder struct {
	RemoteID        string
	CreatedAt       time.Time
	State           string
	TotalMinorUnits *int64
	Items           []ProviderOrderItem
}

type ProviderOrderItem struct {
	Name                string
	Quantity            string
	BasePriceMinorUnits *int64
	TotalMinorUnits     *int64
	Category            string
	Note                string
}

const defaultStatus = "COMPLETED"

// FromProviderOrder materializes a synced Sale from a remote order,
// converting minor units to decimal currency.
func FromProviderOrder(tenantID uuid.UUID, o ProviderOrder, now time.Time) (*Sale, error) {
	if o.TotalMinorUnits == nil {
		return nil, ErrNoTotal
	}

	date := o.CreatedAt
	if date.IsZero() {
		date = now
	}

	status := o.State
	if status == "" {
		status = defaultStatus
	}

	remoteID := o.RemoteID
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemFromProvider(it))
	}

	return &Sale{
		TenantID:      tenantID,
		Date:          date,
		Total:         fromMinorUnits(*o.TotalMinorUnits),
		PaymentType:   SourceSquare.String(),
		Status:        status,
		Source:        SourceSquare,
		RemoteOrderID: &remoteID,
		Items:         items,
	}, nil
}

func itemFromProvider(it ProviderOrderItem) Item {
	name := it.Name
	if name == "" {
		name = "Unknown Item"
	}

	quantity := int32(1)
	if q, err := strconv.ParseInt(it.Quantity, 10, 32); err == nil && q >= 1 {
		quantity = int32(q)
	}

	item := Item{
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  decimal.Zero,
		TotalPrice: decimal.Zero,
	}
	if it.BasePriceMinorUnits != nil {
		item.UnitPrice = fromMinorUnits(*it.BasePriceMinorUnits)
	}
	if it.TotalMinorUnits != nil {
		item.TotalPrice = fromMinorUnits(*it.TotalMinorUnits)
	}
	if it.Category != "" {
		category := it.Category
		item.Category = &category
	}
	if it.Note != "" {
		note := it.Note
		item.Notes = &note
	}
	return item
}

func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
