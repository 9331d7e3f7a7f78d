package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SourceProvider string

const (
	SourceManual SourceProvider = "MANUAL"
	SourceSquare SourceProvider = "SQUARE"
)

func (p SourceProvider) String() string {
	return string(p)
}

// Item is a single line of a sale. Prices are decimal currency, already
// converted from the provider's minor units.
type Item struct {
	Name       string
	Quantity   int32
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Category   *string
	Notes      *string
}

// Sale is a completed transaction. Synced sales carry the provider
// discriminator and the remote order id; (TenantID, Source, RemoteOrderID)
// is the sole de-duplication key and sales are never mutated after creation
// by the sync path.
type Sale struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Date          time.Time
	Total         decimal.Decimal
	PaymentType   string
	Status        string
	Source        SourceProvider
	RemoteOrderID *string
	Items         []Item
}
