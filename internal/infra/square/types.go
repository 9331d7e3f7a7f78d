package square

import (
	"fmt"
	"strings"
	"time"
)

// Wire types for the subset of the Square connect API this service calls.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type LineItem struct {
	UID            string `json:"uid,omitempty"`
	Name           string `json:"name,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	CategoryID     string `json:"category_id,omitempty"`
	Note           string `json:"note,omitempty"`
	BasePriceMoney *Money `json:"base_price_money,omitempty"`
	TotalMoney     *Money `json:"total_money,omitempty"`
}

type Order struct {
	ID         string     `json:"id"`
	LocationID string     `json:"location_id,omitempty"`
	State      string     `json:"state,omitempty"`
	CreatedAt  time.Time  `json:"created_at,omitempty"`
	TotalMoney *Money     `json:"total_money,omitempty"`
	LineItems  []LineItem `json:"line_items,omitempty"`
}

type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	Locality     string `json:"locality,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

func (a Address) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.AddressLine1, a.Locality, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Location struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Status  string   `json:"status,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// TokenGrant is the result of a successful authorization-code exchange.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// SearchOrdersRequest mirrors the order-search body: location, creation-time
// lower bound, order state, and the provider's opaque pagination cursor.
type SearchOrdersRequest struct {
	LocationIDs []string    `json:"location_ids"`
	Cursor      string      `json:"cursor,omitempty"`
	Query       *OrderQuery `json:"query,omitempty"`
}

type OrderQuery struct {
	Filter *OrderFilter `json:"filter,omitempty"`
}

type OrderFilter struct {
	DateTimeFilter *DateTimeFilter `json:"date_time_filter,omitempty"`
	StateFilter    *StateFilter    `json:"state_filter,omitempty"`
}

type DateTimeFilter struct {
	CreatedAt *TimeRange `json:"created_at,omitempty"`
}

type TimeRange struct {
	StartAt time.Time `json:"start_at"`
}

type StateFilter struct {
	States []string `json:"states"`
}

// OrderPage is one page of search results. An empty Cursor means the final
// page has been reached.
type OrderPage struct {
	Orders []Order
	Cursor string
}

type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// APIError is a non-2xx provider response with its structured error body
// preserved; providers often explain exactly what is wrong, so the detail is
// surfaced to callers verbatim where possible.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("square: status %d: %s", e.StatusCode, e.Detail())
}

// Detail returns the most specific human-readable message in the body.
func (e *APIError) Detail() string {
	if len(e.Errors) > 0 && e.Errors[0].Detail != "" {
		return e.Errors[0].Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}
