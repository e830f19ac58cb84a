package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSubmission is the payload sent to create an order from cart
// contents. Ownership of the order transfers to the shop API once the
// submission is accepted.
type OrderSubmission struct {
	ShippingAddress string                `json:"shipping_address"`
	PhoneNumber     string                `json:"phone_number"`
	Notes           string                `json:"notes,omitempty"`
	OrderItems      []OrderSubmissionItem `json:"order_items"`
}

type OrderSubmissionItem struct {
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Order is an order as the shop API reports it. The client does not track
// status transitions, it only refetches.
type Order struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	PhoneNumber     string          `json:"phone_number"`
	Notes           string          `json:"notes,omitempty"`
	OrderItems      []OrderItem     `json:"order_items"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
}

type OrderItem struct {
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
