// Package checkout turns cart contents into an order submission. The flow
// is a small state machine: IDLE -> SUBMITTING -> SUCCEEDED or FAILED, with
// FAILED a legal starting point for a retry (the cart is preserved).
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

var (
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
	ErrSubmitInProgress = errors.New("an order submission is already in progress")
)

// ValidationError is a client-side required-field failure. It never
// reaches the network.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Form carries the checkout inputs. Shipping address and phone number are
// required, notes are not.
type Form struct {
	ShippingAddress string `json:"shipping_address"`
	PhoneNumber     string `json:"phone_number"`
	Notes           string `json:"notes,omitempty"`
}

func (f Form) validate() error {
	var missing []string
	if strings.TrimSpace(f.ShippingAddress) == "" {
		missing = append(missing, "shipping_address")
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// OrdersAPI is the slice of the shop API checkout needs.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, submission domain.OrderSubmission) (domain.Order, error)
}

// CartSource is the cart the submission is built from and cleared on
// success.
type CartSource interface {
	Items() []domain.CartItem
	Clear()
}

type Manager struct {
	orders OrdersAPI
	cart   CartSource
	log    zerolog.Logger

	mu     sync.Mutex
	status Status
}

func NewManager(orders OrdersAPI, cart CartSource, log zerolog.Logger) *Manager {
	return &Manager{
		orders: orders,
		cart:   cart,
		status: StatusIdle,
		log:    log,
	}
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Submit validates the form, packages the cart into an order submission
// and sends it. On success the cart is cleared; on failure it is left
// intact so the user can retry. A second Submit while one is outstanding
// is refused.
func (m *Manager) Submit(ctx context.Context, form Form) (*domain.Order, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	items := m.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := m.begin(); err != nil {
		return nil, err
	}

	submission := buildSubmission(form, items)
	order, err := m.orders.CreateOrder(ctx, submission)
	if err != nil {
		m.finish(StatusFailed)
		return nil, fmt.Errorf("create order: %w", err)
	}

	m.cart.Clear()
	m.finish(StatusSucceeded)
	m.log.Info().Int64("order_id", order.ID).Msg("order created")
	return &order, nil
}

func buildSubmission(form Form, items []domain.CartItem) domain.OrderSubmission {
	orderItems := make([]domain.OrderSubmissionItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderSubmissionItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.Subtotal(),
		})
	}

	return domain.OrderSubmission{
		ShippingAddress: form.ShippingAddress,
		PhoneNumber:     form.PhoneNumber,
		Notes:           form.Notes,
		OrderItems:      orderItems,
	}
}

func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == StatusSubmitting {
		return ErrSubmitInProgress
	}
	m.status = StatusSubmitting
	return nil
}

func (m *Manager) finish(status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}
