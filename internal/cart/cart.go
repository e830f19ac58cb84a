// Package cart holds the in-memory cart state. The cart is owned by one
// client session, mutated only through the methods here, and cleared
// explicitly (for example after a successful checkout).
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

type Cart struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of the product in the cart. Adding a product
// already in the cart increments its quantity instead of duplicating the
// line. Quantity below 1 is clamped to 1.
func (c *Cart) Add(product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	})
}

// UpdateQuantity sets the quantity of the matching item. Zero or negative
// removes the item. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the matching item; no-op if absent.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total is the sum of price * quantity over all items, recomputed on every
// call.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count is the sum of quantities, not the number of lines. The UI badge
// shows this number.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
