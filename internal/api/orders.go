package api

import (
	"context"
	"fmt"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

// CreateOrder submits the order. Once accepted, the order belongs to the
// shop API; the client only ever refetches it afterwards.
func (c *Client) CreateOrder(ctx context.Context, submission domain.OrderSubmission) (domain.Order, error) {
	var order domain.Order
	if err := c.postJSON(ctx, "/api/orders/", submission, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.getJSON(ctx, "/api/orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id int64) (domain.Order, error) {
	var order domain.Order
	if err := c.getJSON(ctx, fmt.Sprintf("/api/orders/%d/", id), &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
