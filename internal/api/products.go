package api

import (
	"context"
	"fmt"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, "/api/products/", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/api/products/%d/", id), &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
