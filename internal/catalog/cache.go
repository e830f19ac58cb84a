package catalog

import (
	"context"
	"errors"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

type ProductCache interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	SetAll(ctx context.Context, products []domain.Product) error
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
}

var ErrCacheMiss = errors.New("cache miss")
