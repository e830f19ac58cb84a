// Package catalog serves product browsing through a read-through cache.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

// ProductsAPI is the slice of the shop API the catalog needs.
type ProductsAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (domain.Product, error)
}

type Service struct {
	api   ProductsAPI
	cache ProductCache
	log   zerolog.Logger
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(api ProductsAPI, cache ProductCache, log zerolog.Logger) *Service {
	return &Service{
		api:   api,
		cache: cache,
		log:   log,
	}
}

// Products lists the catalog. Concurrent cache misses for the list are
// collapsed into one upstream fetch.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		products, err := s.cache.GetAll(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("cache get error")
		}

		products, err = s.api.Products(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetAll(context.Background(), products); errSet != nil {
				s.log.Warn().Err(errSet).Msg("cache set error")
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (s *Service) Product(ctx context.Context, id int64) (*domain.Product, error) {
	v, err, _ := s.sfg.Do(fmt.Sprintf("product:%d", id), func() (interface{}, error) {
		product, err := s.cache.Get(ctx, id)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("cache get error")
		}

		fetched, err := s.api.Product(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), &fetched); errSet != nil {
				s.log.Warn().Err(errSet).Msg("cache set error")
			}
		}()

		return &fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}
