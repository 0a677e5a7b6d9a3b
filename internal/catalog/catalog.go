// Package catalog holds the built-in product catalog and merges it with the
// admin-authored overlay at listing time.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/guswanstore/guswanmy/internal/models"
)

// Cache describes the caching methods used for the overlay.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// ProductRepository persists admin-authored overlay products.
type ProductRepository interface {
	// CreateProduct appends a product to the overlay under a category.
	CreateProduct(ctx context.Context, category string, p models.Product) error
	// ListProducts returns the whole overlay keyed by category.
	ListProducts(ctx context.Context) (map[string][]models.Product, error)
}

const overlayCacheKey = "catalog:overlay"

// Service serves the unioned catalog.
type Service struct {
	repo  ProductRepository
	cache Cache
	log   *slog.Logger
}

// NewService creates a catalog Service.
func NewService(repo ProductRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// List returns the built-in catalog with the overlay appended per category.
// Overlay categories unknown to the built-in catalog appear as new keys.
func (s *Service) List(ctx context.Context) (map[string][]models.Product, error) {
	overlay, err := s.loadOverlay(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Product, len(builtin)+len(overlay))
	for category, products := range builtin {
		result[category] = append([]models.Product(nil), products...)
	}
	for category, products := range overlay {
		result[category] = append(result[category], products...)
	}
	return result, nil
}

// AddProduct stores an admin-authored product in the overlay and drops the cache.
func (s *Service) AddProduct(ctx context.Context, category string, p models.Product) error {
	if err := s.repo.CreateProduct(ctx, category, p); err != nil {
		return err
	}
	if err := s.cache.Invalidate(overlayCacheKey); err != nil {
		s.log.Warn("failed to invalidate catalog cache", slog.String("key", overlayCacheKey), slog.Any("err", err))
	}
	s.log.Info("added overlay product", slog.String("category", category), slog.String("id", p.ID))
	return nil
}

func (s *Service) loadOverlay(ctx context.Context) (map[string][]models.Product, error) {
	var overlay map[string][]models.Product
	found, err := s.cache.Get(overlayCacheKey, &overlay)
	if err != nil {
		return nil, fmt.Errorf("catalog.loadOverlay: %w", err)
	}
	if found {
		return overlay, nil
	}

	overlay, err = s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(overlayCacheKey, overlay, time.Hour); err != nil {
		s.log.Warn("failed to cache catalog overlay", slog.String("key", overlayCacheKey), slog.Any("err", err))
	}
	return overlay, nil
}
