package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guswanstore/guswanmy/internal/models"
)

// CreateProduct appends an admin-authored product to the catalog overlay.
// Pricing tiers are stored as JSON alongside the flat columns.
func (s *Storage) CreateProduct(ctx context.Context, category string, p models.Product) error {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	pricing, err := json.Marshal(p.Pricing)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO custom_products (id, category, name, description, icon, color, pricing)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := s.DB.ExecContext(ctx, query,
		p.ID, category, p.Name, p.Description, p.Icon, p.Color, pricing); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListProducts returns the whole overlay grouped by category, in insertion order.
func (s *Storage) ListProducts(ctx context.Context) (map[string][]models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, category, name, description, icon, color, pricing
			  FROM custom_products
			  ORDER BY seq`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[string][]models.Product)
	for rows.Next() {
		var p models.Product
		var category string
		var pricing []byte
		if err := rows.Scan(&p.ID, &category, &p.Name, &p.Description, &p.Icon, &p.Color, &pricing); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(pricing, &p.Pricing); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[category] = append(result[category], p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
