package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guswanstore/guswanmy/internal/models"
)

// CreateReseller stores a new reseller record.
func (s *Storage) CreateReseller(ctx context.Context, r models.Reseller) error {
	const op = "storage.CreateReseller"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO resellers (id, email, name, join_date, sales, commission)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.DB.ExecContext(ctx, query,
		r.ID, r.Email, r.Name, r.JoinDate, r.Sales, r.Commission); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetResellerByEmail returns a reseller or ErrNotFound.
func (s *Storage) GetResellerByEmail(ctx context.Context, email string) (*models.Reseller, error) {
	const op = "storage.GetResellerByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, name, join_date, sales, commission
			  FROM resellers
			  WHERE email = $1`
	r := &models.Reseller{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&r.ID, &r.Email, &r.Name, &r.JoinDate, &r.Sales, &r.Commission); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// IsReseller reports whether the email belongs to a reseller.
func (s *Storage) IsReseller(ctx context.Context, email string) (bool, error) {
	const op = "storage.IsReseller"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS(SELECT 1 FROM resellers WHERE email = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListResellers returns all resellers in join order.
func (s *Storage) ListResellers(ctx context.Context, limit, offset int) ([]*models.Reseller, error) {
	const op = "storage.ListResellers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, name, join_date, sales, commission
			  FROM resellers
			  ORDER BY join_date
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Reseller
	for rows.Next() {
		var r models.Reseller
		if err := rows.Scan(&r.ID, &r.Email, &r.Name, &r.JoinDate, &r.Sales, &r.Commission); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
