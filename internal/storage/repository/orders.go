package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/guswanstore/guswanmy/internal/models"
)

// CreateOrder appends an order to the ledger. The id is the payment reference
// and must be unique; a collision surfaces as a constraint error.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) error {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO orders (id, email, items, total, payment_method, status, proof_image, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := s.DB.ExecContext(ctx, query,
		order.ID, order.Email, items, order.Total, order.PaymentMethod,
		order.Status, order.ProofImage, order.Timestamp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListOrders returns ledger entries matching the filter in insertion order.
func (s *Storage) ListOrders(ctx context.Context, filter models.OrderFilter, limit, offset int) ([]*models.Order, error) {
	const op = "storage.ListOrders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, items, total, payment_method, status, proof_image, created_at
			  FROM orders
			  WHERE ($1 = '' OR email = $1)
			    AND ($2 = '' OR status = $2)
			  ORDER BY seq
			  LIMIT $3 OFFSET $4`
	rows, err := s.DB.QueryContext(ctx, query, filter.Owner, filter.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Order
	for rows.Next() {
		var item models.Order
		var items []byte
		if err := rows.Scan(&item.ID, &item.Email, &items, &item.Total,
			&item.PaymentMethod, &item.Status, &item.ProofImage, &item.Timestamp); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(items, &item.Items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetOrder returns one ledger entry or ErrNotFound.
func (s *Storage) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	const op = "storage.GetOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, items, total, payment_method, status, proof_image, created_at
			  FROM orders
			  WHERE id = $1`
	var item models.Order
	var items []byte
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&item.ID, &item.Email, &items, &item.Total,
		&item.PaymentMethod, &item.Status, &item.ProofImage, &item.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(items, &item.Items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

// UpdateOrderStatus overwrites the status of one order and returns the number
// of affected rows.
func (s *Storage) UpdateOrderStatus(ctx context.Context, id, status string) (int, error) {
	const op = "storage.UpdateOrderStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE orders SET status = $1 WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
