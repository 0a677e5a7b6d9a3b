// Package order implements the ledger: append-only orders with an admin-gated
// status lifecycle. Completed and rejected are terminal.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/storage/repository"
)

// Service errors surfaced to handlers.
var (
	// ErrNotFound means no order with that id exists.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidStatus means the requested status is unknown or pending.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrTerminalStatus means the order already reached completed or rejected.
	ErrTerminalStatus = errors.New("order status is terminal")
)

// OrderRepository describes the ledger storage contract.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) error
	ListOrders(ctx context.Context, filter models.OrderFilter, limit, offset int) ([]*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (int, error)
}

// Publisher sends status events to the notification broker.
type Publisher interface {
	Publish(routingKey string, message any) error
}

// Service implements the ledger operations.
type Service struct {
	repo      OrderRepository
	publisher Publisher
	log       *slog.Logger

	onAppend       func()
	onStatusChange func(status string)
}

// NewService creates an order Service. publisher may be nil when the broker
// is not configured.
func NewService(repo OrderRepository, publisher Publisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// SetMetricHooks registers the counters bumped on append and status change.
func (s *Service) SetMetricHooks(onAppend func(), onStatusChange func(status string)) {
	s.onAppend = onAppend
	s.onStatusChange = onStatusChange
}

// Append adds a new order to the ledger.
func (s *Service) Append(ctx context.Context, order models.Order) error {
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return err
	}
	if s.onAppend != nil {
		s.onAppend()
	}
	s.log.Info("order appended", slog.String("id", order.ID), slog.String("email", order.Email))
	return nil
}

// List returns orders visible to the caller. Admins see everything; everyone
// else is pinned to their own orders regardless of the requested owner.
func (s *Service) List(ctx context.Context, email, role, status string, limit, offset int) ([]*models.Order, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	filter := models.OrderFilter{Status: status}
	if role != models.RoleAdmin {
		filter.Owner = email
	}
	orders, err := s.repo.ListOrders(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// SetStatus overwrites the status of one order. Only completed and rejected
// are accepted, and an order that already reached either stays there.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if status != models.StatusCompleted && status != models.StatusRejected {
		return ErrInvalidStatus
	}

	current, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if models.Terminal(current.Status) {
		return fmt.Errorf("%w: %s is already %s", ErrTerminalStatus, id, current.Status)
	}

	count, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	if s.onStatusChange != nil {
		s.onStatusChange(status)
	}
	s.log.Info("order status updated", slog.String("id", id), slog.String("status", status))

	if s.publisher != nil {
		event := models.StatusEvent{
			OrderID: id,
			Email:   current.Email,
			Status:  status,
			Total:   current.Total,
		}
		if err := s.publisher.Publish("order.status", event); err != nil {
			// notification is best effort; the ledger write already happened
			s.log.Warn("failed to publish status event", slog.String("id", id), slog.Any("err", err))
		}
	}
	return nil
}
