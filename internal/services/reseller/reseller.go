// Package reseller implements the reseller dashboard and the admin-side
// reseller management.
package reseller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/storage/repository"
)

// Service errors surfaced to handlers.
var (
	// ErrNotFound means the email has no reseller record.
	ErrNotFound = errors.New("reseller not found")
	// ErrExists means the email already has a reseller record.
	ErrExists = errors.New("reseller already exists")
)

// ResellerRepository describes the storage contract for resellers.
type ResellerRepository interface {
	CreateReseller(ctx context.Context, r models.Reseller) error
	GetResellerByEmail(ctx context.Context, email string) (*models.Reseller, error)
	IsReseller(ctx context.Context, email string) (bool, error)
	ListResellers(ctx context.Context, limit, offset int) ([]*models.Reseller, error)
}

// Service implements reseller operations.
type Service struct {
	repo ResellerRepository
	log  *slog.Logger
}

// NewService creates a reseller Service.
func NewService(repo ResellerRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Stats returns the dashboard numbers for one reseller. The monthly fields
// are the rolling 30-day estimates shown next to the lifetime totals.
func (s *Service) Stats(ctx context.Context, email string) (*models.ResellerStats, error) {
	r, err := s.repo.GetResellerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.ResellerStats{
		Reseller:          *r,
		MonthlySales:      r.Sales * 3 / 10,
		MonthlyCommission: r.Commission * 3 / 10,
	}, nil
}

// Create registers a new reseller with zeroed counters.
func (s *Service) Create(ctx context.Context, email, name string) (*models.Reseller, error) {
	exists, err := s.repo.IsReseller(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrExists
	}

	r := models.Reseller{
		ID:       uuid.New().String(),
		Email:    email,
		Name:     name,
		JoinDate: time.Now().UTC(),
	}
	if err := s.repo.CreateReseller(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info("reseller created", slog.String("email", email), slog.String("id", r.ID))
	return &r, nil
}

// List returns all resellers for the admin dashboard.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Reseller, error) {
	return s.repo.ListResellers(ctx, limit, offset)
}
