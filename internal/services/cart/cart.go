// Package cart implements the session-scoped shopping cart on top of the cache.
//
// Carts carry no persistence guarantee: entries expire with their TTL and a
// dropped cart is legitimate behavior.
package cart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/guswanstore/guswanmy/internal/models"
)

// Cache describes the key-value methods the cart needs.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service stores one cart per user email.
type Service struct {
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService creates a cart Service.
func NewService(cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{cache: cache, ttl: ttl, log: log}
}

func cartKey(email string) string {
	return fmt.Sprintf("cart:%s", email)
}

// Get returns the user's cart; a missing entry is an empty cart.
func (s *Service) Get(_ context.Context, email string) (models.Cart, error) {
	var c models.Cart
	found, err := s.cache.Get(cartKey(email), &c)
	if err != nil {
		return models.Cart{}, err
	}
	if !found {
		return models.Cart{}, nil
	}
	return c, nil
}

// AddLine appends a line to the cart. A line with the same identity is merged
// by summing quantities: the id already encodes product and tier, so equal ids
// are the same sellable unit.
func (s *Service) AddLine(ctx context.Context, email string, line models.CartLine) (models.Cart, error) {
	c, err := s.Get(ctx, email)
	if err != nil {
		return models.Cart{}, err
	}

	merged := false
	for i := range c.Lines {
		if c.Lines[i].ID == line.ID {
			c.Lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Lines = append(c.Lines, line)
	}

	if err := s.cache.Set(cartKey(email), c, s.ttl); err != nil {
		return models.Cart{}, err
	}
	s.log.Info("cart line added", slog.String("email", email), slog.String("line", line.ID))
	return c, nil
}

// RemoveLine removes every line with the given identity. Removing an absent
// line is a no-op.
func (s *Service) RemoveLine(ctx context.Context, email, id string) (models.Cart, error) {
	c, err := s.Get(ctx, email)
	if err != nil {
		return models.Cart{}, err
	}

	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.Lines = kept

	if err := s.cache.Set(cartKey(email), c, s.ttl); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// ClearLines removes the lines with the given identities after a successful
// order submission. Clearing is identity-keyed, never name-keyed.
func (s *Service) ClearLines(ctx context.Context, email string, ids []string) error {
	c, err := s.Get(ctx, email)
	if err != nil {
		return err
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if _, ok := drop[l.ID]; !ok {
			kept = append(kept, l)
		}
	}
	c.Lines = kept

	return s.cache.Set(cartKey(email), c, s.ttl)
}
