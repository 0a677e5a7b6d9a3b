// Package auth contains the business logic for registration, login and sessions.
//
// Login policy, evaluated in order: the reserved admin credential pair from
// config, then the registered user set. The reseller flag is derived from the
// resellers table; a password is verified on every successful non-admin login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/guswanstore/guswanmy/internal/config"
	"github.com/guswanstore/guswanmy/internal/lib/jwt"
	"github.com/guswanstore/guswanmy/internal/lib/password"
	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/storage/repository"
)

// Service errors surfaced to handlers.
var (
	// ErrInvalidCredentials covers a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound means the email is not registered at all.
	ErrAccountNotFound = errors.New("account does not exist")
	// ErrUserExists means the email is already registered.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository describes the storage contract for users.
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// ResellerChecker reports reseller membership for an email.
type ResellerChecker interface {
	IsReseller(ctx context.Context, email string) (bool, error)
}

// Service implements registration and login.
type Service struct {
	users     UserRepository
	resellers ResellerChecker
	jwtMaker  jwt.Maker
	admin     config.AdminAccount
	latency   time.Duration
	log       *slog.Logger
}

// NewService creates an auth Service. latency is the artificial suspension
// applied to login and register; zero disables it.
func NewService(users UserRepository, resellers ResellerChecker, jwtMaker jwt.Maker,
	admin config.AdminAccount, latency time.Duration, log *slog.Logger) *Service {
	return &Service{
		users:     users,
		resellers: resellers,
		jwtMaker:  jwtMaker,
		admin:     admin,
		latency:   latency,
		log:       log,
	}
}

// Register creates a user with a hashed password and opens a non-privileged session.
func (s *Service) Register(ctx context.Context, email, rawPassword string) (*models.Session, error) {
	if err := s.suspend(ctx); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.RegisterUser(ctx, models.User{Email: email, PasswordHash: hashed}); err != nil {
		return nil, err
	}
	s.log.Info("registered new user", slog.String("email", email))

	return s.openSession(email, false, false)
}

// Login authenticates a user and returns a session. The admin pair from
// config wins before the user table is consulted.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.Session, error) {
	if err := s.suspend(ctx); err != nil {
		return nil, err
	}

	if s.admin.AdminEmail != "" && email == s.admin.AdminEmail {
		if err := password.CompareHash(s.admin.AdminPasswordHash, rawPassword); err != nil {
			return nil, ErrInvalidCredentials
		}
		s.log.Info("admin login", slog.String("email", email))
		return s.openSession(email, true, false)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	isReseller, err := s.resellers.IsReseller(ctx, email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user login", slog.String("email", email), slog.Bool("is_reseller", isReseller))
	return s.openSession(email, false, isReseller)
}

func (s *Service) openSession(email string, isAdmin, isReseller bool) (*models.Session, error) {
	session := &models.Session{
		Email:      email,
		IsAdmin:    isAdmin,
		IsReseller: isReseller,
	}
	token, err := s.jwtMaker.GenerateToken(email, session.Role())
	if err != nil {
		return nil, fmt.Errorf("auth.openSession: %w", err)
	}
	session.Token = token
	return session, nil
}

// suspend models the reference's network latency; cancellable via ctx.
func (s *Service) suspend(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
