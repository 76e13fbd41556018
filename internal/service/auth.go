// Package service provides business logic for accounts and notes,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"

	"github.com/apetrenko/notelink/internal/metrics"
	"github.com/apetrenko/notelink/internal/models"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// EmailExists returns true if a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// CreateUser creates a new user record and returns its id.
	// Returns models.ErrDuplicateEmail if the email is already taken.
	CreateUser(ctx context.Context, email, password string) (int64, error)
	// GetByCredentials returns the id of the user matching both email and
	// password, or models.ErrInvalidCredentials if none matches.
	GetByCredentials(ctx context.Context, email, password string) (int64, error)
}

// AuthService implements registration and login by delegating
// to a UserRepository.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates a new user with the given email and password.
// The existence pre-check is an optimization only; the unique constraint on
// users.email is the source of truth, so a concurrent duplicate insert still
// comes back as models.ErrDuplicateEmail from CreateUser.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrDuplicateEmail
	}

	if _, err := s.repo.CreateUser(ctx, email, password); err != nil {
		return err
	}

	metrics.RegisteredUsers.Inc()
	return nil
}

// Login returns the id of the user matching the given email and password.
// Returns models.ErrInvalidCredentials if no user matches.
func (s *AuthService) Login(ctx context.Context, email, password string) (int64, error) {
	id, err := s.repo.GetByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return 0, models.ErrInvalidCredentials
		}
		return 0, err
	}
	return id, nil
}
