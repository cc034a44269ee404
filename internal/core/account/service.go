package account

import (
	"context"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"
)

// Service wraps a Store with registration and login rules.
type Service struct {
	store Store
}

// NewService creates an account service over the given backend.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates a new account. An existing username is a conflict.
func (s *Service) Register(ctx context.Context, username, password, email string) (*User, error) {
	if username == "" || password == "" {
		return nil, common.NewValidationError("username and password are required")
	}

	if _, err := s.store.Get(ctx, username); err == nil {
		return nil, common.ErrUserExists
	}

	user := User{
		ID:        common.GenerateUUID(),
		Username:  username,
		Password:  password,
		Email:     email,
		CreatedAt: common.NowISO(),
	}
	if err := s.store.Put(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks a username/password pair. Passwords are compared
// as stored; credential hardening is out of scope here.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, common.NewValidationError("username and password are required")
	}

	user, err := s.store.Get(ctx, username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateField updates a single user field through the backend.
func (s *Service) UpdateField(ctx context.Context, username, field, value string) (*User, error) {
	return s.store.UpdateField(ctx, username, field, value)
}

// Get looks up one user.
func (s *Service) Get(ctx context.Context, username string) (*User, error) {
	return s.store.Get(ctx, username)
}
