// Package account is the flat keyed user store behind registration, login
// and per-user saved state. The Store interface keeps the backend swappable;
// a JSON file is the default and redis is available for deployments that
// want a real database.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"
)

// User is one account record.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       string `json:"weight,omitempty"`
	Goal         string `json:"goal,omitempty"`
	Restrictions string `json:"restrictions,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// Public strips credentials for response bodies.
func (u User) Public() map[string]string {
	return map[string]string{
		"id":           u.ID,
		"username":     u.Username,
		"email":        u.Email,
		"height":       u.Height,
		"weight":       u.Weight,
		"goal":         u.Goal,
		"restrictions": u.Restrictions,
		"created_at":   u.CreatedAt,
	}
}

// Store is the account backend: get/put/list keyed by username plus
// update-by-field.
type Store interface {
	Get(ctx context.Context, username string) (*User, error)
	Put(ctx context.Context, user User) error
	List(ctx context.Context) ([]User, error)
	UpdateField(ctx context.Context, username, field, value string) (*User, error)
}

// allowedFields are the user fields UpdateField may touch.
var allowedFields = map[string]bool{
	"password":     true,
	"email":        true,
	"height":       true,
	"weight":       true,
	"goal":         true,
	"restrictions": true,
}

func setField(user *User, field, value string) error {
	if !allowedFields[field] {
		return common.NewValidationError(fmt.Sprintf("unknown field: %s", field))
	}
	switch field {
	case "password":
		user.Password = value
	case "email":
		user.Email = value
	case "height":
		user.Height = value
	case "weight":
		user.Weight = value
	case "goal":
		user.Goal = value
	case "restrictions":
		user.Restrictions = value
	}
	return nil
}

// FileStore keeps users in one JSON file, rewritten on every mutation. The
// mutex serializes concurrent handlers; the file format is a map keyed by
// username.
type FileStore struct {
	mu    sync.Mutex
	path  string
	users map[string]User
}

// NewFileStore opens (or initializes) the users file.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		users: make(map[string]User),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.users); err != nil {
			return nil, fmt.Errorf("failed to parse users file: %w", err)
		}
	}

	return s, nil
}

// persist rewrites the users file. Caller must hold the mutex.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}

// Get returns the user with the given username.
func (s *FileStore) Get(ctx context.Context, username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}

// Put stores a user keyed by username.
func (s *FileStore) Put(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.Username] = user
	return s.persist()
}

// List returns every stored user.
func (s *FileStore) List(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

// UpdateField sets one field on an existing user and persists the change.
func (s *FileStore) UpdateField(ctx context.Context, username, field, value string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	if err := setField(&user, field, value); err != nil {
		return nil, err
	}
	s.users[username] = user
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &user, nil
}
