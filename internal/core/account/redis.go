package account

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

const userKeyPrefix = "user:"

// RedisStore is the redis-backed account store. It implements the same
// Store interface as FileStore so calling code never changes.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get returns the user with the given username.
func (s *RedisStore) Get(ctx context.Context, username string) (*User, error) {
	data, err := s.client.Get(ctx, userKeyPrefix+username).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// Put stores a user keyed by username.
func (s *RedisStore) Put(ctx context.Context, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.client.Set(ctx, userKeyPrefix+user.Username, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

// List returns every stored user.
func (s *RedisStore) List(ctx context.Context) ([]User, error) {
	keys, err := s.client.Keys(ctx, userKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]User, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		var user User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateField sets one field on an existing user.
func (s *RedisStore) UpdateField(ctx context.Context, username, field, value string) (*User, error) {
	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := setField(user, field, value); err != nil {
		return nil, err
	}
	if err := s.Put(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
