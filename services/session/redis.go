package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"casexpert/models"
	"casexpert/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisStore keeps sessions as JSON values under "session:<token>". Key
// expiry implements the ttl; ttl == 0 stores keys without expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, email string, role models.Role) (string, error) {
	token := uuid.NewString()
	sess := models.Session{Token: token, Email: email, Role: role, CreatedAt: time.Now()}
	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, utils.SessionCachePrefix+token, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	data, err := s.client.Get(ctx, utils.SessionCachePrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, utils.SessionCachePrefix+token).Err()
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
