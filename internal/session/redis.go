package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"homekeep/organizer-api/internal/domain"
)

// RedisStore keeps tokens in an external key-value store and relies on
// passive key expiry. A key prefix separates login sessions from
// verification tokens sharing the same database.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	token := domain.GenerateUuid().String()

	if err := s.client.Set(ctx, s.prefix+token, userID, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.prefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}

		return "", err
	}

	return userID, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.prefix+token).Err()
}
