package session

import (
	"context"

	"time"

	"github.com/jellydator/ttlcache/v2"

	"homekeep/organizer-api/internal/domain"
)

// MemoryStore keeps sessions in a process-local TTL cache. Lost on
// restart and not shared between instances. The TTL is checked on every
// lookup and a hit does not extend it.
type MemoryStore struct {
	cache *ttlcache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	cache := ttlcache.NewCache()
	cache.SetTTL(ttl)
	cache.SkipTTLExtensionOnHit(true)

	return &MemoryStore{cache: cache}
}

func (s *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	token := domain.GenerateUuid().String()

	if err := s.cache.Set(token, userID); err != nil {
		return "", err
	}

	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	value, err := s.cache.Get(token)
	if err != nil {
		if err == ttlcache.ErrNotFound {
			return "", nil
		}

		return "", err
	}

	userID, ok := value.(string)
	if !ok {
		return "", nil
	}

	return userID, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	if err := s.cache.Remove(token); err != nil && err != ttlcache.ErrNotFound {
		return err
	}

	return nil
}

// Close stops the cache's expiration goroutine
func (s *MemoryStore) Close() error {
	return s.cache.Close()
}
