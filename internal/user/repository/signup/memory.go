package signup

import (
	"context"
	"time"

	"tastoria/internal/user"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryStore struct {
	entries *expirable.LRU[string, user.PendingSignup]
}

// NewMemory keeps at most size pending signups in process, each for ttl.
func NewMemory(size int, ttl time.Duration) Store {
	return &memoryStore{
		entries: expirable.NewLRU[string, user.PendingSignup](size, nil, ttl),
	}
}

func (s *memoryStore) Save(ctx context.Context, p user.PendingSignup) error {
	s.entries.Add(p.ID, p)
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (user.PendingSignup, error) {
	p, _ := s.entries.Get(id)
	return p, nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.entries.Remove(id)
	return nil
}
