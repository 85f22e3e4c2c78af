package signup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tastoria/internal/user"
	"tastoria/pkg/log"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "signup:pending:"

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
	l   log.Logger
}

// NewRedis stores pending signups as JSON values that expire after ttl.
func NewRedis(rdb *redis.Client, ttl time.Duration, l log.Logger) Store {
	return &redisStore{rdb: rdb, ttl: ttl, l: l}
}

func (s *redisStore) key(id string) string {
	return keyPrefix + id
}

func (s *redisStore) dsn(method string) string {
	return fmt.Sprintf("user/repository/signup/redis.%s", method)
}

func (s *redisStore) Save(ctx context.Context, p user.PendingSignup) error {
	data, err := json.Marshal(p)
	if err != nil {
		return ErrFailedToSave
	}
	if err := s.rdb.Set(ctx, s.key(p.ID), data, s.ttl).Err(); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return ErrFailedToSave
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (user.PendingSignup, error) {
	data, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return user.PendingSignup{}, nil
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Get"), err)
		return user.PendingSignup{}, ErrFailedToGet
	}

	var p user.PendingSignup
	if err := json.Unmarshal(data, &p); err != nil {
		s.l.Errorf(ctx, "%s decode: %v", s.dsn("Get"), err)
		return user.PendingSignup{}, ErrFailedToGet
	}
	return p, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, s.key(id)).Err(); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Delete"), err)
		return ErrFailedToDelete
	}
	return nil
}
