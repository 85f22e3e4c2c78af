package signup

import (
	"context"
	"testing"
	"time"

	"tastoria/internal/user"
	"tastoria/pkg/log"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pending(id string) user.PendingSignup {
	return user.PendingSignup{
		ID:           id,
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
		OTP:          "123456",
		ExpiresAt:    time.Date(2026, 1, 1, 10, 10, 0, 0, time.UTC),
	}
}

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	require.NoError(t, s.Save(ctx, pending("p-1")))
	got, err = s.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, pending("p-1"), got)

	require.NoError(t, s.Delete(ctx, "p-1"))
	got, err = s.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	assert.NoError(t, s.Delete(ctx, "never-existed"))
}

func TestMemoryStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		exerciseStore(t, NewMemory(10, time.Minute))
	})

	t.Run("expires", func(t *testing.T) {
		s := NewMemory(10, 20*time.Millisecond)
		require.NoError(t, s.Save(context.Background(), pending("p-1")))

		assert.Eventually(t, func() bool {
			got, _ := s.Get(context.Background(), "p-1")
			return got.ID == ""
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("bounded", func(t *testing.T) {
		s := NewMemory(2, time.Minute)
		ctx := context.Background()
		for _, id := range []string{"a", "b", "c"} {
			require.NoError(t, s.Save(ctx, pending(id)))
		}
		got, _ := s.Get(ctx, "a")
		assert.Empty(t, got.ID, "oldest entry should be evicted")
	})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	t.Run("contract", func(t *testing.T) {
		exerciseStore(t, NewRedis(rdb, 10*time.Minute, log.NewNop()))
	})

	t.Run("sets ttl", func(t *testing.T) {
		s := NewRedis(rdb, 10*time.Minute, log.NewNop())
		require.NoError(t, s.Save(context.Background(), pending("p-2")))

		assert.Equal(t, 10*time.Minute, mr.TTL(keyPrefix+"p-2"))

		mr.FastForward(11 * time.Minute)
		got, err := s.Get(context.Background(), "p-2")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("corrupt value", func(t *testing.T) {
		require.NoError(t, mr.Set(keyPrefix+"bad", "not json"))
		s := NewRedis(rdb, time.Minute, log.NewNop())

		_, err := s.Get(context.Background(), "bad")
		assert.ErrorIs(t, err, ErrFailedToGet)
	})

	t.Run("server down", func(t *testing.T) {
		down := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: down.Addr(), MaxRetries: -1})
		t.Cleanup(func() { client.Close() })
		down.Close()

		s := NewRedis(client, time.Minute, log.NewNop())
		assert.ErrorIs(t, s.Save(context.Background(), pending("x")), ErrFailedToSave)
		_, err := s.Get(context.Background(), "x")
		assert.ErrorIs(t, err, ErrFailedToGet)
		assert.ErrorIs(t, s.Delete(context.Background(), "x"), ErrFailedToDelete)
	})
}
