package redis

import (
	"context"
	"testing"

	"tastoria/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		mr := miniredis.RunT(t)

		rdb, err := Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
		require.NoError(t, err)
		assert.NoError(t, Disconnect(rdb))
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := Connect(context.Background(), config.RedisConfig{Addr: addr})
		assert.Error(t, err)
	})
}
