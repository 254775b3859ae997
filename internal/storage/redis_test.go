package storage

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBackend(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:6379",
		DB:          15,
		DialTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available for testing:", err)
	}
	defer client.Close()

	backend := NewRedisBackend(client)
	key := "estate-crm-test:" + t.Name()
	defer client.Del(ctx, key)

	_, found, err := backend.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, backend.Set(ctx, key, []byte(`"ar"`)))
	raw, found, err := backend.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"ar"`, string(raw))

	require.NoError(t, backend.Delete(ctx, key))
	_, found, err = backend.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}
