package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBackend(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		t.Skip("Postgres not available for testing:", err)
	}

	backend, err := NewPostgresBackend(ctx, db)
	require.NoError(t, err)

	key := "estate-crm-test:" + t.Name()
	defer backend.Delete(ctx, key)

	require.NoError(t, backend.Set(ctx, key, []byte(`[1]`)))
	require.NoError(t, backend.Set(ctx, key, []byte(`[2]`)))

	raw, found, err := backend.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[2]`, string(raw))
}
