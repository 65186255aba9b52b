package database

import (
	"context"
	"testing"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreMemory(t *testing.T) {
	ctx := context.Background()
	st, err := OpenStore(ctx, &config.Config{StoreDriver: config.StoreMemory}, zerolog.Nop())
	require.NoError(t, err)
	defer st.Close(ctx)

	assert.IsType(t, &store.MemoryStore{}, st)
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "sqlite"}, zerolog.Nop())
	assert.ErrorContains(t, err, "sqlite")
}

func TestNewPostgresPoolNeedsURL(t *testing.T) {
	_, err := NewPostgresPool(context.Background(), &config.Config{}, zerolog.Nop())
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestNewRedisClientDisabled(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), &config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	cfg := &config.Config{RedisURL: "http://localhost:6379"}
	rdb, err := NewRedisClient(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "parse redis URL")
	assert.Nil(t, rdb)
}
