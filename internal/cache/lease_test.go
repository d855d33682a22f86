package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winhire/interview-engine/internal/config"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestLease_ExclusiveUntilReleased(t *testing.T) {
	_, rdb := setupRedis(t)
	ctx := context.Background()

	a := NewLease(rdb, "sweeper:lease", time.Minute)
	b := NewLease(rdb, "sweeper:lease", time.Minute)

	release, ok, err := a.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must wait")

	release()

	releaseB, ok, err := b.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	releaseB()
}

func TestLease_ExpiresAfterTTL(t *testing.T) {
	mr, rdb := setupRedis(t)
	ctx := context.Background()

	a := NewLease(rdb, "sweeper:lease", 30*time.Second)
	_, ok, err := a.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	_, ok, err = NewLease(rdb, "sweeper:lease", 30*time.Second).Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLease_StaleReleaseKeepsNewHolder(t *testing.T) {
	mr, rdb := setupRedis(t)
	ctx := context.Background()

	releaseOld, ok, err := NewLease(rdb, "k", time.Second).Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = NewLease(rdb, "k", time.Minute).Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	releaseOld()
	assert.True(t, mr.Exists("k"), "expired holder must not delete the new lease")
}

func TestNewClient_DisabledWithoutAddress(t *testing.T) {
	rdb, err := NewClient(context.Background(), config.RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewClient_Pings(t *testing.T) {
	mr, _ := setupRedis(t)

	rdb, err := NewClient(context.Background(), config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	rdb.Close()
}
