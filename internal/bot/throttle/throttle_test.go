package throttle

import (
	"context"
	"testing"
	"time"

	"offertracker/internal/domain/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, s
}

func TestRedisThrottle_Allow(t *testing.T) {
	client, s := setupTestRedis(t)
	thr := NewRedisThrottle(client, 500*time.Millisecond, nil)
	ctx := context.Background()

	assert.True(t, thr.Allow(ctx, 1))
	assert.False(t, thr.Allow(ctx, 1), "second action inside the window")
	assert.True(t, thr.Allow(ctx, 2), "other users are independent")

	s.FastForward(600 * time.Millisecond)
	assert.True(t, thr.Allow(ctx, 1))
}

func TestRedisThrottle_FailsOpen(t *testing.T) {
	client, s := setupTestRedis(t)
	thr := NewRedisThrottle(client, time.Second, nil)

	s.Close()
	assert.True(t, thr.Allow(context.Background(), 1))
}

func TestRedisThrottle_Country(t *testing.T) {
	client, s := setupTestRedis(t)
	thr := NewRedisThrottle(client, time.Second, nil)
	ctx := context.Background()

	_, ok := thr.Country(ctx, 7)
	assert.False(t, ok)

	thr.RememberCountry(ctx, 7, models.CountryKZ)
	c, ok := thr.Country(ctx, 7)
	require.True(t, ok)
	assert.Equal(t, models.CountryKZ, c)

	ttl := s.TTL("u:7:country")
	assert.Equal(t, countryTTL, ttl)

	require.NoError(t, s.Set("u:8:country", "US"))
	_, ok = thr.Country(ctx, 8)
	assert.False(t, ok)
}

func TestMemoryThrottle(t *testing.T) {
	thr := NewMemoryThrottle(500 * time.Millisecond)
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	thr.now = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, thr.Allow(ctx, 1))
	now = now.Add(100 * time.Millisecond)
	assert.False(t, thr.Allow(ctx, 1))
	now = now.Add(500 * time.Millisecond)
	assert.True(t, thr.Allow(ctx, 1))

	thr.RememberCountry(ctx, 1, models.CountryRU)
	c, ok := thr.Country(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, models.CountryRU, c)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	thr, err := New(ctx, "", time.Second, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryThrottle{}, thr)

	s := miniredis.RunT(t)
	thr, err = New(ctx, "redis://"+s.Addr()+"/0", time.Second, nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisThrottle{}, thr)
	require.NoError(t, thr.Close())

	_, err = New(ctx, "://bad", time.Second, nil)
	assert.Error(t, err)
}
