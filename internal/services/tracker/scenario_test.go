package tracker

import (
	"context"
	"testing"
	"time"

	"offertracker/internal/domain/models"
	"offertracker/internal/identity"
	"offertracker/internal/repository/cache"
	"offertracker/internal/repository/inmemory"
	"offertracker/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Сценарий vivus из требований: дедуп по дню, новый день, анонимы, отказы без записи.
func TestTracker_VivusScenario(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStorage()

	svc, err := NewTracker(store, Settings{Salt: testSalt}, nil)
	require.NoError(t, err)

	clock := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	_, err = svc.UpsertOffer(ctx, models.Offer{Slug: "vivus", Title: "Vivus", URL: "https://vivus.example", Active: true})
	require.NoError(t, err)

	user := identity.Pseudonym(100500, testSalt)
	countClicks := func() int {
		clicks, err := store.Clicks(ctx)
		require.NoError(t, err)
		return len(clicks)
	}

	res, err := svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "RU", User: user})
	require.NoError(t, err)
	assert.True(t, res.Counted)
	assert.Equal(t, "https://vivus.example", res.URL)

	clock = time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	res, err = svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "RU", User: user})
	require.NoError(t, err)
	assert.False(t, res.Counted)
	assert.Equal(t, "https://vivus.example", res.URL)
	assert.Equal(t, 1, countClicks())

	clock = time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC)
	res, err = svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "RU", User: user})
	require.NoError(t, err)
	assert.True(t, res.Counted)
	assert.Equal(t, 2, countClicks())

	for i := 0; i < 2; i++ {
		res, err = svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "RU"})
		require.NoError(t, err)
		assert.True(t, res.Counted)
	}
	assert.Equal(t, 4, countClicks())

	_, err = svc.Redirect(ctx, RedirectRequest{Slug: "unknown-offer", Country: "RU", User: user})
	assert.ErrorIs(t, err, models.ErrUnfound)

	_, err = svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "US", User: user})
	assert.ErrorIs(t, err, models.ErrInvalidData)
	assert.Equal(t, 4, countClicks())

	u, err := store.UserGet(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), u.FirstSeen)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC), u.LastSeen)
}

// Календарный день считается в таймзоне отчётов, а не в UTC.
func TestTracker_DayBoundaryFollowsLocation(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStorage()

	almaty := time.FixedZone("UTC+5", 5*60*60)
	svc, err := NewTracker(store, Settings{Salt: testSalt, Location: almaty}, nil)
	require.NoError(t, err)

	_, err = svc.UpsertOffer(ctx, models.Offer{Slug: "vivus", Title: "Vivus", URL: "https://vivus.example", Active: true})
	require.NoError(t, err)

	user := identity.Pseudonym(1, testSalt)

	// 18:30 и 19:30 UTC - это разные дни в UTC+5
	for _, ts := range []time.Time{
		time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC),
	} {
		now := ts
		svc.now = func() time.Time { return now }
		res, err := svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "KZ", User: user})
		require.NoError(t, err)
		assert.True(t, res.Counted)
	}
}

func TestTracker_LogDelivery_Inmemory(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStorage()

	svc, err := NewTracker(store, Settings{Salt: testSalt}, nil)
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow }

	require.NoError(t, svc.LogDelivery(ctx, DeliveryRecord{User: "42", Event: "blocked", Context: "Forbidden"}))
	require.NoError(t, svc.LogDelivery(ctx, DeliveryRecord{User: "42", Event: "weird"}))

	deliveries, err := store.Deliveries(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 2)
	assert.Equal(t, models.DeliveryBlocked, deliveries[0].Event)
	assert.Equal(t, models.DeliveryOther, deliveries[1].Event)
	assert.Equal(t, "weird", deliveries[1].Context)

	u, err := store.UserGet(ctx, identity.Pseudonym(42, testSalt))
	require.NoError(t, err)
	assert.True(t, u.Blocked)
}


// Выключенный оффер не принимает клики, даже если кэш ещё помнит его активным.
func TestTracker_DeactivatedOfferStopsCounting(t *testing.T) {
	ctx := context.Background()

	memStore := inmemory.NewStorage()
	sqliteStore, err := sqlite.NewStorage(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	tests := []struct {
		name  string
		store Storage
		count func(t *testing.T) int
	}{
		{
			name:  "inmemory",
			store: memStore,
			count: func(t *testing.T) int {
				clicks, err := memStore.Clicks(ctx)
				require.NoError(t, err)
				return len(clicks)
			},
		},
		{
			name:  "sqlite",
			store: sqliteStore,
			count: func(t *testing.T) int {
				rows, err := sqliteStore.ClicksByOfferDay(ctx, fixedNow.AddDate(0, 0, -1), fixedNow.AddDate(0, 0, 1), "")
				require.NoError(t, err)
				var n int
				for _, r := range rows {
					n += int(r.Clicks)
				}
				return n
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerCache, err := cache.NewOfferCache(time.Minute)
			require.NoError(t, err)
			t.Cleanup(offerCache.Close)

			svc := newTestTracker(t, tt.store, offerCache)

			_, err = svc.UpsertOffer(ctx, models.Offer{Slug: "vivus", Title: "Vivus", URL: "https://vivus.example", Active: true})
			require.NoError(t, err)

			_, err = svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "RU"})
			require.NoError(t, err)
			offerCache.Wait()
			require.Equal(t, 1, tt.count(t))

			// выключение прямо в хранилище, мимо трекера и его кэша
			_, err = tt.store.OfferUpsert(ctx, models.Offer{
				Slug: "vivus", Title: "Vivus", URL: "https://vivus.example", Active: false, UpdatedAt: fixedNow,
			})
			require.NoError(t, err)

			for i := 0; i < 2; i++ {
				_, err = svc.Redirect(ctx, RedirectRequest{Slug: "vivus", Country: "RU"})
				assert.ErrorIs(t, err, models.ErrInactive)
				offerCache.Wait()
			}
			assert.Equal(t, 1, tt.count(t))
		})
	}
}
