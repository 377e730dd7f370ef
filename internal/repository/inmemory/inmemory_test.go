package inmemory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"offertracker/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day1 = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func seedOffer(t *testing.T, s *InmemoryStorage, slug string) {
	t.Helper()
	_, err := s.OfferUpsert(context.Background(), models.Offer{
		Slug: slug, Title: slug, URL: "https://" + slug + ".example", Active: true,
	})
	require.NoError(t, err)
}

func userClick(slug, user string, ts time.Time) models.Click {
	return models.Click{TS: ts, Day: models.DayOf(ts, time.UTC), OfferSlug: slug, Country: models.CountryRU, UserID: &user}
}

func TestInmemoryStorage_ClickCreate_Dedup(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedOffer(t, s, "vivus")

	_, err := s.ClickCreate(ctx, userClick("vivus", "u1", day1.Add(10*time.Hour)))
	require.NoError(t, err)

	_, err = s.ClickCreate(ctx, userClick("vivus", "u1", day1.Add(23*time.Hour+59*time.Minute)))
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = s.ClickCreate(ctx, userClick("vivus", "u1", day1.Add(24*time.Hour+time.Minute)))
	require.NoError(t, err)

	_, err = s.ClickCreate(ctx, userClick("vivus", "u2", day1.Add(11*time.Hour)))
	require.NoError(t, err)

	clicks, err := s.Clicks(ctx)
	require.NoError(t, err)
	assert.Len(t, clicks, 3)

	user, err := s.UserGet(ctx, "u1")
	require.NoError(t, err, "click must keep referential integrity")
	assert.Equal(t, "u1", user.ID)
}

func TestInmemoryStorage_ClickCreate_AnonymousNeverDeduplicated(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedOffer(t, s, "vivus")

	for i := 0; i < 3; i++ {
		_, err := s.ClickCreate(ctx, models.Click{TS: day1, Day: day1, OfferSlug: "vivus", Country: models.CountryKZ})
		require.NoError(t, err)
	}

	clicks, err := s.Clicks(ctx)
	require.NoError(t, err)
	assert.Len(t, clicks, 3)
}

func TestInmemoryStorage_ClickCreate_UnknownOffer(t *testing.T) {
	s := NewStorage()

	_, err := s.ClickCreate(context.Background(), userClick("missing", "u1", day1))
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_ClickCreate_InactiveOffer(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	_, err := s.OfferUpsert(ctx, models.Offer{Slug: "old", Title: "Old", URL: "https://old.example", Active: false})
	require.NoError(t, err)

	_, err = s.ClickCreate(ctx, userClick("old", "u1", day1))
	assert.ErrorIs(t, err, models.ErrInactive)

	clicks, err := s.Clicks(ctx)
	require.NoError(t, err)
	assert.Empty(t, clicks)
}

func TestInmemoryStorage_ClickCreate_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedOffer(t, s, "vivus")

	const workers = 32
	var (
		wg      sync.WaitGroup
		counted atomic.Int64
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ClickCreate(ctx, userClick("vivus", "u1", day1.Add(time.Hour))); err == nil {
				counted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, counted.Load())

	clicks, err := s.Clicks(ctx)
	require.NoError(t, err)
	assert.Len(t, clicks, 1)
}

func TestInmemoryStorage_OfferUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedOffer(t, s, "vivus")
	seedOffer(t, s, "boostra")

	before, err := s.OfferGetBySlug(ctx, "boostra")
	require.NoError(t, err)

	updatedAt := time.Now().UTC().Add(time.Hour)
	got, err := s.OfferUpsert(ctx, models.Offer{
		Slug: "vivus", Title: "Vivus 2", URL: "https://vivus.example/v2", Active: false, UpdatedAt: updatedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vivus 2", got.Title)
	assert.Equal(t, updatedAt, got.UpdatedAt)
	assert.False(t, got.Active)

	after, err := s.OfferGetBySlug(ctx, "boostra")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	active, err := s.OfferListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "boostra", active[0].Slug)
}

func TestInmemoryStorage_AggregatesAgree(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedOffer(t, s, "vivus")
	seedOffer(t, s, "boostra")

	day2 := day1.AddDate(0, 0, 1)
	for _, c := range []models.Click{
		userClick("vivus", "u1", day1.Add(time.Hour)),
		userClick("boostra", "u1", day1.Add(2*time.Hour)),
		userClick("vivus", "u2", day1.Add(3*time.Hour)),
		userClick("vivus", "u1", day2.Add(time.Hour)),
		{TS: day2, Day: day2, OfferSlug: "boostra", Country: models.CountryKZ},
	} {
		_, err := s.ClickCreate(ctx, c)
		require.NoError(t, err)
	}

	byOffer, err := s.ClicksByOfferDay(ctx, day1, day2, "")
	require.NoError(t, err)
	totals, err := s.ClicksTotalDay(ctx, day1, day2, "")
	require.NoError(t, err)

	sums := make(map[time.Time]int64)
	for _, row := range byOffer {
		sums[row.Day] += row.Clicks
	}
	require.Len(t, totals, 2)
	for _, row := range totals {
		assert.Equal(t, row.Clicks, sums[row.Day], "day %s", row.Day)
	}
	assert.EqualValues(t, 3, totals[0].Clicks)
	assert.EqualValues(t, 2, totals[1].Clicks)

	kz, err := s.ClicksTotalDay(ctx, day1, day2, models.CountryKZ)
	require.NoError(t, err)
	require.Len(t, kz, 1)
	assert.Equal(t, day2, kz[0].Day)
}

func TestInmemoryStorage_Deliveries(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	_, err := s.DeliveryCreate(ctx, models.Delivery{UserID: "ghost", Event: models.DeliveryOK})
	assert.ErrorIs(t, err, models.ErrUnfound)

	_, err = s.UserTouch(ctx, "u1", day1)
	require.NoError(t, err)
	require.NoError(t, s.UserSetBlocked(ctx, "u1", true, day1))

	d, err := s.DeliveryCreate(ctx, models.Delivery{UserID: "u1", Event: models.DeliveryBlocked})
	require.NoError(t, err)
	assert.EqualValues(t, 1, d.ID)

	user, err := s.UserGet(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, user.Blocked)
	require.NotNil(t, user.BlockedAt)
	assert.Equal(t, day1, *user.BlockedAt)
}
