package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"offertracker/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тесты против живой базы: TEST_DATABASE_DSN=postgres://... go test ./internal/repository/postgres/
const envTestDSN = "TEST_DATABASE_DSN"

func newIntegrationStorage(t *testing.T) (*PostgresStorage, string) {
	t.Helper()

	dsn := os.Getenv(envTestDSN)
	if dsn == "" {
		t.Skipf("%s is not set", envTestDSN)
	}

	ctx := context.Background()
	p, err := NewStorage(ctx, dsn)
	require.NoError(t, err)

	prefix := "it-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		_, _ = p.db.ExecContext(ctx, `DELETE FROM clicks WHERE offer_slug LIKE $1`, prefix+"%")
		_, _ = p.db.ExecContext(ctx, `DELETE FROM offers WHERE slug LIKE $1`, prefix+"%")
		_, _ = p.db.ExecContext(ctx, `DELETE FROM users WHERE identifier LIKE $1`, prefix+"%")
		_ = p.Close()
	})
	return p, prefix
}

func seedIntegrationOffer(t *testing.T, p *PostgresStorage, slug string, active bool) {
	t.Helper()
	_, err := p.OfferUpsert(context.Background(), models.Offer{
		Slug: slug, Title: slug, URL: "https://" + slug + ".example", Active: active, UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func integrationClick(slug string, user *string, ts time.Time) models.Click {
	return models.Click{TS: ts, Day: models.DayOf(ts, time.UTC), OfferSlug: slug, Country: models.CountryRU, UserID: user}
}

func TestPostgresStorage_ClickDedupAndViews(t *testing.T) {
	ctx := context.Background()
	p, prefix := newIntegrationStorage(t)

	vivus, boostra := prefix+"-vivus", prefix+"-boostra"
	seedIntegrationOffer(t, p, vivus, true)
	seedIntegrationOffer(t, p, boostra, true)

	u1, u2 := prefix+"-u1", prefix+"-u2"
	day1 := time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		click   models.Click
		wantErr error
	}{
		{name: "первый клик за день", click: integrationClick(vivus, &u1, day1.Add(10*time.Hour))},
		{name: "повтор в тот же день", click: integrationClick(vivus, &u1, day1.Add(23*time.Hour+59*time.Minute)), wantErr: models.ErrConflict},
		{name: "другой оффер", click: integrationClick(boostra, &u1, day1.Add(11*time.Hour))},
		{name: "другой пользователь", click: integrationClick(vivus, &u2, day1.Add(12*time.Hour))},
		{name: "аноним", click: integrationClick(vivus, nil, day1.Add(13*time.Hour))},
		{name: "аноним ещё раз", click: integrationClick(vivus, nil, day1.Add(14*time.Hour))},
		{name: "следующий день", click: integrationClick(vivus, &u1, day2.Add(time.Minute))},
		{name: "неизвестный оффер", click: integrationClick(prefix+"-missing", &u1, day1), wantErr: models.ErrUnfound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ClickCreate(ctx, tt.click)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	byOffer, err := p.ClicksByOfferDay(ctx, day1, day2, "")
	require.NoError(t, err)

	ours := make(map[string]int64)
	sums := make(map[time.Time]int64)
	for _, row := range byOffer {
		sums[row.Day.UTC()] += row.Clicks
		if row.OfferSlug == vivus || row.OfferSlug == boostra {
			ours[row.OfferSlug+row.Day.Format("2006-01-02")] += row.Clicks
		}
	}
	assert.Equal(t, int64(4), ours[vivus+"2001-02-03"])
	assert.Equal(t, int64(1), ours[boostra+"2001-02-03"])
	assert.Equal(t, int64(1), ours[vivus+"2001-02-04"])

	totals, err := p.ClicksTotalDay(ctx, day1, day2, "")
	require.NoError(t, err)
	require.NotEmpty(t, totals)
	for _, total := range totals {
		assert.Equal(t, sums[total.Day.UTC()], total.Clicks, total.Day)
	}
}

func TestPostgresStorage_ClickCreate_InactiveOffer(t *testing.T) {
	ctx := context.Background()
	p, prefix := newIntegrationStorage(t)

	slug := prefix + "-old"
	seedIntegrationOffer(t, p, slug, false)

	user := prefix + "-u1"
	_, err := p.ClickCreate(ctx, integrationClick(slug, &user, time.Now().UTC()))
	assert.ErrorIs(t, err, models.ErrInactive)

	seedIntegrationOffer(t, p, slug, true)
	_, err = p.ClickCreate(ctx, integrationClick(slug, &user, time.Now().UTC()))
	assert.NoError(t, err)
}

func TestPostgresStorage_ClickCreate_Concurrent(t *testing.T) {
	ctx := context.Background()
	p, prefix := newIntegrationStorage(t)

	slug := prefix + "-vivus"
	seedIntegrationOffer(t, p, slug, true)

	user := prefix + "-u1"
	ts := time.Date(2001, 5, 6, 12, 0, 0, 0, time.UTC)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		counted int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.ClickCreate(ctx, integrationClick(slug, &user, ts)); err == nil {
				mu.Lock()
				counted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, counted)
}
