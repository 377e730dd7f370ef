package deps

import (
	"context"
	"testing"
	"time"

	"offertracker/internal/config"
	"offertracker/internal/domain/models"
	"offertracker/internal/repository/inmemory"
	"offertracker/internal/repository/sqlite"
	"offertracker/internal/services/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeps_SelectsStorage(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want interface{}
	}{
		{name: "пустой DSN", dsn: "", want: &inmemory.InmemoryStorage{}},
		{name: "sqlite в памяти", dsn: ":memory:", want: &sqlite.SQLiteStorage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				DatabaseDSN:   tt.dsn,
				UserHashSalt:  "pepper",
				Location:      time.UTC,
				OfferCacheTTL: time.Minute,
			}

			d, err := NewDeps(context.Background(), cfg, nil)
			require.NoError(t, err)
			defer d.Close()

			assert.IsType(t, tt.want, d.Storage)
			assert.NotNil(t, d.Tracker)
			assert.NotNil(t, d.Analytics)
			assert.NoError(t, d.Tracker.PingDataBase(context.Background()))
		})
	}
}

func TestNewDeps_TrackerAndAnalyticsShareStorage(t *testing.T) {
	ctx := context.Background()
	d, err := NewDeps(ctx, &config.Config{UserHashSalt: "pepper", Location: time.UTC}, nil)
	require.NoError(t, err)
	defer d.Close()

	_, err = d.Tracker.UpsertOffer(ctx, models.Offer{Slug: "vivus", Title: "Vivus", URL: "https://vivus.example", Active: true})
	require.NoError(t, err)

	res, err := d.Tracker.Redirect(ctx, tracker.RedirectRequest{Slug: "vivus", Country: "RU", User: "1"})
	require.NoError(t, err)
	assert.True(t, res.Counted)

	report, err := d.Analytics.LastDays(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Total)
}

func TestNewDeps_AdminAuth(t *testing.T) {
	base := config.Config{UserHashSalt: "pepper", Location: time.UTC, AdminJWTTTL: time.Hour}

	short := base
	short.AdminToken = "secret"
	d, err := NewDeps(context.Background(), &short, nil)
	require.NoError(t, err)
	assert.Nil(t, d.AdminAuth)
	d.Close()

	long := base
	long.AdminToken = "admin-token-long-enough-123"
	d, err = NewDeps(context.Background(), &long, nil)
	require.NoError(t, err)
	require.NotNil(t, d.AdminAuth)
	d.Close()
}
