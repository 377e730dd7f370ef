package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(flag.NewFlagSet("test", flag.ContinueOnError), nil, envMap(map[string]string{
		"USER_HASH_SALT": "pepper",
	}))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.BotRateWindow)
	assert.Equal(t, time.Hour, cfg.AdminJWTTTL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, StorageInmemory, cfg.StorageKind())
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := parse(fs, []string{"-server-address", ":9090", "-database-dsn", "offers.db"}, envMap(map[string]string{
		"USER_HASH_SALT":  "pepper",
		"DATABASE_DSN":    "postgres://u:p@localhost:5432/offers",
		"REDIRECT_BASE":   "https://go.example/",
		"ADMIN_IDS":       "1, 2,abc,3",
		"REPORT_TIMEZONE": "Asia/Almaty",
		"OFFER_CACHE_TTL": "0s",
		"DAILY_REPORT_AT": "09:30",
	}))
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.ServerAddress)
	assert.Equal(t, "https://go.example", cfg.BaseURL)
	assert.Equal(t, StoragePostgres, cfg.StorageKind())
	assert.Equal(t, []int64{1, 2, 3}, cfg.AdminIDs)
	assert.True(t, cfg.IsAdmin(2))
	assert.False(t, cfg.IsAdmin(4))
	assert.Equal(t, "Asia/Almaty", cfg.Location.String())
	assert.Zero(t, cfg.OfferCacheTTL)

	h, m, err := cfg.DailyReportTime()
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "empty salt", env: map[string]string{}},
		{name: "bad timezone", env: map[string]string{"USER_HASH_SALT": "x", "REPORT_TIMEZONE": "Mars/Olympus"}},
		{name: "bad report time", env: map[string]string{"USER_HASH_SALT": "x", "DAILY_REPORT_AT": "25:99"}},
		{name: "zero rps", env: map[string]string{"USER_HASH_SALT": "x", "RATE_LIMIT_RPS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(flag.NewFlagSet("test", flag.ContinueOnError), nil, envMap(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestStorageKind(t *testing.T) {
	tests := []struct {
		dsn  string
		want StorageKind
	}{
		{"", StorageInmemory},
		{"postgres://localhost/offers", StoragePostgres},
		{"host=localhost user=app", StoragePostgres},
		{"file:data/offers.db?_busy_timeout=5000", StorageSQLite},
		{"offers.db", StorageSQLite},
		{":memory:", StorageSQLite},
	}

	for _, tt := range tests {
		cfg := Config{DatabaseDSN: tt.dsn}
		assert.Equal(t, tt.want, cfg.StorageKind(), tt.dsn)
	}
}
