package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envServerAddress  = "SERVER_ADDRESS"
	envBaseURL        = "BASE_URL"
	envRedirectBase   = "REDIRECT_BASE"
	envDatabaseDSN    = "DATABASE_DSN"
	envUserHashSalt   = "USER_HASH_SALT"
	envBotToken       = "BOT_TOKEN"
	envAdminIDs       = "ADMIN_IDS"
	envAdminToken     = "ADMIN_TOKEN"
	envRedisURL       = "REDIS_URL"
	envBotRateWindow  = "BOT_RATE_WINDOW"
	envReportTimezone = "REPORT_TIMEZONE"
	envRateLimitRPS   = "RATE_LIMIT_RPS"
	envRateLimitBurst = "RATE_LIMIT_BURST"
	envOfferCacheTTL  = "OFFER_CACHE_TTL"
	envDailyReportAt  = "DAILY_REPORT_AT"
	envLogLevel       = "LOG_LEVEL"
	envAdminJWTTTL    = "ADMIN_JWT_TTL"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultBaseURL        = "http://localhost:8080"
	defaultBotRateWindow  = 500 * time.Millisecond
	defaultReportTimezone = "UTC"
	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 40
	defaultOfferCacheTTL  = 30 * time.Second
	defaultLogLevel       = "info"
	defaultAdminJWTTTL    = time.Hour
)

type StorageKind string

const (
	StorageInmemory StorageKind = "inmemory"
	StoragePostgres StorageKind = "postgres"
	StorageSQLite   StorageKind = "sqlite"
)

type Config struct {
	ServerAddress  string
	BaseURL        string // база для ссылок /r/ и /s/, которые видит пользователь
	DatabaseDSN    string
	UserHashSalt   string
	BotToken       string
	AdminIDs       []int64
	AdminToken     string
	AdminJWTTTL    time.Duration // срок JWT, которые бот выдаёт админам по /token
	RedisURL       string
	BotRateWindow  time.Duration
	ReportTimezone string
	Location       *time.Location
	RateLimitRPS   float64
	RateLimitBurst int
	OfferCacheTTL  time.Duration // 0 - кеш выключен
	DailyReportAt  string        // HH:MM, пусто - без ежедневного отчёта
	LogLevel       string
}

// NewConfig собирает конфиг: значения по умолчанию, затем флаги, затем переменные окружения
func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func parse(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		ServerAddress:  defaultServerAddress,
		BaseURL:        defaultBaseURL,
		BotRateWindow:  defaultBotRateWindow,
		ReportTimezone: defaultReportTimezone,
		RateLimitRPS:   defaultRateLimitRPS,
		RateLimitBurst: defaultRateLimitBurst,
		OfferCacheTTL:  defaultOfferCacheTTL,
		LogLevel:       defaultLogLevel,
		AdminJWTTTL:    defaultAdminJWTTTL,
	}

	var adminIDs string

	// Parse flags
	fs.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL for redirect and short links")
	fs.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN, "Database DSN: postgres://..., file:... or *.db, empty for in-memory")
	fs.StringVar(&cfg.UserHashSalt, "user-hash-salt", cfg.UserHashSalt, "Salt for user pseudonyms")
	fs.StringVar(&cfg.BotToken, "bot-token", cfg.BotToken, "Telegram bot token")
	fs.StringVar(&adminIDs, "admin-ids", "", "Comma separated Telegram admin ids")
	fs.StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Token for HTTP admin routes")
	fs.DurationVar(&cfg.AdminJWTTTL, "admin-jwt-ttl", cfg.AdminJWTTTL, "Lifetime of admin JWTs issued by the bot")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for bot anti-flood")
	fs.DurationVar(&cfg.BotRateWindow, "bot-rate-window", cfg.BotRateWindow, "Bot anti-flood window")
	fs.StringVar(&cfg.ReportTimezone, "report-timezone", cfg.ReportTimezone, "IANA time zone for calendar days")
	fs.Float64Var(&cfg.RateLimitRPS, "rate-limit-rps", cfg.RateLimitRPS, "Per-IP requests per second")
	fs.IntVar(&cfg.RateLimitBurst, "rate-limit-burst", cfg.RateLimitBurst, "Per-IP burst")
	fs.DurationVar(&cfg.OfferCacheTTL, "offer-cache-ttl", cfg.OfferCacheTTL, "Offer cache TTL, 0 disables")
	fs.StringVar(&cfg.DailyReportAt, "daily-report-at", cfg.DailyReportAt, "HH:MM for the daily admin report")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Apply environment variables
	cfg.applyEnv(lookup, envServerAddress, &cfg.ServerAddress)
	cfg.applyEnv(lookup, envRedirectBase, &cfg.BaseURL)
	cfg.applyEnv(lookup, envBaseURL, &cfg.BaseURL)
	cfg.applyEnv(lookup, envDatabaseDSN, &cfg.DatabaseDSN)
	cfg.applyEnv(lookup, envUserHashSalt, &cfg.UserHashSalt)
	cfg.applyEnv(lookup, envBotToken, &cfg.BotToken)
	cfg.applyEnv(lookup, envAdminIDs, &adminIDs)
	cfg.applyEnv(lookup, envAdminToken, &cfg.AdminToken)
	cfg.applyEnvDuration(lookup, envAdminJWTTTL, &cfg.AdminJWTTTL)
	cfg.applyEnv(lookup, envRedisURL, &cfg.RedisURL)
	cfg.applyEnvDuration(lookup, envBotRateWindow, &cfg.BotRateWindow)
	cfg.applyEnv(lookup, envReportTimezone, &cfg.ReportTimezone)
	cfg.applyEnvFloat(lookup, envRateLimitRPS, &cfg.RateLimitRPS)
	cfg.applyEnvInt(lookup, envRateLimitBurst, &cfg.RateLimitBurst)
	cfg.applyEnvDuration(lookup, envOfferCacheTTL, &cfg.OfferCacheTTL)
	cfg.applyEnv(lookup, envDailyReportAt, &cfg.DailyReportAt)
	cfg.applyEnv(lookup, envLogLevel, &cfg.LogLevel)

	// Final setup
	cfg.AdminIDs = parseAdminIDs(adminIDs)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.normalizeServerAddress()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool), key string, target *string) {
	if val, ok := lookup(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(lookup func(string) (string, bool), key string, target *time.Duration) {
	if val, ok := lookup(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

func (c *Config) applyEnvFloat(lookup func(string) (string, bool), key string, target *float64) {
	if val, ok := lookup(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*target = f
		}
	}
}

func (c *Config) applyEnvInt(lookup func(string) (string, bool), key string, target *int) {
	if val, ok := lookup(key); ok {
		if n, err := strconv.Atoi(val); err == nil {
			*target = n
		}
	}
}

func (c *Config) validate() error {
	if c.UserHashSalt == "" {
		return errors.New("USER_HASH_SALT must be set")
	}

	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return fmt.Errorf("invalid report timezone %q: %w", c.ReportTimezone, err)
	}
	c.Location = loc

	if c.DailyReportAt != "" {
		if _, _, err := c.DailyReportTime(); err != nil {
			return err
		}
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("rate limit rps and burst must be positive")
	}
	return nil
}

// DailyReportTime разбирает DailyReportAt в часы и минуты
func (c *Config) DailyReportTime() (hour, minute int, err error) {
	t, err := time.Parse("15:04", c.DailyReportAt)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid daily report time %q, want HH:MM", c.DailyReportAt)
	}
	return t.Hour(), t.Minute(), nil
}

// StorageKind выбирает хранилище по DSN
func (c *Config) StorageKind() StorageKind {
	dsn := strings.TrimSpace(c.DatabaseDSN)
	switch {
	case dsn == "":
		return StorageInmemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return StoragePostgres
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), dsn == ":memory:":
		return StorageSQLite
	}
	// key=value DSN вида "host=... user=..." считаем постгресом
	return StoragePostgres
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
