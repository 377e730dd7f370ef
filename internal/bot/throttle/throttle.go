package throttle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"offertracker/internal/domain/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyUserThrottle = "u:%d:thr"
	keyUserCountry  = "u:%d:country"

	countryTTL = 30 * 24 * time.Hour
)

// Throttle - антифлуд для бота и память о выбранной стране
type Throttle interface {
	// Allow возвращает false, если пользователь пишет чаще окна
	Allow(ctx context.Context, userID int64) bool
	RememberCountry(ctx context.Context, userID int64, country models.Country)
	Country(ctx context.Context, userID int64) (models.Country, bool)
	Close() error
}

// New выбирает Redis, если задан redisURL, иначе держит всё в памяти процесса
func New(ctx context.Context, redisURL string, window time.Duration, log *zerolog.Logger) (Throttle, error) {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if redisURL == "" {
		return NewMemoryThrottle(window), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info().Str("addr", opts.Addr).Msg("Connected to Redis successfully")
	return NewRedisThrottle(client, window, log), nil
}

type RedisThrottle struct {
	client *redis.Client
	window time.Duration
	log    *zerolog.Logger
}

func NewRedisThrottle(client *redis.Client, window time.Duration, log *zerolog.Logger) *RedisThrottle {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &RedisThrottle{client: client, window: window, log: log}
}

// Allow: SET NX PX, ключ живёт ровно одно окно.
// Если Redis недоступен, пропускаем пользователя.
func (t *RedisThrottle) Allow(ctx context.Context, userID int64) bool {
	if t.window <= 0 {
		return true
	}

	ok, err := t.client.SetNX(ctx, fmt.Sprintf(keyUserThrottle, userID), "1", t.window).Result()
	if err != nil {
		t.log.Warn().Err(err).Int64("user", userID).Msg("anti-flood check failed")
		return true
	}
	return ok
}

func (t *RedisThrottle) RememberCountry(ctx context.Context, userID int64, country models.Country) {
	err := t.client.Set(ctx, fmt.Sprintf(keyUserCountry, userID), string(country), countryTTL).Err()
	if err != nil {
		t.log.Warn().Err(err).Int64("user", userID).Msg("failed to remember country")
	}
}

func (t *RedisThrottle) Country(ctx context.Context, userID int64) (models.Country, bool) {
	val, err := t.client.Get(ctx, fmt.Sprintf(keyUserCountry, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		t.log.Warn().Err(err).Int64("user", userID).Msg("failed to read country")
		return "", false
	}

	c, err := models.ParseCountry(val)
	if err != nil {
		return "", false
	}
	return c, true
}

func (t *RedisThrottle) Close() error {
	return t.client.Close()
}

type MemoryThrottle struct {
	mu        sync.Mutex
	window    time.Duration
	lastSeen  map[int64]time.Time
	countries map[int64]models.Country
	now       func() time.Time
}

func NewMemoryThrottle(window time.Duration) *MemoryThrottle {
	return &MemoryThrottle{
		window:    window,
		lastSeen:  make(map[int64]time.Time),
		countries: make(map[int64]models.Country),
		now:       time.Now,
	}
}

func (t *MemoryThrottle) Allow(_ context.Context, userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if prev, ok := t.lastSeen[userID]; ok && now.Sub(prev) < t.window {
		return false
	}
	t.lastSeen[userID] = now
	return true
}

func (t *MemoryThrottle) RememberCountry(_ context.Context, userID int64, country models.Country) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.countries[userID] = country
}

func (t *MemoryThrottle) Country(_ context.Context, userID int64) (models.Country, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.countries[userID]
	return c, ok
}

func (t *MemoryThrottle) Close() error { return nil }
