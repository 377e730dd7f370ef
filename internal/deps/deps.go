// Сборка внешних зависимостей приложения: хранилище, кеш офферов и сервисы поверх них.
// Общая для HTTP-сервера и бота.

package deps

import (
	"context"
	"errors"
	"fmt"

	"offertracker/internal/config"
	"offertracker/internal/repository/cache"
	"offertracker/internal/repository/inmemory"
	"offertracker/internal/repository/postgres"
	"offertracker/internal/repository/sqlite"
	"offertracker/internal/services/adminauth"
	"offertracker/internal/services/analytics"
	"offertracker/internal/services/tracker"

	"github.com/rs/zerolog"
)

// Storage - хранилище, которого хватает и трекеру, и аналитике
type Storage interface {
	tracker.Storage
	analytics.StatsStorage
	Close() error
}

type Deps struct {
	Storage   Storage
	Tracker   *tracker.Tracker
	Analytics *analytics.Analytics
	AdminAuth *adminauth.Authentication // nil, если ADMIN_TOKEN не годится в секрет для JWT

	cache *cache.OfferCache
}

func NewDeps(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	storage, err := NewStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	d := &Deps{Storage: storage}

	settings := tracker.Settings{
		Salt:     cfg.UserHashSalt,
		Location: cfg.Location,
	}

	if cfg.OfferCacheTTL > 0 {
		d.cache, err = cache.NewOfferCache(cfg.OfferCacheTTL)
		if err != nil {
			_ = storage.Close()
			return nil, fmt.Errorf("failed to init offer cache: %w", err)
		}
		settings.Cache = d.cache
		log.Info().Dur("ttl", cfg.OfferCacheTTL).Msg("offer cache enabled")
	}

	d.Tracker, err = tracker.NewTracker(storage, settings, log)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.Analytics, err = analytics.NewAnalytics(storage, cfg.Location, log)
	if err != nil {
		d.Close()
		return nil, err
	}

	if cfg.AdminToken != "" {
		d.AdminAuth, err = adminauth.NewAuthentication(cfg.AdminToken, cfg.AdminJWTTTL)
		if err != nil {
			log.Warn().Err(err).Msg("admin JWT disabled, only X-Admin-Token is accepted")
		}
	}

	return d, nil
}

// NewStorage выбирает хранилище по DATABASE_DSN
func NewStorage(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (Storage, error) {
	switch kind := cfg.StorageKind(); kind {
	case config.StoragePostgres:
		log.Info().Msg("using postgres storage")
		storage, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to init postgres storage: %w", err)
		}
		return storage, nil

	case config.StorageSQLite:
		log.Info().Str("dsn", cfg.DatabaseDSN).Msg("using sqlite storage")
		storage, err := sqlite.NewStorage(cfg.DatabaseDSN, log)
		if err != nil {
			return nil, fmt.Errorf("failed to init sqlite storage: %w", err)
		}
		return storage, nil

	default:
		log.Warn().Msg("DATABASE_DSN is empty, using in-memory storage")
		return inmemory.NewStorage(), nil
	}
}

func (d *Deps) Close() error {
	if d.cache != nil {
		d.cache.Close()
	}
	return d.Storage.Close()
}
