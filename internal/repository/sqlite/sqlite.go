package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"offertracker/internal/domain/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const storagePingTimeout = 5 * time.Second

// SQLiteStorage - встраиваемое хранилище для одного узла.
// Соединение одно: запись в sqlite всё равно сериализуется,
// а :memory: база живёт ровно в одном соединении.
type SQLiteStorage struct {
	db *gorm.DB
}

func NewStorage(dsn string, log *zerolog.Logger) (*SQLiteStorage, error) {
	if dsn == "" {
		dsn = "offers.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	}
	if log != nil {
		cfg.Logger = logger.New(log, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		})
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&offerRecord{}, &userRecord{}, &clickRecord{}, &deliveryRecord{}, &shortLinkRecord{}); err != nil {
		return err
	}

	for _, stmt := range views {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

var views = []string{
	`CREATE VIEW IF NOT EXISTS v_clicks_by_offer_day AS
		SELECT day, offer_slug, COUNT(*) AS clicks
		FROM clicks
		GROUP BY day, offer_slug`,

	`CREATE VIEW IF NOT EXISTS v_clicks_total_day AS
		SELECT day, COUNT(*) AS clicks
		FROM clicks
		GROUP BY day`,
}

// ensureDirForSQLite создаёт каталог под файл базы, если нужно
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}

	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type keyTxType int

const keyTxValue keyTxType = iota

// WithinTx выполняет fn в транзакции gorm; вложенный вызов переиспользует открытую
func (s *SQLiteStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTxValue).(*gorm.DB); ok {
		return fn(ctx)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, keyTxValue, tx))
	})
}

// conn возвращает транзакцию из контекста или общий *gorm.DB
func (s *SQLiteStorage) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(keyTxValue).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", models.ErrUnfound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", models.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", models.ErrUnfound, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", models.ErrInvalidData, err)
	}
	return err
}
