package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"offertracker/internal/domain/models"
)

func (p *PostgresStorage) UserTouch(ctx context.Context, id string, now time.Time) (models.User, error) {
	if id == "" {
		return models.User{}, models.ErrInvalidData
	}

	var (
		user      models.User
		blockedAt sql.NullTime
	)
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO users (identifier, first_seen, last_seen)
		VALUES ($1, $2, $2)
		ON CONFLICT (identifier) DO UPDATE SET last_seen = EXCLUDED.last_seen
		RETURNING identifier, first_seen, last_seen, blocked, blocked_at`,
		id, now,
	).Scan(&user.ID, &user.FirstSeen, &user.LastSeen, &user.Blocked, &blockedAt)

	if err != nil {
		return models.User{}, fmt.Errorf("failed to touch user: %w", classifyError(err))
	}

	if blockedAt.Valid {
		user.BlockedAt = &blockedAt.Time
	}
	return user, nil
}

func (p *PostgresStorage) UserSetBlocked(ctx context.Context, id string, blocked bool, at time.Time) error {
	blockedAt := sql.NullTime{Time: at, Valid: blocked}

	result, err := p.querier(ctx).ExecContext(ctx,
		"UPDATE users SET blocked = $2, blocked_at = $3 WHERE identifier = $1",
		id, blocked, blockedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", classifyError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: user not found", models.ErrUnfound)
	}

	return nil
}
