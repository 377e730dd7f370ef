package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"offertracker/internal/domain/models"
)

// ClickCreate вставляет клик; повтор (offer, user, day) отсекает уникальный индекс
// ux_clicks_offer_user_day, и тогда возвращается models.ErrConflict.
// Клик по выключенному офферу не пишется: models.ErrInactive.
func (p *PostgresStorage) ClickCreate(ctx context.Context, click models.Click) (models.Click, error) {
	err := p.WithinTx(ctx, func(ctx context.Context) error {
		q := p.querier(ctx)

		// FOR SHARE держит строку оффера до коммита, выключение подождёт вставку
		var active bool
		err := q.QueryRowContext(ctx,
			`SELECT active FROM offers WHERE slug = $1 FOR SHARE`, click.OfferSlug,
		).Scan(&active)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: offer %s", models.ErrUnfound, click.OfferSlug)
			}
			return fmt.Errorf("failed to lock offer: %w", classifyError(err))
		}
		if !active {
			return fmt.Errorf("%w: offer %s", models.ErrInactive, click.OfferSlug)
		}

		// строка users должна существовать до вставки клика (FK), last_seen тут не трогаем
		if click.UserID != nil {
			if _, err := q.ExecContext(ctx, `
				INSERT INTO users (identifier, first_seen, last_seen)
				VALUES ($1, $2, $2)
				ON CONFLICT (identifier) DO NOTHING`,
				*click.UserID, click.TS,
			); err != nil {
				return fmt.Errorf("failed to ensure user: %w", classifyError(err))
			}
		}

		err = q.QueryRowContext(ctx, `
			INSERT INTO clicks (ts, day, offer_slug, country, user_ref)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (offer_slug, user_ref, day) WHERE user_ref IS NOT NULL DO NOTHING
			RETURNING id`,
			click.TS, click.Day, click.OfferSlug, string(click.Country), nullString(click.UserID),
		).Scan(&click.ID)

		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: click already counted", models.ErrConflict)
			}
			return fmt.Errorf("failed to insert click: %w", classifyError(err))
		}
		return nil
	})
	if err != nil {
		return models.Click{}, err
	}

	return click, nil
}
