package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"offertracker/internal/domain/models"
)

func (p *PostgresStorage) ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error) {
	if link.ID == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO short_links (id, offer_slug, country, user_ref, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at`,
		link.ID, link.OfferSlug, string(link.Country), link.UserID, link.CreatedAt,
	).Scan(&link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShortLink{}, fmt.Errorf("%w: short link id taken", models.ErrConflict)
		}
		return models.ShortLink{}, fmt.Errorf("failed to insert short link: %w", classifyError(err))
	}

	return link, nil
}

func (p *PostgresStorage) ShortLinkGet(ctx context.Context, id string) (models.ShortLink, error) {
	var (
		link    models.ShortLink
		country string
	)
	err := p.querier(ctx).QueryRowContext(ctx,
		"SELECT id, offer_slug, country, user_ref, created_at FROM short_links WHERE id = $1",
		id,
	).Scan(&link.ID, &link.OfferSlug, &country, &link.UserID, &link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShortLink{}, fmt.Errorf("%w: short link not found", models.ErrUnfound)
		}
		return models.ShortLink{}, fmt.Errorf("failed to get short link: %w", classifyError(err))
	}

	link.Country = models.Country(country)
	return link, nil
}
