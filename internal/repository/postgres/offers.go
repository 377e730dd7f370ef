package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"offertracker/internal/domain/models"
)

const offerColumns = "slug, title, url, active, created_at, updated_at"

func (p *PostgresStorage) OfferGetBySlug(ctx context.Context, slug string) (models.Offer, error) {
	if slug == "" {
		return models.Offer{}, fmt.Errorf("%w: slug must not be empty", models.ErrInvalidData)
	}

	var offer models.Offer
	err := p.querier(ctx).QueryRowContext(ctx,
		"SELECT "+offerColumns+" FROM offers WHERE slug = $1",
		slug,
	).Scan(&offer.Slug, &offer.Title, &offer.URL, &offer.Active, &offer.CreatedAt, &offer.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Offer{}, fmt.Errorf("%w: offer not found", models.ErrUnfound)
		}
		return models.Offer{}, fmt.Errorf("failed to get offer: %w", classifyError(err))
	}

	return offer, nil
}

// OfferUpsert перезаписывает title/url/active и всегда выставляет updated_at,
// триггер на таблице для этого не используется
func (p *PostgresStorage) OfferUpsert(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if offer.Slug == "" || offer.UpdatedAt.IsZero() {
		return models.Offer{}, models.ErrInvalidData
	}

	var stored models.Offer
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO offers (slug, title, url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (slug) DO UPDATE SET
			title      = EXCLUDED.title,
			url        = EXCLUDED.url,
			active     = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
		RETURNING `+offerColumns,
		offer.Slug, offer.Title, offer.URL, offer.Active, offer.UpdatedAt,
	).Scan(&stored.Slug, &stored.Title, &stored.URL, &stored.Active, &stored.CreatedAt, &stored.UpdatedAt)

	if err != nil {
		return models.Offer{}, fmt.Errorf("failed to upsert offer: %w", classifyError(err))
	}

	return stored, nil
}

func (p *PostgresStorage) OfferListActive(ctx context.Context) ([]models.Offer, error) {
	rows, err := p.querier(ctx).QueryContext(ctx,
		"SELECT "+offerColumns+" FROM offers WHERE active ORDER BY created_at, slug",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", classifyError(err))
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var offer models.Offer
		if err := rows.Scan(&offer.Slug, &offer.Title, &offer.URL, &offer.Active, &offer.CreatedAt, &offer.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", classifyError(err))
	}

	return offers, nil
}
