package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"offertracker/internal/domain/models"
)

// Без фильтра по стране читаем представления, с фильтром - ту же группировку по clicks.
const (
	queryByOfferDay = `
		SELECT day, offer_slug, clicks
		FROM v_clicks_by_offer_day
		WHERE day BETWEEN $1 AND $2
		ORDER BY day, offer_slug`

	queryByOfferDayCountry = `
		SELECT day, offer_slug, COUNT(*) AS clicks
		FROM clicks
		WHERE day BETWEEN $1 AND $2 AND country = $3
		GROUP BY day, offer_slug
		ORDER BY day, offer_slug`

	queryTotalDay = `
		SELECT day, clicks
		FROM v_clicks_total_day
		WHERE day BETWEEN $1 AND $2
		ORDER BY day`

	queryTotalDayCountry = `
		SELECT day, COUNT(*) AS clicks
		FROM clicks
		WHERE day BETWEEN $1 AND $2 AND country = $3
		GROUP BY day
		ORDER BY day`
)

func (p *PostgresStorage) ClicksByOfferDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyOfferClicks, error) {
	rows, err := p.queryStats(ctx, queryByOfferDay, queryByOfferDayCountry, from, to, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.DailyOfferClicks
	for rows.Next() {
		var row models.DailyOfferClicks
		if err := rows.Scan(&row.Day, &row.OfferSlug, &row.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		row.Day = row.Day.UTC()
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", classifyError(err))
	}
	return result, nil
}

func (p *PostgresStorage) ClicksTotalDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyClicks, error) {
	rows, err := p.queryStats(ctx, queryTotalDay, queryTotalDayCountry, from, to, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.DailyClicks
	for rows.Next() {
		var row models.DailyClicks
		if err := rows.Scan(&row.Day, &row.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		row.Day = row.Day.UTC()
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", classifyError(err))
	}
	return result, nil
}

func (p *PostgresStorage) queryStats(ctx context.Context, all, byCountry string, from, to time.Time, country models.Country) (*sql.Rows, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if country == "" {
		rows, err = p.querier(ctx).QueryContext(ctx, all, from, to)
	} else {
		rows, err = p.querier(ctx).QueryContext(ctx, byCountry, from, to, string(country))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", classifyError(err))
	}
	return rows, nil
}
