package sqlite

import (
	"context"
	"fmt"
	"time"

	"offertracker/internal/domain/models"
)

type offerDayRow struct {
	Day       string
	OfferSlug string
	Clicks    int64
}

type totalDayRow struct {
	Day    string
	Clicks int64
}

func (s *SQLiteStorage) ClicksByOfferDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyOfferClicks, error) {
	var rows []offerDayRow

	db := s.conn(ctx)
	if country == "" {
		db = db.Table("v_clicks_by_offer_day").
			Select("day, offer_slug, clicks")
	} else {
		db = db.Table("clicks").
			Select("day, offer_slug, COUNT(*) AS clicks").
			Where("country = ?", string(country)).
			Group("day, offer_slug")
	}

	err := db.Where("day BETWEEN ? AND ?", formatDay(from), formatDay(to)).
		Order("day, offer_slug").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", classifyError(err))
	}

	result := make([]models.DailyOfferClicks, 0, len(rows))
	for _, row := range rows {
		day, err := parseDay(row.Day)
		if err != nil {
			return nil, fmt.Errorf("parse day %q: %w", row.Day, err)
		}
		result = append(result, models.DailyOfferClicks{Day: day, OfferSlug: row.OfferSlug, Clicks: row.Clicks})
	}
	return result, nil
}

func (s *SQLiteStorage) ClicksTotalDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyClicks, error) {
	var rows []totalDayRow

	db := s.conn(ctx)
	if country == "" {
		db = db.Table("v_clicks_total_day").
			Select("day, clicks")
	} else {
		db = db.Table("clicks").
			Select("day, COUNT(*) AS clicks").
			Where("country = ?", string(country)).
			Group("day")
	}

	err := db.Where("day BETWEEN ? AND ?", formatDay(from), formatDay(to)).
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", classifyError(err))
	}

	result := make([]models.DailyClicks, 0, len(rows))
	for _, row := range rows {
		day, err := parseDay(row.Day)
		if err != nil {
			return nil, fmt.Errorf("parse day %q: %w", row.Day, err)
		}
		result = append(result, models.DailyClicks{Day: day, Clicks: row.Clicks})
	}
	return result, nil
}
