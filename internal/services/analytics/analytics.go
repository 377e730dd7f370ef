package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"offertracker/internal/domain/models"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=analytics.go -destination=../../mocks/mock_analytics.go -package=mocks
type StatsStorage interface {
	ClicksByOfferDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyOfferClicks, error)
	ClicksTotalDay(ctx context.Context, from, to time.Time, country models.Country) ([]models.DailyClicks, error)
}

const (
	// maxRangeDays ограничивает явный диапазон, чтобы ряд с нулями не раздувался
	maxRangeDays = 3 * 366
	otherBucket  = "other"
)

// allTimeFrom - нижняя граница "за всё время", раньше кликов быть не может
var allTimeFrom = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type RangeQuery struct {
	From    time.Time // нулевое значение - за всё время
	To      time.Time
	Country string
}

type Report struct {
	From    time.Time
	To      time.Time
	Country models.Country
	Total   int64
	ByOffer []models.OfferClicks // по убыванию кликов, затем по slug
	Daily   []models.DailyClicks // каждый день диапазона, пропуски заполнены нулями
}

type Analytics struct {
	storage StatsStorage
	loc     *time.Location
	log     *zerolog.Logger
	now     func() time.Time
}

func NewAnalytics(storage StatsStorage, loc *time.Location, log *zerolog.Logger) (*Analytics, error) {
	if storage == nil {
		return nil, errors.New("stats storage cannot be nil")
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	return &Analytics{
		storage: storage,
		loc:     loc,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

func (a *Analytics) ClicksByOfferDay(ctx context.Context, from, to time.Time, country string) ([]models.DailyOfferClicks, error) {
	c, err := parseOptionalCountry(country)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", models.ErrInvalidData)
	}

	rows, err := a.storage.ClicksByOfferDay(ctx, dayFloor(from), dayFloor(to), c)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks by offer: %w", err)
	}
	return rows, nil
}

func (a *Analytics) ClicksTotalDay(ctx context.Context, from, to time.Time, country string) ([]models.DailyClicks, error) {
	c, err := parseOptionalCountry(country)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", models.ErrInvalidData)
	}

	rows, err := a.storage.ClicksTotalDay(ctx, dayFloor(from), dayFloor(to), c)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily clicks: %w", err)
	}
	return rows, nil
}

// Range собирает отчёт за диапазон: итоги по офферам и дневной ряд.
// Оба считаются из одних и тех же строк, поэтому сумма по офферам всегда равна итогу.
func (a *Analytics) Range(ctx context.Context, q RangeQuery) (Report, error) {
	country, err := parseOptionalCountry(q.Country)
	if err != nil {
		return Report{}, err
	}

	allTime := q.From.IsZero()

	to := dayFloor(q.To)
	if q.To.IsZero() {
		to = a.Today()
	}

	from := dayFloor(q.From)
	if allTime {
		from = allTimeFrom
	}

	if to.Before(from) {
		return Report{}, fmt.Errorf("%w: to_date is before from_date", models.ErrInvalidData)
	}
	if !allTime && to.Sub(from) > maxRangeDays*24*time.Hour {
		return Report{}, fmt.Errorf("%w: range is longer than %d days", models.ErrInvalidData, maxRangeDays)
	}

	rows, err := a.storage.ClicksByOfferDay(ctx, from, to, country)
	if err != nil {
		return Report{}, fmt.Errorf("failed to query clicks by offer: %w", err)
	}

	// за всё время ряд начинается с первого дня, где есть клики
	if allTime {
		from = to
		for _, row := range rows {
			if row.Day.Before(from) {
				from = row.Day
			}
		}
	}

	report := Report{From: from, To: to, Country: country}

	perOffer := make(map[string]int64)
	perDay := make(map[time.Time]int64)
	for _, row := range rows {
		perOffer[row.OfferSlug] += row.Clicks
		perDay[row.Day] += row.Clicks
		report.Total += row.Clicks
	}

	report.ByOffer = make([]models.OfferClicks, 0, len(perOffer))
	for slug, clicks := range perOffer {
		report.ByOffer = append(report.ByOffer, models.OfferClicks{OfferSlug: slug, Clicks: clicks})
	}
	sortOfferClicks(report.ByOffer)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		report.Daily = append(report.Daily, models.DailyClicks{Day: day, Clicks: perDay[day]})
	}

	a.log.Debug().
		Time("from", from).
		Time("to", to).
		Str("country", string(country)).
		Int64("total", report.Total).
		Msg("stats range built")

	return report, nil
}

// LastDays - отчёт за n последних дней включая сегодня, n <= 0 - за всё время
func (a *Analytics) LastDays(ctx context.Context, n int) (Report, error) {
	today := a.Today()
	if n <= 0 {
		return a.Range(ctx, RangeQuery{To: today})
	}
	return a.Range(ctx, RangeQuery{From: today.AddDate(0, 0, -(n - 1)), To: today})
}

// Today - текущий календарный день в таймзоне отчётов
func (a *Analytics) Today() time.Time {
	return models.DayOf(a.now(), a.loc)
}

// TopOffers оставляет n лидеров, остальное сворачивает в "other"
func TopOffers(byOffer []models.OfferClicks, n int) []models.OfferClicks {
	sorted := make([]models.OfferClicks, len(byOffer))
	copy(sorted, byOffer)
	sortOfferClicks(sorted)

	if n <= 0 || len(sorted) <= n {
		return sorted
	}

	var rest int64
	for _, oc := range sorted[n:] {
		rest += oc.Clicks
	}

	top := append(sorted[:n:n], models.OfferClicks{OfferSlug: otherBucket, Clicks: rest})
	return top
}

func sortOfferClicks(s []models.OfferClicks) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Clicks != s[j].Clicks {
			return s[i].Clicks > s[j].Clicks
		}
		return s[i].OfferSlug < s[j].OfferSlug
	})
}

func parseOptionalCountry(raw string) (models.Country, error) {
	if raw == "" {
		return "", nil
	}
	c, err := models.ParseCountry(raw)
	if err != nil {
		return "", fmt.Errorf("%w: unsupported country %q", models.ErrInvalidData, raw)
	}
	return c, nil
}

// dayFloor отбрасывает время, дата берётся как есть
func dayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
