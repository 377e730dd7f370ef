package dto

import (
	"testing"
	"time"

	"offertracker/internal/domain/models"
	"offertracker/internal/services/analytics"

	"github.com/stretchr/testify/assert"
)

func TestRedirectPath(t *testing.T) {
	assert.Equal(t, "/r/vivus?c=RU&u=abc", RedirectPath("vivus", models.CountryRU, "abc"))
	assert.Equal(t, "/r/vivus?c=KZ", RedirectPath("vivus", models.CountryKZ, ""))
}

func TestOfferUpsertRequestToDomain(t *testing.T) {
	offer := OfferUpsertRequestToDomain("vivus", OfferUpsertRequest{Title: "Vivus", URL: "https://vivus.example"})
	assert.True(t, offer.Active, "active defaults to true")

	inactive := false
	offer = OfferUpsertRequestToDomain("vivus", OfferUpsertRequest{Title: "Vivus", Active: &inactive})
	assert.False(t, offer.Active)
}

func TestStatsRangeResponseFromDomain(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	resp := StatsRangeResponseFromDomain(analytics.Report{
		From:    day,
		To:      day,
		Total:   2,
		ByOffer: []models.OfferClicks{{OfferSlug: "vivus", Clicks: 2}},
		Daily:   []models.DailyClicks{{Day: day, Clicks: 2}},
	})

	assert.Equal(t, "2025-03-14", resp.Range.From)
	assert.Nil(t, resp.Range.Country)
	assert.Equal(t, []OfferClicksItem{{OfferSlug: "vivus", Clicks: 2}}, resp.ByOffer)
	assert.Equal(t, []DailyClicksItem{{Date: "2025-03-14", Clicks: 2}}, resp.Daily)

	short := ShortLinkResponseFromDomain(models.ShortLink{ID: "abcd1234"}, "http://localhost:8080")
	assert.Equal(t, "/s/abcd1234", short.Path)
	assert.Equal(t, "http://localhost:8080/s/abcd1234", short.URL)
}
