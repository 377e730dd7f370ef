package dto

import (
	"offertracker/internal/domain/models"
	"offertracker/internal/services/analytics"
)

const DateLayout = "2006-01-02"

// Response
type (
	StatsRangeResponse struct {
		Range   StatsRange        `json:"range"`
		Total   int64             `json:"total"`
		ByOffer []OfferClicksItem `json:"by_offer"`
		Daily   []DailyClicksItem `json:"daily"`
	}

	StatsRange struct {
		From    string  `json:"from"`
		To      string  `json:"to"`
		Country *string `json:"country"`
	}

	OfferClicksItem struct {
		OfferSlug string `json:"offer_slug"`
		Clicks    int64  `json:"clicks"`
	}

	DailyClicksItem struct {
		Date   string `json:"date"`
		Clicks int64  `json:"clicks"`
	}
)

// Domain → Response
func StatsRangeResponseFromDomain(r analytics.Report) StatsRangeResponse {
	resp := StatsRangeResponse{
		Range: StatsRange{
			From: r.From.Format(DateLayout),
			To:   r.To.Format(DateLayout),
		},
		Total:   r.Total,
		ByOffer: make([]OfferClicksItem, len(r.ByOffer)),
		Daily:   make([]DailyClicksItem, len(r.Daily)),
	}

	if r.Country != "" {
		c := string(r.Country)
		resp.Range.Country = &c
	}

	for i, oc := range r.ByOffer {
		resp.ByOffer[i] = offerClicksItem(oc)
	}
	for i, d := range r.Daily {
		resp.Daily[i] = DailyClicksItem{Date: d.Day.Format(DateLayout), Clicks: d.Clicks}
	}

	return resp
}

func offerClicksItem(oc models.OfferClicks) OfferClicksItem {
	return OfferClicksItem{OfferSlug: oc.OfferSlug, Clicks: oc.Clicks}
}
