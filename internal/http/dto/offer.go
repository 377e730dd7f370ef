package dto

import (
	"time"

	"offertracker/internal/domain/models"
)

// Request
type OfferUpsertRequest struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Active *bool  `json:"active,omitempty"` // по умолчанию true
}

// Response
type OfferResponse struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request → Domain
func OfferUpsertRequestToDomain(slug string, req OfferUpsertRequest) models.Offer {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return models.Offer{
		Slug:   slug,
		Title:  req.Title,
		URL:    req.URL,
		Active: active,
	}
}

// Domain → Response
func OfferResponseFromDomain(offer models.Offer) OfferResponse {
	return OfferResponse{
		Slug:      offer.Slug,
		Title:     offer.Title,
		URL:       offer.URL,
		Active:    offer.Active,
		CreatedAt: offer.CreatedAt,
		UpdatedAt: offer.UpdatedAt,
	}
}

func OffersResponseFromDomain(offers []models.Offer) []OfferResponse {
	resp := make([]OfferResponse, len(offers))
	for i, offer := range offers {
		resp[i] = OfferResponseFromDomain(offer)
	}
	return resp
}
