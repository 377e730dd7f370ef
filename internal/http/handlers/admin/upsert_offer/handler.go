package upsert_offer

import (
	"context"
	"encoding/json"
	"net/http"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/dto"
	"offertracker/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_upsert_offer.go -package=mocks -mock_names=Service=MockOfferUpserter
type Service interface {
	UpsertOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
}

// HandlerUpsertOffer: PUT /admin/offers/{slug}
func HandlerUpsertOffer(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := mux.Vars(r)["slug"]
		log := httputils.RequestLogger(r, log).With().Str("handler", "HandlerUpsertOffer").Str("slug", slug).Logger()

		var req dto.OfferUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		offer, err := svc.UpsertOffer(ctx, dto.OfferUpsertRequestToDomain(slug, req))
		if err != nil {
			status := httputils.StatusFromError(err)
			if status >= http.StatusInternalServerError {
				log.Error().Err(err).Msg("failed to upsert offer")
				httputils.WriteJSONError(w, status, http.StatusText(status))
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		log.Info().Bool("active", offer.Active).Msg("offer upserted")
		httputils.WriteJSONResponse(w, http.StatusOK, dto.OfferResponseFromDomain(offer))
	}
}

// curl -v -X PUT -H 'X-Admin-Token: secret' -d '{"title":"Vivus","url":"https://vivus.ru"}' http://localhost:8080/admin/offers/vivus
