package list_active

import (
	"context"
	"net/http"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/dto"
	"offertracker/internal/http/httputils"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_list_active.go -package=mocks -mock_names=Service=MockOfferLister
type Service interface {
	ListActiveOffers(ctx context.Context) ([]models.Offer, error)
}

func HandlerListActiveOffers(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers, err := svc.ListActiveOffers(r.Context())
		if err != nil {
			httputils.RequestLogger(r, log).Error().Err(err).Msg("failed to list offers")
			status := httputils.StatusFromError(err)
			httputils.WriteJSONError(w, status, http.StatusText(status))
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.OffersResponseFromDomain(offers))
	}
}
