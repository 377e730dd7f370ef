package resolve_link

import (
	"context"
	"net/http"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/dto"
	"offertracker/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_resolve_link.go -package=mocks -mock_names=Service=MockShortLinkResolver
type Service interface {
	ResolveShortLink(ctx context.Context, id string) (models.ShortLink, error)
}

// HandlerResolveShortLink: GET /s/{id} → 307 на /r/{slug}?c=..&u=..
// Клик здесь не пишется, его посчитает /r/.
func HandlerResolveShortLink(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		link, err := svc.ResolveShortLink(ctx, id)
		if err != nil {
			status := httputils.StatusFromError(err)
			if status >= http.StatusInternalServerError {
				httputils.RequestLogger(r, log).Error().Err(err).Str("id", id).Msg("failed to resolve short link")
				httputils.WriteTextError(w, status, http.StatusText(status))
				return
			}
			httputils.WriteTextError(w, http.StatusNotFound, "Not found")
			return
		}

		httputils.WriteRedirect(w, dto.RedirectPath(link.OfferSlug, link.Country, link.UserID), false)
	}
}
