package create_link

import (
	"context"
	"encoding/json"
	"net/http"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/dto"
	"offertracker/internal/http/httputils"
	"offertracker/internal/services/tracker"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_create_link.go -package=mocks -mock_names=Service=MockShortLinkCreator
type Service interface {
	CreateShortLink(ctx context.Context, req tracker.RedirectRequest) (models.ShortLink, error)
}

// HandlerCreateShortLink: POST /s/new {"slug","c","u"} → 201 {"id","path","url"}
func HandlerCreateShortLink(svc Service, baseURL string, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.ShortLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		link, err := svc.CreateShortLink(ctx, tracker.RedirectRequest{
			Slug:    req.Slug,
			Country: req.Country,
			User:    req.User,
		})
		if err != nil {
			status := httputils.StatusFromError(err)
			if status >= http.StatusInternalServerError {
				httputils.RequestLogger(r, log).Error().Err(err).Str("slug", req.Slug).Msg("failed to create short link")
				httputils.WriteJSONError(w, status, http.StatusText(status))
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.ShortLinkResponseFromDomain(link, baseURL))
	}
}
