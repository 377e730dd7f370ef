package redirect

import (
	"context"
	"net/http"

	"offertracker/internal/http/httputils"
	"offertracker/internal/services/tracker"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_redirect.go -package=mocks -mock_names=Service=MockRedirectService
type Service interface {
	Redirect(ctx context.Context, req tracker.RedirectRequest) (tracker.RedirectResult, error)
}

// HandlerRedirect: GET /r/{slug}?c=RU&u=<pseudonym>
func HandlerRedirect(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		req := tracker.RedirectRequest{
			Slug:    mux.Vars(r)["slug"],
			Country: query.Get("c"),
			User:    query.Get("u"),
		}

		result, err := svc.Redirect(ctx, req)
		if err != nil {
			status := httputils.StatusFromError(err)
			switch status {
			case http.StatusNotFound:
				httputils.WriteTextError(w, status, "offer not available")
			case http.StatusBadRequest:
				httputils.WriteTextError(w, status, err.Error())
			default:
				httputils.RequestLogger(r, log).Error().Err(err).Str("slug", req.Slug).Msg("failed to record click")
				httputils.WriteTextError(w, status, http.StatusText(status))
			}
			return
		}

		httputils.WriteRedirect(w, result.URL, false)
	}
}
