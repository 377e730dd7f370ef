package get_range

import (
	"context"
	"net/http"
	"time"

	"offertracker/internal/http/dto"
	"offertracker/internal/http/httputils"
	"offertracker/internal/services/analytics"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_get_range.go -package=mocks -mock_names=Service=MockStatsRanger
type Service interface {
	Range(ctx context.Context, q analytics.RangeQuery) (analytics.Report, error)
}

// HandlerStatsRange: GET /stats/range?from_date=YYYY-MM-DD&to_date=YYYY-MM-DD&country=RU
func HandlerStatsRange(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		from, errFrom := time.Parse(dto.DateLayout, query.Get("from_date"))
		to, errTo := time.Parse(dto.DateLayout, query.Get("to_date"))
		if errFrom != nil || errTo != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid date format (YYYY-MM-DD)")
			return
		}

		report, err := svc.Range(ctx, analytics.RangeQuery{
			From:    from,
			To:      to,
			Country: query.Get("country"),
		})
		if err != nil {
			status := httputils.StatusFromError(err)
			if status >= http.StatusInternalServerError {
				httputils.RequestLogger(r, log).Error().Err(err).Msg("failed to build stats range")
				httputils.WriteJSONError(w, status, http.StatusText(status))
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.StatsRangeResponseFromDomain(report))
	}
}
