package getping

import (
	"context"
	"net/http"

	"offertracker/internal/http/httputils"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/mock_getping.go -package=mocks -mock_names=Service=MockPinger
type Service interface {
	PingDataBase(ctx context.Context) error
}

func HandlerPing(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingDataBase(r.Context()); err != nil {
			httputils.RequestLogger(r, log).Error().Err(err).Msg("Database ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
