package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"offertracker/internal/http/httputils"

	"github.com/rs/zerolog"
)

const bearerPrefix = "Bearer "

// TokenValidator проверяет выданный ботом JWT и возвращает id админа
type TokenValidator interface {
	Validate(token string) (int64, error)
}

// MiddlewareAdminToken пропускает запрос с верным X-Admin-Token
// или с Authorization: Bearer <jwt>, если задан validator.
// Пустой токен в конфиге закрывает админские маршруты целиком.
func MiddlewareAdminToken(token string, validator TokenValidator, log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				httputils.RequestLogger(r, log).Warn().Str("path", r.URL.Path).Msg("admin route accessed but no admin token configured")
				httputils.WriteJSONError(w, http.StatusServiceUnavailable, "admin authentication not configured")
				return
			}

			if bearer, ok := bearerToken(r); ok && validator != nil {
				adminID, err := validator.Validate(bearer)
				if err != nil {
					httputils.RequestLogger(r, log).Warn().Err(err).Str("path", r.URL.Path).Str("ip", r.RemoteAddr).Msg("admin route accessed with invalid jwt")
					httputils.WriteJSONError(w, http.StatusForbidden, "invalid admin token")
					return
				}
				httputils.RequestLogger(r, log).Debug().Int64("admin", adminID).Str("path", r.URL.Path).Msg("admin authenticated by jwt")
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(httputils.HeaderAdminToken)
			if provided == "" {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "missing admin token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				httputils.RequestLogger(r, log).Warn().
					Str("path", r.URL.Path).
					Str("ip", r.RemoteAddr).
					Msg("admin route accessed with invalid token")
				httputils.WriteJSONError(w, http.StatusForbidden, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get(httputils.HeaderAuthorization)
	if !strings.HasPrefix(h, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	return token, token != ""
}
