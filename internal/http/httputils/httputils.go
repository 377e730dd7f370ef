package httputils

import (
	"encoding/json"
	"errors"
	"net/http"

	"offertracker/internal/domain/models"

	"github.com/rs/zerolog"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderLocation        = "Location"
	HeaderRequestID       = "X-Request-ID"
	HeaderAdminToken      = "X-Admin-Token"
	HeaderAuthorization   = "Authorization"
	HeaderRetryAfter      = "Retry-After"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"
)

// StatusFromError - единственное место, где доменные ошибки превращаются в HTTP статусы
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnfound), errors.Is(err, models.ErrInactive):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func WriteTextError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func WriteTextResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteRedirect: 307 для временного редиректа, 308 для постоянного
func WriteRedirect(w http.ResponseWriter, location string, permanent bool) {
	status := http.StatusTemporaryRedirect
	if permanent {
		status = http.StatusPermanentRedirect
	}
	w.Header().Set(HeaderLocation, location)
	w.WriteHeader(status)
}

// RequestLogger отдаёт логгер запроса с request_id из контекста,
// а если middleware логирования не отработал, то fallback.
func RequestLogger(r *http.Request, fallback *zerolog.Logger) *zerolog.Logger {
	l := zerolog.Ctx(r.Context())
	if l.GetLevel() != zerolog.Disabled || fallback == nil {
		return l
	}
	return fallback
}
