package logger

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"offertracker/internal/http/httputils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	var ctxLogger *zerolog.Logger
	handler := MiddlewareLogging(&log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = zerolog.Ctx(r.Context())
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("offer not available"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	requestID := rr.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)
	require.NotNil(t, ctxLogger)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"`+requestID+`"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"error_type":"client_error"`)
	assert.Contains(t, out, `"bytes":19`)
}

func TestMiddlewareLogging_KeepsIncomingRequestID(t *testing.T) {
	log := zerolog.Nop()
	handler := MiddlewareLogging(&log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMiddlewareLogging_HandlerLinesCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	injected := zerolog.New(io.Discard)

	handler := MiddlewareLogging(&log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.RequestLogger(r, &injected).Error().Msg("failed to record click")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	req := httptest.NewRequest(http.MethodGet, "/r/vivus", nil)
	req.Header.Set("X-Request-ID", "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "failed to record click") {
			handlerLine = line
		}
	}
	require.NotEmpty(t, handlerLine, buf.String())
	assert.Contains(t, handlerLine, `"request_id":"req-42"`)
}
