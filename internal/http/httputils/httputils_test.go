package httputils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"offertracker/internal/domain/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("wrap: %w", models.ErrInvalidData), http.StatusBadRequest},
		{models.ErrUnfound, http.StatusNotFound},
		{fmt.Errorf("offer: %w", models.ErrInactive), http.StatusNotFound},
		{models.ErrConflict, http.StatusConflict},
		{fmt.Errorf("db: %w", models.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err), "%v", tt.err)
	}
}

func TestWriteRedirect(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteRedirect(rr, "https://vivus.example", false)

	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "https://vivus.example", rr.Header().Get(HeaderLocation))

	rr = httptest.NewRecorder()
	WriteRedirect(rr, "/r/vivus", true)
	assert.Equal(t, http.StatusPermanentRedirect, rr.Code)
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusBadRequest, "bad country")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, MIMEApplicationJSON, rr.Header().Get(HeaderContentType))
	assert.JSONEq(t, `{"error":"bad country"}`, rr.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var fallbackBuf, reqBuf bytes.Buffer
	fallback := zerolog.New(&fallbackBuf)
	reqLog := zerolog.New(&reqBuf).With().Str("request_id", "req-1").Logger()

	tests := []struct {
		name     string
		request  *http.Request
		fallback *zerolog.Logger
		wantBuf  *bytes.Buffer
	}{
		{
			name:     "логгер из контекста с request_id",
			request:  httptest.NewRequest(http.MethodGet, "/r/vivus", nil).WithContext(reqLog.WithContext(context.Background())),
			fallback: &fallback,
			wantBuf:  &reqBuf,
		},
		{
			name:     "без middleware берётся fallback",
			request:  httptest.NewRequest(http.MethodGet, "/r/vivus", nil),
			fallback: &fallback,
			wantBuf:  &fallbackBuf,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fallbackBuf.Reset()
			reqBuf.Reset()

			RequestLogger(tt.request, tt.fallback).Error().Msg("boom")
			assert.Contains(t, tt.wantBuf.String(), `"message":"boom"`)
		})
	}

	assert.NotPanics(t, func() {
		RequestLogger(httptest.NewRequest(http.MethodGet, "/", nil), nil).Error().Msg("dropped")
	})
}
