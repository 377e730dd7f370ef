package list_active

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerListActiveOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockOfferLister(ctrl)
	log := zerolog.Nop()
	ts := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		ListActiveOffers(gomock.Any()).
		Return([]models.Offer{{Slug: "vivus", Title: "Vivus", URL: "https://vivus.example", Active: true, CreatedAt: ts, UpdatedAt: ts}}, nil)

	rr := httptest.NewRecorder()
	HandlerListActiveOffers(mockService, &log).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/offers", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{
		"slug": "vivus",
		"title": "Vivus",
		"url": "https://vivus.example",
		"active": true,
		"created_at": "2025-03-14T10:00:00Z",
		"updated_at": "2025-03-14T10:00:00Z"
	}]`, rr.Body.String())

	mockService.EXPECT().
		ListActiveOffers(gomock.Any()).
		Return(nil, errors.New("boom"))

	rr = httptest.NewRecorder()
	HandlerListActiveOffers(mockService, &log).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/offers", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
