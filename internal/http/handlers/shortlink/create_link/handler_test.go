package create_link

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/mocks"
	"offertracker/internal/services/tracker"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerCreateShortLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortLinkCreator(ctrl)
	log := zerolog.Nop()

	tests := []struct {
		name         string
		requestBody  string
		setupMock    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:        "successful short link",
			requestBody: `{"slug":"vivus","c":"RU","u":"42"}`,
			setupMock: func() {
				mockService.EXPECT().
					CreateShortLink(gomock.Any(), tracker.RedirectRequest{Slug: "vivus", Country: "RU", User: "42"}).
					Return(models.ShortLink{ID: "aB3dE6gH", OfferSlug: "vivus"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"aB3dE6gH","path":"/s/aB3dE6gH","url":"http://localhost:8080/s/aB3dE6gH"}`,
		},
		{
			name:         "invalid JSON",
			requestBody:  `{"slug":`,
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid input data"}`,
		},
		{
			name:        "unknown offer",
			requestBody: `{"slug":"nope","c":"RU","u":""}`,
			setupMock: func() {
				mockService.EXPECT().
					CreateShortLink(gomock.Any(), gomock.Any()).
					Return(models.ShortLink{}, models.ErrUnfound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"unfound data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/s/new", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			HandlerCreateShortLink(mockService, "http://localhost:8080", &log).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
