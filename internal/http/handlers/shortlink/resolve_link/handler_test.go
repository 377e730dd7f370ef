package resolve_link

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/mocks"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerResolveShortLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortLinkResolver(ctrl)
	log := zerolog.Nop()

	tests := []struct {
		name             string
		id               string
		setupMock        func()
		expectedCode     int
		expectedLocation string
	}{
		{
			name: "alias expands to redirect route",
			id:   "aB3dE6gH",
			setupMock: func() {
				mockService.EXPECT().
					ResolveShortLink(gomock.Any(), "aB3dE6gH").
					Return(models.ShortLink{ID: "aB3dE6gH", OfferSlug: "vivus", Country: models.CountryKZ, UserID: "abc"}, nil)
			},
			expectedCode:     http.StatusTemporaryRedirect,
			expectedLocation: "/r/vivus?c=KZ&u=abc",
		},
		{
			name: "unknown id",
			id:   "missing",
			setupMock: func() {
				mockService.EXPECT().
					ResolveShortLink(gomock.Any(), "missing").
					Return(models.ShortLink{}, models.ErrUnfound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "store unavailable",
			id:   "aB3dE6gH",
			setupMock: func() {
				mockService.EXPECT().
					ResolveShortLink(gomock.Any(), "aB3dE6gH").
					Return(models.ShortLink{}, models.ErrStoreUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/s/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()

			HandlerResolveShortLink(mockService, &log).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}
