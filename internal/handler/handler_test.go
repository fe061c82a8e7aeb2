package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/honeynil/coffee-token-inspector/internal/config"
	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/auth"
	"github.com/honeynil/coffee-token-inspector/internal/models"
	"github.com/honeynil/coffee-token-inspector/internal/services/mocks"
	pkgerrors "github.com/honeynil/coffee-token-inspector/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: config.Auth0{
			Domain:      "fullstackcoffee.eu",
			Audience:    "drinks-detail",
			ClientID:    "client",
			CallbackURL: "http://127.0.0.1:8100",
		},
	}
}

func TestHandler_Decode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTokenInspector(ctrl)
	r := mux.NewRouter()
	NewHandler(svc, testConfig()).RegisterPublicRoutes(r)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Inspect(gomock.Any(), "a.b.c").Return(&models.Inspection{
			Payload:     models.Payload{"username": "juicepro"},
			Permissions: []string{"post:juice"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"token":"a.b.c"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"payload":{"username":"juicepro"},"permissions":["post:juice"],"signature_present":false}`, rec.Body.String())
	})

	t.Run("decode error", func(t *testing.T) {
		svc.EXPECT().Inspect(gomock.Any(), "abc").Return(nil, pkgerrors.ErrMalformedToken)

		req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"token":"abc"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "malformed token")
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc.EXPECT().Inspect(gomock.Any(), "x.y").Return(nil, context.Canceled)

		req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"token":"x.y"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Headers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTokenInspector(ctrl)
	r := mux.NewRouter()
	r.Use(auth.ClaimsMiddleware(svc))
	NewHandler(svc, testConfig()).RegisterProtectedRoutes(r)

	t.Run("bearer token", func(t *testing.T) {
		svc.EXPECT().InspectAuthorization(gomock.Any(), "Bearer a.b.c").Return(&models.Inspection{
			Payload:     models.Payload{"username": "juicepro"},
			Permissions: []string{},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/headers", nil)
		req.Header.Set("Authorization", "Bearer a.b.c")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"juicepro"`)
	})

	t.Run("missing header", func(t *testing.T) {
		svc.EXPECT().InspectAuthorization(gomock.Any(), "").Return(nil, pkgerrors.ErrMissingAuthHeader)

		req := httptest.NewRequest(http.MethodGet, "/headers", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_Headers_WithoutMiddleware(t *testing.T) {
	h := NewHandler(nil, testConfig())
	rec := httptest.NewRecorder()
	h.Headers(rec, httptest.NewRequest(http.MethodGet, "/headers", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Environment(t *testing.T) {
	r := mux.NewRouter()
	NewHandler(nil, testConfig()).RegisterPublicRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"apiServerUrl":"http://127.0.0.1:5000"`)
	assert.Contains(t, body, `"audience":"drinks-detail"`)
	assert.Contains(t, body, `"loginUrl":"https://fullstackcoffee.eu.auth0.com/authorize?`)
}
