package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seong-ho-y/bitrogue-project/internal/service"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
	"github.com/seong-ho-y/bitrogue-project/models"
)

func TestRegisterHandler_Created(t *testing.T) {
	auth := &mockAuthService{
		registerUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			require.Equal(t, "alice", user.Username)
			require.Equal(t, "hunter2", user.Password)
			return models.User{UserID: 1, Username: "alice"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer test-token", rec.Header().Get("Authorization"))

	var body models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.UserID)
	assert.Equal(t, "alice", body.Username)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	auth := &mockAuthService{
		registerUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"username":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 1, Username: "alice", HighScore: 42}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer test-token", rec.Header().Get("Authorization"))

	var body models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Username)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHighScoreHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		highScoreFunc: func(ctx context.Context, userID int64) (int64, error) {
			require.Equal(t, int64(7), userID)
			return 900, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/users/7/high_score", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.HighScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.UserID)
	assert.Equal(t, int64(900), body.HighScore)
}

func TestHighScoreHandler_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		highScoreFunc: func(ctx context.Context, userID int64) (int64, error) {
			return 0, store.ErrUserNotFound
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/users/404/high_score", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHighScoreHandler_MalformedID(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := h.InitServerRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc/high_score", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
