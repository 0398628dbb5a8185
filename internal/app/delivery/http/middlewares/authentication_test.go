package middlewares

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionService) Create(ctx context.Context, token string, user models.User) (string, error) {
	return "", nil
}

func (f *fakeSessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (f *fakeSessionService) Clear(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func TestAuthenticate(t *testing.T) {
	const jwtSecret = "test-secret"

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret},
	}
	storedSession := &models.Session{
		Token: "backend-token",
		User:  models.User{UserID: 7, RoleID: models.RoleDoctor},
	}
	sessionService := &fakeSessionService{
		sessions: map[string]*models.Session{"session-1": storedSession},
	}
	m := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		assert.True(t, ok, "session data should be on the context")
		assert.Equal(t, 7, session.User.UserID)

		sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		assert.True(t, ok, "session ID should be on the context")
		assert.Equal(t, "session-1", sessionID)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token resolves the session", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-1", jwtSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/applications", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/applications", nil)
		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/applications", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token for an expired session is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-gone", jwtSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/applications", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireAPIKey(t *testing.T) {
	const opsKey = "ops-key-12345"

	hash, err := utils.HashAPIKey(opsKey)
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{OpsAPIKeyHash: hash},
	}
	m := NewMiddlewares(zap.NewNop(), &fakeSessionService{}, internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("correct key passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/ops/applications/1/audit", nil)
		req.Header.Set(constvars.HeaderXAPIKey, opsKey)

		rr := httptest.NewRecorder()
		m.RequireAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/ops/applications/1/audit", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "wrong")

		rr := httptest.NewRecorder()
		m.RequireAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/ops/applications/1/audit", nil)
		rr := httptest.NewRecorder()
		m.RequireAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
