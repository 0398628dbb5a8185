package session

import (
	"context"
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.store[key] = string(v)
	case string:
		f.store[key] = v
	default:
		f.store[key] = fmt.Sprint(v)
	}
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Session: config.Session{TTLInHours: 1},
	}
}

func TestSessionService(t *testing.T) {
	ctx := context.Background()
	user := models.User{
		UserID:   7,
		Username: "jdoe",
		FullName: "Jane Doe",
		RoleID:   models.RoleDoctor,
		RoleName: "Doctor",
	}

	t.Run("create then get round-trips token and user", func(t *testing.T) {
		svc := NewSessionService(newFakeRedisRepository(), testInternalConfig())

		sessionID, err := svc.Create(ctx, "backend-token", user)
		require.NoError(t, err)
		require.NotEmpty(t, sessionID)

		session, err := svc.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "backend-token", session.Token)
		assert.Equal(t, user.UserID, session.User.UserID)
		assert.Equal(t, user.RoleID, session.User.RoleID)
		assert.True(t, session.IsAuthenticated())
	})

	t.Run("distinct sessions get distinct IDs", func(t *testing.T) {
		svc := NewSessionService(newFakeRedisRepository(), testInternalConfig())

		first, err := svc.Create(ctx, "token-a", user)
		require.NoError(t, err)
		second, err := svc.Create(ctx, "token-b", user)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("clear removes the session", func(t *testing.T) {
		svc := NewSessionService(newFakeRedisRepository(), testInternalConfig())

		sessionID, err := svc.Create(ctx, "backend-token", user)
		require.NoError(t, err)

		require.NoError(t, svc.Clear(ctx, sessionID))

		_, err = svc.Get(ctx, sessionID)
		assert.Error(t, err)
	})

	t.Run("unknown session ID is an error", func(t *testing.T) {
		svc := NewSessionService(newFakeRedisRepository(), testInternalConfig())

		_, err := svc.Get(ctx, "never-created")
		assert.Error(t, err)
	})
}
