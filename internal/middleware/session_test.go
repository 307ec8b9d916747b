package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"blogserver/internal/api/auth"
	authRepository "blogserver/internal/api/auth/repository"
	"blogserver/internal/entity"
	jwtPkg "blogserver/pkg/jwt"
	"blogserver/pkg/redis"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func (s *fakeUserStore) CreateUser(_ context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (s *fakeUserStore) CountUsers(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

type fakeAuthRepo struct {
	store *fakeUserStore
}

func (r *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    r.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeRedis struct {
	mu       sync.Mutex
	sessions map[string]string
}

func (r *fakeRedis) SetSession(_ context.Context, sessionID string, userID string, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = userID
	return nil
}

func (r *fakeRedis) GetSession(_ context.Context, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, ok := r.sessions[sessionID]
	if !ok {
		return "", redis.ErrSessionNotFound
	}
	return userID, nil
}

func (r *fakeRedis) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

type sessionTestEnv struct {
	app   *fiber.App
	store *fakeUserStore
	redis *fakeRedis
}

func newSessionTestEnv(t *testing.T) *sessionTestEnv {
	t.Helper()
	t.Setenv("SESSION_TOKEN_SECRET", "middleware-test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := &fakeUserStore{users: make(map[string]entity.User)}
	redisServer := &fakeRedis{sessions: make(map[string]string)}
	m := New(logger, redisServer, &fakeAuthRepo{store: store})

	app := fiber.New()
	app.Get("/private", m.NewSessionMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(jwtPkg.GetSessionUser(c).Email)
	})
	app.Get("/public", m.NewOptionalSessionMiddleware, func(c *fiber.Ctx) error {
		user := jwtPkg.GetSessionUser(c)
		if user.IsAnonymous() {
			return c.SendString("anonymous")
		}
		return c.SendString(user.Email)
	})

	return &sessionTestEnv{app: app, store: store, redis: redisServer}
}

func (env *sessionTestEnv) seedSession(t *testing.T, user entity.User, sessionID string) string {
	t.Helper()

	require.NoError(t, env.store.CreateUser(context.Background(), user))
	require.NoError(t, env.redis.SetSession(context.Background(), sessionID, user.ID, time.Hour))

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"sid":   sessionID,
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
	}, time.Hour)
	require.NoError(t, err)

	return token
}

func requestWithCookie(path string, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: jwtPkg.SessionCookieName, Value: token})
	}
	return req
}

func TestSessionMiddleware(t *testing.T) {
	user := entity.User{ID: "u1", Email: "owner@example.com", Name: "Owner", Role: entity.RoleAdmin}

	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		env := newSessionTestEnv(t)

		resp, err := env.app.Test(requestWithCookie("/private", ""))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("live session passes and attaches the identity", func(t *testing.T) {
		env := newSessionTestEnv(t)
		token := env.seedSession(t, user, "sess-1")

		resp, err := env.app.Test(requestWithCookie("/private", token))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", string(body))
	})

	t.Run("revoked session is unauthorized", func(t *testing.T) {
		env := newSessionTestEnv(t)
		token := env.seedSession(t, user, "sess-1")
		require.NoError(t, env.redis.DeleteSession(context.Background(), "sess-1"))

		resp, err := env.app.Test(requestWithCookie("/private", token))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("session for a deleted user is not found", func(t *testing.T) {
		env := newSessionTestEnv(t)
		token := env.seedSession(t, user, "sess-1")
		env.store.mu.Lock()
		delete(env.store.users, user.ID)
		env.store.mu.Unlock()

		resp, err := env.app.Test(requestWithCookie("/private", token))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("tampered token is unauthorized", func(t *testing.T) {
		env := newSessionTestEnv(t)
		token := env.seedSession(t, user, "sess-1")

		resp, err := env.app.Test(requestWithCookie("/private", token+"x"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOptionalSessionMiddleware(t *testing.T) {
	user := entity.User{ID: "u1", Email: "owner@example.com", Name: "Owner", Role: entity.RoleAdmin}

	t.Run("anonymous requests pass through", func(t *testing.T) {
		env := newSessionTestEnv(t)

		resp, err := env.app.Test(requestWithCookie("/public", ""))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "anonymous", string(body))
	})

	t.Run("live session attaches the identity", func(t *testing.T) {
		env := newSessionTestEnv(t)
		token := env.seedSession(t, user, "sess-1")

		resp, err := env.app.Test(requestWithCookie("/public", token))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", string(body))
	})
}
