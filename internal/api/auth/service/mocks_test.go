package authService

import (
	"context"
	"errors"
	"sync"
	"time"

	"blogserver/internal/api/auth"
	authRepository "blogserver/internal/api/auth/repository"
	"blogserver/internal/entity"
	"blogserver/pkg/redis"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]entity.User
	order []string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]entity.User)}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.order = append(s.order, user.ID)
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
	for _, id := range s.order {
		if s.users[id].Email == email {
			return s.users[id], nil
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

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{store: newFakeUserStore()}
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

func newFakeRedis() *fakeRedis {
	return &fakeRedis{sessions: make(map[string]string)}
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

type fakeBcrypt struct{}

func (fakeBcrypt) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeBcrypt) ComparePassword(hashPassword string, password string) error {
	if hashPassword != "hashed:"+password {
		return errors.New("hashedPassword is not the hash of the given password")
	}
	return nil
}
