package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnb-ordering/internal/auth"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

type fakeStore struct {
	users map[string]*models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*models.User{}}
}

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := f.users[user.Username]; exists {
		return models.ErrConflict
	}
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users[user.Username] = user
	return nil
}

func (f *fakeStore) UserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func newTestService(store Store) *Service {
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewService(store, tokens, logger.New("user-test"))
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	reg, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, models.RoleUser, reg.User.Role)
	assert.NotEqual(t, "correct horse", store.users["alice"].PasswordHash)

	login, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing username", models.RegisterRequest{Email: "a@b.c", Password: "longenough"}},
		{"bad email", models.RegisterRequest{Username: "bob", Email: "nope", Password: "longenough"}},
		{"short password", models.RegisterRequest{Username: "bob", Email: "b@b.c", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeStore())

			_, err := svc.Register(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	req := models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	}
	_, err := svc.Register(context.Background(), &req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &req)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// Unknown user and wrong password produce the same error.
	_, unknownErr := svc.Login(context.Background(), &models.LoginRequest{
		Username: "mallory",
		Password: "whatever",
	})
	_, wrongErr := svc.Login(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, unknownErr, models.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, models.ErrInvalidCredentials)

	_, emptyErr := svc.Login(context.Background(), &models.LoginRequest{})
	assert.ErrorIs(t, emptyErr, models.ErrInvalidCredentials)
}
