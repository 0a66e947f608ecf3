package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/config"
	"github.com/jonathan/resume-agent/internal/db"
	"github.com/jonathan/resume-agent/internal/types"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users map[string]*db.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*db.User)}
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[email] = user
	return user.ID, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.users[email], nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	return NewUserService(store, passwordConfig), store
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := testUserService()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, _ := testUserService()

	req := &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	service, _ := testUserService()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	require.Error(t, err)
	// Same generic error as a wrong password; no account enumeration.
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 409, HTTPStatus(&ErrEmailAlreadyExists{Email: "x"}))
	assert.Equal(t, 401, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, 404, HTTPStatus(&ErrUserNotFound{}))
	assert.Equal(t, 400, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, 500, HTTPStatus(context.DeadlineExceeded))
}
