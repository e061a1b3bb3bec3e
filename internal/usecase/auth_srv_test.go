package usecase

import (
	"context"
	"testing"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "moviefan",
		Email:    "fan@example.com",
		Password: "secret123",
	}
}

func TestAuthRegister(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "moviefan", resp.User.Username)
	assert.Equal(t, "fan@example.com", resp.User.Email)

	// The issued token verifies and carries the new user's id
	userID, err := utils.ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID.String())
}

func TestAuthRegisterValidation(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	cases := []struct {
		name string
		req  *request.RegisterRequest
	}{
		{"missing username", &request.RegisterRequest{Email: "a@b.com", Password: "secret123"}},
		{"short username", &request.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "secret123"}},
		{"bad email", &request.RegisterRequest{Username: "moviefan", Email: "not-an-email", Password: "secret123"}},
		{"short password", &request.RegisterRequest{Username: "moviefan", Email: "a@b.com", Password: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthRegisterDuplicate(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	// Same email, different username
	dup := registerReq()
	dup.Username = "othername"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrValidation)

	// Same username, different email
	dup = registerReq()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthLogin(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "fan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.User.ID, resp.User.ID)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	// Wrong password and unknown email fail the same way
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "fan@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthCurrentUser(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), uuid.MustParse(registered.User.ID))
	require.NoError(t, err)
	assert.Equal(t, "moviefan", user.Username)

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthPasswordNotStoredPlaintext(t *testing.T) {
	repo, users, _, _ := newTestRepository()
	svc := NewAuthService(repo, authTestConfig(), testLogger())

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), uuid.MustParse(registered.User.ID))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}
