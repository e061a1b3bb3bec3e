package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/dto/response"
	"movie-watchlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthService struct {
	resp *response.AuthResponse
	err  error
}

func (s *stubAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.resp.User, nil
}

func newAuthHandler(svc usecase.AuthService) *AuthHandler {
	return NewAuthHandler(svc, zap.NewNop())
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	// Handler-level validation rejects the body before the service runs
	cases := []string{
		`{not json`,
		`{"username": "ab", "email": "a@b.com", "password": "secret123"}`,
		`{"username": "moviefan", "email": "nope", "password": "secret123"}`,
		`{"username": "moviefan", "email": "a@b.com", "password": "123"}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		err: usecase.CredentialsError("Invalid credentials"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "fan@example.com", "password": "wrong"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerCurrentUserRequiresContext(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{
		resp: &response.AuthResponse{User: response.UserResponse{Username: "moviefan"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	handler.CurrentUser(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
