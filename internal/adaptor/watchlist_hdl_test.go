package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/dto/response"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubWatchlistService returns canned results so the handler's decoding,
// routing, and error mapping can be tested in isolation
type stubWatchlistService struct {
	item *response.WatchlistItemResponse
	err  error
}

func (s *stubWatchlistService) List(ctx context.Context, userID uuid.UUID) ([]response.WatchlistItemResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []response.WatchlistItemResponse{}, nil
}

func (s *stubWatchlistService) Add(ctx context.Context, userID uuid.UUID, req *request.AddWatchlistRequest) (*response.WatchlistItemResponse, error) {
	return s.item, s.err
}

func (s *stubWatchlistService) SetWatched(ctx context.Context, userID, itemID uuid.UUID, req *request.UpdateWatchedRequest) (*response.WatchlistItemResponse, error) {
	return s.item, s.err
}

func (s *stubWatchlistService) SetFeedback(ctx context.Context, userID, itemID uuid.UUID, req *request.FeedbackRequest) (*response.WatchlistItemResponse, error) {
	return s.item, s.err
}

func (s *stubWatchlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.err
}

func (s *stubWatchlistService) RemoveByMovie(ctx context.Context, userID, movieID uuid.UUID) error {
	return s.err
}

func (s *stubWatchlistService) Stats(ctx context.Context, userID uuid.UUID) (*response.WatchlistStatsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &response.WatchlistStatsResponse{}, nil
}

func newWatchlistRouter(svc usecase.WatchlistService) chi.Router {
	handler := NewWatchlistHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/watchlist", handler.List)
	r.Post("/api/watchlist", handler.Add)
	r.Put("/api/watchlist/{id}", handler.SetWatched)
	r.Put("/api/watchlist/{id}/feedback", handler.SetFeedback)
	r.Delete("/api/watchlist/{id}", handler.Remove)
	return r
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := utils.SetUserContext(req.Context(), uuid.New())
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func sampleItem() *response.WatchlistItemResponse {
	return &response.WatchlistItemResponse{
		ID:      uuid.New().String(),
		AddedAt: time.Now(),
		Movie: response.MovieResponse{
			ID:    uuid.New().String(),
			Title: "Inception",
		},
	}
}

func TestWatchlistHandlerRequiresAuthContext(t *testing.T) {
	router := newWatchlistRouter(&stubWatchlistService{})

	// No user in context: the handler refuses before touching the service
	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWatchlistHandlerAdd(t *testing.T) {
	item := sampleItem()
	router := newWatchlistRouter(&stubWatchlistService{item: item})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist",
		`{"movieId": "`+item.Movie.ID+`"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.Equal(t, "Movie added to watchlist", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestWatchlistHandlerAddBadBody(t *testing.T) {
	router := newWatchlistRouter(&stubWatchlistService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchlistHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", usecase.NotFoundError("Watchlist item not found"), http.StatusNotFound},
		{"conflict", usecase.ConflictError("Movie is already in your watchlist"), http.StatusBadRequest},
		{"validation", usecase.ValidationError("Movie ID is required"), http.StatusBadRequest},
		{"invalid state", usecase.InvalidStateError("You can only leave feedback for watched movies"), http.StatusBadRequest},
		{"unknown", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newWatchlistRouter(&stubWatchlistService{err: tc.err})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/watchlist",
				`{"movieId": "`+uuid.New().String()+`"}`))

			assert.Equal(t, tc.wantCode, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Status)
			if tc.wantCode == http.StatusInternalServerError {
				// Internals never leak to clients
				assert.Equal(t, "Internal server error", envelope.Message)
			} else {
				assert.Equal(t, tc.err.Error(), envelope.Message)
			}
		})
	}
}

func TestWatchlistHandlerInvalidItemID(t *testing.T) {
	router := newWatchlistRouter(&stubWatchlistService{item: sampleItem()})

	for _, target := range []string{
		"/api/watchlist/not-a-uuid",
		"/api/watchlist/12345",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodDelete, target, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestWatchlistHandlerSetWatchedBadBody(t *testing.T) {
	router := newWatchlistRouter(&stubWatchlistService{item: sampleItem()})

	// watched must be a boolean
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut,
		"/api/watchlist/"+uuid.New().String(), `{"watched": "yes"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
