package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// List handles GET /api/watchlist (protected)
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list watchlist")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Add handles POST /api/watchlist (protected)
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to watchlist")
		return
	}

	utils.ResponseSuccess(w, "Movie added to watchlist", item)
}

// SetWatched handles PUT /api/watchlist/{id} (protected)
func (h *WatchlistHandler) SetWatched(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist item ID", nil)
		return
	}

	var req request.UpdateWatchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A non-boolean watched value fails to decode here
		utils.ResponseBadRequest(w, "Watched status is required", nil)
		return
	}

	item, err := h.service.SetWatched(r.Context(), userID, itemID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update watched status")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// SetFeedback handles PUT /api/watchlist/{id}/feedback (protected)
func (h *WatchlistHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist item ID", nil)
		return
	}

	var req request.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.SetFeedback(r.Context(), userID, itemID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "save feedback")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Remove handles DELETE /api/watchlist/{id} (protected)
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid watchlist item ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), userID, itemID); err != nil {
		handleServiceError(w, h.log, err, "remove from watchlist")
		return
	}

	utils.ResponseSuccess(w, "Movie removed from watchlist", nil)
}

// RemoveByMovie handles DELETE /api/watchlist/by-movie/{movieId} (protected)
func (h *WatchlistHandler) RemoveByMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "movieId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	if err := h.service.RemoveByMovie(r.Context(), userID, movieID); err != nil {
		handleServiceError(w, h.log, err, "remove from watchlist by movie")
		return
	}

	utils.ResponseSuccess(w, "Movie removed from watchlist", nil)
}

// Stats handles GET /api/watchlist/stats (protected)
func (h *WatchlistHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get watchlist stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
