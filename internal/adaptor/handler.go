package adaptor

import (
	"errors"
	"net/http"

	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/database"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Watchlist *WatchlistHandler
	Health    *HealthHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
		Health:    NewHealthHandler(db, config, log),
	}
}

// handleServiceError maps service-layer errors to HTTP responses. Anything
// outside the taxonomy is logged and answered with a generic 500 so internals
// never leak to clients.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		// Duplicates answer 400, matching the rest of the client-error surface
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidState):
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotConfigured):
		log.Error(operation+" failed - misconfigured", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
