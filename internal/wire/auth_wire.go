package wire

import (
	"movie-watchlist/internal/adaptor"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/pkg/middleware"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	// Resolve the user behind the presented token
	r.With(middleware.Auth(repo.User, config, log)).Get("/api/auth/user", authHandler.CurrentUser)
}
